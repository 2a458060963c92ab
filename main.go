// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"log/slog"
	"os"

	"unitconv/store"
	"unitconv/units"
)

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadRegistry returns the compiled-in dimensions, or those of the store
// given with -T.
func loadRegistry() *units.Registry {
	if options.tables == "" {
		return units.Default()
	}

	s, err := store.Open(options.tables)
	if err != nil {
		die("%v, exiting", err)
	}
	defer s.Close()

	registry, err := s.LoadRegistry()
	if err != nil {
		die("%v, exiting", err)
	}
	slog.Debug("tables loaded", "path", options.tables, "dimensions", len(registry.Dimensions()))
	return registry
}

func exportTables(registry *units.Registry) {
	s, err := store.Open(options.export)
	if err != nil {
		die("%v, exiting", err)
	}
	defer s.Close()

	if err := s.SaveRegistry(registry); err != nil {
		die("%v, exiting", err)
	}
	slog.Debug("tables exported", "path", options.export)
}

func showHistory(history *store.Store) {
	records, err := history.History(options.showHistory)
	if err != nil {
		die("%v, exiting", err)
	}
	for _, rec := range records {
		result := formatNumber(rec.Result)
		if rec.Overflow {
			result = "overflow"
		}
		fmt.Printf("%s %s: %s %s -> %s %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Dimension, formatNumber(rec.Value), rec.Source, result, rec.Target)
	}
}

func main() {
	if len(os.Args) == 1 {
		usage()
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: %v, exiting\n", r)
			os.Exit(1)
		}
	}()

	args := scanOptions(os.Args[1:])
	setupLogging(options.trace)

	registry := loadRegistry()
	if options.list {
		listUnits(registry)
	}
	if options.export != "" {
		exportTables(registry)
	}

	var history *store.Store
	if options.history != "" {
		var err error
		if history, err = store.Open(options.history); err != nil {
			die("%v, exiting", err)
		}
		defer history.Close()
	}

	stack := newStack(registry, history)
	for _, arg := range args {
		if num, ok := parseNumber(arg); ok {
			slog.Debug("push", "value", num)
			stack.push(Value{number: num})
		} else if op, ok := stack.operation(arg); ok {
			op(stack)
		} else {
			stack.apply(arg)
		}
	}

	stack.print()

	if options.showHistory > 0 {
		if history == nil {
			die("History requires -H, exiting")
		}
		showHistory(history)
	}
}
