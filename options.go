// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Options struct {
	group        bool
	trace        bool
	precision    int
	showRational bool
	list         bool
	tables       string // load conversion tables from this store
	export       string // export conversion tables to this store
	history      string // record conversions in this store
	showHistory  int
}

var options = Options{
	precision: 4,
}

func heredoc(text string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	// Find the minimum leading whitespace for non-empty lines
	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			leadingSpaces := len(line) - len(strings.TrimLeft(line, " "))
			if minIndent == -1 || leadingSpaces < minIndent {
				minIndent = leadingSpaces
			}
		}
	}

	// Remove the minimum leading whitespace from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}

	return strings.Join(lines, "\n")
}

func usage() {
	fmt.Printf("%s\n", heredoc(fmt.Sprintf(`
        Usage: unitconv [OPTIONS | ARGUMENTS]
        Options:
          -t         Trace operations
          -p Integer Set display precision for floating point number (default: %d)
          -r         Show exact rational result of the last conversion
          -g         Use ',' to group decimal numbers
          -l         List dimensions and units
          -T File    Load conversion tables from a SQLite store
          -E File    Export conversion tables to a SQLite store
          -H File    Record conversions in a SQLite store
          -y Integer Show the most recent conversions recorded with -H
          -h         Show extended help
	`, options.precision)))
}

func doHelp() {
	usage()

	fmt.Printf("%s\n", heredoc(`
        Numbers:
          Decimal numbers (with optional exponent: [eE][-+]?[0-9]+)
          Rationals (e.g. 1/3)
          '_' may be used to group digits
    `))

	fmt.Printf("%s\n", heredoc(`
        Stack Operations:
          x:   exchange top 2 elements of the stack
          d:   duplicate top element of the stack (aliased as dup)
          p:   pop top element off of the stack (aliased as pop)
          chs: change sign
          n:   number: remove any unit
    `))

	fmt.Printf("%s\n", heredoc(`
        Units:
          A unit is applied if the current top of stack does not have one
          Otherwise the current top of stack is converted to the unit

          Units are given by symbol (case sensitive, e.g. mm, Mm, °C, mm Hg)
          or by name (e.g. millimeter, light_year, mmhg)
          C, F and R stand for °C, °F and °R; um for µm

          A unit of the top of stack takes precedence over a stack operation:
          48 h d converts to days, use dup to duplicate a time

          Use -l to list every unit
    `))
}

// optionArgument returns the value following option args[i].
func optionArgument(args []string, i int) string {
	if i >= len(args)-1 {
		die("Missing required argument for '%s', exiting", args[i])
	}
	return args[i+1]
}

func integerArgument(args []string, i int) int {
	arg := optionArgument(args, i)
	n, err := strconv.Atoi(arg)
	if err != nil {
		die("Integer argument required for '%s', cannot parse '%s', exiting", args[i], arg)
	}
	return n
}

func scanOptions(args []string) []string {
	for i := 0; i < len(args); { // scan args for options, e.g. -h, -p N
		consumed := 1
		switch args[i] {
		case "-h":
			doHelp()
			os.Exit(1)
		case "-t":
			options.trace = true
		case "-g":
			options.group = true
		case "-r":
			options.showRational = true
		case "-l":
			options.list = true
		case "-p":
			options.precision = integerArgument(args, i)
			if options.precision < 0 {
				die("Precision must not be negative, exiting")
			}
			consumed = 2
		case "-y":
			options.showHistory = integerArgument(args, i)
			consumed = 2
		case "-T":
			options.tables = optionArgument(args, i)
			consumed = 2
		case "-E":
			options.export = optionArgument(args, i)
			consumed = 2
		case "-H":
			options.history = optionArgument(args, i)
			consumed = 2
		default:
			consumed = 0
		}

		if consumed == 0 {
			i++
		} else {
			args = append(args[:i], args[i+consumed:]...) // remove the option and any argument
		}
	}

	return args
}
