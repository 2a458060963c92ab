// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"unitconv/store"
	"unitconv/units"
)

type Stack struct {
	values   []Value
	registry *units.Registry
	history  *store.Store // nil unless conversions are recorded
	exact    *big.Rat     // unrounded result of the last conversion
}

func newStack(registry *units.Registry, history *store.Store) *Stack {
	return &Stack{values: []Value{}, registry: registry, history: history}
}

var STACKALIAS = Aliases{
	"dup": "d",
	"pop": "p",
}

var STACKOP = map[string]func(*Stack){
	"x": func(s *Stack) { s.exchange() },
	"d": func(s *Stack) { s.dup() },
	"p": func(s *Stack) {
		if _, err := s.pop(); err != nil {
			die("Stack is empty for '%s', exiting", "pop")
		}
	},
	"chs": func(s *Stack) { s.unaryOp("chs") },
	"n":   func(s *Stack) { s.unaryOp("n") },
}

// operation returns the stack operation named by word. A word that is also
// a unit of the tagged top of stack, like d for days, converts instead.
func (s *Stack) operation(word string) (func(*Stack), bool) {
	op, ok := STACKOP[STACKALIAS.resolve(word)]
	if !ok || len(s.values) == 0 {
		return op, ok
	}
	top := s.values[len(s.values)-1]
	if top.isTagged() {
		if _, err := top.dim.Resolve(UNITALIAS.resolve(word)); err == nil {
			return nil, false
		}
	}
	return op, true
}

func (s *Stack) unaryOp(op string) {
	value, err := s.pop()
	if err != nil {
		die("Not enough arguments for unary operation '%s', exiting", op)
	}

	slog.Debug("unary", "op", op, "value", value.String())
	s.push(value.unaryOp(op))
}

// apply tags an untagged top of stack with the unit named by word, or
// converts a tagged one into it.
func (s *Stack) apply(word string) {
	value, err := s.pop()
	if err != nil {
		die("Not enough arguments for '%s', exiting", word)
	}

	if !value.isTagged() {
		value = applyUnit(s.registry, value, word)
		slog.Debug("apply", "dimension", value.dim.Name(), "unit", value.dim.UnitName(value.unit), "value", value.number)
		s.push(value)
		return
	}

	s.push(s.convert(value, resolveTarget(value, word)))
}

func (s *Stack) convert(value Value, to int) Value {
	if to == value.unit {
		return value
	}

	amount := value.amount()
	exact, err := amount.Exact(to)
	if err != nil {
		die("Cannot convert %s: %v, exiting", value, err)
	}
	s.exact = exact

	rec := store.Record{
		Dimension: value.dim.Name(),
		Value:     value.number,
		Source:    value.dim.UnitName(value.unit),
		Target:    value.dim.UnitName(to),
		Exact:     exact.RatString(),
	}

	converted, err := amount.Convert(to)
	var overflow *units.OverflowError
	if errors.As(err, &overflow) {
		rec.Overflow = true
		s.record(rec)
		die("%v, exiting", err)
	} else if err != nil {
		die("Cannot convert %s: %v, exiting", value, err)
	}

	rec.Result = converted.Value()
	s.record(rec)
	slog.Debug("convert", "dimension", rec.Dimension, "from", rec.Source, "to", rec.Target,
		"value", rec.Value, "result", rec.Result, "exact", rec.Exact)
	return tagged(converted)
}

func (s *Stack) record(rec store.Record) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Record(rec); err != nil {
		die("%v, exiting", err)
	}
}

func (s *Stack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, fmt.Errorf("stack is empty")
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) dup() {
	if len(s.values) < 1 {
		die("Stack is empty for '%s', exiting", "duplicate")
	}

	s.values = append(s.values, s.values[len(s.values)-1])
}

func (s *Stack) exchange() {
	if len(s.values) < 2 {
		die("Not enough arguments for '%s', exiting", "exchange")
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
}

// ColumnWidths tracks integer and fractional part widths for alignment
type ColumnWidths struct {
	integerWidth    int // width of integer part (before decimal point)
	fractionalWidth int // width of fractional part (including decimal point)
}

func maxWidths(values []Value) ColumnWidths {
	var widths ColumnWidths
	for _, value := range values {
		intPart, fracPart := splitNumber(formatNumber(value.number))
		widths.integerWidth = max(widths.integerWidth, len(intPart))
		widths.fractionalWidth = max(widths.fractionalWidth, len(fracPart))
	}
	return widths
}

// format lays out the stack top first, with units digits aligned
func (s *Stack) format() string {
	widths := maxWidths(s.values)

	var sb strings.Builder
	for i := len(s.values) - 1; i >= 0; i-- {
		value := s.values[i]
		intPart, fracPart := splitNumber(formatNumber(value.number))

		line := fmt.Sprintf("%*s%s", widths.integerWidth, intPart, fracPart)
		if value.isTagged() {
			// Pad fractional part so the units line up
			line += strings.Repeat(" ", widths.fractionalWidth-len(fracPart)) + " " + value.symbol()
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s *Stack) print() {
	fmt.Print(s.format())
	if options.showRational && s.exact != nil {
		fmt.Printf("= %s\n", s.exact.RatString())
	}
}
