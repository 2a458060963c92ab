// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"math"
	"testing"

	"unitconv/units"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		valid    bool
	}{
		{"1", 1, true},
		{"-40", -40, true},
		{"+2.5", 2.5, true},
		{".5", 0.5, true},
		{"1e3", 1000, true},
		{"-1.5e-3", -0.0015, true},
		{"1_000_000", 1e6, true},
		{"1/4", 0.25, true},
		{"-3/2", -1.5, true},
		{"1e400", math.Inf(1), true},

		{"", 0, false},
		{"m", 0, false},
		{"mm", 0, false},
		{"-", 0, false},
		{"+Inf", 0, false},
		{"-nan", 0, false},
		{"1/0", 0, false},
		{"1/", 0, false},
		{"1.2.3", 0, false},
		{"°C", 0, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, valid := parseNumber(test.input)

			if valid != test.valid {
				t.Errorf("parseNumber(%q) validity = %v, want %v", test.input, valid, test.valid)
				return
			}
			if test.valid && result != test.expected {
				t.Errorf("parseNumber(%q) = %v, want %v", test.input, result, test.expected)
			}
		})
	}
}

func withOptions(t *testing.T, o Options) {
	saved := options
	options = o
	t.Cleanup(func() { options = saved })
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		precision int
		group     bool
		input     float64
		expected  string
	}{
		{4, false, 1, "1"},
		{4, false, -40, "-40"},
		{4, false, 1.0 / 3.0, "0.3333"},
		{2, false, 1.0 / 3.0, "0.33"},
		{8, false, 1.0 / 3.0, "0.33333333"},
		{4, false, 2.0 / 3.0, "0.6667"},
		{4, false, 1.5, "1.5"},
		{4, false, 0.999999, "1"},
		{4, false, 0.621371192237334, "0.6214"},
		{4, false, 273.15, "273.15"},
		{4, false, 1e276, "1e+276"},
		{4, false, 1.23456e20, "1.2346e+20"},
		{4, false, 2.5e-7, "2.5e-07"},
		{4, false, 0, "0"},
		{4, true, 1234567, "1,234,567"},
		{4, true, -1234.5, "-1,234.5"},
		{4, true, 123, "123"},
		{4, false, math.Inf(-1), "-Inf"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			withOptions(t, Options{precision: test.precision, group: test.group})
			if result := formatNumber(test.input); result != test.expected {
				t.Errorf("formatNumber(%v) = %q, want %q", test.input, result, test.expected)
			}
		})
	}
}

func TestSplitNumber(t *testing.T) {
	tests := []struct {
		input, intPart, fracPart string
	}{
		{"100.5", "100", ".5"},
		{"100", "100", ""},
		{"1e+276", "1", "e+276"},
		{"1.5e+276", "1", ".5e+276"},
	}

	for _, test := range tests {
		intPart, fracPart := splitNumber(test.input)
		if intPart != test.intPart || fracPart != test.fracPart {
			t.Errorf("splitNumber(%q) = %q, %q, want %q, %q", test.input, intPart, fracPart, test.intPart, test.fracPart)
		}
	}
}

func TestStackFormat(t *testing.T) {
	withOptions(t, Options{precision: 4})

	s := newStack(units.Default(), nil)
	s.push(Value{number: 1000})
	s.apply("mm")
	s.apply("m")
	s.push(Value{number: 12.5})
	s.apply("ft")
	s.push(Value{number: 1.0 / 3.0})

	expected := " 0.3333\n12.5    ft\n 1      m\n"
	if result := s.format(); result != expected {
		t.Errorf("format() = %q, want %q", result, expected)
	}
}

func TestStackOperations(t *testing.T) {
	withOptions(t, Options{precision: 4})

	s := newStack(units.Default(), nil)
	s.push(Value{number: 100})
	s.apply("C")
	STACKOP[STACKALIAS.resolve("dup")](s)
	s.apply("F")
	STACKOP["x"](s)
	s.apply("K")
	STACKOP["chs"](s)

	expected := "-373.15 K\n 212    °F\n"
	if result := s.format(); result != expected {
		t.Errorf("format() = %q, want %q", result, expected)
	}
	if s.exact == nil || s.exact.RatString() != "7463/20" {
		t.Errorf("exact = %v, want 7463/20", s.exact)
	}

	STACKOP["n"](s)
	STACKOP["x"](s)
	STACKOP[STACKALIAS.resolve("pop")](s)
	if result := s.format(); result != "-373.15\n" {
		t.Errorf("format() = %q, want %q", result, "-373.15\n")
	}
}

func TestUnitAliases(t *testing.T) {
	tests := []struct {
		word, symbol string
	}{
		{"C", "°C"},
		{"°C", "°C"},
		{"um", "µm"},
		{"micrometer", "µm"},
		{"hr", "h"},
		{"mm Hg", "mm Hg"},
		{"mmhg", "mm Hg"},
	}

	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			v := applyUnit(units.Default(), Value{number: 1}, test.word)
			if v.symbol() != test.symbol {
				t.Errorf("applyUnit(%q) symbol = %q, want %q", test.word, v.symbol(), test.symbol)
			}
		})
	}
}

func TestStackOperationOrUnit(t *testing.T) {
	withOptions(t, Options{precision: 4})

	s := newStack(units.Default(), nil)
	s.push(Value{number: 2})
	if _, ok := s.operation("d"); !ok {
		t.Errorf("operation(%q) on an untagged number should duplicate", "d")
	}

	s.apply("h")
	if _, ok := s.operation("d"); ok {
		t.Errorf("operation(%q) on hours should convert to days", "d")
	}
	if _, ok := s.operation("dup"); !ok {
		t.Errorf("operation(%q) should duplicate", "dup")
	}

	s.values = s.values[:0]
	s.push(Value{number: 1})
	s.apply("ft")
	if _, ok := s.operation("d"); !ok {
		t.Errorf("operation(%q) on feet should duplicate", "d")
	}
}
