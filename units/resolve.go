// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Match strength, strongest first.
const (
	matchSymbol = iota
	matchNormalized
	matchName
	noMatch
)

// normSymbol folds compatibility characters, so MICRO SIGN and GREEK MU,
// ANGSTROM SIGN and Å, or ℃ and °C compare equal.
func normSymbol(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}

// normName case-folds an enumeration name and drops separators, so
// "light year", "Light_Year" and "LIGHTYEAR" compare equal.
func normName(s string) string {
	s = cases.Fold().String(norm.NFKC.String(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, s)
}

func (d *Dimension) match(s string) (int, int) {
	if i, ok := d.bySymbol[s]; ok {
		return i, matchSymbol
	}
	if i, ok := d.byNorm[normSymbol(s)]; ok {
		return i, matchNormalized
	}
	if i, ok := d.byName[normName(s)]; ok {
		return i, matchName
	}
	return -1, noMatch
}

// Resolve finds the unit denoted by a symbol or an enumeration name.
// Symbols are tried before names and are case sensitive ("mm" is not "Mm");
// names are not.
func (d *Dimension) Resolve(symbolOrName string) (int, error) {
	i, strength := d.match(symbolOrName)
	if strength == noMatch {
		return -1, &InvalidUnitNameError{Dimension: d.name, Name: symbolOrName}
	}
	return i, nil
}
