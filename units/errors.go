// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNotFinite is returned when NaN or an infinity is converted between two
// different units. Identity conversions return such values unchanged.
var ErrNotFinite = errors.New("units: value is not finite")

// OverflowError reports a conversion whose exact result does not fit in a
// float64. Exact holds the value that could not be represented.
type OverflowError struct {
	Dimension string
	From      string
	To        string
	Exact     *big.Rat
}

func (e *OverflowError) Error() string {
	approx := new(big.Float).SetPrec(64).SetRat(e.Exact)
	return fmt.Sprintf("units: %s conversion from %s to %s overflows float64: %s",
		e.Dimension, e.From, e.To, approx.Text('g', 10))
}

// MissingConversionError means a table has no entry for a pair of distinct
// units. A complete table never produces it, so Convert panics with it.
type MissingConversionError struct {
	Dimension string
	From      string
	To        string
}

func (e *MissingConversionError) Error() string {
	return fmt.Sprintf("units: no %s conversion from %s to %s", e.Dimension, e.From, e.To)
}

// InvalidUnitNameError reports a symbol or name that matches no unit, or
// more than one.
type InvalidUnitNameError struct {
	Dimension string // empty when searching every dimension
	Name      string
	Ambiguous []string // qualified matches when the name is ambiguous
}

func (e *InvalidUnitNameError) Error() string {
	if len(e.Ambiguous) > 0 {
		return fmt.Sprintf("units: %q is ambiguous: %s", e.Name, strings.Join(e.Ambiguous, ", "))
	}
	if e.Dimension == "" {
		return fmt.Sprintf("units: %q is not a known unit", e.Name)
	}
	return fmt.Sprintf("units: %q is not a %s unit", e.Name, e.Dimension)
}

// TableError reports inconsistent dimension data: duplicate units or entries,
// non-affine formulas, or a pair of entries that are not inverses.
type TableError struct {
	Dimension string
	Msg       string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("units: bad %s table: %s", e.Dimension, e.Msg)
}
