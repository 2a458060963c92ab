// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"math/big"
	"strconv"
)

// Amount is a value in a unit of a dimension known only at run time, such
// as one loaded from a table store or named on the command line.
type Amount struct {
	value float64
	dim   *Dimension
	unit  int
}

// NewAmount panics if unit is not an ordinal of d.
func NewAmount(d *Dimension, value float64, unit int) Amount {
	d.unit(unit)
	return Amount{value: value, dim: d, unit: unit}
}

func (a Amount) Value() float64 { return a.value }

func (a Amount) Dimension() *Dimension { return a.dim }

// Unit returns the ordinal of the unit within the dimension.
func (a Amount) Unit() int { return a.unit }

func (a Amount) UnitName() string { return a.dim.UnitName(a.unit) }

func (a Amount) Symbol() string { return a.dim.Symbol(a.unit) }

func (a Amount) String() string {
	return strconv.FormatFloat(a.value, 'g', -1, 64) + " " + a.Symbol()
}

func (a Amount) Equal(other Amount) bool {
	return a.dim == other.dim && a.unit == other.unit &&
		math.Float64bits(a.value) == math.Float64bits(other.value)
}

// Convert converts a into the unit with ordinal to of the same dimension.
func (a Amount) Convert(to int) (Amount, error) {
	if a.unit == to {
		return a, nil
	}
	v, err := a.dim.Convert(a.value, a.unit, to)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.dim, v, to), nil
}

// ConvertTo converts a into a unit of its dimension given by symbol or name.
func (a Amount) ConvertTo(symbolOrName string) (Amount, error) {
	to, err := a.dim.Resolve(symbolOrName)
	if err != nil {
		return Amount{}, err
	}
	return a.Convert(to)
}

// Exact returns the unrounded value of a converted into unit to.
func (a Amount) Exact(to int) (*big.Rat, error) {
	return a.dim.ConvertExact(a.value, a.unit, to)
}
