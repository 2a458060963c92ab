// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"strconv"
)

// Unit is the constraint satisfied by every unit enumeration: an integer
// ordinal into the units of its Dimension.
type Unit interface {
	~int
	Dimension() *Dimension
}

// Measurement is anything carrying a value and a unit symbol, such as a
// Quantity of another enumeration or an Amount.
type Measurement interface {
	Value() float64
	Symbol() string
}

// Quantity is an immutable value in one unit of a dimension.
type Quantity[U Unit] struct {
	value float64
	unit  U
}

func New[U Unit](value float64, unit U) Quantity[U] {
	unit.Dimension().unit(int(unit))
	return Quantity[U]{value: value, unit: unit}
}

func (q Quantity[U]) Value() float64 { return q.value }

func (q Quantity[U]) Unit() U { return q.unit }

func (q Quantity[U]) Symbol() string {
	return q.unit.Dimension().Symbol(int(q.unit))
}

// String formats the shortest exact decimal of the value and the symbol,
// e.g. "1000 mm".
func (q Quantity[U]) String() string {
	return strconv.FormatFloat(q.value, 'g', -1, 64) + " " + q.Symbol()
}

// Equal compares unit and the bits of the value: 1000 mm is not 1 m.
func (q Quantity[U]) Equal(other Quantity[U]) bool {
	return q.unit == other.unit && math.Float64bits(q.value) == math.Float64bits(other.value)
}

// Copy returns an independent quantity with the same value and unit.
func (q Quantity[U]) Copy() Quantity[U] {
	return New(q.value, q.unit)
}

// In converts q into unit to.
func (q Quantity[U]) In(to U) (Quantity[U], error) {
	return Convert(q, to)
}

// Convert converts q into unit to. Converting to the same unit returns q
// untouched; otherwise the result is rounded once from the exact value, and
// an *OverflowError is returned when that rounds to an infinity.
func Convert[U Unit](q Quantity[U], to U) (Quantity[U], error) {
	if q.unit == to {
		return q, nil
	}
	v, err := to.Dimension().Convert(q.value, int(q.unit), int(to))
	if err != nil {
		return Quantity[U]{}, err
	}
	return New(v, to), nil
}

// FromExternal builds a quantity from a unit symbol or name used by another
// schema. It fails with an *InvalidUnitNameError when nothing matches.
func FromExternal[U Unit](value float64, symbolOrName string) (Quantity[U], error) {
	var zero U
	i, err := zero.Dimension().Resolve(symbolOrName)
	if err != nil {
		return Quantity[U]{}, err
	}
	return New(value, U(i)), nil
}

// Adapt re-expresses m in the enumeration U through its symbol. Ordinals of
// two enumerations of one dimension are never compared.
func Adapt[U Unit](m Measurement) (Quantity[U], error) {
	return FromExternal[U](m.Value(), m.Symbol())
}
