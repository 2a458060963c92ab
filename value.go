// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"unitconv/units"
)

// Value is a stack entry: a number, tagged with a unit once one is applied.
type Value struct {
	number float64
	dim    *units.Dimension // nil when untagged
	unit   int
}

func tagged(a units.Amount) Value {
	return Value{number: a.Value(), dim: a.Dimension(), unit: a.Unit()}
}

func (v Value) isTagged() bool {
	return v.dim != nil
}

func (v Value) amount() units.Amount {
	return units.NewAmount(v.dim, v.number, v.unit)
}

func (v Value) symbol() string {
	if !v.isTagged() {
		return ""
	}
	return v.dim.Symbol(v.unit)
}

func (v Value) String() string {
	if !v.isTagged() {
		return formatNumber(v.number)
	}
	return formatNumber(v.number) + " " + v.symbol()
}

func (v Value) unaryOp(op string) Value {
	switch op {
	case "chs":
		v.number = -v.number
	case "n":
		v.dim, v.unit = nil, 0
	}
	return v
}
