// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package units converts physical quantities between the units of one
// dimension. Conversions are evaluated with exact rational arithmetic and
// rounded to float64 once, at the end.
package units

import (
	"fmt"
	"math/big"

	"unitconv/expr"
)

// UnitDef names one unit of a dimension.
type UnitDef struct {
	Name   string // enumeration name, e.g. "METER"
	Symbol string // display symbol, e.g. "m"
}

// Entry is one cell of a conversion table: Expr converts a value in units
// From into units To. From and To index the dimension's units.
type Entry struct {
	From int
	To   int
	Expr expr.Expr
}

// Dimension is a physical quantity kind with a closed set of units and a
// fully materialized table of conversions between every ordered pair of
// distinct units. It is immutable once built.
type Dimension struct {
	name   string
	units  []UnitDef
	table  [][]expr.Expr
	affine bool

	bySymbol map[string]int
	byNorm   map[string]int
	byName   map[string]int
}

// NewDimension builds a dimension from an explicit all-pairs table.
// Every ordered pair of distinct units must appear exactly once, every entry
// must be affine in its variable, and each pair of opposite entries must be
// exact inverses.
func NewDimension(name string, defs []UnitDef, entries []Entry) (*Dimension, error) {
	d := &Dimension{
		name:     name,
		units:    append([]UnitDef(nil), defs...),
		bySymbol: make(map[string]int, len(defs)),
		byNorm:   make(map[string]int, len(defs)),
		byName:   make(map[string]int, len(defs)),
	}
	if name == "" {
		return nil, &TableError{Dimension: "?", Msg: "dimension has no name"}
	}
	if len(defs) == 0 {
		return nil, &TableError{Dimension: name, Msg: "no units"}
	}

	for i, def := range defs {
		if def.Name == "" || def.Symbol == "" {
			return nil, &TableError{Dimension: name, Msg: fmt.Sprintf("unit %d needs a name and a symbol", i)}
		}
		keys := []struct {
			index map[string]int
			key   string
			what  string
		}{
			{d.bySymbol, def.Symbol, "symbol"},
			{d.byNorm, normSymbol(def.Symbol), "normalized symbol"},
			{d.byName, normName(def.Name), "name"},
		}
		for _, k := range keys {
			if j, ok := k.index[k.key]; ok {
				return nil, &TableError{Dimension: name,
					Msg: fmt.Sprintf("%s %q shared by %s and %s", k.what, k.key, defs[j].Name, def.Name)}
			}
			k.index[k.key] = i
		}
	}

	n := len(defs)
	d.table = make([][]expr.Expr, n)
	for i := range d.table {
		d.table[i] = make([]expr.Expr, n)
	}
	type line struct{ slope, offset *big.Rat }
	lines := make(map[[2]int]line, len(entries))

	for _, e := range entries {
		if !d.valid(e.From) || !d.valid(e.To) {
			return nil, &TableError{Dimension: name, Msg: fmt.Sprintf("entry %d -> %d out of range", e.From, e.To)}
		}
		from, to := defs[e.From].Name, defs[e.To].Name
		if e.From == e.To {
			return nil, &TableError{Dimension: name, Msg: "identity entry for " + from}
		}
		if d.table[e.From][e.To] != nil {
			return nil, &TableError{Dimension: name, Msg: fmt.Sprintf("duplicate entry %s -> %s", from, to)}
		}
		if e.Expr == nil {
			return nil, &TableError{Dimension: name, Msg: fmt.Sprintf("empty entry %s -> %s", from, to)}
		}
		slope, offset, err := expr.Affine(e.Expr)
		if err != nil {
			return nil, &TableError{Dimension: name, Msg: fmt.Sprintf("%s -> %s: %v", from, to, err)}
		}
		if offset.Sign() != 0 {
			d.affine = true
		}
		d.table[e.From][e.To] = e.Expr
		lines[[2]int{e.From, e.To}] = line{slope, offset}
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a != b && d.table[a][b] == nil {
				return nil, &MissingConversionError{Dimension: name, From: defs[a].Name, To: defs[b].Name}
			}
		}
	}

	// f_ba(f_ab(x)) must be exactly x
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			ab, ba := lines[[2]int{a, b}], lines[[2]int{b, a}]
			slope := new(big.Rat).Mul(ab.slope, ba.slope)
			offset := new(big.Rat).Mul(ba.slope, ab.offset)
			offset.Add(offset, ba.offset)
			if slope.Cmp(big.NewRat(1, 1)) != 0 || offset.Sign() != 0 {
				return nil, &TableError{Dimension: name,
					Msg: fmt.Sprintf("%s -> %s and %s -> %s are not inverses", defs[a].Name, defs[b].Name, defs[b].Name, defs[a].Name)}
			}
		}
	}

	return d, nil
}

// NewLinearDimension materializes the all-pairs table of a dimension whose
// units are pure scalings of a shared base: scales[i] is the size of unit i
// in base units. Each entry holds the exact ratio between two units, so no
// conversion ever passes through the base unit.
func NewLinearDimension(name string, defs []UnitDef, scales []*big.Rat) (*Dimension, error) {
	if len(scales) != len(defs) {
		return nil, &TableError{Dimension: name, Msg: fmt.Sprintf("%d units but %d scales", len(defs), len(scales))}
	}
	for i, s := range scales {
		if s == nil || s.Sign() <= 0 {
			return nil, &TableError{Dimension: name, Msg: "scale of " + defs[i].Name + " must be positive"}
		}
	}

	entries := make([]Entry, 0, len(defs)*(len(defs)-1))
	for a := range defs {
		for b := range defs {
			if a == b {
				continue
			}
			ratio := new(big.Rat).Quo(scales[a], scales[b])
			entries = append(entries, Entry{From: a, To: b, Expr: scaleExpr(ratio, defs[a].Symbol)})
		}
	}
	return NewDimension(name, defs, entries)
}

// scaleExpr writes ratio*x in the most readable exact form.
func scaleExpr(ratio *big.Rat, label string) expr.Expr {
	x := expr.Sym(label)
	num, den := ratio.Num(), ratio.Denom()
	if ratio.IsInt() {
		if k, ok := powerOfTen(num); ok && k > 0 {
			return expr.Mul(expr.Pow(10, int64(k)), x)
		}
		return expr.Mul(expr.BigInt(num), x)
	}
	return expr.Mul(expr.BigRat(num, den), x)
}

// powerOfTen reports whether n == 10**k.
func powerOfTen(n *big.Int) (int, bool) {
	if n.Sign() <= 0 {
		return 0, false
	}
	ten := big.NewInt(10)
	q, r := new(big.Int).Set(n), new(big.Int)
	k := 0
	for q.Cmp(ten) >= 0 {
		q.QuoRem(q, ten, r)
		if r.Sign() != 0 {
			return 0, false
		}
		k++
	}
	return k, q.Cmp(big.NewInt(1)) == 0
}

func (d *Dimension) Name() string { return d.name }

// Len returns the number of units.
func (d *Dimension) Len() int { return len(d.units) }

// Affine reports whether any conversion needs an offset, as temperature
// scales do.
func (d *Dimension) Affine() bool { return d.affine }

func (d *Dimension) valid(i int) bool {
	return i >= 0 && i < len(d.units)
}

func (d *Dimension) unit(i int) UnitDef {
	if !d.valid(i) {
		panic(fmt.Sprintf("units: %s has no unit %d", d.name, i))
	}
	return d.units[i]
}

// UnitName returns the enumeration name of unit i. It panics if i is out of
// range.
func (d *Dimension) UnitName(i int) string {
	return d.unit(i).Name
}

// Symbol returns the display symbol of unit i. It panics if i is out of
// range.
func (d *Dimension) Symbol(i int) string {
	return d.unit(i).Symbol
}

// Units returns a copy of the unit definitions in ordinal order.
func (d *Dimension) Units() []UnitDef {
	return append([]UnitDef(nil), d.units...)
}

// Index returns the ordinal of the unit with the given enumeration name.
func (d *Dimension) Index(name string) (int, bool) {
	i, ok := d.byName[normName(name)]
	return i, ok
}

// Lookup returns the expression converting from into to. Identity pairs have
// no entry: callers short-circuit them.
func (d *Dimension) Lookup(from, to int) (expr.Expr, error) {
	if from == to || !d.valid(from) || !d.valid(to) || d.table[from][to] == nil {
		return nil, &MissingConversionError{Dimension: d.name, From: d.label(from), To: d.label(to)}
	}
	return d.table[from][to], nil
}

func (d *Dimension) label(i int) string {
	if d.valid(i) {
		return d.units[i].Name
	}
	return fmt.Sprintf("#%d", i)
}

// Entries returns every table entry, ordered by source then target.
func (d *Dimension) Entries() []Entry {
	entries := make([]Entry, 0, len(d.units)*(len(d.units)-1))
	for a, row := range d.table {
		for b, e := range row {
			if e != nil {
				entries = append(entries, Entry{From: a, To: b, Expr: e})
			}
		}
	}
	return entries
}

func (d *Dimension) String() string { return d.name }
