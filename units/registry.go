// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"slices"
)

// Registry is a read-only set of dimensions. It is safe for concurrent use.
type Registry struct {
	dims   []*Dimension
	byName map[string]*Dimension
}

var defaultRegistry = mustRegistry(lengths, times, frequencies, powers, pressures, potentials, temperatures)

func mustRegistry(dims ...*Dimension) *Registry {
	r, err := NewRegistry(dims...)
	if err != nil {
		panic(err)
	}
	declared := catalog.names()
	bound := make([]string, 0, len(dims))
	for _, d := range dims {
		bound = append(bound, d.Name())
	}
	slices.Sort(bound)
	if !slices.Equal(declared, bound) {
		panic(fmt.Sprintf("units: dimensions.yaml declares %v but %v are bound", declared, bound))
	}
	return r
}

// Default returns the compiled-in dimensions.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry groups dimensions, e.g. ones loaded from a table store.
// Dimension names must be distinct ignoring case.
func NewRegistry(dims ...*Dimension) (*Registry, error) {
	r := &Registry{
		dims:   append([]*Dimension(nil), dims...),
		byName: make(map[string]*Dimension, len(dims)),
	}
	for _, d := range dims {
		key := normName(d.Name())
		if _, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("units: dimension %s registered twice", d.Name())
		}
		r.byName[key] = d
	}
	return r, nil
}

// Dimensions returns the dimensions in registration order.
func (r *Registry) Dimensions() []*Dimension {
	return append([]*Dimension(nil), r.dims...)
}

// Dimension finds a dimension by name, ignoring case and separators.
func (r *Registry) Dimension(name string) (*Dimension, bool) {
	d, ok := r.byName[normName(name)]
	return d, ok
}

// Resolve finds a unit by symbol or name in any dimension. The strongest
// kind of match wins; two dimensions matching equally well is an error.
func (r *Registry) Resolve(symbolOrName string) (*Dimension, int, error) {
	best, strength := []*Dimension(nil), noMatch
	ordinals := []int(nil)
	for _, d := range r.dims {
		i, s := d.match(symbolOrName)
		switch {
		case s < strength:
			best, ordinals, strength = []*Dimension{d}, []int{i}, s
		case s == strength && s != noMatch:
			best, ordinals = append(best, d), append(ordinals, i)
		}
	}

	switch len(best) {
	case 0:
		return nil, -1, &InvalidUnitNameError{Name: symbolOrName}
	case 1:
		return best[0], ordinals[0], nil
	}
	ambiguous := make([]string, len(best))
	for k, d := range best {
		ambiguous[k] = d.Name() + "." + d.UnitName(ordinals[k])
	}
	return nil, -1, &InvalidUnitNameError{Name: symbolOrName, Ambiguous: ambiguous}
}

// FromExternalUnitName builds an Amount from a value tagged with a
// dimension name and a unit symbol or name from another schema.
func (r *Registry) FromExternalUnitName(value float64, dimensionName, unitSymbolOrName string) (Amount, error) {
	d, ok := r.Dimension(dimensionName)
	if !ok {
		return Amount{}, fmt.Errorf("units: unknown dimension %q", dimensionName)
	}
	i, err := d.Resolve(unitSymbolOrName)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(d, value, i), nil
}

// SymbolOf returns the display symbol of a unit given by name or symbol.
func (r *Registry) SymbolOf(dimensionName, unit string) (string, error) {
	d, ok := r.Dimension(dimensionName)
	if !ok {
		return "", fmt.Errorf("units: unknown dimension %q", dimensionName)
	}
	i, err := d.Resolve(unit)
	if err != nil {
		return "", err
	}
	return d.Symbol(i), nil
}
