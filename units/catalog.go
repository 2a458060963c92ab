// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	_ "embed"
	"fmt"
	"math/big"
	"slices"

	"gopkg.in/yaml.v3"

	"unitconv/expr"
)

//go:embed dimensions.yaml
var dimensionsYAML []byte

type yamlDimension struct {
	Name        string           `yaml:"name"`
	SI          *yamlSI          `yaml:"si"`
	Units       []yamlUnit       `yaml:"units"`
	Conversions []yamlConversion `yaml:"conversions"`
}

type yamlSI struct {
	Unit   string `yaml:"unit"`
	Symbol string `yaml:"symbol"`
}

type yamlUnit struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Scale  string `yaml:"scale"`
}

type yamlConversion struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Expr string `yaml:"expr"`
}

var siPrefixes = []struct {
	name   string
	symbol string
	exp    int64
}{
	{"YOTTA", "Y", 24},
	{"ZETTA", "Z", 21},
	{"EXA", "E", 18},
	{"PETA", "P", 15},
	{"TERA", "T", 12},
	{"GIGA", "G", 9},
	{"MEGA", "M", 6},
	{"KILO", "k", 3},
	{"HECTO", "h", 2},
	{"DECA", "da", 1},
	{"", "", 0},
	{"DECI", "d", -1},
	{"CENTI", "c", -2},
	{"MILLI", "m", -3},
	{"MICRO", "µ", -6},
	{"NANO", "n", -9},
	{"PICO", "p", -12},
	{"FEMTO", "f", -15},
	{"ATTO", "a", -18},
	{"ZEPTO", "z", -21},
	{"YOCTO", "y", -24},
}

// dimensionDecl is a decoded dimension whose units are still in file order.
type dimensionDecl struct {
	name        string
	defs        []UnitDef
	scales      []*big.Rat // linear dimensions
	conversions []namedEntry
}

type namedEntry struct {
	from, to string
	expr     expr.Expr
}

type catalogDecls map[string]*dimensionDecl

var catalog = mustDecodeCatalog(dimensionsYAML)

func mustDecodeCatalog(data []byte) catalogDecls {
	c, err := decodeCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

func decodeCatalog(data []byte) (catalogDecls, error) {
	var dtos []yamlDimension
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("units: failed to decode dimensions: %w", err)
	}

	decls := make(catalogDecls, len(dtos))
	for _, dto := range dtos {
		decl, err := mapDimension(dto)
		if err != nil {
			return nil, err
		}
		if _, ok := decls[decl.name]; ok {
			return nil, &TableError{Dimension: decl.name, Msg: "declared twice"}
		}
		decls[decl.name] = decl
	}
	return decls, nil
}

func mapDimension(dto yamlDimension) (*dimensionDecl, error) {
	decl := &dimensionDecl{name: dto.Name}
	if dto.Name == "" {
		return nil, &TableError{Dimension: "?", Msg: "dimension has no name"}
	}
	linear := len(dto.Conversions) == 0

	if dto.SI != nil {
		if !linear {
			return nil, &TableError{Dimension: dto.Name, Msg: "si units need scales, not conversions"}
		}
		for _, p := range siPrefixes {
			decl.defs = append(decl.defs, UnitDef{Name: p.name + dto.SI.Unit, Symbol: p.symbol + dto.SI.Symbol})
			decl.scales = append(decl.scales, decimalScale(p.exp))
		}
	}

	for _, u := range dto.Units {
		decl.defs = append(decl.defs, UnitDef{Name: u.Name, Symbol: u.Symbol})
		if !linear {
			if u.Scale != "" {
				return nil, &TableError{Dimension: dto.Name, Msg: u.Name + " has a scale in an affine dimension"}
			}
			continue
		}
		if u.Scale == "" {
			return nil, &TableError{Dimension: dto.Name, Msg: u.Name + " has no scale"}
		}
		e, err := expr.Parse(u.Scale)
		if err != nil {
			return nil, &TableError{Dimension: dto.Name, Msg: fmt.Sprintf("scale of %s: %v", u.Name, err)}
		}
		scale, err := expr.Constant(e)
		if err != nil {
			return nil, &TableError{Dimension: dto.Name, Msg: fmt.Sprintf("scale of %s: %v", u.Name, err)}
		}
		decl.scales = append(decl.scales, scale)
	}

	for _, c := range dto.Conversions {
		e, err := expr.Parse(c.Expr)
		if err != nil {
			return nil, &TableError{Dimension: dto.Name, Msg: fmt.Sprintf("%s -> %s: %v", c.From, c.To, err)}
		}
		decl.conversions = append(decl.conversions, namedEntry{from: c.From, to: c.To, expr: e})
	}
	return decl, nil
}

func decimalScale(exp int64) *big.Rat {
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(abs), nil)
	if exp < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}

// build orders the units of decl as names lists them and materializes the
// table. Matching is by name so the file order never has to follow the Go
// enumeration.
func (decl *dimensionDecl) build(names []string) (*Dimension, error) {
	if len(names) != len(decl.defs) {
		return nil, &TableError{Dimension: decl.name,
			Msg: fmt.Sprintf("enumeration has %d units, data has %d", len(names), len(decl.defs))}
	}
	position := make(map[string]int, len(decl.defs))
	for i, def := range decl.defs {
		position[def.Name] = i
	}

	defs := make([]UnitDef, len(names))
	var scales []*big.Rat
	for i, name := range names {
		j, ok := position[name]
		if !ok {
			return nil, &TableError{Dimension: decl.name, Msg: "no data for " + name}
		}
		defs[i] = decl.defs[j]
		if decl.scales != nil {
			scales = append(scales, decl.scales[j])
		}
	}

	if scales != nil {
		return NewLinearDimension(decl.name, defs, scales)
	}

	ordinal := make(map[string]int, len(names))
	for i, name := range names {
		ordinal[name] = i
	}
	entries := make([]Entry, 0, len(decl.conversions))
	for _, c := range decl.conversions {
		from, ok := ordinal[c.from]
		if !ok {
			return nil, &TableError{Dimension: decl.name, Msg: "conversion from unknown unit " + c.from}
		}
		to, ok := ordinal[c.to]
		if !ok {
			return nil, &TableError{Dimension: decl.name, Msg: "conversion to unknown unit " + c.to}
		}
		entries = append(entries, Entry{From: from, To: to, Expr: c.expr})
	}
	return NewDimension(decl.name, defs, entries)
}

// bind builds a compiled-in dimension for a Go enumeration. Bad data is a
// build defect, so it panics during package initialization.
func (c catalogDecls) bind(name string, names []string) *Dimension {
	decl, ok := c[name]
	if !ok {
		panic(&TableError{Dimension: name, Msg: "not in dimensions.yaml"})
	}
	d, err := decl.build(names)
	if err != nil {
		panic(err)
	}
	return d
}

// names lists the dimensions declared in the data, sorted.
func (c catalogDecls) names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
