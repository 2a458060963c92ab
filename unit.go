// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"

	"unitconv/enumerable"
	"unitconv/units"
)

type Aliases map[string]string

func (a Aliases) resolve(word string) string {
	if alias, ok := a[word]; ok {
		return alias
	}
	return word
}

// ASCII spellings of symbols that are awkward to type
var UNITALIAS = Aliases{
	"C":  "°C",
	"F":  "°F",
	"R":  "°R",
	"um": "µm",
	"us": "µs",
	"uW": "µW",
	"uV": "µV",
	"hr": "h",
}

// applyUnit tags an untagged value with the unit named by word, searching
// every dimension of the registry.
func applyUnit(registry *units.Registry, value Value, word string) Value {
	d, unit, err := registry.Resolve(UNITALIAS.resolve(word))
	if err != nil {
		die("Unrecognized argument '%s': %v, exiting", word, err)
	}
	return tagged(units.NewAmount(d, value.number, unit))
}

// resolveTarget finds the unit named by word within the dimension of a
// tagged value.
func resolveTarget(value Value, word string) int {
	to, err := value.dim.Resolve(UNITALIAS.resolve(word))
	if err != nil {
		die("Cannot convert %s to '%s': %v, exiting", value, word, err)
	}
	return to
}

func listUnits(registry *units.Registry) {
	dims := registry.Dimensions()
	for _, d := range dims {
		fmt.Printf("%s\n", d.Name())
		lines := enumerable.Map(d.Units(), func(u units.UnitDef) string {
			return fmt.Sprintf("  %-18s %s", strings.ToLower(u.Name), u.Symbol)
		})
		fmt.Println(strings.Join(lines, "\n"))
	}

	affine := enumerable.Filter(dims, (*units.Dimension).Affine)
	if len(affine) > 0 {
		names := enumerable.Map(affine, (*units.Dimension).Name)
		fmt.Printf("\nConversions of %s include an offset\n", strings.Join(names, ", "))
	}
}
