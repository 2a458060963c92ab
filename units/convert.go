// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"math/big"

	"unitconv/expr"
)

// ConvertExact converts value from unit from into unit to without rounding.
// Unlike Convert, a NaN or infinite value is ErrNotFinite even when from
// and to are the same unit. A missing table entry is a defect in the
// dimension data and panics.
func (d *Dimension) ConvertExact(value float64, from, to int) (*big.Rat, error) {
	d.unit(from)
	d.unit(to)

	x := new(big.Rat).SetFloat64(value)
	if x == nil {
		return nil, ErrNotFinite
	}
	if from == to {
		return x, nil
	}

	e, err := d.Lookup(from, to)
	if err != nil {
		panic(err)
	}
	exact, err := expr.Eval(e, x)
	if err != nil {
		// every entry was evaluated when the table was built
		panic(err)
	}
	return exact, nil
}

// Convert converts value from unit from into unit to. The formula is
// evaluated exactly and rounded once to the nearest float64; a result that
// rounds to an infinity is reported as an *OverflowError.
func (d *Dimension) Convert(value float64, from, to int) (float64, error) {
	if from == to {
		d.unit(from)
		return value, nil
	}

	exact, err := d.ConvertExact(value, from, to)
	if err != nil {
		return 0, err
	}
	f, _ := exact.Float64()
	if math.IsInf(f, 0) {
		return 0, &OverflowError{
			Dimension: d.name,
			From:      d.units[from].Name,
			To:        d.units[to].Name,
			Exact:     exact,
		}
	}
	return f, nil
}
