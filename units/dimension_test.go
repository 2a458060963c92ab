// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitconv/expr"
)

func TestTableCompleteness(t *testing.T) {
	for _, d := range Default().Dimensions() {
		t.Run(d.Name(), func(t *testing.T) {
			n := d.Len()
			seen := make(map[[2]int]bool)
			for _, e := range d.Entries() {
				key := [2]int{e.From, e.To}
				assert.False(t, seen[key], "duplicate %v", key)
				assert.NotEqual(t, e.From, e.To)
				seen[key] = true
			}
			assert.Len(t, seen, n*(n-1))

			for a := 0; a < n; a++ {
				_, err := d.Lookup(a, a)
				var missing *MissingConversionError
				assert.ErrorAs(t, err, &missing)
				for b := 0; b < n; b++ {
					if a != b {
						e, err := d.Lookup(a, b)
						require.NoError(t, err)
						assert.NotNil(t, e)
					}
				}
			}
		})
	}
}

func TestEnumerationSizes(t *testing.T) {
	assert.Equal(t, len(lengthNames), Length(0).Dimension().Len())
	assert.Equal(t, len(timeNames), Time(0).Dimension().Len())
	assert.Equal(t, len(frequencyNames), Frequency(0).Dimension().Len())
	assert.Equal(t, len(powerNames), Power(0).Dimension().Len())
	assert.Equal(t, len(pressureNames), Pressure(0).Dimension().Len())
	assert.Equal(t, len(electricPotentialNames), ElectricPotential(0).Dimension().Len())
	assert.Equal(t, 4, Temperature(0).Dimension().Len())
	assert.Len(t, Default().Dimensions(), 7)
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Meter.Symbol(), "m"},
		{Micrometer.Symbol(), "\u00b5m"},
		{Decameter.Symbol(), "dam"},
		{Angstrom.Symbol(), "Å"},
		{Hour.Symbol(), "h"},
		{Kilohertz.Symbol(), "kHz"},
		{Megawatt.Symbol(), "MW"},
		{MmHg.Symbol(), "mm Hg"},
		{Millivolt.Symbol(), "mV"},
		{Fahrenheit.Symbol(), "°F"},
		{Kelvin.Symbol(), "K"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}

	for _, d := range Default().Dimensions() {
		for u := 0; u < d.Len(); u++ {
			s := d.Symbol(u)
			assert.NotEmpty(t, s)
			assert.Equal(t, s, d.Symbol(u))
		}
	}
	assert.Panics(t, func() { Length(-1).Symbol() })
	assert.Panics(t, func() { Temperature(4).Symbol() })
}

func TestEnumerationNames(t *testing.T) {
	assert.Equal(t, "METER", Meter.String())
	assert.Equal(t, "YOCTOSECOND", Yoctosecond.String())
	assert.Equal(t, "DECAPASCAL", Decapascal.String())
	assert.Equal(t, "PSI", PSI.String())
	assert.Equal(t, "RANKINE", Rankine.String())
}

func TestLinearEntries(t *testing.T) {
	e, err := lengths.Lookup(int(Yoctometer), int(Yottameter))
	require.NoError(t, err)
	assert.Equal(t, `Mul(Rat(1, 1000000000000000000000000000000000000000000000000), Sym("ym"))`, e.String())

	e, err = lengths.Lookup(int(Yottameter), int(Yoctometer))
	require.NoError(t, err)
	assert.Equal(t, `Mul(Pow(10, 48), Sym("Ym"))`, e.String())

	e, err = lengths.Lookup(int(Foot), int(Inch))
	require.NoError(t, err)
	assert.Equal(t, `Mul(Int(12), Sym("ft"))`, e.String())

	e, err = lengths.Lookup(int(Kilometer), int(Mile))
	require.NoError(t, err)
	assert.Equal(t, `Mul(Rat(15625, 25146), Sym("km"))`, e.String())
}

func TestPowerOfTen(t *testing.T) {
	tests := []struct {
		n  int64
		k  int
		ok bool
	}{
		{1, 0, true},
		{10, 1, true},
		{1000, 3, true},
		{0, 0, false},
		{-10, 0, false},
		{20, 0, false},
		{1001, 0, false},
	}
	for _, tt := range tests {
		k, ok := powerOfTen(big.NewInt(tt.n))
		assert.Equal(t, tt.ok, ok, "%d", tt.n)
		if tt.ok {
			assert.Equal(t, tt.k, k, "%d", tt.n)
		}
	}
}

func twoUnits() []UnitDef {
	return []UnitDef{{Name: "SMALL", Symbol: "s"}, {Name: "LARGE", Symbol: "L"}}
}

func TestNewDimension(t *testing.T) {
	d, err := NewDimension("Test", twoUnits(), []Entry{
		{From: 0, To: 1, Expr: expr.Add(expr.Mul(expr.Rat(1, 2), expr.Sym("s")), expr.Int(3))},
		{From: 1, To: 0, Expr: expr.Add(expr.Mul(expr.Int(2), expr.Sym("L")), expr.Int(-6))},
	})
	require.NoError(t, err)
	assert.True(t, d.Affine())

	v, err := d.Convert(10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

func TestNewDimensionErrors(t *testing.T) {
	x := expr.Sym("x")
	double := expr.Mul(expr.Int(2), x)
	half := expr.Mul(expr.Rat(1, 2), x)

	tests := []struct {
		name    string
		dim     string
		defs    []UnitDef
		entries []Entry
		missing bool
	}{
		{"no name", "", twoUnits(), nil, false},
		{"no units", "Test", nil, nil, false},
		{"empty symbol", "Test", []UnitDef{{Name: "A"}}, nil, false},
		{"duplicate symbol", "Test", []UnitDef{{"A", "a"}, {"B", "a"}}, nil, false},
		{"duplicate folded name", "Test", []UnitDef{{"A_B", "a"}, {"ab", "b"}}, nil, false},
		{"duplicate normalized symbol", "Test", []UnitDef{{"A", "\u00b5"}, {"B", "\u03bc"}}, nil, false},
		{"missing entry", "Test", twoUnits(), []Entry{{0, 1, half}}, true},
		{"duplicate entry", "Test", twoUnits(), []Entry{{0, 1, half}, {0, 1, half}, {1, 0, double}}, false},
		{"identity entry", "Test", twoUnits(), []Entry{{0, 0, x}, {0, 1, half}, {1, 0, double}}, false},
		{"out of range", "Test", twoUnits(), []Entry{{0, 2, half}}, false},
		{"empty entry", "Test", twoUnits(), []Entry{{0, 1, nil}, {1, 0, double}}, false},
		{"not affine", "Test", twoUnits(), []Entry{{0, 1, expr.Mul(x, x)}, {1, 0, double}}, false},
		{"not inverse", "Test", twoUnits(), []Entry{{0, 1, half}, {1, 0, half}}, false},
		{"offset not inverse", "Test", twoUnits(), []Entry{{0, 1, expr.Add(half, expr.Int(1))}, {1, 0, double}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDimension(tt.dim, tt.defs, tt.entries)
			require.Error(t, err)
			if tt.missing {
				var missing *MissingConversionError
				assert.ErrorAs(t, err, &missing)
			} else {
				var table *TableError
				assert.ErrorAs(t, err, &table)
			}
		})
	}
}

func TestNewLinearDimensionErrors(t *testing.T) {
	_, err := NewLinearDimension("Test", twoUnits(), []*big.Rat{big.NewRat(1, 1)})
	assert.Error(t, err)

	_, err = NewLinearDimension("Test", twoUnits(), []*big.Rat{big.NewRat(1, 1), big.NewRat(0, 1)})
	assert.Error(t, err)

	_, err = NewLinearDimension("Test", twoUnits(), []*big.Rat{big.NewRat(1, 1), big.NewRat(-3, 1)})
	assert.Error(t, err)

	d, err := NewLinearDimension("Test", twoUnits(), []*big.Rat{big.NewRat(1, 3), big.NewRat(7, 1)})
	require.NoError(t, err)
	assert.False(t, d.Affine())
	v, err := d.Convert(21, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "- {name: [}"},
		{"no name", "- {si: {unit: METER, symbol: m}}"},
		{"twice", "- {name: A, units: [{name: X, symbol: x, scale: 'Int(1)'}]}\n- {name: A, units: [{name: Y, symbol: y, scale: 'Int(1)'}]}"},
		{"no scale", "- {name: A, units: [{name: X, symbol: x}]}"},
		{"bad scale", "- {name: A, units: [{name: X, symbol: x, scale: 'Int('}]}"},
		{"variable scale", `- {name: A, units: [{name: X, symbol: x, scale: 'Sym("x")'}]}`},
		{"scale in affine", "- {name: A, units: [{name: X, symbol: x, scale: 'Int(1)'}], conversions: [{from: X, to: X, expr: 'Int(1)'}]}"},
		{"si in affine", "- {name: A, si: {unit: M, symbol: m}, conversions: [{from: M, to: M, expr: 'Int(1)'}]}"},
		{"bad conversion", "- {name: A, units: [{name: X, symbol: x}], conversions: [{from: X, to: X, expr: 'Mul('}]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCatalogBuild(t *testing.T) {
	decls, err := decodeCatalog([]byte(`
- name: Rope
  units:
    - {name: FATHOM, symbol: ftm, scale: "Int(6)"}
    - {name: FOOT, symbol: ft, scale: "Int(1)"}
- name: Scale
  units:
    - {name: LOW, symbol: lo}
    - {name: HIGH, symbol: hi}
  conversions:
    - {from: LOW, to: HIGH, expr: 'Add(Sym("lo"), Int(10))'}
    - {from: HIGH, to: LOW, expr: 'Add(Sym("hi"), Int(-10))'}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rope", "Scale"}, decls.names())

	// enumeration order differs from file order
	rope, err := decls["Rope"].build([]string{"FOOT", "FATHOM"})
	require.NoError(t, err)
	assert.Equal(t, "ft", rope.Symbol(0))
	v, err := rope.Convert(12, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	scale, err := decls["Scale"].build([]string{"HIGH", "LOW"})
	require.NoError(t, err)
	v, err = scale.Convert(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 11.0, v)

	_, err = decls["Rope"].build([]string{"FOOT"})
	assert.Error(t, err)
	_, err = decls["Rope"].build([]string{"FOOT", "CUBIT"})
	assert.Error(t, err)
	_, err = decls["Scale"].build([]string{"HIGH", "MIDDLE"})
	assert.Error(t, err)

	assert.Panics(t, func() { decls.bind("Missing", nil) })
	assert.Panics(t, func() { decls.bind("Rope", []string{"FOOT"}) })
}
