// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Length is a unit of length.
type Length int

const (
	Yottameter Length = iota
	Zettameter
	Exameter
	Petameter
	Terameter
	Gigameter
	Megameter
	Kilometer
	Hectometer
	Decameter
	Meter
	Decimeter
	Centimeter
	Millimeter
	Micrometer
	Nanometer
	Picometer
	Femtometer
	Attometer
	Zeptometer
	Yoctometer
	Angstrom
	AstronomicalUnit
	LightYear
	Parsec
	Thou
	Line
	Inch
	Foot
	Yard
	Mile
	Point
)

var lengthNames = [...]string{
	"YOTTAMETER",
	"ZETTAMETER",
	"EXAMETER",
	"PETAMETER",
	"TERAMETER",
	"GIGAMETER",
	"MEGAMETER",
	"KILOMETER",
	"HECTOMETER",
	"DECAMETER",
	"METER",
	"DECIMETER",
	"CENTIMETER",
	"MILLIMETER",
	"MICROMETER",
	"NANOMETER",
	"PICOMETER",
	"FEMTOMETER",
	"ATTOMETER",
	"ZEPTOMETER",
	"YOCTOMETER",
	"ANGSTROM",
	"ASTRONOMICALUNIT",
	"LIGHTYEAR",
	"PARSEC",
	"THOU",
	"LINE",
	"INCH",
	"FOOT",
	"YARD",
	"MILE",
	"POINT",
}

var lengths = catalog.bind("Length", lengthNames[:])

func (Length) Dimension() *Dimension { return lengths }

func (u Length) String() string { return lengths.UnitName(int(u)) }

func (u Length) Symbol() string { return lengths.Symbol(int(u)) }
