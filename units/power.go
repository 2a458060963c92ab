// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Power is a unit of power.
type Power int

const (
	Yottawatt Power = iota
	Zettawatt
	Exawatt
	Petawatt
	Terawatt
	Gigawatt
	Megawatt
	Kilowatt
	Hectowatt
	Decawatt
	Watt
	Deciwatt
	Centiwatt
	Milliwatt
	Microwatt
	Nanowatt
	Picowatt
	Femtowatt
	Attowatt
	Zeptowatt
	Yoctowatt
)

var powerNames = [...]string{
	"YOTTAWATT",
	"ZETTAWATT",
	"EXAWATT",
	"PETAWATT",
	"TERAWATT",
	"GIGAWATT",
	"MEGAWATT",
	"KILOWATT",
	"HECTOWATT",
	"DECAWATT",
	"WATT",
	"DECIWATT",
	"CENTIWATT",
	"MILLIWATT",
	"MICROWATT",
	"NANOWATT",
	"PICOWATT",
	"FEMTOWATT",
	"ATTOWATT",
	"ZEPTOWATT",
	"YOCTOWATT",
}

var powers = catalog.bind("Power", powerNames[:])

func (Power) Dimension() *Dimension { return powers }

func (u Power) String() string { return powers.UnitName(int(u)) }

func (u Power) Symbol() string { return powers.Symbol(int(u)) }
