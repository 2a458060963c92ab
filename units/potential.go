// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// ElectricPotential is a unit of electric potential.
type ElectricPotential int

const (
	Yottavolt ElectricPotential = iota
	Zettavolt
	Exavolt
	Petavolt
	Teravolt
	Gigavolt
	Megavolt
	Kilovolt
	Hectovolt
	Decavolt
	Volt
	Decivolt
	Centivolt
	Millivolt
	Microvolt
	Nanovolt
	Picovolt
	Femtovolt
	Attovolt
	Zeptovolt
	Yoctovolt
)

var electricPotentialNames = [...]string{
	"YOTTAVOLT",
	"ZETTAVOLT",
	"EXAVOLT",
	"PETAVOLT",
	"TERAVOLT",
	"GIGAVOLT",
	"MEGAVOLT",
	"KILOVOLT",
	"HECTOVOLT",
	"DECAVOLT",
	"VOLT",
	"DECIVOLT",
	"CENTIVOLT",
	"MILLIVOLT",
	"MICROVOLT",
	"NANOVOLT",
	"PICOVOLT",
	"FEMTOVOLT",
	"ATTOVOLT",
	"ZEPTOVOLT",
	"YOCTOVOLT",
}

var potentials = catalog.bind("ElectricPotential", electricPotentialNames[:])

func (ElectricPotential) Dimension() *Dimension { return potentials }

func (u ElectricPotential) String() string { return potentials.UnitName(int(u)) }

func (u ElectricPotential) Symbol() string { return potentials.Symbol(int(u)) }
