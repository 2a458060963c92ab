// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Pressure is a unit of pressure. Besides the SI pascal family it has the
// bar family and the customary atmosphere, psi, torr and mmHg.
type Pressure int

const (
	Yottapascal Pressure = iota
	Zettapascal
	Exapascal
	Petapascal
	Terapascal
	Gigapascal
	Megapascal
	Kilopascal
	Hectopascal
	Decapascal
	Pascal
	Decipascal
	Centipascal
	Millipascal
	Micropascal
	Nanopascal
	Picopascal
	Femtopascal
	Attopascal
	Zeptopascal
	Yoctopascal
	Bar
	Megabar
	Kilobar
	Decibar
	Centibar
	Millibar
	Atmosphere
	PSI
	Torr
	Millitorr
	MmHg
)

var pressureNames = [...]string{
	"YOTTAPASCAL",
	"ZETTAPASCAL",
	"EXAPASCAL",
	"PETAPASCAL",
	"TERAPASCAL",
	"GIGAPASCAL",
	"MEGAPASCAL",
	"KILOPASCAL",
	"HECTOPASCAL",
	"DECAPASCAL",
	"PASCAL",
	"DECIPASCAL",
	"CENTIPASCAL",
	"MILLIPASCAL",
	"MICROPASCAL",
	"NANOPASCAL",
	"PICOPASCAL",
	"FEMTOPASCAL",
	"ATTOPASCAL",
	"ZEPTOPASCAL",
	"YOCTOPASCAL",
	"BAR",
	"MEGABAR",
	"KILOBAR",
	"DECIBAR",
	"CENTIBAR",
	"MILLIBAR",
	"ATMOSPHERE",
	"PSI",
	"TORR",
	"MILLITORR",
	"MMHG",
}

var pressures = catalog.bind("Pressure", pressureNames[:])

func (Pressure) Dimension() *Dimension { return pressures }

func (u Pressure) String() string { return pressures.UnitName(int(u)) }

func (u Pressure) Symbol() string { return pressures.Symbol(int(u)) }
