// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

type Frequency int

const (
	Yottahertz Frequency = iota
	Zettahertz
	Exahertz
	Petahertz
	Terahertz
	Gigahertz
	Megahertz
	Kilohertz
	Hectohertz
	Decahertz
	Hertz
	Decihertz
	Centihertz
	Millihertz
	Microhertz
	Nanohertz
	Picohertz
	Femtohertz
	Attohertz
	Zeptohertz
	Yoctohertz
)

var frequencyNames = [...]string{
	"YOTTAHERTZ",
	"ZETTAHERTZ",
	"EXAHERTZ",
	"PETAHERTZ",
	"TERAHERTZ",
	"GIGAHERTZ",
	"MEGAHERTZ",
	"KILOHERTZ",
	"HECTOHERTZ",
	"DECAHERTZ",
	"HERTZ",
	"DECIHERTZ",
	"CENTIHERTZ",
	"MILLIHERTZ",
	"MICROHERTZ",
	"NANOHERTZ",
	"PICOHERTZ",
	"FEMTOHERTZ",
	"ATTOHERTZ",
	"ZEPTOHERTZ",
	"YOCTOHERTZ",
}

var frequencies = catalog.bind("Frequency", frequencyNames[:])

func (Frequency) Dimension() *Dimension { return frequencies }

func (u Frequency) String() string { return frequencies.UnitName(int(u)) }

func (u Frequency) Symbol() string { return frequencies.Symbol(int(u)) }
