// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Time is a unit of elapsed time.
type Time int

const (
	Yottasecond Time = iota
	Zettasecond
	Exasecond
	Petasecond
	Terasecond
	Gigasecond
	Megasecond
	Kilosecond
	Hectosecond
	Decasecond
	Second
	Decisecond
	Centisecond
	Millisecond
	Microsecond
	Nanosecond
	Picosecond
	Femtosecond
	Attosecond
	Zeptosecond
	Yoctosecond
	Minute
	Hour
	Day
)

var timeNames = [...]string{
	"YOTTASECOND",
	"ZETTASECOND",
	"EXASECOND",
	"PETASECOND",
	"TERASECOND",
	"GIGASECOND",
	"MEGASECOND",
	"KILOSECOND",
	"HECTOSECOND",
	"DECASECOND",
	"SECOND",
	"DECISECOND",
	"CENTISECOND",
	"MILLISECOND",
	"MICROSECOND",
	"NANOSECOND",
	"PICOSECOND",
	"FEMTOSECOND",
	"ATTOSECOND",
	"ZEPTOSECOND",
	"YOCTOSECOND",
	"MINUTE",
	"HOUR",
	"DAY",
}

var times = catalog.bind("Time", timeNames[:])

func (Time) Dimension() *Dimension { return times }

func (u Time) String() string { return times.UnitName(int(u)) }

func (u Time) Symbol() string { return times.Symbol(int(u)) }
