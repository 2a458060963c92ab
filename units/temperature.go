// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Temperature is a temperature scale. Conversions between scales are affine
// (a scale and an offset), so its table cannot be derived from a base unit
// and is listed pair by pair in dimensions.yaml.
type Temperature int

const (
	Celsius Temperature = iota
	Fahrenheit
	Kelvin
	Rankine
)

var temperatureNames = [...]string{
	"CELSIUS",
	"FAHRENHEIT",
	"KELVIN",
	"RANKINE",
}

var temperatures = catalog.bind("Temperature", temperatureNames[:])

func (Temperature) Dimension() *Dimension { return temperatures }

func (u Temperature) String() string { return temperatures.UnitName(int(u)) }

func (u Temperature) Symbol() string { return temperatures.Symbol(int(u)) }
