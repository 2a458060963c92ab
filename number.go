// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// parseNumber accepts decimals, exponents and rationals such as 1/3.
// Out of range decimals become infinities, which only identity conversions
// accept.
func parseNumber(input string) (float64, bool) {
	if input == "" {
		return 0, false
	}
	switch c := input[0]; {
	case c >= '0' && c <= '9', c == '.', c == '-', c == '+':
	default:
		return 0, false
	}

	clean := strings.ReplaceAll(input, "_", "")
	switch strings.ToLower(strings.TrimLeft(clean, "+-")) {
	case "inf", "infinity", "nan":
		return 0, false
	}

	if strings.Contains(clean, "/") {
		r, ok := new(big.Rat).SetString(clean)
		if !ok {
			return 0, false
		}
		f, _ := r.Float64()
		return f, true
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// formatNumber shows integers without a fraction, other values with
// options.precision digits and trailing zeros removed, and very large or
// small magnitudes in scientific notation.
func formatNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case math.IsInf(v, 0) || math.IsNaN(v):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case abs >= 1e15 || abs < 1e-4 && v != 0:
		s := strconv.FormatFloat(v, 'e', options.precision, 64)
		mantissa, exponent, _ := strings.Cut(s, "e")
		return trimZeros(mantissa) + "e" + exponent
	}

	var s string
	if v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = trimZeros(strconv.FormatFloat(v, 'f', options.precision, 64))
	}
	if options.group {
		s = group(s)
	}
	return s
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

// group inserts ',' every three digits of the integer part.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := splitNumber(s)

	var sb strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sign + sb.String() + fracPart
}

// splitNumber splits a number string into integer and fractional parts
// Returns (integerPart, fractionalPart) where fractionalPart includes the decimal point
func splitNumber(str string) (string, string) {
	if intPart, fracPart, ok := strings.Cut(str, "."); ok {
		return intPart, "." + fracPart
	}
	// Integer or exponent without a fraction
	if intPart, exponent, ok := strings.Cut(str, "e"); ok {
		return intPart, "e" + exponent
	}
	return str, ""
}
