// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expr

import (
	"fmt"
	"math/big"
)

// maxExponent bounds Power so a malformed table cannot stall evaluation.
const maxExponent = 1 << 12

// EvalError reports a tree that cannot be evaluated.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "expr: " + e.Msg
}

// Eval reduces e exactly, substituting x for every Variable.
// x is never modified and the result is always a fresh value.
func Eval(e Expr, x *big.Rat) (*big.Rat, error) {
	switch n := e.(type) {
	case nil:
		return nil, &EvalError{Msg: "empty expression"}

	case *IntLit:
		return new(big.Rat).SetInt(n.n), nil

	case *RatLit:
		return new(big.Rat).SetFrac(n.num, n.den), nil

	case *Variable:
		if x == nil {
			return nil, &EvalError{Msg: fmt.Sprintf("no value for %q", n.Label)}
		}
		return new(big.Rat).Set(x), nil

	case *Power:
		return evalPower(n, x)

	case *Product:
		a, err := Eval(n.A, x)
		if err != nil {
			return nil, err
		}
		b, err := Eval(n.B, x)
		if err != nil {
			return nil, err
		}
		return a.Mul(a, b), nil

	case *Sum:
		a, err := Eval(n.A, x)
		if err != nil {
			return nil, err
		}
		b, err := Eval(n.B, x)
		if err != nil {
			return nil, err
		}
		return a.Add(a, b), nil

	default:
		return nil, &EvalError{Msg: fmt.Sprintf("unknown node %T", e)}
	}
}

func evalPower(n *Power, x *big.Rat) (*big.Rat, error) {
	base, err := Eval(n.Base, x)
	if err != nil {
		return nil, err
	}
	exp, err := Eval(n.Exp, x)
	if err != nil {
		return nil, err
	}
	if !base.IsInt() {
		return nil, &EvalError{Msg: "power base must be an integer, got " + base.RatString()}
	}
	if !exp.IsInt() || exp.Sign() < 0 {
		return nil, &EvalError{Msg: "power exponent must be a non-negative integer, got " + exp.RatString()}
	}
	if exp.Num().Cmp(big.NewInt(maxExponent)) > 0 {
		return nil, &EvalError{Msg: "power exponent too large: " + exp.RatString()}
	}
	r := new(big.Int).Exp(base.Num(), exp.Num(), nil)
	return new(big.Rat).SetInt(r), nil
}

// Constant evaluates an expression that has no Variable, such as a scale
// factor.
func Constant(e Expr) (*big.Rat, error) {
	return Eval(e, nil)
}

// Affine decomposes e into slope*x + offset. Table entries are at most
// affine in x; anything else (x*x, a power of x) is rejected.
func Affine(e Expr) (slope, offset *big.Rat, err error) {
	offset, err = Eval(e, new(big.Rat))
	if err != nil {
		return nil, nil, err
	}
	one, err := Eval(e, big.NewRat(1, 1))
	if err != nil {
		return nil, nil, err
	}
	slope = new(big.Rat).Sub(one, offset)

	// a third point rules out curvature
	probe := big.NewRat(-7, 3)
	got, err := Eval(e, probe)
	if err != nil {
		return nil, nil, err
	}
	want := new(big.Rat).Mul(slope, probe)
	want.Add(want, offset)
	if got.Cmp(want) != 0 {
		return nil, nil, &EvalError{Msg: "not affine: " + e.String()}
	}
	return slope, offset, nil
}
