// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package expr holds the exact conversion formulas used by the unit tables.
//
// An Expr is a small immutable tree over a single free variable. Trees are
// built with the builder functions (Int, Rat, Pow, Mul, Add, Sym), printed in
// the same builder-call notation by String, and read back by Parse.
package expr

import (
	"math/big"
)

// Expr is the interface all expression nodes implement.
type Expr interface {
	String() string
	exprTag()
}

// IntLit is an arbitrary precision integer literal.
type IntLit struct {
	n *big.Int
}

// RatLit is the exact ratio of two integers.
type RatLit struct {
	num *big.Int
	den *big.Int
}

// Power is Base raised to a non-negative integer Exp.
type Power struct {
	Base Expr
	Exp  Expr
}

// Product multiplies A by B.
type Product struct {
	A Expr
	B Expr
}

// Sum adds A and B.
type Sum struct {
	A Expr
	B Expr
}

// Variable is replaced by the input value during evaluation. The label is
// only carried for display.
type Variable struct {
	Label string
}

func (*IntLit) exprTag()   {}
func (*RatLit) exprTag()   {}
func (*Power) exprTag()    {}
func (*Product) exprTag()  {}
func (*Sum) exprTag()      {}
func (*Variable) exprTag() {}

// Int returns an integer literal.
func Int(n int64) *IntLit {
	return &IntLit{n: big.NewInt(n)}
}

// BigInt returns an integer literal holding a copy of n.
func BigInt(n *big.Int) *IntLit {
	return &IntLit{n: new(big.Int).Set(n)}
}

// Value returns a copy of the literal's integer.
func (l *IntLit) Value() *big.Int {
	return new(big.Int).Set(l.n)
}

// Rat returns the literal num/den. It panics if den is zero, like big.Rat.
func Rat(num, den int64) *RatLit {
	return BigRat(big.NewInt(num), big.NewInt(den))
}

// BigRat returns the literal num/den holding copies of its arguments.
func BigRat(num, den *big.Int) *RatLit {
	if den.Sign() == 0 {
		panic("expr: zero denominator")
	}
	return &RatLit{num: new(big.Int).Set(num), den: new(big.Int).Set(den)}
}

// Num returns a copy of the numerator as written.
func (l *RatLit) Num() *big.Int {
	return new(big.Int).Set(l.num)
}

// Denom returns a copy of the denominator as written.
func (l *RatLit) Denom() *big.Int {
	return new(big.Int).Set(l.den)
}

// Pow returns base**exp over integer literals, e.g. Pow(10, 24).
func Pow(base, exp int64) *Power {
	return &Power{Base: Int(base), Exp: Int(exp)}
}

func Mul(a, b Expr) *Product {
	return &Product{A: a, B: b}
}

func Add(a, b Expr) *Sum {
	return &Sum{A: a, B: b}
}

func Sym(label string) *Variable {
	return &Variable{Label: label}
}
