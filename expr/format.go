// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expr

import (
	"strconv"
)

func (l *IntLit) String() string {
	return "Int(" + l.n.String() + ")"
}

func (l *RatLit) String() string {
	return "Rat(" + l.num.String() + ", " + l.den.String() + ")"
}

// String prints integer literal operands bare, e.g. Pow(10, 24).
func (p *Power) String() string {
	return "Pow(" + operand(p.Base) + ", " + operand(p.Exp) + ")"
}

func (p *Product) String() string {
	return "Mul(" + p.A.String() + ", " + p.B.String() + ")"
}

func (s *Sum) String() string {
	return "Add(" + s.A.String() + ", " + s.B.String() + ")"
}

func (v *Variable) String() string {
	return "Sym(" + strconv.Quote(v.Label) + ")"
}

func operand(e Expr) string {
	if l, ok := e.(*IntLit); ok {
		return l.n.String()
	}
	return e.String()
}
