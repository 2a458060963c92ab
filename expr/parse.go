// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expr

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseError reports the byte offset at which parsing failed.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: %s at offset %d", e.Msg, e.Offset)
}

type parser struct {
	src string
	pos int
}

// Parse reads the builder-call notation printed by String, e.g.
//
//	Add(Mul(Rat(9, 5), Sym("°C")), Int(32))
//
// Pow also accepts bare integers for its operands.
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return e, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, got %q", c, p.src[p.pos])
	}
	p.pos++
	return nil
}

func (p *parser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) integer() (*big.Int, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	text := p.src[start:p.pos]
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		p.pos = start
		return nil, p.errorf("expected integer")
	}
	return n, nil
}

func (p *parser) quoted() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '"' {
		return "", p.errorf("expected quoted label")
	}
	prefix, err := strconv.QuotedPrefix(p.src[p.pos:])
	if err != nil {
		return "", p.errorf("unterminated label")
	}
	label, err := strconv.Unquote(prefix)
	if err != nil {
		return "", p.errorf("invalid label %s", prefix)
	}
	p.pos += len(prefix)
	return label, nil
}

func (p *parser) operand() (Expr, error) {
	p.skipSpace()
	if p.pos < len(p.src) && strings.IndexByte("+-0123456789", p.src[p.pos]) >= 0 {
		n, err := p.integer()
		if err != nil {
			return nil, err
		}
		return &IntLit{n: n}, nil
	}
	return p.expr()
}

func (p *parser) expr() (Expr, error) {
	start := p.pos
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected Int, Rat, Pow, Mul, Add or Sym")
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}

	var e Expr
	switch name {
	case "Int":
		n, err := p.integer()
		if err != nil {
			return nil, err
		}
		e = &IntLit{n: n}

	case "Rat":
		num, err := p.integer()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		den, err := p.integer()
		if err != nil {
			return nil, err
		}
		if den.Sign() == 0 {
			return nil, p.errorf("zero denominator")
		}
		e = &RatLit{num: num, den: den}

	case "Pow", "Mul", "Add":
		next := p.expr
		if name == "Pow" {
			next = p.operand
		}
		a, err := next()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		b, err := next()
		if err != nil {
			return nil, err
		}
		switch name {
		case "Pow":
			e = &Power{Base: a, Exp: b}
		case "Mul":
			e = Mul(a, b)
		default:
			e = Add(a, b)
		}

	case "Sym":
		label, err := p.quoted()
		if err != nil {
			return nil, err
		}
		e = Sym(label)

	default:
		p.pos = start
		p.skipSpace()
		return nil, p.errorf("unknown builder %q", name)
	}

	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return e, nil
}
