// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// An Expr is a parsed gate expression: either a variable atom or a
// gate application.
type Expr struct {
	Var  string // variable atom, empty for gate nodes
	Gate string
	Args []*Expr
}

// Parse parses an expression of the form GATE(arg, ...) with
// variable atoms like A, B2.  Gate names are resolved against a
// library only at evaluation time.
func Parse(s string) (*Expr, error) {
	p := &parser{s: s}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.i != len(p.s) {
		return nil, errors.Errorf("trailing input at offset %d: %q", p.i, p.s[p.i:])
	}
	return e, nil
}

type parser struct {
	s string
	i int
}

func (p *parser) ws() {
	for p.i < len(p.s) && (p.s[p.i] == ' ' || p.s[p.i] == '\t') {
		p.i++
	}
}

func (p *parser) ident() string {
	j := p.i
	for j < len(p.s) {
		c := p.s[j]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			j++
			continue
		}
		break
	}
	id := p.s[p.i:j]
	p.i = j
	return id
}

func (p *parser) expr() (*Expr, error) {
	p.ws()
	id := p.ident()
	if id == "" {
		return nil, errors.Errorf("expected name at offset %d", p.i)
	}
	p.ws()
	if p.i >= len(p.s) || p.s[p.i] != '(' {
		if !isVar(id) {
			return nil, errors.Errorf("%s is not an input variable name", id)
		}
		return &Expr{Var: id}, nil
	}
	p.i++ // (
	e := &Expr{Gate: id}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		e.Args = append(e.Args, arg)
		p.ws()
		if p.i >= len(p.s) {
			return nil, errors.New("unterminated argument list")
		}
		switch p.s[p.i] {
		case ',':
			p.i++
		case ')':
			p.i++
			return e, nil
		default:
			return nil, errors.Errorf("expected , or ) at offset %d", p.i)
		}
	}
}

// isVar matches the input variable shape: an upper case letter with
// an optional digit suffix, as in A, B, A1, A2.
func isVar(s string) bool {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Vars returns the sorted distinct variable atoms of e.
func (e *Expr) Vars() []string {
	seen := map[string]bool{}
	var walk func(x *Expr)
	var vs []string
	walk = func(x *Expr) {
		if x.Var != "" {
			if !seen[x.Var] {
				seen[x.Var] = true
				vs = append(vs, x.Var)
			}
			return
		}
		for _, a := range x.Args {
			walk(a)
		}
	}
	walk(e)
	sort.Strings(vs)
	return vs
}

// String renders e back to expression text.
func (e *Expr) String() string {
	if e.Var != "" {
		return e.Var
	}
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Gate + "(" + strings.Join(args, ", ") + ")"
}

// Eval computes the column of e over the given variable columns.
// Gate names resolve against lib first exactly, then with a "2"
// suffix, so NAND(A, B) means NAND2(A, B).
func (e *Expr) Eval(vars map[string]tt.Vec, lib *gate.Lib) (tt.Vec, error) {
	if e.Var != "" {
		v, ok := vars[e.Var]
		if !ok {
			return tt.Vec{}, errors.Errorf("unknown variable %s", e.Var)
		}
		return v, nil
	}
	g, ok := lib.ByName(e.Gate)
	if !ok {
		g, ok = lib.ByName(e.Gate + "2")
	}
	if !ok {
		return tt.Vec{}, errors.Errorf("unknown gate %s", e.Gate)
	}
	if g.Arity != len(e.Args) {
		return tt.Vec{}, errors.Errorf("gate %s takes %d inputs, got %d", g.Name, g.Arity, len(e.Args))
	}
	ins := make([]tt.Vec, len(e.Args))
	for i, a := range e.Args {
		v, err := a.Eval(vars, lib)
		if err != nil {
			return tt.Vec{}, err
		}
		ins[i] = v
	}
	n := ins[0].Len()
	nw := (n + 63) / 64
	out := make([]uint64, nw)
	args := make([]uint64, len(ins))
	for w := 0; w < nw; w++ {
		for j := range ins {
			args[j] = ins[j].Words()[w]
		}
		out[w] = g.Fn(args)
	}
	return tt.FromWords(out, n), nil
}
