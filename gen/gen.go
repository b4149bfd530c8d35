// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// A Circuit is one named output expression.
type Circuit struct {
	Name string
	Expr *Expr
}

// A Spec is a parsed circuit file: either a set of named output
// expressions, or, in inputs-only mode, just the input variable
// names.
type Spec struct {
	InputsOnly bool
	Vars       []string // inputs-only mode
	Circuits   []Circuit
}

var complexityAnnot = regexp.MustCompile(`\s*\[complexity=\d+\]`)

// ParseFile reads a circuit file: one expression per line, optionally
// prefixed "Name : " and suffixed with a [complexity=N] annotation.
// A first line "NO OUTPUTS" switches to inputs-only mode, with the
// variable names space-separated on the next line.
func ParseFile(r io.Reader) (*Spec, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("empty circuit file")
	}
	if strings.EqualFold(lines[0], "NO OUTPUTS") {
		if len(lines) < 2 {
			return nil, errors.New("NO OUTPUTS mode needs a second line with input variable names")
		}
		vars := strings.Fields(lines[1])
		sort.Strings(vars)
		return &Spec{InputsOnly: true, Vars: vars}, nil
	}
	spec := &Spec{}
	for i, line := range lines {
		line = complexityAnnot.ReplaceAllString(line, "")
		name := ""
		if j := strings.Index(line, ":"); j >= 0 {
			name = strings.TrimSpace(line[:j])
			line = strings.TrimSpace(line[j+1:])
		}
		if name == "" {
			if len(lines) > 1 {
				name = "Output" + strconv.Itoa(i+1)
			} else {
				name = "Output"
			}
		}
		e, err := Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		spec.Circuits = append(spec.Circuits, Circuit{Name: name, Expr: e})
	}
	return spec, nil
}

// Tables is the generated truth table pair.
type Tables struct {
	InNames  []string
	Inputs   map[string]tt.Vec
	OutNames []string
	Outputs  map[string]tt.Vec
}

// Generate evaluates spec over the full input table, resolving gate
// names against lib.
func Generate(spec *Spec, lib *gate.Lib) (*Tables, error) {
	if spec.InputsOnly {
		return &Tables{InNames: spec.Vars, Inputs: tt.Inputs(spec.Vars)}, nil
	}
	seen := map[string]bool{}
	var vars []string
	for _, c := range spec.Circuits {
		for _, v := range c.Expr.Vars() {
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	sort.Strings(vars)
	if len(vars) == 0 {
		return nil, errors.New("no input variables in any expression")
	}
	t := &Tables{
		InNames: vars,
		Inputs:  tt.Inputs(vars),
		Outputs: make(map[string]tt.Vec, len(spec.Circuits)),
	}
	for _, c := range spec.Circuits {
		if _, dup := t.Outputs[c.Name]; dup {
			return nil, errors.Errorf("duplicate output name %s", c.Name)
		}
		v, err := c.Expr.Eval(t.Inputs, lib)
		if err != nil {
			return nil, errors.Wrap(err, c.Name)
		}
		t.OutNames = append(t.OutNames, c.Name)
		t.Outputs[c.Name] = v
	}
	return t, nil
}
