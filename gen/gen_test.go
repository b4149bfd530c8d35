// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

func TestParseExpr(t *testing.T) {
	e, err := Parse("NAND2(A, XOR(B, A1))")
	require.NoError(t, err)
	require.Equal(t, "NAND2(A, XOR(B, A1))", e.String())
	require.Equal(t, []string{"A", "A1", "B"}, e.Vars())

	for _, bad := range []string{
		"",
		"AND2(A",
		"AND2(A,)",
		"AND2 A B",
		"AND2(A, B))",
		"lower",
	} {
		_, err := Parse(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestExprEval(t *testing.T) {
	lib := gate.StdLib()
	e, err := Parse("XOR(A, B)")
	require.NoError(t, err)
	spec := &Spec{Circuits: []Circuit{{Name: "Sum", Expr: e}}}
	tabs, err := Generate(spec, lib)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, tabs.InNames)
	require.Equal(t, "0110", tabs.Outputs["Sum"].String())
}

func TestExprEvalErrors(t *testing.T) {
	lib := gate.StdLib()
	vars := map[string]tt.Vec{"A": tt.Var(0, 2), "B": tt.Var(1, 2)}
	for _, src := range []string{
		"MUX(A, B)",     // unknown gate
		"AND2(A, B, A)", // arity mismatch
		"XOR(A, C)",     // unknown variable
		"NOT(A, B)",     // arity mismatch, 1-input gate
	} {
		e, err := Parse(src)
		require.NoError(t, err, src)
		_, err = e.Eval(vars, lib)
		require.Error(t, err, src)
	}
}

func TestParseFileNamed(t *testing.T) {
	src := `Sum : XOR(A, B) [complexity=3]
Carry : AND(A, B)`
	spec, err := ParseFile(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, spec.Circuits, 2)
	require.Equal(t, "Sum", spec.Circuits[0].Name)
	require.Equal(t, "XOR(A, B)", spec.Circuits[0].Expr.String())

	tabs, err := Generate(spec, gate.StdLib())
	require.NoError(t, err)
	require.Equal(t, []string{"Sum", "Carry"}, tabs.OutNames)
	require.Equal(t, "0001", tabs.Outputs["Carry"].String())
	require.Equal(t, 4, tabs.Inputs["A"].Len())
}

func TestParseFileAnonymous(t *testing.T) {
	spec, err := ParseFile(strings.NewReader("OR(A, B)\n"))
	require.NoError(t, err)
	require.Equal(t, "Output", spec.Circuits[0].Name)
}

func TestParseFileNoOutputs(t *testing.T) {
	spec, err := ParseFile(strings.NewReader("No Outputs\nB A C\n"))
	require.NoError(t, err)
	require.True(t, spec.InputsOnly)
	require.Equal(t, []string{"A", "B", "C"}, spec.Vars)

	tabs, err := Generate(spec, gate.StdLib())
	require.NoError(t, err)
	require.Nil(t, tabs.Outputs)
	require.Equal(t, 8, tabs.Inputs["A"].Len())

	_, err = ParseFile(strings.NewReader("NO OUTPUTS\n"))
	require.Error(t, err)
}
