// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"sort"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// validate checks inputs, targets, and the library before the search
// loop, returning the input names in their fixed (sorted) seeding
// order and the common row count.
func validate(inputs map[string]tt.Vec, targets map[string]tt.Vec, lib *gate.Lib) ([]string, int, error) {
	if lib == nil {
		return nil, 0, configErrf("nil gate library")
	}
	if len(inputs) == 0 {
		return nil, 0, configErrf("no input variables")
	}
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		if name == "" {
			return nil, 0, configErrf("empty input variable name")
		}
		names = append(names, name)
	}
	sort.Strings(names)
	rows := inputs[names[0]].Len()
	for _, name := range names {
		if inputs[name].Len() != rows {
			return nil, 0, configErrf("input %s: %d rows, want %d", name, inputs[name].Len(), rows)
		}
	}
	if want := tt.Rows(len(names)); rows != want {
		return nil, 0, configErrf("%d rows for %d input variables, want %d", rows, len(names), want)
	}
	for i, a := range names {
		for _, b := range names[i+1:] {
			if inputs[a].Equal(inputs[b]) {
				return nil, 0, configErrf("inputs %s and %s have identical columns", a, b)
			}
		}
	}
	for name, bits := range targets {
		if name == "" {
			return nil, 0, configErrf("empty output name")
		}
		if bits.Len() != rows {
			return nil, 0, configErrf("target %s: %d rows, want %d", name, bits.Len(), rows)
		}
	}
	return names, rows, nil
}
