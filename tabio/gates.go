// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tabio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/irifrance/tabsyn/gate"
)

// ReadGates reads a gate library table: a header row, then
// gate_name,num_inputs,cost rows.  Blank lines and lines starting
// with # are skipped.  Gate names resolve against base, whose
// evaluation functions are reused with the configured cost; an
// unknown name or a disagreeing arity is an error.
func ReadGates(r io.Reader, base *gate.Lib) (*gate.Lib, error) {
	sc := bufio.NewScanner(r)
	var gs []gate.Gate
	ln := 0
	header := true
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if header {
			header = false
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return nil, errors.Errorf("line %d: want gate_name,num_inputs,cost", ln)
		}
		name := strings.ToUpper(strings.TrimSpace(parts[0]))
		arity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: num_inputs", ln)
		}
		cost, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: cost", ln)
		}
		g, ok := base.ByName(name)
		if !ok {
			return nil, errors.Errorf("line %d: unknown gate %s", ln, name)
		}
		if g.Arity != arity {
			return nil, errors.Errorf("line %d: gate %s has %d inputs, not %d", ln, name, g.Arity, arity)
		}
		gs = append(gs, gate.Gate{Name: name, Arity: arity, Cost: cost, Fn: g.Fn})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(gs) == 0 {
		return nil, errors.New("no gates in table")
	}
	return gate.NewLib(gs...)
}
