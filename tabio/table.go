// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tabio

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/irifrance/tabsyn/tt"
)

// ReadTable reads a truth table CSV: a header row of column names,
// then one row of 0/1 cells per truth table row.  Column order is
// preserved in the returned name slice.
func ReadTable(r io.Reader) ([]string, map[string]tt.Vec, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(recs) == 0 {
		return nil, nil, errors.New("empty table")
	}
	names := make([]string, len(recs[0]))
	for i, h := range recs[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, nil, errors.Errorf("column %d: empty name", i+1)
		}
		names[i] = h
	}
	rows := make([][]int, len(names))
	for i := range rows {
		rows[i] = make([]int, 0, len(recs)-1)
	}
	for ri, rec := range recs[1:] {
		if len(rec) != len(names) {
			return nil, nil, errors.Errorf("row %d: %d cells, want %d", ri+2, len(rec), len(names))
		}
		for ci, cell := range rec {
			switch strings.TrimSpace(cell) {
			case "0":
				rows[ci] = append(rows[ci], 0)
			case "1":
				rows[ci] = append(rows[ci], 1)
			default:
				return nil, nil, errors.Errorf("row %d, column %s: %q is not 0 or 1", ri+2, names[ci], cell)
			}
		}
	}
	cols := make(map[string]tt.Vec, len(names))
	for i, name := range names {
		if _, dup := cols[name]; dup {
			return nil, nil, errors.Errorf("duplicate column name %s", name)
		}
		cols[name] = tt.FromInts(rows[i])
	}
	return names, cols, nil
}

// WriteTable writes columns as CSV in the given name order.
func WriteTable(w io.Writer, names []string, cols map[string]tt.Vec) error {
	if len(names) == 0 {
		return errors.New("no columns")
	}
	n := cols[names[0]].Len()
	for _, name := range names {
		v, ok := cols[name]
		if !ok {
			return errors.Errorf("missing column %s", name)
		}
		if v.Len() != n {
			return errors.Errorf("column %s: %d rows, want %d", name, v.Len(), n)
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}
	rec := make([]string, len(names))
	for row := 0; row < n; row++ {
		for i, name := range names {
			if cols[name].Get(row) {
				rec[i] = "1"
			} else {
				rec[i] = "0"
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
