package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"tabfunc/tabulate"
)

// ReadSamples reads a whitespace-separated "x y value" text file into a
// Table. Consecutive rows sharing an x coordinate form one column of the
// table. Columns must appear in ascending or descending x order and the
// samples within each column in ascending or descending y order, matching
// the table's end-only construction rule; files violating it fail with a
// wrapped *tabulate.ConstructionOrderError.
func ReadSamples(fname string) (*tabulate.Table, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	xs, ys, vals := cols[0], cols[1], cols[2]
	if len(xs) == 0 {
		return nil, fmt.Errorf("Sample file '%s' is empty.", fname)
	}

	t := tabulate.NewTable()
	col := -1
	for k := range xs {
		if col == -1 || xs[k] != t.XAt(col) {
			if col, err = t.AppendX(xs[k]); err != nil {
				return nil, fmt.Errorf("Sample file '%s', row %d: %w", fname, k, err)
			}
		}
		if _, err := t.AppendSample(col, ys[k], vals[k]); err != nil {
			return nil, fmt.Errorf("Sample file '%s', row %d: %w", fname, k, err)
		}
	}
	return t, nil
}
