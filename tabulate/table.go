/*Package tabulate implements scalar functions of two variables which are
sampled on a grid that is uniform along the X axis and non-uniform, per
column, along the Y axis, as well as a variant for fully uniform grids.

Tables are built incrementally by appending sample points in sorted order,
evaluated by bilinear interpolation or extrapolation, and can additionally
propagate forward-mode derivatives through the interpolation stencil via
the Dual type.
*/
package tabulate

// samplePoint is a single stored (x, y, value) triple. The x coordinate is
// redundant (every sample in a column shares its column's x position) but
// is kept with the sample for locality.
type samplePoint struct {
	x, y, val float64
}

// Table is a scalar function of two variables sampled along vertical lines:
// all samples in a column share one X coordinate, while the Y coordinates
// are per-column and columns may hold differing numbers of samples.
//
// A Table is built through AppendX and AppendSample, which only ever grow
// the covered range at one of its ends. Once construction is finished the
// Table must not be mutated again, after which it may be evaluated from any
// number of goroutines.
type Table struct {
	// The x position of each column, in ascending order.
	xPos []float64
	// samples[i] holds column i's points in ascending y order.
	samples [][]samplePoint
}

// NewTable creates an empty table.
func NewTable() *Table { return &Table{} }

// NumX returns the number of columns.
func (t *Table) NumX() int { return len(t.xPos) }

// XMin returns the smallest tabulated X coordinate.
func (t *Table) XMin() float64 { return t.xPos[0] }

// XMax returns the largest tabulated X coordinate.
func (t *Table) XMax() float64 { return t.xPos[len(t.xPos)-1] }

// XAt returns the X coordinate of column i.
func (t *Table) XAt(i int) float64 { return t.xPos[i] }

// NumY returns the number of samples in column i.
func (t *Table) NumY(i int) int { return len(t.samples[i]) }

// YMin returns the smallest Y coordinate tabulated in column i.
func (t *Table) YMin(i int) float64 { return t.samples[i][0].y }

// YMax returns the largest Y coordinate tabulated in column i.
func (t *Table) YMax(i int) float64 { return t.samples[i][len(t.samples[i])-1].y }

// YAt returns the Y coordinate of sample j in column i.
func (t *Table) YAt(i, j int) float64 { return t.samples[i][j].y }

// ValueAt returns the value of sample j in column i.
func (t *Table) ValueAt(i, j int) float64 { return t.samples[i][j].val }

// AppendX adds an empty column at x and returns its index. The new column
// must extend the covered X range at one of its ends: x may exceed the
// current maximum (the common case, appends at the back) or undercut the
// current minimum (prepends at the front). Any other x returns a
// *ConstructionOrderError and leaves the table unchanged.
func (t *Table) AppendX(x float64) (int, error) {
	switch {
	case len(t.xPos) == 0 || t.xPos[len(t.xPos)-1] < x:
		t.xPos = append(t.xPos, x)
		t.samples = append(t.samples, nil)
		return len(t.xPos) - 1, nil
	case t.xPos[0] > x:
		// Slow, but prepending only happens for descending input and
		// tables are built once.
		t.xPos = append([]float64{x}, t.xPos...)
		t.samples = append([][]samplePoint{nil}, t.samples...)
		return 0, nil
	}
	return 0, &ConstructionOrderError{
		Axis: "x", Coord: x,
		Min: t.xPos[0], Max: t.xPos[len(t.xPos)-1],
	}
}

// AppendSample adds a sample with the given y coordinate and value to
// column i and returns the sample's index within the column. Like AppendX,
// y must extend the column's covered range at one of its ends; any other y
// returns a *ConstructionOrderError and leaves the column unchanged.
//
// AppendSample panics if i is not a valid column index.
func (t *Table) AppendSample(i int, y, value float64) (int, error) {
	col := t.samples[i]
	x := t.xPos[i]
	switch {
	case len(col) == 0 || col[len(col)-1].y < y:
		t.samples[i] = append(col, samplePoint{x, y, value})
		return len(t.samples[i]) - 1, nil
	case col[0].y > y:
		t.samples[i] = append([]samplePoint{{x, y, value}}, col...)
		return 0, nil
	}
	return 0, &ConstructionOrderError{
		Axis: "y", Coord: y,
		Min: col[0].y, Max: col[len(col)-1].y,
	}
}
