package tabulate

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Eval evaluates the function at (x, y) by bilinear interpolation: first
// along Y within each of the two columns bracketing x, then along X between
// the two column results. With extrapolate set, the slopes of the outermost
// intervals are reused beyond the tabulated range; without it, a point
// outside the domain returns an *OutOfRangeError.
//
// Eval returns a *DegenerateTableError if the table has fewer than two
// columns or either bracketing column has fewer than two samples.
func (t *Table) Eval(x, y float64, extrapolate bool) (float64, error) {
	if t.NumX() < 2 {
		return 0, &DegenerateTableError{Axis: "x", Num: t.NumX()}
	}

	alpha := t.XToI(x)
	i := clampInt(int(alpha), 0, t.NumX()-2)
	alpha -= float64(i)

	if t.NumY(i) < 2 {
		return 0, &DegenerateTableError{Axis: "y", Column: i, Num: t.NumY(i)}
	}
	if t.NumY(i+1) < 2 {
		return 0, &DegenerateTableError{Axis: "y", Column: i + 1, Num: t.NumY(i + 1)}
	}

	if !extrapolate && !t.Applies(x, y) {
		return 0, &OutOfRangeError{X: x, Y: y}
	}

	beta1 := t.YToJ(i, y)
	j1 := clampInt(int(beta1), 0, t.NumY(i)-2)
	beta1 -= float64(j1)

	beta2 := t.YToJ(i+1, y)
	j2 := clampInt(int(beta2), 0, t.NumY(i+1)-2)
	beta2 -= float64(j2)

	s1 := t.ValueAt(i, j1)*(1-beta1) + t.ValueAt(i, j1+1)*beta1
	s2 := t.ValueAt(i+1, j2)*(1-beta2) + t.ValueAt(i+1, j2+1)*beta2
	return s1*(1-alpha) + s2*alpha, nil
}

// WriteGrid samples the function on a regular grid three times finer than
// the table in each direction and writes whitespace-separated "x y value"
// triples to w, one per line with a blank line between scanlines of fixed
// x. The grid spans the table's bounding box, so ragged tables are sampled
// with extrapolation where the box exceeds a column's Y extent. The output
// can be handed directly to gnuplot's splot.
func (t *Table) WriteGrid(w io.Writer) error {
	if t.NumX() < 2 {
		return &DegenerateTableError{Axis: "x", Num: t.NumX()}
	}

	x0, x1 := t.XMin(), t.XMax()
	y0, y1 := math.Inf(+1), math.Inf(-1)
	n := 0
	for i := 0; i < t.NumX(); i++ {
		if t.NumY(i) < 2 {
			return &DegenerateTableError{Axis: "y", Column: i, Num: t.NumY(i)}
		}
		y0 = math.Min(y0, t.YMin(i))
		y1 = math.Max(y1, t.YMax(i))
		if t.NumY(i) > n {
			n = t.NumY(i)
		}
	}

	m := 3 * t.NumX()
	n *= 3

	buf := bufio.NewWriter(w)
	for i := 0; i <= m; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(m)
		for j := 0; j <= n; j++ {
			y := y0 + (y1-y0)*float64(j)/float64(n)
			v, err := t.Eval(x, y, true)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(buf, "%g %g %g\n", x, y, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(buf); err != nil {
			return err
		}
	}
	return buf.Flush()
}
