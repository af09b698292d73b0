package tabulate

// XToI maps an X coordinate to a fractional interval index. The integer
// part selects the interval [XAt(i), XAt(i+1)] with i in [0, NumX()-2] and
// the remainder is the position of x within that interval. The mapping is
// total: coordinates beyond the ends of the table continue the outermost
// interval's arithmetic, so the result may fall outside [0, NumX()-1).
// No clamping happens here, and the domain policy belongs to the callers,
// which gate on Applies.
//
// The table must have at least two columns.
func (t *Table) XToI(x float64) float64 {
	n := len(t.xPos)

	var i int
	switch {
	case x <= t.xPos[1]:
		i = 0
	case x >= t.xPos[n-2]:
		i = n - 2
	default:
		// Bisect [1, n-2] until only the bracketing interval remains.
		i = 1
		hi := n - 2
		for i+1 < hi {
			mid := (i + hi) / 2
			if x < t.xPos[mid] {
				hi = mid
			} else {
				i = mid
			}
		}
	}

	x1, x2 := t.xPos[i], t.xPos[i+1]
	return float64(i) + (x-x1)/(x2-x1)
}

// YToJ is the Y axis analogue of XToI, applied within column i: the integer
// part selects the interval [YAt(i, j), YAt(i, j+1)] and the remainder is
// the position of y within it. Like XToI it is total, continuing the
// outermost intervals beyond the column's extent.
//
// Column i must hold at least two samples.
func (t *Table) YToJ(i int, y float64) float64 {
	col := t.samples[i]

	// Interval halving over the whole column.
	lo, hi := 0, len(col)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if y < col[mid].y {
			hi = mid
		} else {
			lo = mid
		}
	}

	y1, y2 := col[lo].y, col[lo+1].y
	return float64(lo) + (y-y1)/(y2-y1)
}

// Applies reports whether (x, y) lies inside the tabulated domain. The
// domain is a quadrilateral, not a rectangle: its left and right edges are
// the first and last columns, while its bottom and top edges blend the Y
// extents of the two columns bracketing each x by the same fractional
// weight that interpolation would use.
//
// The table must have at least two columns, each holding at least one
// sample.
func (t *Table) Applies(x, y float64) bool {
	if x < t.XMin() || t.XMax() < x {
		return false
	}

	alpha := t.XToI(x)
	i := clampInt(int(alpha), 0, len(t.xPos)-2)
	frac := alpha - float64(i)

	yMin := t.YMin(i)*(1-frac) + t.YMin(i+1)*frac
	yMax := t.YMax(i)*(1-frac) + t.YMax(i+1)*frac
	return yMin <= y && y <= yMax
}

func clampInt(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
