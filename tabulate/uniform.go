package tabulate

// UniformTable is a scalar function of two variables sampled on a fully
// uniform X-Y grid: m columns spaced evenly over [xMin, xMax] and n rows
// spaced evenly over [yMin, yMax]. It trades the ragged Table's per-column
// flexibility for O(1) closed-form index lookups.
//
// Values are filled in with SetValueAt after construction; once filled, a
// UniformTable may be evaluated from any number of goroutines.
type UniformTable struct {
	xMin, xMax float64
	yMin, yMax float64
	m, n       int

	// Row-major in j: the sample at (i, j) lives at j*m + i.
	samples []float64
}

// NewUniformTable creates a table of m by n samples, all initially zero,
// spanning [xMin, xMax] by [yMin, yMax]. It returns a
// *DegenerateTableError if either direction has fewer than two samples,
// and panics if either range is empty or inverted.
func NewUniformTable(
	xMin, xMax float64, m int,
	yMin, yMax float64, n int,
) (*UniformTable, error) {
	if m < 2 {
		return nil, &DegenerateTableError{Axis: "x", Num: m}
	}
	if n < 2 {
		return nil, &DegenerateTableError{Axis: "y", Num: n}
	}
	if xMax <= xMin || yMax <= yMin {
		panic("tabulate: empty or inverted tabulation range")
	}

	return &UniformTable{
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
		m: m, n: n,
		samples: make([]float64, m*n),
	}, nil
}

func (u *UniformTable) XMin() float64 { return u.xMin }
func (u *UniformTable) XMax() float64 { return u.xMax }
func (u *UniformTable) YMin() float64 { return u.yMin }
func (u *UniformTable) YMax() float64 { return u.yMax }
func (u *UniformTable) NumX() int     { return u.m }
func (u *UniformTable) NumY() int     { return u.n }

// XAt returns the X coordinate of grid column i.
func (u *UniformTable) XAt(i int) float64 {
	return u.xMin + float64(i)*(u.xMax-u.xMin)/float64(u.m-1)
}

// YAt returns the Y coordinate of grid row j.
func (u *UniformTable) YAt(j int) float64 {
	return u.yMin + float64(j)*(u.yMax-u.yMin)/float64(u.n-1)
}

// ValueAt returns the sample value at grid node (i, j).
func (u *UniformTable) ValueAt(i, j int) float64 {
	return u.samples[j*u.m+i]
}

// SetValueAt sets the sample value at grid node (i, j).
func (u *UniformTable) SetValueAt(i, j int, v float64) {
	u.samples[j*u.m+i] = v
}

// XToI maps an X coordinate to a fractional grid index. Unlike the ragged
// Table, the uniform spacing makes this a closed-form expression; no
// search is needed and no clamping happens here.
func (u *UniformTable) XToI(x float64) float64 {
	return (x - u.xMin) / (u.xMax - u.xMin) * float64(u.m-1)
}

// YToJ maps a Y coordinate to a fractional grid index.
func (u *UniformTable) YToJ(y float64) float64 {
	return (y - u.yMin) / (u.yMax - u.yMin) * float64(u.n-1)
}

// Applies reports whether (x, y) lies inside the tabulated rectangle.
func (u *UniformTable) Applies(x, y float64) bool {
	return u.xMin <= x && x <= u.xMax && u.yMin <= y && y <= u.yMax
}

// Eval evaluates the function at (x, y) by bilinear interpolation, first
// along X within the two bracketing rows and then along Y between the two
// row results. With extrapolate set, the outermost intervals' slopes are
// reused beyond the rectangle; without it, an outside point returns an
// *OutOfRangeError.
func (u *UniformTable) Eval(x, y float64, extrapolate bool) (float64, error) {
	if !extrapolate && !u.Applies(x, y) {
		return 0, &OutOfRangeError{X: x, Y: y}
	}

	alpha := u.XToI(x)
	i := clampInt(int(alpha), 0, u.m-2)
	alpha -= float64(i)

	beta := u.YToJ(y)
	j := clampInt(int(beta), 0, u.n-2)
	beta -= float64(j)

	s1 := u.ValueAt(i, j)*(1-alpha) + u.ValueAt(i+1, j)*alpha
	s2 := u.ValueAt(i, j+1)*(1-alpha) + u.ValueAt(i+1, j+1)*alpha
	return s1*(1-beta) + s2*beta, nil
}

// EvalDual is to Eval what Table.EvalDual is to Table.Eval: the same
// interpolation arithmetic over dual operands, with the index weights
// inheriting the input derivatives divided by the constant grid spacings.
//
// EvalDual panics if x and y carry different derivative counts.
func (u *UniformTable) EvalDual(x, y Dual, extrapolate bool) (Dual, error) {
	if len(x.Derivatives) != len(y.Derivatives) {
		panic("tabulate: x and y carry different derivative counts")
	}
	if !extrapolate && !u.Applies(x.Value, y.Value) {
		return Dual{}, &OutOfRangeError{X: x.Value, Y: y.Value}
	}

	alpha := Constant(u.XToI(x.Value), len(x.Derivatives))
	i := clampInt(int(alpha.Value), 0, u.m-2)
	alpha.Value -= float64(i)

	beta := Constant(u.YToJ(y.Value), len(y.Derivatives))
	j := clampInt(int(beta.Value), 0, u.n-2)
	beta.Value -= float64(j)

	dx := (u.xMax - u.xMin) / float64(u.m-1)
	dy := (u.yMax - u.yMin) / float64(u.n-1)
	for k := range x.Derivatives {
		alpha.Derivatives[k] = x.Derivatives[k] / dx
		beta.Derivatives[k] = y.Derivatives[k] / dy
	}

	s1 := lerp(u.ValueAt(i, j), u.ValueAt(i+1, j), alpha)
	s2 := lerp(u.ValueAt(i, j+1), u.ValueAt(i+1, j+1), alpha)
	return blend(s1, s2, beta), nil
}
