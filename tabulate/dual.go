package tabulate

// Dual is a forward-mode automatic-differentiation value: a plain value
// together with its partial derivatives with respect to an arbitrary set of
// upstream independent variables. How many variables there are is decided
// by whoever creates the Dual, not by the table; a Dual with an empty
// derivative vector behaves like a plain scalar.
type Dual struct {
	Value       float64
	Derivatives []float64
}

// Constant creates a Dual carrying the value v and zero derivatives with
// respect to n upstream variables.
func Constant(v float64, n int) Dual {
	return Dual{Value: v, Derivatives: make([]float64, n)}
}

// Variable creates a Dual carrying the value v as the k-th of n upstream
// variables, so its derivative with respect to itself is one.
func Variable(v float64, k, n int) Dual {
	d := Dual{Value: v, Derivatives: make([]float64, n)}
	d.Derivatives[k] = 1
	return d
}

// lerp interpolates between the constants c1 and c2 by the dual weight s,
// c1*(1-s) + c2*s. Tabulated values carry no derivatives, so only s
// contributes to the result's derivative vector.
func lerp(c1, c2 float64, s Dual) Dual {
	out := Dual{
		Value:       c1*(1-s.Value) + c2*s.Value,
		Derivatives: make([]float64, len(s.Derivatives)),
	}
	for k, ds := range s.Derivatives {
		out.Derivatives[k] = (c2 - c1) * ds
	}
	return out
}

// blend combines the dual operands u and v by the dual weight s,
// u*(1-s) + v*s, applying the product rule per derivative entry.
func blend(u, v, s Dual) Dual {
	out := Dual{
		Value:       u.Value*(1-s.Value) + v.Value*s.Value,
		Derivatives: make([]float64, len(s.Derivatives)),
	}
	for k := range out.Derivatives {
		out.Derivatives[k] = u.Derivatives[k]*(1-s.Value) +
			v.Derivatives[k]*s.Value +
			(v.Value-u.Value)*s.Derivatives[k]
	}
	return out
}

// EvalDual evaluates the function at a dual-valued point, propagating exact
// partial derivatives through the interpolation stencil. The value part is
// computed by the same arithmetic as Eval, so the two agree exactly. The
// derivative part follows from differentiating each interpolation step
// analytically: the fractional index weights inherit the input derivatives
// divided by the local interval widths (the Jacobians of the piecewise
// linear coordinate-to-index mappings), while the tabulated values are
// constants. No finite differencing is involved.
//
// The range and degeneracy policy is that of Eval, applied to the value
// parts of the inputs. EvalDual panics if x and y carry different
// derivative counts.
func (t *Table) EvalDual(x, y Dual, extrapolate bool) (Dual, error) {
	if len(x.Derivatives) != len(y.Derivatives) {
		panic("tabulate: x and y carry different derivative counts")
	}
	if t.NumX() < 2 {
		return Dual{}, &DegenerateTableError{Axis: "x", Num: t.NumX()}
	}

	alpha := Constant(t.XToI(x.Value), len(x.Derivatives))
	i := clampInt(int(alpha.Value), 0, t.NumX()-2)
	alpha.Value -= float64(i)

	if t.NumY(i) < 2 {
		return Dual{}, &DegenerateTableError{Axis: "y", Column: i, Num: t.NumY(i)}
	}
	if t.NumY(i+1) < 2 {
		return Dual{}, &DegenerateTableError{Axis: "y", Column: i + 1, Num: t.NumY(i + 1)}
	}

	if !extrapolate && !t.Applies(x.Value, y.Value) {
		return Dual{}, &OutOfRangeError{X: x.Value, Y: y.Value}
	}

	beta1 := Constant(t.YToJ(i, y.Value), len(y.Derivatives))
	j1 := clampInt(int(beta1.Value), 0, t.NumY(i)-2)
	beta1.Value -= float64(j1)

	beta2 := Constant(t.YToJ(i+1, y.Value), len(y.Derivatives))
	j2 := clampInt(int(beta2.Value), 0, t.NumY(i+1)-2)
	beta2.Value -= float64(j2)

	// Within the clamped intervals the index mappings are linear, so their
	// Jacobians are the reciprocal interval widths.
	dx := t.XAt(i+1) - t.XAt(i)
	dy1 := t.YAt(i, j1+1) - t.YAt(i, j1)
	dy2 := t.YAt(i+1, j2+1) - t.YAt(i+1, j2)
	for k := range x.Derivatives {
		alpha.Derivatives[k] = x.Derivatives[k] / dx
		beta1.Derivatives[k] = y.Derivatives[k] / dy1
		beta2.Derivatives[k] = y.Derivatives[k] / dy2
	}

	s1 := lerp(t.ValueAt(i, j1), t.ValueAt(i, j1+1), beta1)
	s2 := lerp(t.ValueAt(i+1, j2), t.ValueAt(i+1, j2+1), beta2)
	return blend(s1, s2, alpha), nil
}
