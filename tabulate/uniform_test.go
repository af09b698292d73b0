package tabulate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// planeUniform samples f(x, y) = 2x + 3y on a 3x3 grid over [0,2]x[0,2].
func planeUniform(t *testing.T) *UniformTable {
	u, err := NewUniformTable(0, 2, 3, 0, 2, 3)
	assert.NoError(t, err)
	for i := 0; i < u.NumX(); i++ {
		for j := 0; j < u.NumY(); j++ {
			u.SetValueAt(i, j, 2*u.XAt(i)+3*u.YAt(j))
		}
	}
	return u
}

func TestNewUniformTable(t *testing.T) {
	var degErr *DegenerateTableError

	_, err := NewUniformTable(0, 1, 1, 0, 1, 5)
	assert.True(t, errors.As(err, &degErr))
	assert.Equal(t, "x", degErr.Axis)

	_, err = NewUniformTable(0, 1, 5, 0, 1, 1)
	assert.True(t, errors.As(err, &degErr))
	assert.Equal(t, "y", degErr.Axis)

	assert.Panics(t, func() { NewUniformTable(1, 0, 3, 0, 1, 3) })
	assert.Panics(t, func() { NewUniformTable(0, 1, 3, 1, 1, 3) })
}

func TestUniformNodes(t *testing.T) {
	u := planeUniform(t)

	for i := 0; i < u.NumX(); i++ {
		assert.InDelta(t, float64(i), u.XToI(u.XAt(i)), 1e-12)
	}
	for j := 0; j < u.NumY(); j++ {
		assert.InDelta(t, float64(j), u.YToJ(u.YAt(j)), 1e-12)
	}

	for i := 0; i < u.NumX(); i++ {
		for j := 0; j < u.NumY(); j++ {
			v, err := u.Eval(u.XAt(i), u.YAt(j), false)
			assert.NoError(t, err)
			assert.Equal(t, u.ValueAt(i, j), v)
		}
	}
}

func TestUniformEval(t *testing.T) {
	u := planeUniform(t)

	v, err := u.Eval(1.5, 0.5, false)
	assert.NoError(t, err)
	assert.InDelta(t, 2*1.5+3*0.5, v, 1e-12)

	// Extrapolation reuses the outermost slopes, which reproduces a plane.
	v, err = u.Eval(3, 0.5, true)
	assert.NoError(t, err)
	assert.InDelta(t, 2*3+3*0.5, v, 1e-12)

	v, err = u.Eval(1.5, -1, true)
	assert.NoError(t, err)
	assert.InDelta(t, 2*1.5+3*(-1), v, 1e-12)
}

func TestUniformApplies(t *testing.T) {
	u := planeUniform(t)

	assert.True(t, u.Applies(0, 0))
	assert.True(t, u.Applies(2, 2))
	assert.False(t, u.Applies(-1e-9, 1))
	assert.False(t, u.Applies(1, 2+1e-9))

	_, err := u.Eval(2.5, 1, false)
	var rangeErr *OutOfRangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestUniformEvalDual(t *testing.T) {
	u := planeUniform(t)

	d, err := u.EvalDual(Variable(1.3, 0, 2), Variable(0.4, 1, 2), false)
	assert.NoError(t, err)
	assert.InDelta(t, 2, d.Derivatives[0], 1e-12)
	assert.InDelta(t, 3, d.Derivatives[1], 1e-12)

	want, err := u.Eval(1.3, 0.4, false)
	assert.NoError(t, err)
	assert.Equal(t, want, d.Value)

	assert.Panics(t, func() {
		u.EvalDual(Constant(1, 1), Constant(1, 2), true)
	})
}

func TestUniformEvalDualFiniteDifference(t *testing.T) {
	// A non-planar surface so the cross term is exercised.
	u, err := NewUniformTable(0, 2, 5, 0, 2, 5)
	assert.NoError(t, err)
	for i := 0; i < u.NumX(); i++ {
		for j := 0; j < u.NumY(); j++ {
			x, y := u.XAt(i), u.YAt(j)
			u.SetValueAt(i, j, x*x+x*y-2*y)
		}
	}

	h := 1e-6
	for _, p := range [][2]float64{{0.3, 0.4}, {1.2, 1.7}, {1.8, 0.2}} {
		x, y := p[0], p[1]
		d, err := u.EvalDual(Variable(x, 0, 2), Variable(y, 1, 2), false)
		assert.NoError(t, err)

		xp, _ := u.Eval(x+h, y, true)
		xm, _ := u.Eval(x-h, y, true)
		yp, _ := u.Eval(x, y+h, true)
		ym, _ := u.Eval(x, y-h, true)

		fx, fy := (xp-xm)/(2*h), (yp-ym)/(2*h)
		assert.InDelta(t, fx, d.Derivatives[0], 1e-6*(1+math.Abs(fx)))
		assert.InDelta(t, fy, d.Derivatives[1], 1e-6*(1+math.Abs(fy)))
	}
}
