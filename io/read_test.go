package io

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabfunc/tabulate"
)

func tempSampleFile(t *testing.T, text string) string {
	f, err := os.CreateTemp("", "tabfunc_samples")
	assert.NoError(t, err)
	_, err = f.WriteString(text)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func TestReadSamples(t *testing.T) {
	fname := tempSampleFile(t, `0 0 0
0 1 1
1 0 2
1 1 3
2 0 4
2 1 5
`)

	tab, err := ReadSamples(fname)
	assert.NoError(t, err)
	assert.Equal(t, 3, tab.NumX())
	assert.Equal(t, 2, tab.NumY(0))
	assert.Equal(t, 0.0, tab.XMin())
	assert.Equal(t, 2.0, tab.XMax())
	assert.Equal(t, 3.0, tab.ValueAt(1, 1))

	v, err := tab.Eval(1.5, 0.5, false)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestReadSamplesDescending(t *testing.T) {
	fname := tempSampleFile(t, `2 1 5
2 0 4
1 1 3
1 0 2
0 1 1
0 0 0
`)

	tab, err := ReadSamples(fname)
	assert.NoError(t, err)
	assert.Equal(t, 3, tab.NumX())
	assert.Equal(t, 0.0, tab.XAt(0))
	assert.Equal(t, 2.0, tab.XAt(2))
	assert.Equal(t, 0.0, tab.ValueAt(0, 0))
	assert.Equal(t, 5.0, tab.ValueAt(2, 1))
}

func TestReadSamplesBadOrder(t *testing.T) {
	// The middle column revisits an interior x coordinate.
	fname := tempSampleFile(t, `0 0 0
0 1 1
2 0 4
2 1 5
1 0 2
1 1 3
`)

	_, err := ReadSamples(fname)
	var coErr *tabulate.ConstructionOrderError
	assert.True(t, errors.As(err, &coErr))
	assert.Equal(t, "x", coErr.Axis)
}

func TestReadResampleConfig(t *testing.T) {
	fname := tempSampleFile(t, ExampleResampleFile)

	con, err := ReadResampleConfig(fname)
	assert.NoError(t, err)
	assert.Equal(t, "path/to/samples.txt", con.Input)
	assert.Equal(t, "path/to/grid.txt", con.Output)
	assert.False(t, con.ValidLogFile())
}

func TestReadResampleConfigPlotFile(t *testing.T) {
	fname := tempSampleFile(t, `[Resample]
Input = samples.txt
Output = grid.txt
PlotFile = columns.png
`)

	con, err := ReadResampleConfig(fname)
	assert.NoError(t, err)
	assert.True(t, con.ValidPlotFile())
	assert.Equal(t, "columns.png", con.PlotFile)
}

func TestReadResampleConfigMissingOutput(t *testing.T) {
	fname := tempSampleFile(t, `[Resample]
Input = samples.txt
`)

	_, err := ReadResampleConfig(fname)
	assert.Error(t, err)
}
