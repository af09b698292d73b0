package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleResampleFile = `[Resample]

#######################
# Required Parameters #
#######################

# Text file containing the sample points, one "x y value" triple per line.
# Consecutive rows sharing an x coordinate form one column of the table.
# Columns must appear in ascending or descending x order, and the samples
# within a column in ascending or descending y order.
Input = path/to/samples.txt

# File which the resampled grid will be written to. The output contains one
# "x y value" triple per line with a blank line between scanlines of fixed
# x, suitable for gnuplot's splot.
Output = path/to/grid.txt

#######################
# Optional Parameters #
#######################

# Image file which a plot of the table's columns (value against y, one
# curve per column) will be rendered to. Rendering shells out to python
# and matplotlib, so leave this unset on machines without them.
# PlotFile = columns.png

# Log file. If unset, log output goes to stderr.
# LogFile = log.out`

type ResampleConfig struct {
	// Required
	Input, Output string

	// Optional
	PlotFile string
	LogFile  string
}

type ResampleWrapper struct {
	Resample ResampleConfig
}

func DefaultResampleWrapper() *ResampleWrapper {
	return &ResampleWrapper{}
}

func (con *ResampleConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *ResampleConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *ResampleConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *ResampleConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// ReadResampleConfig reads and validates a [Resample] config file.
func ReadResampleConfig(fname string) (*ResampleConfig, error) {
	wrap := DefaultResampleWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Resample
	if !con.ValidInput() {
		return nil, fmt.Errorf("The 'Input' variable isn't set in '%s'.", fname)
	}
	if !con.ValidOutput() {
		return nil, fmt.Errorf("The 'Output' variable isn't set in '%s'.", fname)
	}
	return con, nil
}
