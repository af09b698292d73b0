package tabulate

import "fmt"

// ConstructionOrderError reports an append whose coordinate is neither a
// new minimum nor a new maximum for its axis. Tables only grow at the ends
// of their covered range, so sample points must be presented in ascending
// or descending coordinate order per axis.
type ConstructionOrderError struct {
	Axis     string // "x" or "y"
	Coord    float64
	Min, Max float64
}

func (e *ConstructionOrderError) Error() string {
	return fmt.Sprintf(
		"%s coordinate %g lies inside the covered range [%g, %g]: sample "+
			"points must be appended in ascending or descending order",
		e.Axis, e.Coord, e.Min, e.Max,
	)
}

// OutOfRangeError reports an evaluation at a point outside the tabulated
// domain while extrapolation was disabled.
type OutOfRangeError struct {
	X, Y float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"point (%g, %g) lies outside the tabulated domain", e.X, e.Y,
	)
}

// DegenerateTableError reports an evaluation on a table which is not fully
// constructed: interpolation needs at least two columns and at least two
// samples in every column it touches.
type DegenerateTableError struct {
	Axis   string // "x" or "y"
	Column int    // the offending column, for the y axis of a ragged table
	Num    int
}

func (e *DegenerateTableError) Error() string {
	if e.Axis == "x" {
		return fmt.Sprintf(
			"table has %d columns, but interpolation needs at least 2", e.Num,
		)
	}
	return fmt.Sprintf(
		"column %d has %d samples, but interpolation needs at least 2",
		e.Column, e.Num,
	)
}
