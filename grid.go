// This defines a library for walking a greedy "path of least resistance"
// across a grid of elevation samples, and for drawing the grid and its paths
// as images.
package elevation

import (
	"errors"
	"fmt"
	"math"
)

var (
	// Returned when there are no rows, or a row contains no values.
	ErrEmptyInput = errors.New("the elevation data is empty")
	// Returned for ragged rows or values that aren't integers.
	ErrMalformedInput = errors.New("malformed elevation data")
	// Returned when a row or column lies outside of the grid.
	ErrOutOfBounds = errors.New("position outside of the grid")
)

// A rectangular grid of integer elevations. Create using NewGrid or ReadGrid.
// The grid is never modified after it's created, so a single grid may be
// shared by any number of concurrent walks.
type Grid struct {
	// Width is the number of columns, height is the number of rows.
	width  int
	height int
	// Row-major elevation values; the cell at (row, col) is at index
	// row*width + col.
	cells []int
	// Computed once, when the grid is created.
	minElevation int
	maxElevation int
}

// Creates a new grid from a list of rows. The values are copied, so the
// caller may modify the given slices afterwards.
func NewGrid(values [][]int) (*Grid, error) {
	if (len(values) == 0) || (len(values[0]) == 0) {
		return nil, ErrEmptyInput
	}
	width := len(values[0])
	height := len(values)
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || (cellCount/height != width) {
		return nil, fmt.Errorf("%w: the grid's size was too big",
			ErrMalformedInput)
	}
	toReturn := &Grid{
		width:        width,
		height:       height,
		cells:        make([]int, 0, cellCount),
		minElevation: values[0][0],
		maxElevation: values[0][0],
	}
	for row, rowValues := range values {
		if len(rowValues) != width {
			return nil, fmt.Errorf("%w: row %d contains %d values, expected %d",
				ErrMalformedInput, row, len(rowValues), width)
		}
		for _, v := range rowValues {
			if v < toReturn.minElevation {
				toReturn.minElevation = v
			}
			if v > toReturn.maxElevation {
				toReturn.maxElevation = v
			}
		}
		toReturn.cells = append(toReturn.cells, rowValues...)
	}
	// Every elevation difference, and every AlphaValue numerator, must fit in
	// an int.
	span := uint(toReturn.maxElevation) - uint(toReturn.minElevation)
	if span > math.MaxInt {
		return nil, fmt.Errorf("%w: elevations from %d to %d span too "+
			"large a range", ErrMalformedInput, toReturn.minElevation,
			toReturn.maxElevation)
	}
	return toReturn, nil
}

// Returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// Returns the lowest elevation in the grid.
func (g *Grid) Min() int {
	return g.minElevation
}

// Returns the highest elevation in the grid.
func (g *Grid) Max() int {
	return g.maxElevation
}

// Returns true if the given row and column are inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return (row >= 0) && (col >= 0) && (row < g.height) && (col < g.width)
}

// Returns the elevation at the given row and column, or an error wrapping
// ErrOutOfBounds.
func (g *Grid) ElevationAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: row %d, column %d in a %dx%d grid",
			ErrOutOfBounds, row, col, g.width, g.height)
	}
	return g.cells[row*g.width+col], nil
}

// Only to be used after checking bounds.
func (g *Grid) elevation(row, col int) int {
	return g.cells[row*g.width+col]
}

// Maps an elevation to a brightness between 0 (the grid's minimum) and 255
// (the grid's maximum). Values outside of the grid's range are clamped. A flat
// grid, where the minimum equals the maximum, maps everything to 0.
func (g *Grid) AlphaValue(elevation int) uint8 {
	if g.maxElevation == g.minElevation {
		return 0
	}
	scaled := 255 * (float64(elevation) - float64(g.minElevation)) /
		(float64(g.maxElevation) - float64(g.minElevation))
	scaled = math.Round(scaled)
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
