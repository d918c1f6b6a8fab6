package model

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when a range or viewport is requested over zero cells
var ErrEmptyInput = errors.New("empty input")

// Cell is a position on the unbounded grid
type Cell struct {
	X int
	Y int
}

// Axis selects one coordinate of a Cell
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Range is the inclusive span of one axis across a set of cells
type Range struct {
	Min int
	Max int
}

// Span returns the number of coordinates covered by the range
func (r Range) Span() int {
	return r.Max - r.Min + 1
}

// On returns the coordinate of the cell on the given axis
func (c Cell) On(axis Axis) int {
	if axis == AxisY {
		return c.Y
	}
	return c.X
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// MarshalJSON encodes the cell as an [x, y] pair
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes an [x, y] pair
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.Wrapf(err, "[Cell.UnmarshalJSON] failed to decode cell: %s", data)
	}
	if len(pair) != 2 {
		return errors.Errorf("[Cell.UnmarshalJSON] expected [x, y], got %d values", len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// BoundingRange returns the minimum and maximum coordinate on axis across cells.
// An empty input yields ErrEmptyInput.
func BoundingRange(axis Axis, cells []Cell) (Range, error) {
	if len(cells) == 0 {
		return Range{}, errors.Wrapf(ErrEmptyInput, "[BoundingRange] no cells on axis %s", axis)
	}

	r := Range{Min: cells[0].On(axis), Max: cells[0].On(axis)}
	for _, c := range cells[1:] {
		v := c.On(axis)
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r, nil
}

// Bounds returns the bottom-left and top-right corners of the rectangle enclosing cells
func Bounds(cells []Cell) (lo, hi Cell, err error) {
	xs, err := BoundingRange(AxisX, cells)
	if err != nil {
		return lo, hi, err
	}
	ys, err := BoundingRange(AxisY, cells)
	if err != nil {
		return lo, hi, err
	}
	return Cell{X: xs.Min, Y: ys.Min}, Cell{X: xs.Max, Y: ys.Max}, nil
}

// RectangularGrid returns every cell in the inclusive rectangle spanned by a and b.
// Rows run by ascending y, cells within a row by ascending x. Corner order does not matter.
func RectangularGrid(a, b Cell) [][]Cell {
	var (
		minX, maxX = min(a.X, b.X), max(a.X, b.X)
		minY, maxY = min(a.Y, b.Y), max(a.Y, b.Y)
	)

	grid := make([][]Cell, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		row := make([]Cell, 0, maxX-minX+1)
		for x := minX; x <= maxX; x++ {
			row = append(row, Cell{X: x, Y: y})
		}
		grid = append(grid, row)
	}
	return grid
}

// NeighborsOf returns the eight cells surrounding c in row-major order
func NeighborsOf(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for _, row := range RectangularGrid(Cell{X: c.X - 1, Y: c.Y - 1}, Cell{X: c.X + 1, Y: c.Y + 1}) {
		for _, n := range row {
			if n != c {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// AreNeighbors reports whether b is one of the eight cells surrounding a
func AreNeighbors(a, b Cell) bool {
	if a == b {
		return false
	}
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
