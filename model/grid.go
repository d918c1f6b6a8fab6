package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Viewport is a dense snapshot of the rectangle enclosing a live-cell set
type Viewport struct {
	width  int
	height int
	lo     Cell     // bottom-left corner
	cells  [][]bool // cells[y-lo.Y][x-lo.X]
}

// NewViewport derives a viewport from the bounding rectangle of live
func NewViewport(live []Cell) (*Viewport, error) {
	v := &Viewport{}
	if err := v.Fill(live); err != nil {
		return nil, err
	}
	return v, nil
}

// Fill resizes the viewport to the bounds of live and marks every live cell
func (v *Viewport) Fill(live []Cell) error {
	lo, hi, err := Bounds(live)
	if err != nil {
		return errors.Wrapf(err, "[Viewport.Fill] failed to bound %d cells", len(live))
	}

	v.Reset(lo, hi)
	for _, c := range live {
		v.cells[c.Y-lo.Y][c.X-lo.X] = true
	}
	return nil
}

// Reset resizes the viewport to the rectangle lo..hi with every cell dead
func (v *Viewport) Reset(lo, hi Cell) {
	v.lo = Cell{X: min(lo.X, hi.X), Y: min(lo.Y, hi.Y)}
	v.width = max(lo.X, hi.X) - v.lo.X + 1
	v.height = max(lo.Y, hi.Y) - v.lo.Y + 1

	// Resize cells if needed
	if cap(v.cells) < v.height {
		v.cells = make([][]bool, v.height)
	}
	v.cells = v.cells[:v.height]
	for i := range v.cells {
		if cap(v.cells[i]) < v.width {
			v.cells[i] = make([]bool, v.width)
			continue
		}
		v.cells[i] = v.cells[i][:v.width]
		clear(v.cells[i])
	}
}

// Clear marks every cell dead, keeping the current dimensions
func (v *Viewport) Clear() {
	for y := range v.height {
		clear(v.cells[y])
	}
}

// GetWidth returns the width of the viewport
func (v *Viewport) GetWidth() int {
	return v.width
}

// GetHeight returns the height of the viewport
func (v *Viewport) GetHeight() int {
	return v.height
}

// Min returns the bottom-left corner
func (v *Viewport) Min() Cell {
	return v.lo
}

// Max returns the top-right corner
func (v *Viewport) Max() Cell {
	return Cell{X: v.lo.X + v.width - 1, Y: v.lo.Y + v.height - 1}
}

// Get reports whether c is alive; cells outside the viewport are dead
func (v *Viewport) Get(c Cell) bool {
	x, y := c.X-v.lo.X, c.Y-v.lo.Y
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return false
	}
	return v.cells[y][x]
}

// IsOrigin reports whether c is the reference cell (0,0)
func (v *Viewport) IsOrigin(c Cell) bool {
	return c == Cell{}
}

// Rows returns the viewport cells as display rows, top row first (highest y)
func (v *Viewport) Rows() [][]Cell {
	rows := RectangularGrid(v.lo, v.Max())
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// CountLivingCells returns the total number of living cells
func (v *Viewport) CountLivingCells() (count int) {
	for y := range v.height {
		for x := range v.width {
			if v.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetBoundingBoxSize returns the number of cells the viewport spans
func (v *Viewport) GetBoundingBoxSize() int {
	return v.width * v.height
}

// InjectRandomLife returns live plus up to count random cells placed within
// margin of its bounding rectangle. live itself is not modified.
func InjectRandomLife(live []Cell, count, margin int, rng *rand.Rand) []Cell {
	lo, hi, err := Bounds(live)
	if err != nil {
		lo, hi = Cell{}, Cell{}
	}
	lo = Cell{X: lo.X - margin, Y: lo.Y - margin}
	hi = Cell{X: hi.X + margin, Y: hi.Y + margin}

	set := NewCellSet(live...)
	for range count {
		set.Add(Cell{
			X: lo.X + rng.IntN(hi.X-lo.X+1),
			Y: lo.Y + rng.IntN(hi.Y-lo.Y+1),
		})
	}
	return set.Cells()
}
