package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by direct cell queries outside the grid.
var ErrOutOfBounds = errors.New("engine: cell out of bounds")

// Board is the well: a fixed grid of cells, each empty or holding the shape
// that was locked there.
type Board struct {
	height int
	width  int
	cells  [][]Shape
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(height, width int) *Board {
	b := &Board{height: height, width: width}
	b.cells = make([][]Shape, height)
	for r := range b.cells {
		b.cells[r] = make([]Shape, width)
	}
	return b
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// IsCellOccupied reports whether a cell holds a locked block.
// Coordinates outside the grid yield an error wrapping ErrOutOfBounds.
func (b *Board) IsCellOccupied(row, col int) (bool, error) {
	if !b.inBounds(row, col) {
		return false, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.height, b.width)
	}
	return b.cells[row][col] != ShapeNone, nil
}

// Cell returns the shape locked at a cell, or ShapeNone when the cell is
// empty or outside the grid.
func (b *Board) Cell(row, col int) Shape {
	if !b.inBounds(row, col) {
		return ShapeNone
	}
	return b.cells[row][col]
}

// CanPlace reports whether every cell is inside the grid and empty.
func (b *Board) CanPlace(cells []Point) bool {
	for _, p := range cells {
		if !b.inBounds(p.Row, p.Col) || b.cells[p.Row][p.Col] != ShapeNone {
			return false
		}
	}
	return true
}

// Lock marks cells as occupied by shape. The cells must be placeable;
// locking anything else is a bug in the caller and panics.
func (b *Board) Lock(cells []Point, shape Shape) {
	if shape == ShapeNone || !b.CanPlace(cells) {
		panic(fmt.Sprintf("engine: cannot lock %s at %v", shape, cells))
	}
	for _, p := range cells {
		b.cells[p.Row][p.Col] = shape
	}
}

func (b *Board) rowFull(row int) bool {
	for _, s := range b.cells[row] {
		if s == ShapeNone {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all completely filled rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for r := range b.cells {
		if b.rowFull(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// ClearFullRows removes every full row, shifts the remaining rows down and
// inserts empty rows at the top. Full rows are determined once, before any
// row moves. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	cleared := make(map[int]bool, len(full))
	for _, r := range full {
		cleared[r] = true
	}

	rows := make([][]Shape, 0, b.height)
	for range full {
		rows = append(rows, make([]Shape, b.width))
	}
	for r, row := range b.cells {
		if !cleared[r] {
			rows = append(rows, row)
		}
	}
	b.cells = rows
	return len(full)
}

// Reset empties the whole grid.
func (b *Board) Reset() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Shape {
	out := make([][]Shape, b.height)
	for r, row := range b.cells {
		out[r] = make([]Shape, b.width)
		copy(out[r], row)
	}
	return out
}
