// Package engine implements the rules of the falling-block puzzle: the well,
// the seven tetrominoes, piece generation and the session state machine.
// It performs no I/O and knows nothing about terminals or timers; adapters
// drive it through commands and read it back through snapshots.
package engine

// Point is a cell coordinate in board space. Row 0 is the top row.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape identifies a tetromino. ShapeNone doubles as the empty-cell marker.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shapes lists the seven playable shapes in canonical order.
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

const shapeLetters = "IOTSZJL"

// String returns the shape letter, or "." for ShapeNone.
func (s Shape) String() string {
	if s == ShapeNone || int(s) > len(shapeLetters) {
		return "."
	}
	return shapeLetters[s-1 : s]
}

// Valid reports whether s is one of the seven playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeL
}

// ParseShape is the inverse of Shape.String for the seven playable shapes.
func ParseShape(letter string) (Shape, bool) {
	for _, s := range Shapes {
		if s.String() == letter {
			return s, true
		}
	}
	return ShapeNone, false
}

// patterns holds orientation 0 of each shape inside its bounding box.
var patterns = map[Shape][]string{
	ShapeI: {
		"....",
		"XXXX",
		"....",
		"....",
	},
	ShapeO: {
		"XX",
		"XX",
	},
	ShapeT: {
		".X.",
		"XXX",
		"...",
	},
	ShapeS: {
		".XX",
		"XX.",
		"...",
	},
	ShapeZ: {
		"XX.",
		".XX",
		"...",
	},
	ShapeJ: {
		"X..",
		"XXX",
		"...",
	},
	ShapeL: {
		"..X",
		"XXX",
		"...",
	},
}

var (
	offsetTables [len(Shapes) + 1][4][]Point
	boxSizes     [len(Shapes) + 1]int
)

func init() {
	for shape, rows := range patterns {
		n := len(rows)
		boxSizes[shape] = n

		box := make([][]bool, n)
		for r, line := range rows {
			box[r] = make([]bool, n)
			for c, ch := range line {
				box[r][c] = ch == 'X'
			}
		}

		for o := range 4 {
			offsetTables[shape][o] = boxCells(box)
			box = rotateBox(box)
		}
	}
}

// rotateBox turns a square matrix a quarter turn clockwise.
func rotateBox(box [][]bool) [][]bool {
	n := len(box)
	out := make([][]bool, n)
	for r := range out {
		out[r] = make([]bool, n)
	}
	for r := range n {
		for c := range n {
			out[c][n-1-r] = box[r][c]
		}
	}
	return out
}

// boxCells lists the filled cells of a matrix in row-major order.
func boxCells(box [][]bool) []Point {
	var cells []Point
	for r, row := range box {
		for c, filled := range row {
			if filled {
				cells = append(cells, Point{Row: r, Col: c})
			}
		}
	}
	return cells
}

func normalizeOrientation(orientation int) int {
	return ((orientation % 4) + 4) % 4
}

// Offsets returns the cell offsets of a shape in the given orientation,
// relative to the top-left corner of its bounding box.
func Offsets(shape Shape, orientation int) []Point {
	if shape == ShapeNone || int(shape) > len(Shapes) {
		return nil
	}
	table := offsetTables[shape][normalizeOrientation(orientation)]
	out := make([]Point, len(table))
	copy(out, table)
	return out
}

// AbsoluteCells applies a shape's orientation table to an anchor position.
// Any orientation index is accepted and taken modulo 4.
func AbsoluteCells(shape Shape, orientation int, pos Point) []Point {
	cells := Offsets(shape, orientation)
	for i := range cells {
		cells[i].Row += pos.Row
		cells[i].Col += pos.Col
	}
	return cells
}

// Rotated returns the orientation one quarter turn clockwise.
func Rotated(orientation int) int {
	return normalizeOrientation(orientation + 1)
}

// RotatedCCW returns the orientation one quarter turn counter-clockwise.
func RotatedCCW(orientation int) int {
	return normalizeOrientation(orientation + 3)
}

// Translated shifts a position by the given deltas.
func Translated(pos Point, dRow, dCol int) Point {
	return Point{Row: pos.Row + dRow, Col: pos.Col + dCol}
}

// Piece is a shape placed at an anchor (the top-left of its bounding box)
// in one of four orientations. Pieces are values; every transformation
// returns a new Piece and nothing is validated here.
type Piece struct {
	Shape       Shape `json:"shape"`
	Orientation int   `json:"orientation"`
	Pos         Point `json:"pos"`
}

// SpawnPiece places a shape in orientation 0, horizontally centred, with its
// topmost cells on row 0.
func SpawnPiece(shape Shape, boardWidth int) Piece {
	top := 0
	if offs := Offsets(shape, 0); len(offs) > 0 {
		top = offs[0].Row
	}
	return Piece{
		Shape: shape,
		Pos:   Point{Row: -top, Col: (boardWidth - boxSizes[shape]) / 2},
	}
}

// Cells returns the absolute board cells covered by the piece.
func (p Piece) Cells() []Point {
	return AbsoluteCells(p.Shape, p.Orientation, p.Pos)
}

// Rotate returns the piece turned clockwise.
func (p Piece) Rotate() Piece {
	p.Orientation = Rotated(p.Orientation)
	return p
}

// RotateCCW returns the piece turned counter-clockwise.
func (p Piece) RotateCCW() Piece {
	p.Orientation = RotatedCCW(p.Orientation)
	return p
}

// Move returns the piece shifted by the given deltas.
func (p Piece) Move(dRow, dCol int) Piece {
	p.Pos = Translated(p.Pos, dRow, dCol)
	return p
}
