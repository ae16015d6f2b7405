package engine

import (
	"strings"
	"time"
)

// Snapshot is a read-only copy of a session, safe to keep and render after
// the session moves on.
type Snapshot struct {
	Width  int
	Height int
	Grid   [][]Shape // locked cells only

	Current      Piece
	CurrentCells []Point
	GhostCells   []Point // where the current piece would land
	Next         Shape

	Score       int
	Level       int
	Lines       int
	Pieces      int
	LastCleared int // rows removed by the most recent lock
	Status      Status
	Interval    time.Duration
}

// Snapshot copies the session state. It never mutates the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:       s.rules.Width,
		Height:      s.rules.Height,
		Grid:        s.board.Rows(),
		Next:        s.next,
		Score:       s.score,
		Level:       s.level,
		Lines:       s.lines,
		Pieces:      s.pieces,
		LastCleared: s.lastCleared,
		Status:      s.status,
		Interval:    s.GravityInterval(),
	}
	if s.Running() {
		snap.Current = s.current
		snap.CurrentCells = s.current.Cells()
		snap.GhostCells = s.current.Move(s.dropDistance(), 0).Cells()
	}
	return snap
}

// Rows renders the grid as one string per row with the current piece drawn
// over the locked cells. Empty cells are '.', blocks are shape letters.
func (snap Snapshot) Rows() []string {
	grid := make([][]byte, snap.Height)
	for r := range grid {
		grid[r] = make([]byte, snap.Width)
		for c := range grid[r] {
			grid[r][c] = snap.Grid[r][c].String()[0]
		}
	}
	letter := snap.Current.Shape.String()[0]
	for _, p := range snap.CurrentCells {
		if p.Row >= 0 && p.Row < snap.Height && p.Col >= 0 && p.Col < snap.Width {
			grid[p.Row][p.Col] = letter
		}
	}

	rows := make([]string, snap.Height)
	for r, line := range grid {
		rows[r] = string(line)
	}
	return rows
}

// String joins Rows with newlines.
func (snap Snapshot) String() string {
	return strings.Join(snap.Rows(), "\n")
}
