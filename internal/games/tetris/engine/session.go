package engine

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusRunning  Status = "running"
	StatusGameOver Status = "game_over"
)

// Session is one game: a board, the falling piece, the lookahead shape and
// the score counters. A Session is not safe for concurrent use; adapters
// must serialise every call.
type Session struct {
	rules  Rules
	source GeneratorSource
	gen    Generator
	board  *Board

	current Piece
	next    Shape
	status  Status

	score       int
	lines       int
	level       int
	pieces      int
	lastCleared int
}

// NewSession validates rules and starts a game with a generator from source.
func NewSession(rules Rules, source GeneratorSource) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("engine: nil generator source")
	}

	s := &Session{
		rules:  rules,
		source: source,
		board:  NewBoard(rules.Height, rules.Width),
	}
	s.Restart()
	return s, nil
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Running reports whether gameplay commands are accepted.
func (s *Session) Running() bool {
	return s.status == StatusRunning
}

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 0.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int { return s.lines }

// Pieces returns how many pieces have locked.
func (s *Session) Pieces() int { return s.pieces }

// GravityInterval returns the time between ticks at the current level.
func (s *Session) GravityInterval() time.Duration {
	return s.rules.Gravity.Interval(s.level)
}

// Restart clears the board and counters, takes a fresh generator and spawns
// a new current/next pair. It is accepted in any state.
func (s *Session) Restart() {
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.level = 0
	s.pieces = 0
	s.lastCleared = 0
	s.status = StatusRunning

	s.gen = s.source()
	s.next = s.draw()
	s.spawn()
}

// draw takes the next shape from the generator. A generator that yields an
// unplayable shape is broken, so draw panics rather than spawn a piece with
// no cells.
func (s *Session) draw() Shape {
	shape := s.gen.Next()
	if !shape.Valid() {
		panic(fmt.Sprintf("engine: generator returned unplayable shape %d", shape))
	}
	return shape
}

// spawn promotes the lookahead shape to the current piece and draws a new
// lookahead. The game ends if the new piece does not fit.
func (s *Session) spawn() {
	p := SpawnPiece(s.next, s.rules.Width)
	s.next = s.draw()

	if !s.board.CanPlace(p.Cells()) {
		s.current = Piece{}
		s.status = StatusGameOver
		return
	}
	s.current = p
}

// try makes candidate the current piece if it fits.
func (s *Session) try(candidate Piece) bool {
	if !s.board.CanPlace(candidate.Cells()) {
		return false
	}
	s.current = candidate
	return true
}

// MoveLeft shifts the piece one column left if the cells are free.
func (s *Session) MoveLeft() bool {
	if !s.Running() {
		return false
	}
	return s.try(s.current.Move(0, -1))
}

// MoveRight shifts the piece one column right if the cells are free.
func (s *Session) MoveRight() bool {
	if !s.Running() {
		return false
	}
	return s.try(s.current.Move(0, 1))
}

// Rotate turns the piece clockwise. A blocked rotation is rejected unless
// wall kicks are enabled and one of the kick offsets fits.
func (s *Session) Rotate() bool {
	if !s.Running() {
		return false
	}
	return s.rotateTo(s.current.Rotate())
}

// RotateCCW turns the piece counter-clockwise under the same rules as Rotate.
func (s *Session) RotateCCW() bool {
	if !s.Running() {
		return false
	}
	return s.rotateTo(s.current.RotateCCW())
}

func (s *Session) rotateTo(candidate Piece) bool {
	if !s.rules.WallKicks {
		return s.try(candidate)
	}
	for _, k := range kickOffsets {
		if s.try(candidate.Move(k.Row, k.Col)) {
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row and awards soft drop points. If the
// piece cannot move it locks instead and SoftDrop returns false.
func (s *Session) SoftDrop() bool {
	if !s.Running() {
		return false
	}
	if s.try(s.current.Move(1, 0)) {
		s.score += s.rules.SoftDropPoints
		return true
	}
	s.lockIn()
	return false
}

// HardDrop drops the piece as far as it goes, locks it and returns the
// number of rows it fell.
func (s *Session) HardDrop() int {
	if !s.Running() {
		return 0
	}
	rows := s.dropDistance()
	s.current = s.current.Move(rows, 0)
	s.score += rows * s.rules.HardDropPoints
	s.lockIn()
	return rows
}

// Tick applies one step of gravity. It behaves like SoftDrop without
// awarding points.
func (s *Session) Tick() bool {
	if !s.Running() {
		return false
	}
	if s.try(s.current.Move(1, 0)) {
		return true
	}
	s.lockIn()
	return false
}

// Apply dispatches a command and reports whether it had any effect.
func (s *Session) Apply(c Command) bool {
	switch c {
	case CommandMoveLeft:
		return s.MoveLeft()
	case CommandMoveRight:
		return s.MoveRight()
	case CommandRotate:
		return s.Rotate()
	case CommandRotateCCW:
		return s.RotateCCW()
	case CommandSoftDrop:
		running := s.Running()
		s.SoftDrop()
		return running
	case CommandHardDrop:
		running := s.Running()
		s.HardDrop()
		return running
	case CommandTick:
		running := s.Running()
		s.Tick()
		return running
	case CommandRestart:
		s.Restart()
		return true
	}
	return false
}

func (s *Session) dropDistance() int {
	d := 0
	for s.board.CanPlace(s.current.Move(d+1, 0).Cells()) {
		d++
	}
	return d
}

// lockIn merges the piece, clears rows, updates score and level, then
// spawns the next piece.
func (s *Session) lockIn() {
	s.board.Lock(s.current.Cells(), s.current.Shape)

	k := s.board.ClearFullRows()
	s.score += s.rules.LineClearPoints(k, s.level)
	s.lines += k
	s.level = s.rules.LevelFor(s.lines)
	s.pieces++
	s.lastCleared = k

	s.spawn()
}
