// Package web serves Tetris sessions over HTTP as JSON. Clients create a
// game, send engine commands (including gravity ticks) and read snapshots.
package web

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Errors exposed by the service layer.
var (
	ErrNotFound = errors.New("game not found")
	ErrTooMany  = errors.New("too many games")
)

// DefaultMaxGames bounds the number of live games a service holds.
const DefaultMaxGames = 1024

// Game is a copy of one hosted game's state.
type Game struct {
	ID       string
	Variant  string
	Snapshot engine.Snapshot
	Created  time.Time
	Updated  time.Time
}

type hosted struct {
	id      string
	variant string
	session *engine.Session
	created time.Time
	updated time.Time
}

func (h *hosted) view() Game {
	return Game{
		ID:       h.id,
		Variant:  h.variant,
		Snapshot: h.session.Snapshot(),
		Created:  h.created,
		Updated:  h.updated,
	}
}

// Service owns the hosted games. One mutex guards the map and every engine
// call, so snapshots never observe a half-applied command.
type Service struct {
	mu       sync.Mutex
	games    map[string]*hosted
	settings tetris.Settings
	maxGames int
	now      func() time.Time
}

// NewService creates a service whose games use settings.
func NewService(settings tetris.Settings) *Service {
	return &Service{
		games:    make(map[string]*hosted),
		settings: settings,
		maxGames: DefaultMaxGames,
		now:      time.Now,
	}
}

// SetMaxGames changes the live game limit; n <= 0 removes it.
func (s *Service) SetMaxGames(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxGames = n
}

// Create starts a game of the given variant. A zero seed picks one from the
// clock.
func (s *Service) Create(variant string, seed int64) (Game, error) {
	settings, err := s.settings.ForVariant(variant)
	if err != nil {
		return Game{}, err
	}
	if variant == "" {
		variant = tetris.VariantStandard
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	source, err := engine.SeededSource(settings.Policy, seed)
	if err != nil {
		return Game{}, err
	}
	session, err := engine.NewSession(settings.Rules, source)
	if err != nil {
		return Game{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return Game{}, ErrTooMany
	}

	now := s.now()
	h := &hosted{
		id:      uuid.NewString(),
		variant: variant,
		session: session,
		created: now,
		updated: now,
	}
	s.games[h.id] = h
	return h.view(), nil
}

// Get returns a game's current state.
func (s *Service) Get(id string) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.games[id]
	if !ok {
		return Game{}, ErrNotFound
	}
	return h.view(), nil
}

// Apply runs one command against a game. applied reports whether the command
// changed anything; a rejected move is not an error.
func (s *Service) Apply(id string, cmd engine.Command) (g Game, applied bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.games[id]
	if !ok {
		return Game{}, false, ErrNotFound
	}
	applied = h.session.Apply(cmd)
	h.updated = s.now()
	return h.view(), applied, nil
}

// Delete removes a game.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return ErrNotFound
	}
	delete(s.games, id)
	return nil
}

// Len returns the number of live games.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// Expire removes games not updated for longer than idle and returns how many
// were removed.
func (s *Service) Expire(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	n := 0
	for id, h := range s.games {
		if h.updated.Before(cutoff) {
			delete(s.games, id)
			n++
		}
	}
	return n
}
