package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// gameJSON is the wire form of a hosted game.
type gameJSON struct {
	ID         string         `json:"id"`
	Variant    string         `json:"variant"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Rows       []string       `json:"rows"`
	Current    []engine.Point `json:"current"`
	Ghost      []engine.Point `json:"ghost"`
	Next       string         `json:"next"`
	Score      int            `json:"score"`
	Level      int            `json:"level"`
	Lines      int            `json:"lines"`
	Pieces     int            `json:"pieces"`
	Cleared    int            `json:"cleared"`
	Status     engine.Status  `json:"status"`
	IntervalMS int64          `json:"interval_ms"`
	Applied    *bool          `json:"applied,omitempty"`
}

func toJSON(g Game) gameJSON {
	snap := g.Snapshot
	out := gameJSON{
		ID:         g.ID,
		Variant:    g.Variant,
		Width:      snap.Width,
		Height:     snap.Height,
		Rows:       snap.Rows(),
		Current:    snap.CurrentCells,
		Ghost:      snap.GhostCells,
		Next:       snap.Next.String(),
		Score:      snap.Score,
		Level:      snap.Level,
		Lines:      snap.Lines,
		Pieces:     snap.Pieces,
		Cleared:    snap.LastCleared,
		Status:     snap.Status,
		IntervalMS: snap.Interval.Milliseconds(),
	}
	if out.Current == nil {
		out.Current = []engine.Point{}
	}
	if out.Ghost == nil {
		out.Ghost = []engine.Point{}
	}
	return out
}

type errorJSON struct {
	Error string `json:"error"`
}

type handlers struct {
	svc    *Service
	logger *log.Logger
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("cannot write response", "err", err)
	}
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrTooMany):
		status = http.StatusServiceUnavailable
	case errors.Is(err, tetris.ErrUnknownVariant),
		errors.Is(err, engine.ErrUnknownCommand),
		errors.Is(err, strconv.ErrSyntax),
		errors.Is(err, strconv.ErrRange):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "err", err)
	}
	h.writeJSON(w, status, errorJSON{Error: err.Error()})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var seed int64
	if s := q.Get("seed"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			h.writeError(w, err)
			return
		}
		seed = v
	}

	g, err := h.svc.Create(q.Get("variant"), seed)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("game created", "id", g.ID, "variant", g.Variant, "live", h.svc.Len())
	w.Header().Set("Location", "/games/"+g.ID)
	h.writeJSON(w, http.StatusCreated, toJSON(g))
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toJSON(g))
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.logger.Info("game deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) command(w http.ResponseWriter, r *http.Request) {
	cmd, err := engine.ParseCommand(chi.URLParam(r, "command"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	g, applied, err := h.svc.Apply(chi.URLParam(r, "id"), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := toJSON(g)
	out.Applied = &applied
	h.writeJSON(w, http.StatusOK, out)
}
