package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func newTestServer(t *testing.T) (*Service, http.Handler) {
	t.Helper()
	svc := NewService(tetris.DefaultSettings())
	return svc, NewServer(svc, log.New(io.Discard))
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) gameJSON {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var g gameJSON
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&g))
	return g
}

func create(t *testing.T, h http.Handler, query string) gameJSON {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/games"+query)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode(t, rr)
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rr := do(t, h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestCreateGame(t *testing.T) {
	_, h := newTestServer(t)
	rr := do(t, h, http.MethodPost, "/games?seed=42")
	require.Equal(t, http.StatusCreated, rr.Code)
	g := decode(t, rr)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "/games/"+g.ID, rr.Header().Get("Location"))
	assert.Equal(t, tetris.VariantStandard, g.Variant)
	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 20, g.Height)
	assert.Len(t, g.Rows, 20)
	assert.Len(t, g.Current, 4)
	assert.Len(t, g.Ghost, 4)
	assert.Len(t, g.Next, 1)
	assert.Equal(t, "running", string(g.Status))
	assert.Equal(t, int64(600), g.IntervalMS)
	assert.Zero(t, g.Score)
	assert.Nil(t, g.Applied)
}

func TestCreateIsDeterministicForSeed(t *testing.T) {
	_, h := newTestServer(t)
	a := create(t, h, "?seed=7&variant=tetris_classic")
	b := create(t, h, "?seed=7&variant=tetris_classic")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, a.Next, b.Next)
	assert.Equal(t, tetris.VariantClassic, a.Variant)
}

func TestCreateRejectsBadInput(t *testing.T) {
	_, h := newTestServer(t)

	for _, q := range []string{"?variant=pentris", "?seed=abc", "?seed=99999999999999999999"} {
		rr := do(t, h, http.MethodPost, "/games"+q)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
		assert.Contains(t, rr.Body.String(), `"error"`, q)
	}
}

func TestGetAndDelete(t *testing.T) {
	svc, h := newTestServer(t)
	g := create(t, h, "?seed=1")

	rr := do(t, h, http.MethodGet, "/games/"+g.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, g.Rows, decode(t, rr).Rows)

	rr = do(t, h, http.MethodDelete, "/games/"+g.ID)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, svc.Len())

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/games/"+g.ID).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/games/"+g.ID).Code)
}

func TestCommands(t *testing.T) {
	_, h := newTestServer(t)
	g := create(t, h, "?seed=3")

	rr := do(t, h, http.MethodPost, "/games/"+g.ID+"/commands/hard-drop")
	require.Equal(t, http.StatusOK, rr.Code)
	after := decode(t, rr)
	require.NotNil(t, after.Applied)
	assert.True(t, *after.Applied)
	assert.Equal(t, 1, after.Pieces)
	assert.Positive(t, after.Score)
	assert.NotEqual(t, g.Rows, after.Rows)

	// Walk into the left wall; the last move is rejected without an error.
	var last gameJSON
	for range 10 {
		rr = do(t, h, http.MethodPost, "/games/"+g.ID+"/commands/move-left")
		require.Equal(t, http.StatusOK, rr.Code)
		last = decode(t, rr)
	}
	require.NotNil(t, last.Applied)
	assert.False(t, *last.Applied)
	minCol := last.Current[0].Col
	for _, p := range last.Current {
		minCol = min(minCol, p.Col)
	}
	assert.Zero(t, minCol)
}

func TestCommandErrors(t *testing.T) {
	_, h := newTestServer(t)
	g := create(t, h, "")

	rr := do(t, h, http.MethodPost, "/games/"+g.ID+"/commands/teleport")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown command")

	rr = do(t, h, http.MethodPost, "/games/nope/commands/tick")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameOverOverHTTP(t *testing.T) {
	_, h := newTestServer(t)
	g := create(t, h, "?seed=5")

	var cur gameJSON
	for range 200 {
		cur = decode(t, do(t, h, http.MethodPost, "/games/"+g.ID+"/commands/hard-drop"))
		if cur.Status == "game_over" {
			break
		}
	}
	require.Equal(t, "game_over", string(cur.Status))
	assert.Empty(t, cur.Current)
	assert.NotNil(t, cur.Current, "current should encode as [] rather than null")

	cur = decode(t, do(t, h, http.MethodPost, "/games/"+g.ID+"/commands/move-left"))
	assert.False(t, *cur.Applied)

	cur = decode(t, do(t, h, http.MethodPost, "/games/"+g.ID+"/commands/restart"))
	assert.Equal(t, "running", string(cur.Status))
	assert.Zero(t, cur.Score)
	assert.True(t, strings.Trim(strings.Join(cur.Rows, ""), ".") != "", "restarted game shows a piece")
}

func TestServiceLimitsAndExpiry(t *testing.T) {
	svc, h := newTestServer(t)
	svc.SetMaxGames(2)

	create(t, h, "")
	create(t, h, "")
	rr := do(t, h, http.MethodPost, "/games")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	now := time.Now()
	svc.now = func() time.Time { return now.Add(time.Hour) }
	assert.Equal(t, 2, svc.Expire(30*time.Minute))
	assert.Zero(t, svc.Len())
}
