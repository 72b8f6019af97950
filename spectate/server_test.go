package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-battle/game"
	"snake-battle/game/manager"
	"snake-battle/game/types"
)

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, New(zerolog.Nop()), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestSnapshotBeforeFirstTick(t *testing.T) {
	s := New(zerolog.Nop())

	assert.Equal(t, http.StatusServiceUnavailable, get(t, s, "/snapshot").Code)

	rec := get(t, s, "/stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matchesPlayed":0,"aiWinRate":0}`, rec.Body.String())
}

func TestSnapshotAfterConsume(t *testing.T) {
	s := New(zerolog.Nop())
	snap := game.Snapshot{
		MatchID: "m-1",
		Tick:    7,
		Grid:    types.Grid{Width: 40, Height: 30},
		State:   game.Running,
		Human:   game.ActorView{Name: "Player", Body: []types.Cell{{X: 3, Y: 4}}, Alive: true, Direction: types.Up},
		AI:      game.ActorView{Name: "AI", Body: []types.Cell{{X: 9, Y: 9}}, Alive: true, Score: 2},
		Food:    types.Cell{X: 1, Y: 2},
		Stats:   manager.Stats{MatchesPlayed: 4, AIWinRate: 0.5},
	}
	s.Consume(snap, nil)

	rec := get(t, s, "/snapshot")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "m-1", body["matchId"])
	assert.Equal(t, "running", body["state"])
	assert.Equal(t, "up", body["human"].(map[string]any)["direction"])
	assert.Equal(t, float64(2), body["ai"].(map[string]any)["score"])

	rec = get(t, s, "/stats")
	assert.JSONEq(t, `{"matchesPlayed":4,"aiWinRate":0.5}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := get(t, New(zerolog.Nop()), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestStartShutdown(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.Start("127.0.0.1:0"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))
}
