package hud

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"snake-battle/game"
	"snake-battle/game/manager"
	"snake-battle/game/types"
)

func TestText(t *testing.T) {
	assert.Equal(t, "Player Wins!", Banner(game.HumanWins))
	assert.Equal(t, "AI Wins!", Banner(game.AIWins))
	assert.Equal(t, "It's a Tie!", Banner(game.Tie))
	assert.Empty(t, Banner(game.NoWinner))

	assert.Equal(t, "Player: 3", Score(game.ActorView{Name: "Player", Score: 3}))
	assert.Equal(t, "Games: 8", Games(manager.Stats{MatchesPlayed: 8}))
	assert.Equal(t, "AI Success: 37.5%", Success(manager.Stats{AIWinRate: 0.375}))
}

func TestCurves(t *testing.T) {
	assert.Zero(t, Bounce(0))
	for p := 1; p <= types.ScorePulseTicks; p++ {
		assert.LessOrEqual(t, math.Abs(Bounce(p)), 10.0)
	}
	assert.NotZero(t, Bounce(types.ScorePulseTicks))

	assert.Equal(t, uint8(255), Fade(0))
	assert.Equal(t, uint8(155), Fade(10))
	assert.Equal(t, uint8(50), Fade(100))

	for ms := 0; ms < 5000; ms += 37 {
		s := FoodScale(time.Duration(ms) * time.Millisecond)
		assert.InDelta(t, 1.0, s, 0.1+1e-9)
	}

	assert.Equal(t, uint8(0), OverlayAlpha(0))
	assert.Equal(t, uint8(50), OverlayAlpha(5))
	assert.Equal(t, uint8(200), OverlayAlpha(60))
}

func TestPathDots(t *testing.T) {
	path := []types.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	snap := game.Snapshot{AI: game.ActorView{Alive: true, Path: path}}

	assert.Equal(t, path[1:], PathDots(snap))

	snap.AI.Alive = false
	assert.Empty(t, PathDots(snap))

	snap.AI = game.ActorView{Alive: true, Path: path[:1]}
	assert.Empty(t, PathDots(snap))
}
