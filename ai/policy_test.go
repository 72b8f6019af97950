package ai

import (
	"testing"

	"snake-battle/game/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestToward(t *testing.T) {
	d, ok := Toward([]types.Cell{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}})
	assert.True(t, ok)
	assert.Equal(t, types.Up, d)

	_, ok = Toward([]types.Cell{{X: 3, Y: 3}})
	assert.False(t, ok)
	_, ok = Toward(nil)
	assert.False(t, ok)
}

func TestWanderNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, current := range types.Directions {
		seen := make(map[types.Direction]int)
		for i := 0; i < 300; i++ {
			d := Wander(rng, current)
			assert.NotEqual(t, current.Opposite(), d)
			seen[d]++
		}
		assert.Len(t, seen, 3, "heading %s", current)
	}
}

func TestWanderSeeded(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		assert.Equal(t, Wander(a, types.Right), Wander(b, types.Right))
	}
}
