package manager

import (
	"testing"

	"snake-battle/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return NewFoodManager(NewCollisionManager(grid), rand.New(rand.NewSource(seed)))
}

func fill(grid types.Grid, except ...types.Cell) []types.Cell {
	skip := make(map[types.Cell]bool)
	for _, c := range except {
		skip[c] = true
	}
	var cells []types.Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if c := (types.Cell{X: x, Y: y}); !skip[c] {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func TestRelocateAvoidsBodies(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 6}
	fm := newFoodManager(grid, 3)
	a := []types.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	b := []types.Cell{{X: 4, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 5}}

	for i := 0; i < 500; i++ {
		food, ok := fm.Relocate(a, b)
		require.True(t, ok)
		assert.True(t, grid.Contains(food))
		assert.NotContains(t, a, food)
		assert.NotContains(t, b, food)
		assert.Equal(t, food, fm.Position())
	}
}

func TestRelocateNearlyFullGrid(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 5}
	last := types.Cell{X: 4, Y: 3}
	occupied := fill(grid, last)
	half := len(occupied) / 2

	for seed := uint64(0); seed < 20; seed++ {
		fm := newFoodManager(grid, seed)
		food, ok := fm.Relocate(occupied[:half], occupied[half:])
		require.True(t, ok)
		assert.Equal(t, last, food)
	}
}

func TestRelocateFullGrid(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := newFoodManager(grid, 1)
	before, ok := fm.Relocate()
	require.True(t, ok)

	_, ok = fm.Relocate(fill(grid))
	assert.False(t, ok)
	assert.Equal(t, before, fm.Position())
}

func TestRelocateCoversFreeCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	fm := newFoodManager(grid, 11)
	body := []types.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}

	seen := make(map[types.Cell]int)
	for i := 0; i < 400; i++ {
		food, ok := fm.Relocate(body)
		require.True(t, ok)
		seen[food]++
	}
	assert.Len(t, seen, 4)
}

func TestRelocateSeeded(t *testing.T) {
	grid := types.Grid{Width: 40, Height: 30}
	a, b := newFoodManager(grid, 5), newFoodManager(grid, 5)
	for i := 0; i < 10; i++ {
		fa, _ := a.Relocate()
		fb, _ := b.Relocate()
		assert.Equal(t, fa, fb)
	}
}
