package manager

import (
	"snake-battle/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food item on the grid.
type FoodManager struct {
	grid         types.Grid
	position     types.Cell
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

func NewFoodManager(collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         collisionMgr.Grid(),
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

func (fm *FoodManager) Position() types.Cell {
	return fm.position
}

// Relocate moves the food to a free cell chosen uniformly at random and
// returns it. ok is false when no free cell exists, in which case the
// position is left unchanged.
func (fm *FoodManager) Relocate(occupied ...[]types.Cell) (types.Cell, bool) {
	food, ok := fm.GenerateFood(occupied...)
	if ok {
		fm.position = food
	}
	return food, ok
}

// GenerateFood samples random cells a bounded number of times and then falls
// back to scanning the whole grid, so it terminates even on a nearly full grid.
func (fm *FoodManager) GenerateFood(occupied ...[]types.Cell) (types.Cell, bool) {
	for i := 0; i < types.MaxSpawnAttempts; i++ {
		food := types.Cell{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied...) {
			return food, true
		}
	}

	taken := make(map[types.Cell]struct{})
	for _, body := range occupied {
		for _, c := range body {
			taken[c] = struct{}{}
		}
	}
	free := make([]types.Cell, 0, max(fm.grid.Area()-len(taken), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return fm.position, false
	}
	return free[fm.rng.Intn(len(free))], true
}
