package manager

import (
	"snake-battle/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	OpponentCollision
	HeadOnCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case OpponentCollision:
		return "opponent"
	case HeadOnCollision:
		return "head-on"
	default:
		return "none"
	}
}

func (c CollisionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// CheckCollision classifies a prospective head position. Checks run in order
// wall, self, opponent and the first hit wins. The last segment of own is
// skipped because the tail moves out of the way on the same tick.
func (cm *CollisionManager) CheckCollision(pos types.Cell, own, opponent []types.Cell) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if len(own) > 0 && contains(own[:len(own)-1], pos) {
		return SelfCollision
	}
	if contains(opponent, pos) {
		return OpponentCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is free for food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, bodies ...[]types.Cell) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	for _, body := range bodies {
		if contains(body, pos) {
			return false
		}
	}
	return true
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}

func contains(cells []types.Cell, pos types.Cell) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}
