package game

import (
	"snake-battle/game/entity"
	"snake-battle/game/manager"
)

type EventKind int

const (
	FoodConsumed EventKind = iota
	ActorCollided
	MatchEnded
)

func (k EventKind) String() string {
	switch k {
	case FoodConsumed:
		return "food-consumed"
	case ActorCollided:
		return "actor-collided"
	case MatchEnded:
		return "match-ended"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is something that happened during a tick. Frontends turn events into
// sound; the stats recorder persists on MatchEnded.
type Event struct {
	Kind      EventKind             `json:"kind"`
	Tick      uint64                `json:"tick"`
	Actor     entity.Kind           `json:"actor"`
	Name      string                `json:"name,omitempty"`
	Collision manager.CollisionType `json:"collision,omitempty"`
	Winner    Winner                `json:"winner,omitempty"`
}
