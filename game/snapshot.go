package game

import (
	"slices"

	"snake-battle/game/entity"
	"snake-battle/game/manager"
	"snake-battle/game/types"
)

// ActorView is a read-only copy of one snake.
type ActorView struct {
	Name       string                `json:"name"`
	Kind       entity.Kind           `json:"kind"`
	Body       []types.Cell          `json:"body"`
	Direction  types.Direction       `json:"direction"`
	Score      int                   `json:"score"`
	Alive      bool                  `json:"alive"`
	ScorePulse int                   `json:"scorePulse"`
	Path       []types.Cell          `json:"path,omitempty"`
	Collision  manager.CollisionType `json:"collision,omitempty"`
}

func (a ActorView) Head() types.Cell {
	return a.Body[0]
}

// Snapshot is everything a frontend needs to draw one frame. It shares no
// memory with the match.
type Snapshot struct {
	MatchID string        `json:"matchId"`
	Tick    uint64        `json:"tick"`
	Grid    types.Grid    `json:"grid"`
	State   State         `json:"state"`
	Winner  Winner        `json:"winner"`
	Human   ActorView     `json:"human"`
	AI      ActorView     `json:"ai"`
	Food    types.Cell    `json:"food"`
	Stats   manager.Stats `json:"stats"`
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		MatchID: m.id,
		Tick:    m.tick,
		Grid:    m.grid,
		State:   m.state,
		Winner:  m.winner,
		Human:   view(m.human),
		AI:      view(m.ai),
		Food:    m.food.Position(),
		Stats:   m.stats,
	}
}

func view(s *entity.Snake) ActorView {
	return ActorView{
		Name:       s.Name,
		Kind:       s.Kind,
		Body:       slices.Clone(s.Body),
		Direction:  s.Direction,
		Score:      s.Score,
		Alive:      s.Alive,
		ScorePulse: s.ScorePulse,
		Path:       slices.Clone(s.Path),
		Collision:  s.Collision,
	}
}
