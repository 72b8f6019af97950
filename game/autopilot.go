package game

import (
	"snake-battle/ai"

	"golang.org/x/exp/rand"
)

// Autopilot is a Frontend that steers the human snake with the same search
// the AI uses. Headless runs play against it.
type Autopilot struct {
	rng  *rand.Rand
	last *Snapshot
}

func NewAutopilot(rng *rand.Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

func (a *Autopilot) Present(s Snapshot) {
	a.last = &s
}

func (a *Autopilot) Poll() []Intent {
	if a.last == nil || a.last.State != Running || !a.last.Human.Alive {
		return nil
	}
	h := a.last.Human
	blocked := ai.Obstacles(a.last.Grid, h.Body[1:], a.last.AI.Body)

	dir, ok := ai.Toward(ai.FindRoute(h.Head(), a.last.Food, h.Direction, blocked))
	if !ok {
		dir = ai.Wander(a.rng, h.Direction)
	}
	return []Intent{MoveIntent(dir)}
}
