package entity

import (
	"snake-battle/ai"
	"snake-battle/game/manager"
	"snake-battle/game/types"

	"golang.org/x/exp/rand"
)

// Kind tells who steers a snake.
type Kind int

const (
	Human Kind = iota
	AI
)

func (k Kind) String() string {
	if k == AI {
		return "ai"
	}
	return "human"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the result of one Advance.
type Outcome int

const (
	Idle  Outcome = iota // already dead, nothing happened
	Moved                // translated by one cell
	Ate                  // moved onto the food and grew
	Died                 // collided, body untouched
)

type Snake struct {
	Name      string
	Kind      Kind
	Body      []types.Cell // head first
	Direction types.Direction
	Score     int
	Alive     bool
	Path      []types.Cell // last A* route, AI only
	// ScorePulse counts down after eating; presentation uses it for a bounce.
	ScorePulse int
	Collision  manager.CollisionType
	// Attempted is the head cell of the last move, also set when that move was fatal.
	Attempted types.Cell

	moved types.Direction // heading actually travelled on the last move
}

func NewSnake(name string, kind Kind, grid types.Grid) *Snake {
	s := &Snake{Name: name, Kind: kind}
	s.Reset(grid)
	return s
}

// Reset puts the snake back to a single segment at the grid center, heading right.
func (s *Snake) Reset(grid types.Grid) {
	s.Body = []types.Cell{grid.Center()}
	s.Direction = types.Right
	s.moved = types.Right
	s.Score = 0
	s.Alive = true
	s.Path = nil
	s.ScorePulse = 0
	s.Collision = manager.NoCollision
	s.Attempted = grid.Center()
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

// SetDirection changes heading unless dir would reverse the snake. Both the
// pending heading and the last travelled heading are checked so two quick
// turns inside one tick cannot fold the snake back onto itself.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() || dir == s.moved.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Advance moves the snake one cell. AI snakes first steer toward food.
// On Ate the caller is responsible for relocating the food.
func (s *Snake) Advance(food types.Cell, opponent []types.Cell, cm *manager.CollisionManager, rng *rand.Rand) Outcome {
	if !s.Alive {
		return Idle
	}

	if s.Kind == AI {
		s.steer(food, opponent, cm.Grid(), rng)
	}

	newHead := s.GetHead().Add(s.Direction.Delta())
	s.Attempted = newHead
	if collision := cm.CheckCollision(newHead, s.Body, opponent); collision != manager.NoCollision {
		s.Kill(collision)
		return Died
	}

	s.moved = s.Direction
	s.Body = append([]types.Cell{newHead}, s.Body...)
	if cm.IsFoodCollision(newHead, food) {
		s.Score++
		s.ScorePulse = types.ScorePulseTicks
		return Ate
	}
	s.Body = s.Body[:len(s.Body)-1]
	return Moved
}

// Kill marks the snake dead without touching its body.
func (s *Snake) Kill(reason manager.CollisionType) {
	s.Alive = false
	s.Collision = reason
}

func (s *Snake) steer(food types.Cell, opponent []types.Cell, grid types.Grid, rng *rand.Rand) {
	// the route may not open with a reversal, even for a one-segment snake
	blocked := ai.Obstacles(grid, s.Body[1:], opponent)
	s.Path = ai.FindRoute(s.GetHead(), food, s.moved, blocked)
	if dir, ok := ai.Toward(s.Path); ok {
		s.Direction = dir
		return
	}
	s.Direction = ai.Wander(rng, s.moved)
}

// DecayPulse ticks the score pulse down by one.
func (s *Snake) DecayPulse() {
	if s.ScorePulse > 0 {
		s.ScorePulse--
	}
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, p := range s.Body {
		if p == c {
			return true
		}
	}
	return false
}
