package entity

import (
	"testing"

	"snake-battle/game/manager"
	"snake-battle/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var grid = types.Grid{Width: 40, Height: 30}

func cells(xy ...int) []types.Cell {
	out := make([]types.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Cell{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func newTestSnake(kind Kind, dir types.Direction, body ...types.Cell) *Snake {
	s := NewSnake(kind.String(), kind, grid)
	s.Body = body
	s.Direction = dir
	s.moved = dir
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake("player", Human, grid)

	assert.Equal(t, []types.Cell{{X: 20, Y: 15}}, s.Body)
	assert.Equal(t, types.Right, s.Direction)
	assert.True(t, s.Alive)
	assert.Zero(t, s.Score)
	assert.Empty(t, s.Path)
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := NewSnake("player", Human, grid)

	assert.False(t, s.SetDirection(types.Left))
	assert.Equal(t, types.Right, s.Direction)
	assert.False(t, s.SetDirection(types.None))

	assert.True(t, s.SetDirection(types.Up))
	assert.Equal(t, types.Up, s.Direction)

	// still travelling right until the next move, so left stays forbidden
	assert.False(t, s.SetDirection(types.Left))
	assert.Equal(t, types.Up, s.Direction)
	assert.False(t, s.SetDirection(types.Down))
}

func TestAdvanceMoves(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := newTestSnake(Human, types.Right, cells(5, 5, 4, 5, 3, 5)...)

	out := s.Advance(types.Cell{X: 30, Y: 20}, nil, cm, rand.New(rand.NewSource(1)))

	assert.Equal(t, Moved, out)
	assert.Equal(t, cells(6, 5, 5, 5, 4, 5), s.Body)
	assert.Zero(t, s.Score)
}

func TestAdvanceEats(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := newTestSnake(Human, types.Down, cells(5, 5, 4, 5)...)

	out := s.Advance(types.Cell{X: 5, Y: 6}, nil, cm, rand.New(rand.NewSource(1)))

	assert.Equal(t, Ate, out)
	assert.Equal(t, cells(5, 6, 5, 5, 4, 5), s.Body)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, types.ScorePulseTicks, s.ScorePulse)
}

func TestAdvanceDeaths(t *testing.T) {
	tests := []struct {
		name     string
		dir      types.Direction
		body     []types.Cell
		opponent []types.Cell
		want     manager.CollisionType
	}{
		{"wall", types.Right, cells(39, 3, 38, 3), nil, manager.WallCollision},
		{"top wall", types.Up, cells(7, 0), nil, manager.WallCollision},
		{"self", types.Down, cells(5, 5, 6, 5, 6, 6, 5, 6, 4, 6), nil, manager.SelfCollision},
		{"opponent", types.Right, cells(5, 5, 4, 5), cells(7, 5, 6, 5, 6, 4), manager.OpponentCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := manager.NewCollisionManager(grid)
			s := newTestSnake(Human, tt.dir, tt.body...)
			before := append([]types.Cell(nil), s.Body...)

			out := s.Advance(types.Cell{X: 30, Y: 20}, tt.opponent, cm, rand.New(rand.NewSource(1)))

			assert.Equal(t, Died, out)
			assert.False(t, s.Alive)
			assert.Equal(t, tt.want, s.Collision)
			assert.Equal(t, before, s.Body)
			assert.Equal(t, Idle, s.Advance(types.Cell{}, nil, cm, rand.New(rand.NewSource(1))))
		})
	}
}

func TestAdvanceIntoVacatingTail(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	// square loop: head at (5,5) moving down into the tail at (5,6)
	s := newTestSnake(Human, types.Down, cells(5, 5, 6, 5, 6, 6, 5, 6)...)

	out := s.Advance(types.Cell{X: 30, Y: 20}, nil, cm, rand.New(rand.NewSource(1)))

	assert.Equal(t, Moved, out)
	assert.Equal(t, cells(5, 6, 5, 5, 6, 5, 6, 6), s.Body)
}

func TestAIFollowsPath(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := NewSnake("ai", AI, grid)
	food := types.Cell{X: 25, Y: 15}

	out := s.Advance(food, nil, cm, rand.New(rand.NewSource(1)))

	assert.Equal(t, Moved, out)
	require.Len(t, s.Path, 6)
	assert.Equal(t, types.Cell{X: 20, Y: 15}, s.Path[0])
	assert.Equal(t, food, s.Path[5])
	assert.Equal(t, types.Cell{X: 21, Y: 15}, s.GetHead())
}

func TestAIReachesFood(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := NewSnake("ai", AI, grid)
	food := types.Cell{X: 3, Y: 27}
	opponent := cells(10, 20, 11, 20, 12, 20, 13, 20, 14, 20)
	rng := rand.New(rand.NewSource(1))

	steps := 0
	for out := Moved; out == Moved; steps++ {
		out = s.Advance(food, opponent, cm, rng)
		require.NotEqual(t, Died, out)
		if out == Ate {
			break
		}
	}
	assert.Equal(t, types.Manhattan(grid.Center(), food), steps+1)
	assert.Equal(t, 1, s.Score)
	assert.Len(t, s.Body, 2)
}

func TestAINeverReversesSingleSegment(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := NewSnake("ai", AI, grid)
	// food directly behind the head
	food := types.Cell{X: 15, Y: 15}

	s.Advance(food, nil, cm, rand.New(rand.NewSource(1)))

	assert.NotEqual(t, types.Left, s.Direction)
	assert.True(t, s.Alive)
	assert.Equal(t, 1+types.Manhattan(types.Cell{X: 20, Y: 15}, food)+2, len(s.Path))
}

func TestAIDetoursToFoodBehind(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		cm := manager.NewCollisionManager(grid)
		s := NewSnake("ai", AI, grid)
		food := types.Cell{X: 19, Y: 15}

		out := s.Advance(food, nil, cm, rand.New(rand.NewSource(seed)))

		require.Equal(t, Moved, out)
		require.Len(t, s.Path, 1+types.Manhattan(grid.Center(), food)+2, "seed %d", seed)
		assert.Equal(t, grid.Center(), s.Path[0])
		assert.Equal(t, food, s.Path[len(s.Path)-1])
		assert.NotEqual(t, types.Left, s.Direction)
		assert.Equal(t, s.Path[1], s.GetHead())
	}

	// the detour is followed to the food without ever turning back
	cm := manager.NewCollisionManager(grid)
	s := NewSnake("ai", AI, grid)
	rng := rand.New(rand.NewSource(1))
	food := types.Cell{X: 19, Y: 15}
	steps := 0
	for ; steps < 10; steps++ {
		prev := s.moved
		out := s.Advance(food, nil, cm, rng)
		require.NotEqual(t, Died, out)
		assert.NotEqual(t, prev.Opposite(), s.moved)
		if out == Ate {
			break
		}
	}
	assert.Equal(t, 2, steps)
	assert.Equal(t, 1, s.Score)
}

func TestAIWandersWhenBoxedIn(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	s := newTestSnake(AI, types.Right, cells(5, 5, 4, 5)...)
	opponent := cells(6, 5, 5, 4, 5, 6)

	out := s.Advance(types.Cell{X: 30, Y: 20}, opponent, cm, rand.New(rand.NewSource(3)))

	assert.Empty(t, s.Path)
	assert.NotEqual(t, types.Left, s.Direction)
	assert.Equal(t, Died, out)
	assert.Equal(t, manager.OpponentCollision, s.Collision)
}

func TestBodyLengthInvariant(t *testing.T) {
	cm := manager.NewCollisionManager(grid)
	rng := rand.New(rand.NewSource(8))
	fm := manager.NewFoodManager(cm, rng)
	s := NewSnake("ai", AI, grid)
	food, _ := fm.Relocate(s.Body)

	for tick := 0; tick < 400 && s.Alive; tick++ {
		before := len(s.Body)
		switch s.Advance(food, nil, cm, rng) {
		case Ate:
			assert.Equal(t, before+1, len(s.Body))
			var ok bool
			food, ok = fm.Relocate(s.Body)
			require.True(t, ok)
		case Moved:
			assert.Equal(t, before, len(s.Body))
		case Died:
			assert.Equal(t, before, len(s.Body))
		}
		seen := make(map[types.Cell]bool)
		for _, c := range s.Body {
			require.False(t, seen[c], "duplicate segment %v", c)
			seen[c] = true
		}
	}
	assert.Positive(t, s.Score)
}
