// Package game runs a human versus AI snake match: one shared grid, one food
// item, a fixed tick rate and a running AI win-rate across matches.
package game

import (
	"time"

	"snake-battle/config"
	"snake-battle/game/entity"
	"snake-battle/game/manager"
	"snake-battle/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type State int

const (
	NotStarted State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "not-started"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Winner int

const (
	NoWinner Winner = iota
	HumanWins
	AIWins
	Tie
)

func (w Winner) String() string {
	switch w {
	case HumanWins:
		return "human"
	case AIWins:
		return "ai"
	case Tie:
		return "tie"
	default:
		return "none"
	}
}

func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

type Match struct {
	id         string
	grid       types.Grid
	interval   time.Duration
	human      *entity.Snake
	ai         *entity.Snake
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	rng        *rand.Rand
	logger     zerolog.Logger

	state  State
	winner Winner
	tick   uint64
	stats  manager.Stats
	events []Event
}

type Option func(*Match)

// WithStats seeds the running statistic, usually from a StatsStore.
func WithStats(stats manager.Stats) Option {
	return func(m *Match) { m.stats = stats }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Match) { m.logger = logger }
}

// WithRand replaces the PRNG seeded from the config.
func WithRand(rng *rand.Rand) Option {
	return func(m *Match) { m.rng = rng }
}

func NewMatch(cfg config.Config, opts ...Option) *Match {
	grid := cfg.Grid()
	m := &Match{
		grid:       grid,
		interval:   cfg.TickInterval(),
		collisions: manager.NewCollisionManager(grid),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(cfg.SeedOrClock()))
	}

	m.human = entity.NewSnake("Player", entity.Human, grid)
	m.ai = entity.NewSnake("AI", entity.AI, grid)
	m.food = manager.NewFoodManager(m.collisions, m.rng)
	m.reset()
	return m
}

func (m *Match) reset() {
	m.id = uuid.NewString()
	m.human.Reset(m.grid)
	m.ai.Reset(m.grid)
	m.food.Relocate(m.human.Body, m.ai.Body)
	m.winner = NoWinner
	m.tick = 0
}

// Apply feeds one frontend intent into the match. It reports whether the
// intent changed anything. Quit is left to the loop.
// A heading intent is refused when it reverses either the pending heading or
// the heading travelled on the last tick.
func (m *Match) Apply(in Intent) bool {
	switch in {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		if m.state != Running {
			return false
		}
		return m.human.SetDirection(in.Direction())
	case Start:
		return m.Start()
	case Pause:
		return m.Pause()
	case Resume:
		return m.Resume()
	case TogglePause:
		return m.TogglePause()
	case Restart:
		return m.Restart()
	}
	return false
}

func (m *Match) Start() bool {
	if m.state != NotStarted {
		return false
	}
	m.transition(Running)
	return true
}

func (m *Match) Pause() bool {
	if m.state != Running {
		return false
	}
	m.transition(Paused)
	return true
}

func (m *Match) Resume() bool {
	if m.state != Paused {
		return false
	}
	m.transition(Running)
	return true
}

func (m *Match) TogglePause() bool {
	if m.state == Paused {
		return m.Resume()
	}
	return m.Pause()
}

// Restart begins a fresh match. Only an ended match can be restarted.
func (m *Match) Restart() bool {
	if m.state != Ended {
		return false
	}
	m.reset()
	m.transition(Running)
	return true
}

// Tick advances the match by one step. It does nothing unless Running.
// The human moves first, so the AI plans against the human's new body while
// the human only saw the AI's previous one.
func (m *Match) Tick() {
	if m.state != Running {
		return
	}
	m.tick++

	if full := m.advance(m.human, m.ai); full {
		m.end(m.byScore())
		return
	}
	if full := m.advance(m.ai, m.human); full {
		m.end(m.byScore())
		return
	}

	// both heads claimed the same cell: the AI ran into the human's new head
	if !m.ai.Alive && m.ai.Collision == manager.OpponentCollision &&
		m.human.Alive && m.ai.Attempted == m.human.GetHead() {
		m.ai.Collision = manager.HeadOnCollision
		m.human.Kill(manager.HeadOnCollision)
		m.emit(ActorCollided, m.human)
	}

	switch {
	case !m.human.Alive && !m.ai.Alive:
		m.end(m.byScore())
	case !m.human.Alive:
		m.end(AIWins)
	case !m.ai.Alive:
		m.end(HumanWins)
	}
}

// advance moves one actor and reports whether the grid filled up.
func (m *Match) advance(s, opponent *entity.Snake) bool {
	switch s.Advance(m.food.Position(), opponent.Body, m.collisions, m.rng) {
	case entity.Ate:
		m.emit(FoodConsumed, s)
		if _, ok := m.food.Relocate(m.human.Body, m.ai.Body); !ok {
			return true
		}
	case entity.Died:
		m.emit(ActorCollided, s)
	}
	return false
}

func (m *Match) byScore() Winner {
	switch {
	case m.human.Score > m.ai.Score:
		return HumanWins
	case m.ai.Score > m.human.Score:
		return AIWins
	default:
		return Tie
	}
}

// Abandon ends a running or paused match on the current scores.
func (m *Match) Abandon() bool {
	if m.state != Running && m.state != Paused {
		return false
	}
	m.end(m.byScore())
	return true
}

func (m *Match) end(w Winner) {
	m.winner = w
	m.stats = m.stats.Record(m.ai.Score > 0)
	m.transition(Ended)
	m.events = append(m.events, Event{Kind: MatchEnded, Tick: m.tick, Winner: w})
	m.logger.Debug().
		Str("match", m.id).
		Stringer("winner", w).
		Int("human", m.human.Score).
		Int("ai", m.ai.Score).
		Int("played", m.stats.MatchesPlayed).
		Float64("ai_rate", m.stats.AIWinRate).
		Msg("match ended")
}

func (m *Match) transition(to State) {
	m.logger.Debug().Str("match", m.id).Stringer("from", m.state).Stringer("to", to).Msg("state change")
	m.state = to
}

func (m *Match) emit(kind EventKind, s *entity.Snake) {
	m.events = append(m.events, Event{
		Kind:      kind,
		Tick:      m.tick,
		Actor:     s.Kind,
		Name:      s.Name,
		Collision: s.Collision,
	})
}

// DrainEvents returns the events gathered since the last call.
func (m *Match) DrainEvents() []Event {
	events := m.events
	m.events = nil
	return events
}

// DecayPulses counts both score bounces down by one frame.
func (m *Match) DecayPulses() {
	m.human.DecayPulse()
	m.ai.DecayPulse()
}

func (m *Match) ID() string                  { return m.id }
func (m *Match) State() State                { return m.state }
func (m *Match) Winner() Winner              { return m.winner }
func (m *Match) Stats() manager.Stats        { return m.stats }
func (m *Match) TickInterval() time.Duration { return m.interval }
