// Package audio turns match events into short synthesized tones.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"snake-battle/game"
	"snake-battle/game/entity"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var (
	humanBite = []note{{660, 60 * time.Millisecond}, {880, 60 * time.Millisecond}}
	aiBite    = []note{{440, 60 * time.Millisecond}, {587.33, 60 * time.Millisecond}}
	crash     = []note{{220, 150 * time.Millisecond}, {164.81, 250 * time.Millisecond}}
	fanfare   = []note{{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 200 * time.Millisecond}}
)

// Player is a game.Sink. Until Initialize succeeds every call is a no-op, so
// a machine without a sound device plays silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // base-2 exponent
	muted       bool
	initialized bool
	logger      zerolog.Logger
}

func NewPlayer(volume float64, muted bool, logger zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
		logger: logger,
	}
}

// Initialize opens the speaker. A muted player never touches the device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Consume(_ game.Snapshot, events []game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	for _, e := range events {
		s, err := cue(e)
		if err != nil {
			p.logger.Warn().Err(err).Stringer("event", e.Kind).Msg("failed to build tone")
			continue
		}
		if s == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
		speaker.Unlock()
	}
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// cue returns the tone for an event, or nil for events that make no sound.
func cue(e game.Event) (beep.Streamer, error) {
	switch e.Kind {
	case game.FoodConsumed:
		if e.Actor == entity.AI {
			return melody(aiBite)
		}
		return melody(humanBite)
	case game.ActorCollided:
		return melody(crash)
	case game.MatchEnded:
		return melody(fanfare)
	}
	return nil, nil
}

func melody(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return beep.Seq(parts...), nil
}
