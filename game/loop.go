package game

import (
	"context"
	"time"
)

// FrameRate is how often the loop polls input and redraws, independent of
// the simulation tick rate.
const FrameRate = 60

// Frontend draws snapshots and turns player input into intents. Both calls
// happen on the loop goroutine.
type Frontend interface {
	Poll() []Intent
	Present(Snapshot)
}

// Sink receives the snapshot and events of every tick.
type Sink interface {
	Consume(Snapshot, []Event)
}

// Run drives the match in real time until Quit is polled or ctx is done.
func Run(ctx context.Context, m *Match, fe Frontend, sinks ...Sink) error {
	ticks := time.NewTicker(m.TickInterval())
	defer ticks.Stop()
	frames := time.NewTicker(time.Second / FrameRate)
	defer frames.Stop()

	fe.Present(m.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-frames.C:
			if quit := apply(m, fe.Poll()); quit {
				return nil
			}
			fe.Present(m.Snapshot())
		case <-ticks.C:
			m.DecayPulses()
			m.Tick()
			publish(m, sinks)
		}
	}
}

// apply hands intents to the match and reports whether Quit was among them.
func apply(m *Match, intents []Intent) bool {
	for _, in := range intents {
		if in == Quit {
			return true
		}
		m.Apply(in)
	}
	return false
}

func publish(m *Match, sinks []Sink) {
	snap := m.Snapshot()
	events := m.DrainEvents()
	for _, s := range sinks {
		s.Consume(snap, events)
	}
}
