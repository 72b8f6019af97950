package game

import (
	"context"

	"snake-battle/game/manager"
)

// Simulate plays n matches back to back with no delay between ticks and
// returns the resulting statistic. A match in which nobody eats for twice the
// grid area in ticks is abandoned on the current scores.
func Simulate(ctx context.Context, m *Match, n int, fe Frontend, sinks ...Sink) (manager.Stats, error) {
	stalemate := 2 * m.grid.Area()

	for played := 0; played < n; played++ {
		if !m.Restart() {
			m.Start()
		}
		fe.Present(m.Snapshot())

		hungry := 0
		for m.State() == Running {
			if err := ctx.Err(); err != nil {
				return m.Stats(), err
			}
			if quit := apply(m, fe.Poll()); quit {
				return m.Stats(), nil
			}

			m.DecayPulses()
			m.Tick()
			if m.ate() {
				hungry = 0
			} else {
				hungry++
			}
			if hungry > stalemate {
				m.Abandon()
			}
			publish(m, sinks)
			fe.Present(m.Snapshot())
		}
	}
	return m.Stats(), nil
}

func (m *Match) ate() bool {
	for _, e := range m.events {
		if e.Kind == FoodConsumed {
			return true
		}
	}
	return false
}
