package game

import (
	"snake-battle/game/manager"

	"github.com/rs/zerolog"
)

// StatsRecorder saves the running statistic whenever a match ends.
type StatsRecorder struct {
	store  manager.StatsStore
	logger zerolog.Logger
}

func NewStatsRecorder(store manager.StatsStore, logger zerolog.Logger) *StatsRecorder {
	return &StatsRecorder{store: store, logger: logger}
}

func (r *StatsRecorder) Consume(snap Snapshot, events []Event) {
	for _, e := range events {
		if e.Kind != MatchEnded {
			continue
		}
		r.logger.Info().
			Str("match", snap.MatchID).
			Stringer("winner", e.Winner).
			Int("human", snap.Human.Score).
			Int("ai", snap.AI.Score).
			Int("played", snap.Stats.MatchesPlayed).
			Float64("ai_rate", snap.Stats.AIWinRate).
			Msg("match over")
		if err := r.store.Save(snap.Stats); err != nil {
			r.logger.Error().Err(err).Msg("failed to save stats")
		}
	}
}
