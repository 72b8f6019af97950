package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snake-battle/audio"
	"snake-battle/config"
	"snake-battle/game"
	"snake-battle/game/manager"
	"snake-battle/spectate"
	"snake-battle/ui"
	"snake-battle/ui/terminal"
)

func main() {
	cfg, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("snake-battle exited")
		closeLog()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := manager.OpenStatsStore(cfg.StatsPath)
	if err != nil {
		return fmt.Errorf("open stats store: %w", err)
	}
	defer store.Close()

	stats, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.StatsPath).Msg("ignoring unreadable stats")
		stats = manager.Stats{}
	}

	seed := cfg.SeedOrClock()
	m := game.NewMatch(cfg,
		game.WithStats(stats),
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithLogger(log.Logger))
	log.Info().
		Int("width", cfg.GridWidth).
		Int("height", cfg.GridHeight).
		Int("tps", cfg.TicksPerSecond).
		Uint64("seed", seed).
		Str("ui", cfg.UI).
		Int("played", stats.MatchesPlayed).
		Msg("starting")

	sinks := []game.Sink{game.NewStatsRecorder(store, log.Logger)}
	if cfg.HTTPAddr != "" {
		srv := spectate.New(log.Logger)
		if err := srv.Start(cfg.HTTPAddr); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		sinks = append(sinks, srv)
	}

	switch cfg.UI {
	case config.UIHeadless:
		pilot := game.NewAutopilot(rand.New(rand.NewSource(seed + 1)))
		final, err := game.Simulate(ctx, m, cfg.Matches, pilot, sinks...)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Printf("matches played: %d\nAI success: %.1f%%\n", final.MatchesPlayed, final.AIWinRate*100)
		return nil

	case config.UITerminal:
		term, err := terminal.New()
		if err != nil {
			return err
		}
		defer term.Close()
		player := openAudio(cfg)
		defer player.Close()
		return game.Run(ctx, m, term, append(sinks, player)...)

	default:
		window := ui.Open(cfg.Grid(), cfg.CellSize)
		defer window.Close()
		player := openAudio(cfg)
		defer player.Close()
		return game.Run(ctx, m, window, append(sinks, player)...)
	}
}

// openAudio returns a player that stays silent if no sound device is usable.
func openAudio(cfg config.Config) *audio.Player {
	p := audio.NewPlayer(cfg.Volume, cfg.Mute, log.Logger)
	if err := p.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	return p
}
