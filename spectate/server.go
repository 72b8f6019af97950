// Package spectate serves a read-only JSON view of the running match.
//
// Endpoints:
//   - GET /health    liveness probe
//   - GET /snapshot  latest published snapshot, 503 until the first tick
//   - GET /stats     matches played and AI win-rate
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"snake-battle/game"
)

// Server is a game.Sink. The loop publishes a snapshot after every tick and
// handlers only ever read the latest one.
type Server struct {
	r      *chi.Mux
	http   *http.Server
	latest atomic.Pointer[game.Snapshot]
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Server {
	s := &Server{r: chi.NewRouter(), logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(5 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/snapshot", s.handleSnapshot)
	s.r.Get("/stats", s.handleStats)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Consume publishes the snapshot of the tick that just ran.
func (s *Server) Consume(snap game.Snapshot, _ []game.Event) {
	s.latest.Store(&snap)
}

func (s *Server) Router() chi.Router { return s.r }

// Start listens on addr and serves in the background until Shutdown.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.http = &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("spectator endpoint listening")

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("spectator endpoint stopped")
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := s.latest.Load()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no_snapshot")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.latest.Load()
	if snap == nil {
		writeJSON(w, http.StatusOK, map[string]any{"matchesPlayed": 0, "aiWinRate": 0.0})
		return
	}
	writeJSON(w, http.StatusOK, snap.Stats)
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
