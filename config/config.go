// Package config resolves runtime settings from defaults, an optional .env
// file, SNAKE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"snake-battle/game/types"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	UIWindow   = "window"
	UITerminal = "terminal"
	UIHeadless = "headless"
)

type Config struct {
	GridWidth      int
	GridHeight     int
	TicksPerSecond int
	Seed           uint64 // 0 seeds from the clock
	UI             string
	Matches        int // headless only
	StatsPath      string
	HTTPAddr       string // empty disables the spectator endpoint
	Mute           bool
	Volume         float64 // beep effects.Volume base-2 exponent
	CellSize       int     // window pixels per cell
	LogLevel       string
	LogFile        string
}

func Default() Config {
	return Config{
		GridWidth:      40,
		GridHeight:     30,
		TicksPerSecond: 5,
		UI:             UIWindow,
		Matches:        1,
		StatsPath:      "data/stats.json",
		Volume:         -1,
		CellSize:       20,
		LogLevel:       "info",
		LogFile:        "data/snake-battle.log",
	}
}

// Load builds a Config from every source. envFiles are passed to godotenv;
// a missing file is not an error. Variables already in the environment win
// over the file.
func Load(args []string, envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := cfg.fromEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.fromFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fromEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"SNAKE_GRID_WIDTH":  &c.GridWidth,
		"SNAKE_GRID_HEIGHT": &c.GridHeight,
		"SNAKE_TPS":         &c.TicksPerSecond,
		"SNAKE_MATCHES":     &c.Matches,
		"SNAKE_CELL_SIZE":   &c.CellSize,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
			}
			*dst = n
		}
	}

	strs := map[string]*string{
		"SNAKE_UI":         &c.UI,
		"SNAKE_STATS_PATH": &c.StatsPath,
		"SNAKE_HTTP_ADDR":  &c.HTTPAddr,
		"LOG_LEVEL":        &c.LogLevel,
		"LOG_FILE":         &c.LogFile,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("SNAKE_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup("SNAKE_MUTE"); ok && v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_MUTE=%q: %v", ErrInvalid, v, err)
		}
		c.Mute = mute
	}
	if v, ok := lookup("SNAKE_VOLUME"); ok && v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_VOLUME=%q: %v", ErrInvalid, v, err)
		}
		c.Volume = vol
	}
	return nil
}

func (c *Config) fromFlags(args []string) error {
	fs := flag.NewFlagSet("snake-battle", flag.ContinueOnError)
	fs.IntVar(&c.GridWidth, "width", c.GridWidth, "Grid width in cells")
	fs.IntVar(&c.GridHeight, "height", c.GridHeight, "Grid height in cells")
	fs.IntVar(&c.TicksPerSecond, "tps", c.TicksPerSecond, "Simulation ticks per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "PRNG seed (0 = current time)")
	fs.StringVar(&c.UI, "ui", c.UI, "Frontend: window, terminal or headless")
	fs.IntVar(&c.Matches, "matches", c.Matches, "Matches to simulate in headless mode")
	fs.StringVar(&c.StatsPath, "stats", c.StatsPath, "Statistics file (.json, or .db for SQLite)")
	fs.StringVar(&c.HTTPAddr, "http", c.HTTPAddr, "Spectator HTTP address, e.g. :8080")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "Volume adjustment (base-2 exponent)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Window pixels per grid cell")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "zerolog level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file used while a UI owns the terminal")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	c.UI = strings.ToLower(c.UI)
	return nil
}

func (c Config) Validate() error {
	if c.GridWidth < 3 || c.GridHeight < 3 {
		return fmt.Errorf("%w: grid %dx%d, both sides must be at least 3", ErrInvalid, c.GridWidth, c.GridHeight)
	}
	if c.TicksPerSecond < 1 || c.TicksPerSecond > 60 {
		return fmt.Errorf("%w: tick rate %d outside 1..60", ErrInvalid, c.TicksPerSecond)
	}
	switch c.UI {
	case UIWindow, UITerminal, UIHeadless:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalid, c.UI)
	}
	if c.Matches < 1 {
		return fmt.Errorf("%w: matches must be at least 1", ErrInvalid)
	}
	if c.CellSize < 4 {
		return fmt.Errorf("%w: cell size %d too small", ErrInvalid, c.CellSize)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}

// SeedOrClock returns Seed, or the current time when Seed is zero.
func (c Config) SeedOrClock() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
