package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/trapmaze/internal/world"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width  int // Grid columns, at least 3
	Height int // Grid rows, at least 3

	// JumpDistance is how many tiles a jump covers.
	JumpDistance int

	// LevelPause is how long the completion message stays up before the
	// next level replaces the grid.
	LevelPause time.Duration
}

// DefaultConfig returns the standard 36x18 setup.
func DefaultConfig() Config {
	return Config{
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
		JumpDistance: 3,
		LevelPause:   500 * time.Millisecond,
	}
}

// Validate checks that the grid can hold a maze and the jump can move.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: grid %dx%d smaller than 3x3", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.JumpDistance < 1 {
		return fmt.Errorf("%w: jump distance %d", ErrInvalidConfig, c.JumpDistance)
	}
	if c.LevelPause < 0 {
		return fmt.Errorf("%w: negative level pause", ErrInvalidConfig)
	}
	return nil
}

// ConfigFromEnv overlays TRAPMAZE_* environment variables on DefaultConfig:
//   - TRAPMAZE_SEED
//   - TRAPMAZE_WIDTH, TRAPMAZE_HEIGHT
//   - TRAPMAZE_JUMP
//   - TRAPMAZE_LEVEL_PAUSE_MS
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("TRAPMAZE_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: TRAPMAZE_SEED: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"TRAPMAZE_WIDTH", &cfg.Width},
		{"TRAPMAZE_HEIGHT", &cfg.Height},
		{"TRAPMAZE_JUMP", &cfg.JumpDistance},
	}
	for _, e := range ints {
		if err := envInt(e.key, e.dst); err != nil {
			return cfg, err
		}
	}

	pauseMS := int(cfg.LevelPause / time.Millisecond)
	if err := envInt("TRAPMAZE_LEVEL_PAUSE_MS", &pauseMS); err != nil {
		return cfg, err
	}
	cfg.LevelPause = time.Duration(pauseMS) * time.Millisecond

	return cfg, cfg.Validate()
}

// envInt replaces *dst with the integer value of key when it is set.
func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}
