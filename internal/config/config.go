package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/mathplay/internal/store"
)

// DefaultFeedbackDelay is how long feedback stays up before the next round.
const DefaultFeedbackDelay = 1200 * time.Millisecond

// Config holds runtime settings resolved from .env, the environment and
// command-line flags, in increasing priority.
type Config struct {
	DBPath        string
	LogLevel      string
	LogFile       string
	FeedbackDelay time.Duration

	// Seed makes problem generation reproducible. Zero means random.
	Seed uint64
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing. Malformed values
// are kept as errors for Validate to report.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	var errs []error
	cfg := Config{
		DBPath:        os.Getenv("MATHPLAY_DB"),
		LogLevel:      envOr("MATHPLAY_LOG_LEVEL", "info"),
		LogFile:       os.Getenv("MATHPLAY_LOG_FILE"),
		FeedbackDelay: DefaultFeedbackDelay,
	}

	if v := os.Getenv("MATHPLAY_FEEDBACK_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("MATHPLAY_FEEDBACK_DELAY=%q: %w", v, err))
		} else {
			cfg.FeedbackDelay = d
		}
	}
	if v := os.Getenv("MATHPLAY_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MATHPLAY_SEED=%q: %w", v, err))
		} else {
			cfg.Seed = seed
		}
	}

	return cfg, errors.Join(errs...)
}

// ResolveDBPath fills DBPath from the XDG data directory when unset and
// makes sure the parent directory exists.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	c.DBPath = p
	return p, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []string
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log level %q must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.FeedbackDelay < 0 {
		errs = append(errs, "feedback delay cannot be negative")
	}
	if c.FeedbackDelay > time.Minute {
		errs = append(errs, "feedback delay cannot exceed 1m")
	}
	if len(errs) > 0 {
		return errors.New("invalid config: " + strings.Join(errs, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
