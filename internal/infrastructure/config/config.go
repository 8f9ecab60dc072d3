package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORSConfig holds allowed browser origins.
type CORSConfig struct {
	Origins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// SimulationConfig holds the desktop timings and randomness settings.
type SimulationConfig struct {
	AttentionDecay       time.Duration `envconfig:"CATOS_ATTENTION_DECAY" default:"3s"`
	PrioritySelect       time.Duration `envconfig:"CATOS_PRIORITY_INTERVAL" default:"5s"`
	ProcessSimulation    time.Duration `envconfig:"CATOS_PROCESS_INTERVAL" default:"5s"`
	RandomEvents         time.Duration `envconfig:"CATOS_EVENT_INTERVAL" default:"4s"`
	CrashProgress        time.Duration `envconfig:"CATOS_CRASH_PROGRESS" default:"500ms"`
	CrashSettle          time.Duration `envconfig:"CATOS_CRASH_SETTLE" default:"1s"`
	LostInterestDelay    time.Duration `envconfig:"CATOS_LOST_INTEREST_DELAY" default:"3s"`
	ZoomiesDuration      time.Duration `envconfig:"CATOS_ZOOMIES_DURATION" default:"5s"`
	NotificationDuration time.Duration `envconfig:"CATOS_NOTIFY_DURATION" default:"3s"`
	LogCapacity          int           `envconfig:"CATOS_LOG_CAPACITY" default:"50"`

	// Seed 0 seeds from the wall clock
	Seed      uint64 `envconfig:"CATOS_SEED" default:"0"`
	Catalogue string `envconfig:"CATOS_CATALOGUE"`
	File      string `envconfig:"CATOS_CONFIG"`
}

// Load loads configuration from environment variables, then applies the
// TOML file named by CATOS_CONFIG if any.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Simulation.File != "" {
		if err := cfg.ApplyFile(cfg.Simulation.File); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
		Simulation: SimulationConfig{
			AttentionDecay:       3 * time.Second,
			PrioritySelect:       5 * time.Second,
			ProcessSimulation:    5 * time.Second,
			RandomEvents:         4 * time.Second,
			CrashProgress:        500 * time.Millisecond,
			CrashSettle:          time.Second,
			LostInterestDelay:    3 * time.Second,
			ZoomiesDuration:      5 * time.Second,
			NotificationDuration: 3 * time.Second,
			LogCapacity:          50,
		},
	}
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	durations := map[string]time.Duration{
		"attention_decay":       c.Simulation.AttentionDecay,
		"priority_interval":     c.Simulation.PrioritySelect,
		"process_interval":      c.Simulation.ProcessSimulation,
		"event_interval":        c.Simulation.RandomEvents,
		"crash_progress":        c.Simulation.CrashProgress,
		"crash_settle":          c.Simulation.CrashSettle,
		"lost_interest_delay":   c.Simulation.LostInterestDelay,
		"zoomies_duration":      c.Simulation.ZoomiesDuration,
		"notification_duration": c.Simulation.NotificationDuration,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, name, d)
		}
	}
	if c.Simulation.LogCapacity <= 0 {
		return fmt.Errorf("%w: log capacity must be positive, got %d", ErrInvalid, c.Simulation.LogCapacity)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate limit needs positive rps and burst", ErrInvalid)
	}
	return nil
}

// Address returns the listen address.
func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}
