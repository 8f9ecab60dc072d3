package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration wraps time.Duration with TOML-friendly string parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// fileConfig mirrors the optional TOML file. Absent keys stay nil and keep
// the environment value.
type fileConfig struct {
	Simulation struct {
		AttentionDecay       *Duration `toml:"attention_decay"`
		PrioritySelect       *Duration `toml:"priority_interval"`
		ProcessSimulation    *Duration `toml:"process_interval"`
		RandomEvents         *Duration `toml:"event_interval"`
		CrashProgress        *Duration `toml:"crash_progress"`
		CrashSettle          *Duration `toml:"crash_settle"`
		LostInterestDelay    *Duration `toml:"lost_interest_delay"`
		ZoomiesDuration      *Duration `toml:"zoomies_duration"`
		NotificationDuration *Duration `toml:"notification_duration"`
		LogCapacity          *int      `toml:"log_capacity"`
		Seed                 *uint64   `toml:"seed"`
		Catalogue            *string   `toml:"catalogue"`
	} `toml:"simulation"`
}

// ApplyFile overlays the [simulation] table of a TOML file.
func (c *Config) ApplyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := c.ApplyReader(f); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// ApplyReader overlays TOML read from r.
func (c *Config) ApplyReader(r io.Reader) error {
	var fc fileConfig
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}

	sim := &c.Simulation
	overlay := func(dst *time.Duration, src *Duration) {
		if src != nil {
			*dst = src.Duration
		}
	}
	overlay(&sim.AttentionDecay, fc.Simulation.AttentionDecay)
	overlay(&sim.PrioritySelect, fc.Simulation.PrioritySelect)
	overlay(&sim.ProcessSimulation, fc.Simulation.ProcessSimulation)
	overlay(&sim.RandomEvents, fc.Simulation.RandomEvents)
	overlay(&sim.CrashProgress, fc.Simulation.CrashProgress)
	overlay(&sim.CrashSettle, fc.Simulation.CrashSettle)
	overlay(&sim.LostInterestDelay, fc.Simulation.LostInterestDelay)
	overlay(&sim.ZoomiesDuration, fc.Simulation.ZoomiesDuration)
	overlay(&sim.NotificationDuration, fc.Simulation.NotificationDuration)

	if fc.Simulation.LogCapacity != nil {
		sim.LogCapacity = *fc.Simulation.LogCapacity
	}
	if fc.Simulation.Seed != nil {
		sim.Seed = *fc.Simulation.Seed
	}
	if fc.Simulation.Catalogue != nil {
		sim.Catalogue = *fc.Simulation.Catalogue
	}
	return nil
}

// LoadFile returns the defaults overlaid with a TOML file, without
// consulting the environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Simulation.File = path
	return cfg, nil
}
