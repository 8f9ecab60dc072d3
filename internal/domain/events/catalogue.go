// Package events holds the catalogue of random events, chaos targets and
// crash reason codes.
//
// The default catalogue is embedded from catalogue.yaml. A replacement can
// be loaded from any reader with Load; it must keep every list non-empty.
package events

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// TargetPlaceholder marks where a chaos target is substituted
const TargetPlaceholder = "{target}"

var ErrEmptyCatalogue = errors.New("catalogue section is empty")

//go:embed catalogue.yaml
var defaultCatalogue []byte

// Generator produces one log entry
type Generator struct {
	Message  string
	Severity types.Severity
}

// Targeted reports whether the message takes a chaos target
func (g Generator) Targeted() bool {
	return strings.Contains(g.Message, TargetPlaceholder)
}

// Render substitutes the chaos target into the message
func (g Generator) Render(target string) string {
	return strings.ReplaceAll(g.Message, TargetPlaceholder, target)
}

// Catalogue is an immutable set of generators and names
type Catalogue struct {
	Events       []Generator
	Targets      []string
	CrashReasons []string
}

type rawCatalogue struct {
	Targets      []string `yaml:"targets"`
	CrashReasons []string `yaml:"crash_reasons"`
	Events       []struct {
		Message  string `yaml:"message"`
		Severity string `yaml:"severity"`
	} `yaml:"events"`
}

// Load parses and validates a YAML catalogue
func Load(r io.Reader) (*Catalogue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var raw rawCatalogue
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	switch {
	case len(raw.Events) == 0:
		return nil, fmt.Errorf("%w: events", ErrEmptyCatalogue)
	case len(raw.Targets) == 0:
		return nil, fmt.Errorf("%w: targets", ErrEmptyCatalogue)
	case len(raw.CrashReasons) == 0:
		return nil, fmt.Errorf("%w: crash_reasons", ErrEmptyCatalogue)
	}

	cat := &Catalogue{
		Targets:      raw.Targets,
		CrashReasons: raw.CrashReasons,
		Events:       make([]Generator, 0, len(raw.Events)),
	}
	for i, ev := range raw.Events {
		sev, err := types.ParseSeverity(ev.Severity)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if strings.TrimSpace(ev.Message) == "" {
			return nil, fmt.Errorf("event %d: empty message", i)
		}
		cat.Events = append(cat.Events, Generator{Message: ev.Message, Severity: sev})
	}
	return cat, nil
}

// LoadFile reads a catalogue from disk
func LoadFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the embedded catalogue
func Default() *Catalogue {
	defaultOnce.Do(func() {
		cat, err := Load(strings.NewReader(string(defaultCatalogue)))
		if err != nil {
			panic(fmt.Sprintf("embedded catalogue: %v", err))
		}
		defaultCat = cat
	})
	return defaultCat
}

// Target picks a chaos target
func (c *Catalogue) Target(src chance.Source) string {
	return chance.Pick(src, c.Targets)
}

// CrashReason picks a crash reason code
func (c *Catalogue) CrashReason(src chance.Source) string {
	return chance.Pick(src, c.CrashReasons)
}

// Emit picks one generator uniformly and renders it. A target is drawn only
// for targeted generators.
func (c *Catalogue) Emit(src chance.Source) (string, types.Severity) {
	gen := chance.Pick(src, c.Events)
	if gen.Targeted() {
		return gen.Render(c.Target(src)), gen.Severity
	}
	return gen.Message, gen.Severity
}
