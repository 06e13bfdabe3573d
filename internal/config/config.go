// Package config loads the runtime configuration of atomsbase tools: default
// units, logging and extra species registered on top of the periodic table.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/daniacca/atomsbase/internal/logging"
	"github.com/daniacca/atomsbase/pkg/atomsbase"
	"github.com/daniacca/atomsbase/pkg/atomsbase/elements"
	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrUnknownLevel      = errors.New("unknown log level")
	ErrInvalidSpecies    = errors.New("invalid species")
	ErrDuplicateSpecies  = errors.New("duplicate species symbol")
)

type Config struct {
	Units   UnitsConfig     `toml:"units" yaml:"units"`
	Log     LogConfig       `toml:"log" yaml:"log"`
	Species []SpeciesConfig `toml:"species" yaml:"species"`
}

// UnitsConfig holds unit symbols as accepted by units.Parse.
type UnitsConfig struct {
	Length   string `toml:"length" yaml:"length"`
	Velocity string `toml:"velocity" yaml:"velocity"`
	Mass     string `toml:"mass" yaml:"mass"`
}

type LogConfig struct {
	Level     string `toml:"level" yaml:"level"`
	NoColor   bool   `toml:"no_color" yaml:"no_color"`
	Timestamp bool   `toml:"timestamp" yaml:"timestamp"`
}

// SpeciesConfig registers an extra element. Mass is in dalton.
type SpeciesConfig struct {
	Symbol string  `toml:"symbol" yaml:"symbol"`
	Name   string  `toml:"name" yaml:"name"`
	Number int     `toml:"number" yaml:"number"`
	Mass   float64 `toml:"mass" yaml:"mass"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	d := atomsbase.DefaultUnits()
	return Config{
		Units: UnitsConfig{
			Length:   d.Length.Symbol,
			Velocity: d.Velocity.Symbol,
			Mass:     d.Mass.Symbol,
		},
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file on top of Default and
// validates the result.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = loadTOML(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadTOML(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("units", "length") {
		cfg.Units.Length = strings.TrimSpace(raw.Units.Length)
	}
	if meta.IsDefined("units", "velocity") {
		cfg.Units.Velocity = strings.TrimSpace(raw.Units.Velocity)
	}
	if meta.IsDefined("units", "mass") {
		cfg.Units.Mass = strings.TrimSpace(raw.Units.Mass)
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("species") {
		cfg.Species = raw.Species
	}

	return cfg, nil
}

func loadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Keys missing from the document keep their default value.
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem in the configuration at once, as a
// *atomsbase.ValidationError.
func (c Config) Validate() error {
	verr := &atomsbase.ValidationError{Subject: "config"}

	checkUnit := func(slot, symbol string, want units.Dimension) {
		u, err := units.Parse(symbol)
		if err != nil {
			verr.Add(fmt.Errorf("units.%s: %w", slot, err))
			return
		}
		if u.Dim != want {
			verr.Add(fmt.Errorf("units.%s: %q is a %s unit, expected %s: %w", slot, symbol, u.Dim, want, units.ErrIncompatible))
		}
	}
	checkUnit("length", c.Units.Length, units.Length)
	checkUnit("velocity", c.Units.Velocity, units.Velocity)
	checkUnit("mass", c.Units.Mass, units.Mass)

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		verr.Add(fmt.Errorf("log.level: %w %q", ErrUnknownLevel, c.Log.Level))
	}

	symbols := make(map[string]bool)
	for i, sp := range c.Species {
		symbol := strings.TrimSpace(sp.Symbol)
		prefix := fmt.Sprintf("species at index %d", i)
		if symbol != "" {
			prefix = fmt.Sprintf("species '%s'", symbol)
		}

		if symbol == "" {
			verr.Add(fmt.Errorf("%s: %w: symbol is required", prefix, ErrInvalidSpecies))
		} else if symbols[symbol] {
			verr.Add(fmt.Errorf("%w: %s", ErrDuplicateSpecies, symbol))
		} else {
			symbols[symbol] = true
		}
		if sp.Number < 0 {
			verr.Add(fmt.Errorf("%s: %w: atomic number must be non-negative, got %d", prefix, ErrInvalidSpecies, sp.Number))
		}
		if sp.Mass <= 0 {
			verr.Add(fmt.Errorf("%s: %w: mass must be positive, got %g", prefix, ErrInvalidSpecies, sp.Mass))
		}
	}

	return verr.Err()
}

// BuilderUnits resolves the configured unit symbols.
func (c Config) BuilderUnits() (atomsbase.Units, error) {
	length, err := units.Parse(c.Units.Length)
	if err != nil {
		return atomsbase.Units{}, fmt.Errorf("units.length: %w", err)
	}
	velocity, err := units.Parse(c.Units.Velocity)
	if err != nil {
		return atomsbase.Units{}, fmt.Errorf("units.velocity: %w", err)
	}
	mass, err := units.Parse(c.Units.Mass)
	if err != nil {
		return atomsbase.Units{}, fmt.Errorf("units.mass: %w", err)
	}
	u := atomsbase.Units{Length: length, Velocity: velocity, Mass: mass}
	if err := u.Validate(); err != nil {
		return atomsbase.Units{}, err
	}
	return u, nil
}

// Table returns the default periodic table extended with the configured species.
func (c Config) Table() *elements.Table {
	extra := make([]elements.Element, len(c.Species))
	for i, sp := range c.Species {
		extra[i] = elements.Element{
			Symbol:     strings.TrimSpace(sp.Symbol),
			Name:       sp.Name,
			Number:     sp.Number,
			AtomicMass: sp.Mass,
		}
	}
	return elements.Default().With(extra...)
}

// Logging converts the log section, starting from the profile defaults.
// The level is left at the profile default when it does not parse.
func (c Config) Logging(profile logging.Profile) logging.Config {
	out := logging.DefaultConfig(profile)
	if lvl, ok := logging.ParseLevel(c.Log.Level); ok {
		out.Level = lvl
	}
	out.NoColor = c.Log.NoColor
	out.Timestamp = c.Log.Timestamp
	return out
}

// Builder returns an atomsbase.Builder using the configured units and
// species, logging to log.
func (c Config) Builder(log atomsbase.Logger) (*atomsbase.Builder, error) {
	u, err := c.BuilderUnits()
	if err != nil {
		return nil, err
	}
	return atomsbase.NewBuilder().
		WithUnits(u).
		WithLookup(atomsbase.TableLookup(c.Table())).
		WithLogger(log), nil
}
