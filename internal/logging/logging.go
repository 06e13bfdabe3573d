// Package logging configures the process logger and bridges it to the
// atomsbase.Logger interface.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/daniacca/atomsbase/pkg/atomsbase"
)

const (
	EnvLogLevel     = "ATOMSBASE_LOG_LEVEL"
	EnvLogTimestamp = "ATOMSBASE_LOG_TIMESTAMP"
	EnvLogNoColor   = "ATOMSBASE_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the logger configuration. The zero Level is zerolog.DebugLevel.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// ApplyEnv overrides cfg with any ATOMSBASE_LOG_* variable that is set and
// parses. Unparseable values are ignored. A nil getenv reads the process
// environment.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// New builds a console logger writing to out.
func New(out io.Writer, app string, cfg Config) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(w).Level(cfg.Level).With().Str("app", app)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// ParseLevel accepts the usual level names plus "off" style aliases for
// zerolog.Disabled. The second result is false for empty or unknown input.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// Adapter lets a zerolog.Logger serve as an atomsbase.Logger.
type Adapter struct {
	log zerolog.Logger
}

var _ atomsbase.Logger = (*Adapter)(nil)

func NewAdapter(log zerolog.Logger) *Adapter {
	return &Adapter{log: log.With().Str("component", "atomsbase").Logger()}
}

func (a *Adapter) Debugf(format string, v ...any) { a.log.Debug().Msgf(format, v...) }
func (a *Adapter) Infof(format string, v ...any)  { a.log.Info().Msgf(format, v...) }
func (a *Adapter) Warnf(format string, v ...any)  { a.log.Warn().Msgf(format, v...) }
func (a *Adapter) Errorf(format string, v ...any) { a.log.Error().Msgf(format, v...) }
