package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniacca/atomsbase/pkg/atomsbase"
	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{raw: "", want: zerolog.InfoLevel},
		{raw: "debug", want: zerolog.DebugLevel, wantOK: true},
		{raw: " WARNING ", want: zerolog.WarnLevel, wantOK: true},
		{raw: "off", want: zerolog.Disabled, wantOK: true},
		{raw: "chatty", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "not-a-bool")

	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnv(&cfg, nil)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.False(t, cfg.NoColor, "unparseable values keep the default")

	injected := DefaultConfig(ProfileRuntime)
	ApplyEnv(&injected, func(k string) string {
		if k == EnvLogNoColor {
			return "true"
		}
		return ""
	})
	assert.True(t, injected.NoColor)
	assert.Equal(t, zerolog.InfoLevel, injected.Level, "process environment is not read when getenv is given")
}

func TestAdapter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "atomsbase-test", Config{Level: zerolog.InfoLevel, NoColor: true})
	a := NewAdapter(log)

	a.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String(), "debug is below the configured level")

	a.Warnf("lookup failed for %q", "Xx")
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, `lookup failed for "Xx"`)
	assert.Contains(t, out, "component=atomsbase")
	assert.Contains(t, out, "app=atomsbase-test")
}

func TestAdapter_ReceivesBuilderLogs(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "atomsbase-test", DefaultConfig(ProfileTest))
	b := atomsbase.NewBuilder().WithLogger(NewAdapter(log))

	_, err := b.NewAtom(atomsbase.Symbol("Qq"), units.Zeros(units.Bohr, 3))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "using fallback defaults")
}
