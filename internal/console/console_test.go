package console

import (
	"strings"
	"sync"
	"testing"

	"github.com/harrison/consolefmt/internal/format"
	"github.com/harrison/consolefmt/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	level  Level
	format string
	args   []any
}

type recorder struct {
	mu    sync.Mutex
	calls []call
}

func (r *recorder) Emit(level Level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{level: level, format: format, args: args})
}

func TestConsole_ChannelMethods(t *testing.T) {
	tests := []struct {
		name  string
		print func(c *Console)
		level Level
	}{
		{"log", func(c *Console) { c.Log([]string{"a"}, []string{"color: red"}) }, LevelLog},
		{"debug", func(c *Console) { c.Debug([]string{"a"}, []string{"color: red"}) }, LevelDebug},
		{"info", func(c *Console) { c.Info([]string{"a"}, []string{"color: red"}) }, LevelInfo},
		{"warn", func(c *Console) { c.Warn([]string{"a"}, []string{"color: red"}) }, LevelWarn},
		{"error", func(c *Console) { c.Error([]string{"a"}, []string{"color: red"}) }, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.print(New(rec))

			require.Len(t, rec.calls, 1)
			assert.Equal(t, tt.level, rec.calls[0].level)
			assert.Equal(t, "%ca", rec.calls[0].format)
			assert.Equal(t, []any{"color: red"}, rec.calls[0].args)
		})
	}
}

func TestConsole_MismatchWarnsBeforeOutput(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	c.Log([]string{"A", "B"}, []string{"style1"}, format.WithSeparator(" "))

	require.Len(t, rec.calls, 2)
	assert.Equal(t, LevelWarn, rec.calls[0].level)
	assert.Contains(t, rec.calls[0].format, "Array length mismatch")
	assert.Empty(t, rec.calls[0].args)

	assert.Equal(t, LevelLog, rec.calls[1].level)
	assert.Equal(t, "%cA %cB", rec.calls[1].format)
	assert.Equal(t, []any{"style1", ""}, rec.calls[1].args)
}

func TestConsole_SubstitutionMismatchWarnsBeforeOutput(t *testing.T) {
	tests := []struct {
		name       string
		styles     []string
		wantFormat string
		wantArgs   []any
	}{
		{
			name:       "more descriptors than flags",
			styles:     []string{"color: red", "10", "20"},
			wantFormat: "%cValue: %d%s",
			wantArgs:   []any{"color: red", "10", "20"},
		},
		{
			name:       "fewer descriptors than flags",
			styles:     []string{"color: red"},
			wantFormat: "%cValue: %d",
			wantArgs:   []any{"color: red", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := New(rec)

			c.Info([]string{"Value: %d"}, tt.styles, format.WithSubstitutions())

			require.Len(t, rec.calls, 2)
			assert.Equal(t, LevelWarn, rec.calls[0].level)
			assert.Contains(t, rec.calls[0].format, "Arguments length mismatch")

			assert.Equal(t, LevelInfo, rec.calls[1].level)
			assert.Equal(t, tt.wantFormat, rec.calls[1].format)
			assert.Equal(t, tt.wantArgs, rec.calls[1].args)
		})
	}
}

func TestConsole_StyledDoesNotEmitOutput(t *testing.T) {
	rec := &recorder{}
	out := New(rec).Styled([]string{"x"}, []string{"a"})

	assert.Equal(t, "%cx", out.Template)
	assert.Empty(t, rec.calls)
}

func TestConsole_Badge(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	c.Badge("BUILD", "finished in 3s", "")
	c.Badge("BUILD", "finished in 3s", "green")

	require.Len(t, rec.calls, 2)
	p := preset.New(nil, "")
	assert.Equal(t, "%cBUILD", rec.calls[0].format)
	assert.Equal(t, []any{p.BadgeStyle("default"), "finished in 3s"}, rec.calls[0].args)
	assert.Equal(t, []any{p.BadgeStyle("green"), "finished in 3s"}, rec.calls[1].args)
	assert.Equal(t, LevelLog, rec.calls[1].level)
}

func TestConsole_ContextualBadgeChannels(t *testing.T) {
	tests := []struct {
		name  string
		badge func(c *Console)
		style string
		level Level
	}{
		{"debug", func(c *Console) { c.BadgeDebug("L", "m") }, "debug", LevelDebug},
		{"error", func(c *Console) { c.BadgeError("L", "m") }, "error", LevelError},
		{"blame", func(c *Console) { c.BadgeBlame("L", "m") }, "blame", LevelError},
		{"alert", func(c *Console) { c.BadgeAlert("L", "m") }, "alert", LevelError},
		{"warn", func(c *Console) { c.BadgeWarn("L", "m") }, "warn", LevelWarn},
		{"userError", func(c *Console) { c.BadgeUserError("L", "m") }, "userError", LevelWarn},
		{"info", func(c *Console) { c.BadgeInfo("L", "m") }, "info", LevelInfo},
		{"success", func(c *Console) { c.BadgeSuccess("L", "m") }, "success", LevelLog},
		{"fail", func(c *Console) { c.BadgeFail("L", "m") }, "fail", LevelLog},
		{"mistake", func(c *Console) { c.BadgeMistake("L", "m") }, "mistake", LevelLog},
		{"inconclusive", func(c *Console) { c.BadgeInconclusive("L", "m") }, "inconclusive", LevelLog},
		{"undefined", func(c *Console) { c.BadgeUndefined("L", "m") }, "undefined", LevelLog},
		{"empty", func(c *Console) { c.BadgeEmpty("L", "m") }, "empty", LevelLog},
		{"note", func(c *Console) { c.BadgeNote("L", "m") }, "note", LevelLog},
		{"suggestion", func(c *Console) { c.BadgeSuggestion("L", "m") }, "suggestion", LevelLog},
		{"todo", func(c *Console) { c.BadgeTodo("L", "m") }, "todo", LevelLog},
	}

	p := preset.New(nil, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.badge(New(rec))

			require.Len(t, rec.calls, 1)
			assert.Equal(t, tt.level, rec.calls[0].level)
			assert.Equal(t, []any{p.BadgeStyle(tt.style), "m"}, rec.calls[0].args)
		})
	}
}

func TestConsole_BadgeCustomQuick(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	c.BadgeCustomQuick("API", "ready", "white", "teal", "font-style: italic")
	c.BadgeCustomQuick("API", "ready", "white", "teal", "")

	require.Len(t, rec.calls, 2)
	assert.Equal(t,
		"color: white; background-color: teal; "+preset.BadgeSuffix+"; font-style: italic",
		rec.calls[0].args[0])
	assert.Equal(t,
		"color: white; background-color: teal; "+preset.BadgeSuffix,
		rec.calls[1].args[0])
}

func TestConsole_CustomPresets(t *testing.T) {
	rec := &recorder{}
	p := preset.New(preset.Table{"brand": "color: gold;"}, " padding: 0 1ch")
	c := New(rec, WithPresets(p))

	c.Badge("ACME", "", "brand")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []any{"color: gold; padding: 0 1ch"}, rec.calls[0].args)
	assert.Same(t, p, c.Presets())
}

func TestNew_NilSink(t *testing.T) {
	c := New(nil)
	assert.NotPanics(t, func() { c.Log([]string{"a"}, nil) })
}

func TestLevel(t *testing.T) {
	for _, name := range []string{"debug", "log", "info", "warn", "error"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, strings.ToLower(level.String()))
	}

	level, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)

	assert.True(t, LevelLog.Enabled(LevelInfo))
	assert.True(t, LevelInfo.Enabled(LevelLog))
	assert.False(t, LevelDebug.Enabled(LevelInfo))
	assert.True(t, LevelError.Enabled(LevelWarn))
}
