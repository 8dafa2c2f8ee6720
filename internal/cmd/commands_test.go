package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/consolefmt/internal/config"
	"github.com/harrison/consolefmt/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "styles applied without color",
			args:    []string{"render", "OK", " done", "-s", "color: lime", "-s", ""},
			wantOut: "OK done\n",
		},
		{
			name:    "separator and terminator",
			args:    []string{"render", "a", "b", "-s", "", "-s", "", "--sep", ", ", "--end", "."},
			wantOut: "a, b.\n",
		},
		{
			name:    "pre and post text",
			args:    []string{"render", "mid", "-s", "color: red", "--pre", "[", "--post", "]"},
			wantOut: "[mid ]\n",
		},
		{
			name:       "warn channel goes to stderr",
			args:       []string{"render", "careful", "-s", "", "--channel", "warn"},
			wantErrOut: "careful\n",
		},
		{
			name:    "substitution",
			args:    []string{"render", "--subst", "Total: %d", "-s", "font-weight: bold", "-s", "42"},
			wantOut: "Total: 42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantErrOut, errOut)
		})
	}
}

func TestRender_HealsAndWarns(t *testing.T) {
	out, errOut, err := execute(t, "", "render", "a", "b", "-s", "color: red")
	require.NoError(t, err)

	assert.Equal(t, "ab\n", out)
	assert.Contains(t, errOut, "Warning: Array length mismatch.")
	assert.Contains(t, errOut, "Used 2 segments and 1 styles")
}

func TestRender_InvalidChannel(t *testing.T) {
	_, _, err := execute(t, "", "render", "x", "--channel", "loud")
	assert.Error(t, err)
}

func TestRender_Args(t *testing.T) {
	out, errOut, err := execute(t, "",
		"render", "--args", "--subst", "Value: %d", "-s", "color: red", "-s", "10", "-s", "20")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	var calls []struct {
		Channel string `json:"channel"`
		Format  string `json:"format"`
		Args    []any  `json:"args"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &calls))
	require.Len(t, calls, 2)

	assert.Equal(t, "warn", calls[0].Channel)
	assert.Contains(t, calls[0].Format, "Arguments length mismatch")

	assert.Equal(t, "log", calls[1].Channel)
	assert.Equal(t, "%cValue: %d%s", calls[1].Format)
	assert.Equal(t, []any{"color: red", "10", "20"}, calls[1].Args)
}

func TestRender_LevelFlagFilters(t *testing.T) {
	out, errOut, err := execute(t, "", "--level", "warn", "render", "hidden", "-s", "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestRender_InvalidLevel(t *testing.T) {
	_, _, err := execute(t, "", "--level", "trace", "render", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRender_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	content := "separator: \" | \"\nshow_level: true\ncolor: never\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, config.FileName), []byte(content), 0644))

	out, _, err := executeInHome(t, "", "render", "a", "b", "-s", "", "-s", "")
	require.NoError(t, err)
	assert.Equal(t, "[LOG] a | b\n", out)
}

func TestRender_ExplicitConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terminator: \"!\"\n"), 0644))

	out, _, err := execute(t, "", "--config", path, "render", "hi", "-s", "")
	require.NoError(t, err)
	assert.Equal(t, "hi!\n", out)
}

func TestRender_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "console.log")

	_, _, err := execute(t, "", "--log-file="+logPath, "render", "hello", "-s", "color: red")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[LOG] hello")
}

func TestRender_LogFileDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)

	_, _, err := executeInHome(t, "", "--log-file", "render", "hello", "-s", "")
	require.NoError(t, err)

	logPath, err := config.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "console.log"), logPath)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[LOG] hello")
}

func TestBadge(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "default preset",
			args:    []string{"badge", "NOTE", "plain", "text"},
			wantOut: " NOTE  plain text\n",
		},
		{
			name:    "success preset on log channel",
			args:    []string{"badge", "BUILD", "passed", "--preset", "success"},
			wantOut: " BUILD  passed\n",
		},
		{
			name:       "error preset on error channel",
			args:       []string{"badge", "BUILD", "failed", "-p", "error"},
			wantErrOut: " BUILD  failed\n",
		},
		{
			name:    "quick custom",
			args:    []string{"badge", "DEPLOY", "x", "--fg", "white", "--bg", "purple"},
			wantOut: " DEPLOY  x\n",
		},
		{
			name:    "raw style",
			args:    []string{"badge", "RAW", "--style", "color: red"},
			wantOut: "RAW\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantErrOut, errOut)
		})
	}
}

func TestBadge_UnknownPreset(t *testing.T) {
	out, errOut, err := execute(t, "", "badge", "BUILD", "ok", "--preset", "sucess")
	require.NoError(t, err)

	assert.Equal(t, " BUILD  ok\n", out)
	assert.Contains(t, errOut, `Unknown preset "sucess"`)
	assert.Contains(t, errOut, "success")
}

func TestBadge_ConfigPreset(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	content := "presets:\n  deploy: \"color: white; background-color: purple;\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, config.FileName), []byte(content), 0644))

	out, errOut, err := executeInHome(t, "", "badge", "DEPLOY", "go", "-p", "deploy")
	require.NoError(t, err)
	assert.Equal(t, " DEPLOY  go\n", out)
	assert.Empty(t, errOut)
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "", "presets", "--css")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, len(preset.Defaults()))
	assert.Contains(t, out, "(error)")
	assert.Contains(t, out, "background-color: #3d0000")
}

func TestMarkdown(t *testing.T) {
	out, _, err := execute(t, "", "markdown", "**done** in", "`2s`")
	require.NoError(t, err)
	assert.Equal(t, "done in 2s\n", out)
}

func TestMarkdown_PercentIsLiteral(t *testing.T) {
	out, errOut, err := execute(t, "", "markdown", "--color", "never", "**50%s** off `x`")
	require.NoError(t, err)
	assert.Equal(t, "50%s off x\n", out)
	assert.Empty(t, errOut)
}

func TestPresets_PercentInCSS(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	content := "presets:\n  dim: \"color: rgb(10%, 20%, 30%); width: 5%d;\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, config.FileName), []byte(content), 0644))

	out, _, err := executeInHome(t, "", "presets", "--css", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "color: rgb(10%, 20%, 30%); width: 5%d;")
	assert.NotContains(t, out, "%%")
}

func TestMarkdown_Stdin(t *testing.T) {
	out, _, err := execute(t, "first *line*\n\n~~second~~ line\n", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line\n", out)
}

func TestHistory(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())
	db := filepath.Join(t.TempDir(), "history.db")

	_, _, err := executeInHome(t, "", "--history", db, "render", "hello", "-s", "color: red")
	require.NoError(t, err)
	_, _, err = executeInHome(t, "", "--history", db, "badge", "BUILD", "failed", "-p", "error")
	require.NoError(t, err)

	out, _, err := executeInHome(t, "", "--history", db, "history")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[ERROR]  BUILD  failed")
	assert.Contains(t, lines[1], "[LOG] hello")

	out, _, err = executeInHome(t, "", "--history", db, "history", "--min-level", "error", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, `"%cBUILD"`)
	assert.NotContains(t, out, "hello")

	out, _, err = executeInHome(t, "", "--history", db, "history", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 2 entries.\n", out)
}

func TestHistory_NoDatabase(t *testing.T) {
	out, _, err := execute(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No history recorded yet.")
}

func TestInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)

	out, _, err := executeInHome(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, config.FileName))

	cfg, err := config.LoadConfig(filepath.Join(home, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().LogLevel, cfg.LogLevel)

	_, _, err = executeInHome(t, "", "init")
	assert.Error(t, err, "existing config must not be overwritten")

	_, _, err = executeInHome(t, "", "init", "--force")
	assert.NoError(t, err)
}
