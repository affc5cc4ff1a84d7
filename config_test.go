package tinygui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tinygui/retained"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 240, cfg.Display.Width)
	assert.Equal(t, 320, cfg.Display.Height)

	opts, err := cfg.Options(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Nil(t, opts.Allocator)
	assert.Nil(t, opts.Theme)
	assert.Equal(t, 240, opts.Geometry.Width())
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "tinygui.toml", `
[display]
width = 320
height = 240

[memory]
budget = 4096

[log]
level = "debug"
format = "json"

[theme.LED]
colors = ["#FF0000", "green", "#80000000", "black"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Display.Width)
	assert.Equal(t, 4096, cfg.Memory.Budget)

	opts, err := cfg.Options(&bytes.Buffer{})
	require.NoError(t, err)
	budget, ok := opts.Allocator.(*retained.Budget)
	require.True(t, ok)
	assert.Equal(t, 4096, budget.Available())
	assert.Equal(t, []retained.Color{
		retained.ColorRed,
		retained.ColorGreen,
		retained.Color(0x80000000),
		retained.ColorBlack,
	}, opts.Theme["LED"])
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "tinygui.yaml", `
display:
  width: 128
  height: 64
theme:
  Window:
    colors: ["#D4D0C8"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Display.Width)
	assert.Equal(t, 64, cfg.Display.Height)
	// Defaults survive
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"#D4D0C8"}, cfg.Theme["Window"].Colors)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{"bad size", "a.toml", "[display]\nwidth = 0\n", "display size"},
		{"negative budget", "b.toml", "[memory]\nbudget = -1\n", "memory budget"},
		{"bad level", "c.toml", "[log]\nlevel = \"loud\"\n", "log level"},
		{"bad format", "d.toml", "[log]\nformat = \"xml\"\n", "log format"},
		{"bad color", "e.toml", "[theme.LED]\ncolors = [\"#12\"]\n", "theme LED"},
		{"bad toml", "f.toml", "[display\n", "failed to parse"},
		{"unknown yaml key", "g.yaml", "displai:\n  width: 1\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept", "id", 7)

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"id":7`)
}
