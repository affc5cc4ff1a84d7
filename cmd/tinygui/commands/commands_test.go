package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tinygui"
	"github.com/agiangrant/tinygui/display"
	"github.com/agiangrant/tinygui/retained"
	"github.com/agiangrant/tinygui/widgets/led"
)

func TestBuildScene(t *testing.T) {
	g := retained.New(retained.Options{})
	sc, err := buildScene(g)
	require.NoError(t, err)

	assert.Same(t, sc.desktop, g.Desktop())
	assert.Same(t, sc.status, g.Active())
	assert.True(t, led.IsOn(sc.power))
	assert.False(t, led.IsOn(sc.link))
	assert.Same(t, sc.link, g.Find(idLink))

	assert.Equal(t, 10+8, g.AbsoluteX(sc.power))
	assert.Equal(t, 10+32, g.AbsoluteY(sc.power))

	rec := &display.Recorder{}
	g.Render(rec)
	assert.Equal(t, 1, rec.Count(display.OpWriteText))
	assert.Equal(t, 1, rec.Count(display.OpFilledCircle))
}

func TestBuildSceneOutOfMemory(t *testing.T) {
	g := retained.New(retained.Options{Allocator: retained.NewBudget(100)})
	_, err := buildScene(g)
	assert.ErrorIs(t, err, retained.ErrNoMemory)
}

func TestRenderAndReplay(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, Init(nil))
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, tinygui.DefaultConfig().Display, cfg.Display)
	assert.Error(t, Init(nil), "second init without --force")

	out := filepath.Join(dir, "scene.png")
	require.NoError(t, Render([]string{"-o", out}))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	scriptPath := filepath.Join(dir, "drag.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
name: drag
steps:
  - touch: [[15, 12]]
  - touch: [[40, 12]]
  - release: true
`), 0o644))
	replayed := filepath.Join(dir, "dragged.png")
	require.NoError(t, Replay([]string{"-o", replayed, scriptPath}))
	_, err = os.Stat(replayed)
	assert.NoError(t, err)

	assert.Error(t, Replay(nil))
}
