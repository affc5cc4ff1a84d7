package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tinygui/retained"
)

const dragScript = `
name: drag title
steps:
  - touch: [[15, 12]]
  - touch: [[40, 12]]
    repeat: 2
  - release: true
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(dragScript))
	require.NoError(t, err)
	assert.Equal(t, "drag title", s.Name)
	require.Len(t, s.Steps, 3)

	samples := s.Samples()
	require.Len(t, samples, 4)
	assert.Equal(t, 1, samples[0].Count)
	assert.Equal(t, 15, samples[0].X[0])
	assert.Equal(t, 12, samples[0].Y[0])
	assert.Equal(t, samples[1], samples[2])
	assert.Equal(t, 0, samples[3].Count)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"too many points", "steps:\n  - touch: [[1,1],[2,2],[3,3]]\n", ErrTooManyPoints},
		{"bad point", "steps:\n  - touch: [[1]]\n", ErrBadPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), "step 1")
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("steps:\n  - tuch: [[1,1]]\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Samples())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dragScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	g := retained.New(retained.Options{})
	s, err := Parse(strings.NewReader(dragScript))
	require.NoError(t, err)

	assert.Equal(t, 4, s.Replay(g))
	assert.Equal(t, retained.TouchIdle, g.DragMode())
}
