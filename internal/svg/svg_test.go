package svg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/workchart/internal/heatmap"
)

var _ heatmap.Canvas = (*Canvas)(nil)

func TestCanvasWritesRectangles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "work.svg")

	canvas, err := New(path, 101, 47)
	require.NoError(t, err)

	canvas.Rect(0, 0, 101, 47, "white")
	canvas.Rect(6, 6, 11, 11, "#d6e685")
	require.NoError(t, canvas.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := string(raw)
	require.Contains(t, doc, `width="101"`)
	require.Contains(t, doc, `height="47"`)
	require.Equal(t, 2, strings.Count(doc, "<rect"))
	require.Contains(t, doc, "fill:#d6e685")
	require.Contains(t, doc, "</svg>")
}

func TestNewFailsOnUnwritablePath(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing", "work.svg"), 10, 10)
	require.ErrorIs(t, err, ErrOutputWrite)
}

func TestCanvasOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "work.svg")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	canvas, err := New(path, 10, 10)
	require.NoError(t, err)
	require.NoError(t, canvas.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "stale")
}
