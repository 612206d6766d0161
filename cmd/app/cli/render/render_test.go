package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/cellviz/nicodash/internal/core/chart"
	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/core/selection"
	"github.com/cellviz/nicodash/internal/core/series"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
)

func testDeps() CommandDeps {
	return CommandDeps{
		DashboardService: dashboard.NewService(selection.NewService(series.NewRepo())),
		Renderer:         chart.NewRenderer(),
	}
}

func TestRunWritesBothCharts(t *testing.T) {
	dir := t.TempDir()

	paths, err := run(context.Background(), testDeps(), Options{
		State:  model.SelectionState{Nicotine: 4},
		Format: "svg",
		OutDir: dir,
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "cytokine-levels.svg"),
		filepath.Join(dir, "cell-health.svg"),
	}, paths)

	for _, p := range paths {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Contains(t, string(b), "<svg")
	}
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()

	paths, err := run(context.Background(), testDeps(), Options{
		State:  model.SelectionState{Medicine: 2},
		Format: "JSON",
		OutDir: filepath.Join(dir, "nested"),
	})
	require.NoError(t, err)

	b, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, 48.0, gjson.GetBytes(b, "data.0.y.0").Float())
	assert.Equal(t, "Level", gjson.GetBytes(b, "layout.yaxis.title.text").String())
}

func TestRunRejects(t *testing.T) {
	dir := t.TempDir()

	_, err := run(context.Background(), testDeps(), Options{Format: "gif", OutDir: dir})
	assert.ErrorIs(t, err, apperr.ErrInvalidReq)

	_, err = run(context.Background(), testDeps(), Options{
		State:  model.SelectionState{Nicotine: 11},
		Format: "svg",
		OutDir: dir,
	})
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
