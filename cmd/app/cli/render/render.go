package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cellviz/nicodash/internal/core/chart"
	"github.com/cellviz/nicodash/internal/model"
)

const (
	FormatSVG = string(chart.FormatSVG)
	// FormatJSON writes the Plotly figures instead of rasterised images.
	FormatJSON = "json"
)

type Options struct {
	State  model.SelectionState
	Format string
	OutDir string
}

// run renders both charts of the frame selected by opts.State and returns the paths it
// wrote, in chart order.
func run(ctx context.Context, deps CommandDeps, opts Options) ([]string, error) {
	format := strings.ToLower(opts.Format)
	var imageFormat chart.Format
	if format != FormatJSON {
		f, err := chart.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		imageFormat = f
	}

	frame, err := deps.DashboardService.Render(ctx, opts.State)
	if err != nil {
		return nil, err
	}
	log.Trace().Msg(spew.Sdump(frame.Snapshot))

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	specs := []model.ChartSpec{frame.Figures.CytokineLevels, frame.Figures.CellHealth}
	paths := make([]string, len(specs))

	eg, _ := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		paths[i] = filepath.Join(opts.OutDir, spec.ID+"."+format)

		eg.Go(func() error {
			return writeChart(deps.Renderer, paths[i], spec, format, imageFormat)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("nicotine", opts.State.Nicotine).
		Int("medicine", opts.State.Medicine).
		Strs("files", paths).
		Msg("charts rendered")

	return paths, nil
}

func writeChart(renderer *chart.Renderer, path string, spec model.ChartSpec, format string, imageFormat chart.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if format == FormatJSON {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return errors.Wrapf(enc.Encode(spec), "failed to encode %s", spec.ID)
	}

	return renderer.Render(f, spec, imageFormat)
}
