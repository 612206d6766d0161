package series

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/pkg/cache"
)

// Repo hands out the process-wide lookup tables. They are generated on first use and
// never change afterwards.
type Repo struct {
	tables *cache.Singular[*model.SeriesTables]
}

func NewRepo() *Repo {
	return &Repo{
		tables: cache.NewSingular[*model.SeriesTables]("series#tables"),
	}
}

func (r *Repo) Tables(ctx context.Context) (*model.SeriesTables, error) {
	var tables *model.SeriesTables
	err := r.tables.MutexGetSet(&tables, func() (*model.SeriesTables, error) {
		return Generate(), nil
	}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "series: failed to load lookup tables")
	}
	return tables, nil
}

func (r *Repo) Series(ctx context.Context, d model.Direction, m model.Metric) (model.MetricSeries, error) {
	tables, err := r.Tables(ctx)
	if err != nil {
		return model.MetricSeries{}, err
	}

	s, ok := tables.Series(d, m)
	if !ok {
		return model.MetricSeries{}, apperr.ErrInvalidReq.Msg("unknown series: direction %q, metric %q", d, m)
	}
	return s, nil
}
