package selection

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/core/series"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/pkg/observability"
)

type Service struct {
	SeriesRepo *series.Repo
}

func NewService(seriesRepo *series.Repo) *Service {
	return &Service{
		SeriesRepo: seriesRepo,
	}
}

// Select picks one value per metric for the given slider levels.
//
// While medicine is 0 the values come from the exposure series at index nicotine.
// Once medicine is above 0 they come from the medicine series at index medicine and
// nicotine is ignored: medicine recovery always starts from the worst exposure endpoint.
func (s *Service) Select(ctx context.Context, nicotine, medicine int) (*model.MetricSnapshot, error) {
	if err := CheckLevel(constant.ControlNicotine, nicotine); err != nil {
		return nil, err
	}
	if err := CheckLevel(constant.ControlMedicine, medicine); err != nil {
		return nil, err
	}

	tables, err := s.SeriesRepo.Tables(ctx)
	if err != nil {
		return nil, err
	}

	direction, step := model.DirectionExposure, nicotine
	if medicine != 0 {
		direction, step = model.DirectionMedicine, medicine
	}

	snapshot := &model.MetricSnapshot{Direction: direction}
	for _, m := range model.Metrics {
		snapshot.Set(m, tables.At(direction, m, step))
	}

	observability.SelectionTotal.WithLabelValues(string(direction)).Inc()
	log.Ctx(ctx).Debug().
		Str("evt.name", "selection.select").
		Int("nicotine", nicotine).
		Int("medicine", medicine).
		Str("direction", string(direction)).
		Msg("selected metric snapshot")

	return snapshot, nil
}

// SelectState is Select for a model.SelectionState.
func (s *Service) SelectState(ctx context.Context, state model.SelectionState) (*model.MetricSnapshot, error) {
	return s.Select(ctx, state.Nicotine, state.Medicine)
}

// CheckLevel fails with apperr.ErrOutOfRange when level is outside the slider bounds.
func CheckLevel(control string, level int) error {
	if level < model.MinStep || level > model.MaxStep {
		return apperr.ErrOutOfRange.
			Msg("%s level %d is out of range [%d, %d]", control, level, model.MinStep, model.MaxStep).
			WithExtras(apperr.Extras{
				"control": control,
				"value":   level,
				"min":     model.MinStep,
				"max":     model.MaxStep,
			})
	}
	return nil
}
