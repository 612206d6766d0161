package dashboard

import (
	"context"

	"github.com/cellviz/nicodash/internal/core/chart"
	"github.com/cellviz/nicodash/internal/core/selection"
	"github.com/cellviz/nicodash/internal/model"
)

// Frame is everything a single dashboard render publishes.
type Frame struct {
	State    model.SelectionState `json:"state"`
	Snapshot model.MetricSnapshot `json:"snapshot"`
	Figures  model.Figures        `json:"figures"`
}

type Service struct {
	SelectionService *selection.Service
}

func NewService(selectionService *selection.Service) *Service {
	return &Service{
		SelectionService: selectionService,
	}
}

// Render is the dashboard callback: a pure function of the two control values.
func (s *Service) Render(ctx context.Context, state model.SelectionState) (*Frame, error) {
	snapshot, err := s.SelectionService.SelectState(ctx, state)
	if err != nil {
		return nil, err
	}

	return &Frame{
		State:    state,
		Snapshot: *snapshot,
		Figures:  chart.Build(*snapshot),
	}, nil
}
