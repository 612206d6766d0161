package dashboard

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/core/selection"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/pkg/observability"
)

var ErrUnknownControl = apperr.New(fiber.StatusBadRequest, "UNKNOWN_CONTROL", "unknown control")

// FrameRenderer is implemented by Service.
type FrameRenderer interface {
	Render(ctx context.Context, state model.SelectionState) (*Frame, error)
}

// Publisher receives every frame the shell renders. A frame fully replaces the
// previously published one.
type Publisher func(frame *Frame)

// Shell owns the two slider values and republishes both charts whenever one of them
// actually changes. Calls are serialized: each change is rendered and published before
// the next one is looked at.
type Shell struct {
	mu       sync.Mutex
	renderer FrameRenderer
	publish  Publisher
	state    model.SelectionState
	current  *Frame
}

// NewShell renders the initial (0, 0) state and publishes it once.
func NewShell(ctx context.Context, renderer FrameRenderer, publish Publisher) (*Shell, error) {
	s := &Shell{
		renderer: renderer,
		publish:  publish,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.render(ctx, "initial"); err != nil {
		return nil, err
	}
	return s, nil
}

// Set applies a control change. It returns whether a new frame was published: setting a
// control to the value it already holds is a no-op.
func (s *Shell) Set(ctx context.Context, controlID string, value int) (bool, error) {
	if !isControl(controlID) {
		return false, ErrUnknownControl.Msg("unknown control %q", controlID)
	}
	if err := selection.CheckLevel(controlID, value); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	switch controlID {
	case constant.ControlNicotine:
		next.Nicotine = value
	case constant.ControlMedicine:
		next.Medicine = value
	}

	if next == s.state {
		return false, nil
	}

	prev := s.state
	s.state = next
	if err := s.render(ctx, controlID); err != nil {
		s.state = prev
		return false, err
	}
	return true, nil
}

func (s *Shell) render(ctx context.Context, trigger string) error {
	frame, err := s.renderer.Render(ctx, s.state)
	if err != nil {
		return err
	}

	s.current = frame
	observability.DashboardRenders.WithLabelValues(trigger).Inc()
	log.Ctx(ctx).Trace().
		Str("evt.name", "dashboard.publish").
		Str("trigger", trigger).
		Int("nicotine", s.state.Nicotine).
		Int("medicine", s.state.Medicine).
		Msg("publishing dashboard frame")

	if s.publish != nil {
		s.publish(frame)
	}
	return nil
}

func (s *Shell) State() model.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the last published frame.
func (s *Shell) Current() *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func isControl(id string) bool {
	return id == constant.ControlNicotine || id == constant.ControlMedicine
}
