package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/core/selection"
	"github.com/cellviz/nicodash/internal/core/series"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
)

type recorder struct {
	frames []*Frame
}

func (r *recorder) publish(frame *Frame) {
	r.frames = append(r.frames, frame)
}

func newShell(t *testing.T) (*Shell, *recorder) {
	t.Helper()

	rec := &recorder{}
	svc := NewService(selection.NewService(series.NewRepo()))
	shell, err := NewShell(context.Background(), svc, rec.publish)
	require.NoError(t, err)
	return shell, rec
}

func TestShellInitialRender(t *testing.T) {
	shell, rec := newShell(t)

	require.Len(t, rec.frames, 1)
	frame := rec.frames[0]
	assert.Equal(t, model.SelectionState{}, frame.State)
	assert.Equal(t, 10.0, frame.Snapshot.Cytokine)
	assert.Equal(t, []float64{10}, frame.Figures.CytokineLevels.Data[0].Y)
	assert.Same(t, frame, shell.Current())
}

func TestShellPublishesOnChange(t *testing.T) {
	shell, rec := newShell(t)
	ctx := context.Background()

	published, err := shell.Set(ctx, constant.ControlNicotine, 10)
	require.NoError(t, err)
	assert.True(t, published)
	require.Len(t, rec.frames, 2)
	assert.Equal(t, 60.0, rec.frames[1].Snapshot.Cytokine)

	published, err = shell.Set(ctx, constant.ControlMedicine, 10)
	require.NoError(t, err)
	assert.True(t, published)
	require.Len(t, rec.frames, 3)

	last := rec.frames[2]
	assert.Equal(t, model.SelectionState{Nicotine: 10, Medicine: 10}, last.State)
	assert.Equal(t, []float64{0}, last.Figures.CytokineLevels.Data[0].Y)
	require.Len(t, last.Figures.CellHealth.Data, 4, "a frame carries exactly the current series")
	assert.Equal(t, []float64{90}, last.Figures.CellHealth.Data[0].Y)

	// the earlier frame is untouched by the re-render
	assert.Equal(t, []float64{60}, rec.frames[1].Figures.CytokineLevels.Data[0].Y)
}

func TestShellIgnoresSameValue(t *testing.T) {
	shell, rec := newShell(t)

	published, err := shell.Set(context.Background(), constant.ControlMedicine, 0)
	require.NoError(t, err)
	assert.False(t, published)
	assert.Len(t, rec.frames, 1)
}

func TestShellRejectsInvalidEvents(t *testing.T) {
	shell, rec := newShell(t)
	ctx := context.Background()

	_, err := shell.Set(ctx, constant.ControlNicotine, 11)
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)

	_, err = shell.Set(ctx, "caffeine-slider", 1)
	assert.ErrorIs(t, err, ErrUnknownControl)

	assert.Equal(t, model.SelectionState{}, shell.State())
	assert.Len(t, rec.frames, 1)
}

type failingRenderer struct {
	calls int
	inner FrameRenderer
}

func (f *failingRenderer) Render(ctx context.Context, state model.SelectionState) (*Frame, error) {
	f.calls++
	if f.calls > 1 {
		return nil, errors.New("render failed")
	}
	return f.inner.Render(ctx, state)
}

func TestShellKeepsStateWhenRenderFails(t *testing.T) {
	renderer := &failingRenderer{inner: NewService(selection.NewService(series.NewRepo()))}
	rec := &recorder{}
	shell, err := NewShell(context.Background(), renderer, rec.publish)
	require.NoError(t, err)

	published, err := shell.Set(context.Background(), constant.ControlNicotine, 4)
	assert.Error(t, err)
	assert.False(t, published)
	assert.Equal(t, model.SelectionState{}, shell.State())
	assert.Len(t, rec.frames, 1)
}
