package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/model"
)

var baseline = model.MetricSnapshot{
	Cytokine:         10,
	Viability:        100,
	OxidativeStress:  20,
	MetabolicRate:    80,
	ApoptosisMarkers: 10,
	Direction:        model.DirectionExposure,
}

func TestCytokineLevels(t *testing.T) {
	spec := CytokineLevels(baseline)

	assert.Equal(t, constant.ChartCytokineLevels, spec.ID)
	require.Len(t, spec.Data, 1)
	assert.Equal(t, TraceTypeBar, spec.Data[0].Type)
	assert.Equal(t, []string{"Cytokine Levels"}, spec.Data[0].X)
	assert.Equal(t, []float64{10}, spec.Data[0].Y)
	assert.Nil(t, spec.Data[0].Marker)

	assert.Equal(t, "Cytokine Levels (Inflammation Markers)", spec.Layout.Title.Text)
	assert.Equal(t, "Level", spec.Layout.YAxis.Title.Text)
	assert.Equal(t, "Parameter", spec.Layout.XAxis.Title.Text)
}

func TestCellHealth(t *testing.T) {
	spec := CellHealth(baseline)

	assert.Equal(t, constant.ChartCellHealth, spec.ID)
	require.Len(t, spec.Data, 4)

	expected := []struct {
		category string
		value    float64
		color    string
	}{
		{"Viability", 100, ""},
		{"Oxidative Stress", 20, "red"},
		{"Metabolic Rate", 80, ""},
		{"Apoptosis Markers", 10, "orange"},
	}
	for i, e := range expected {
		trace := spec.Data[i]
		assert.Equal(t, TraceTypeBar, trace.Type)
		assert.Equal(t, []string{e.category}, trace.X)
		assert.Equal(t, e.category, trace.Name)
		assert.Equal(t, []float64{e.value}, trace.Y)
		if e.color == "" {
			assert.Nil(t, trace.Marker, e.category)
		} else {
			require.NotNil(t, trace.Marker, e.category)
			assert.Equal(t, e.color, trace.Marker.Color)
		}
	}

	assert.Equal(t, "Cell Health Parameters", spec.Layout.Title.Text)
	assert.Equal(t, "group", spec.Layout.BarMode)
}

func TestBuildIsIdempotent(t *testing.T) {
	first := Build(baseline)
	second := Build(baseline)

	assert.Equal(t, first, second)

	// fresh allocations: mutating one render never leaks into the next
	first.CellHealth.Data[0].Y[0] = -1
	assert.Equal(t, 100.0, second.CellHealth.Data[0].Y[0])
	assert.Equal(t, 100.0, Build(baseline).CellHealth.Data[0].Y[0])
}

func TestBuildReplacesSeries(t *testing.T) {
	before := Build(baseline)
	after := Build(model.MetricSnapshot{
		Cytokine: 0, Viability: 90, OxidativeStress: 30, MetabolicRate: 70, ApoptosisMarkers: 20,
		Direction: model.DirectionMedicine,
	})

	assert.Len(t, after.CellHealth.Data, len(before.CellHealth.Data))
	assert.Equal(t, []float64{0}, after.CytokineLevels.Data[0].Y)
	assert.Equal(t, []float64{30}, after.CellHealth.Data[1].Y)
}
