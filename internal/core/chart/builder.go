package chart

import (
	"github.com/samber/lo"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/model"
)

const (
	TraceTypeBar = "bar"
	BarModeGroup = "group"

	ColorRed    = "red"
	ColorOrange = "orange"
)

const (
	cytokineTitle   = "Cytokine Levels (Inflammation Markers)"
	cellHealthTitle = "Cell Health Parameters"
	levelAxis       = "Level"
)

type cellHealthBar struct {
	Metric model.Metric
	Color  string
}

// cellHealthBars lists the bars of the cell-health chart in display order; an empty
// color keeps the renderer's default.
var cellHealthBars = []cellHealthBar{
	{model.MetricViability, ""},
	{model.MetricOxidativeStress, ColorRed},
	{model.MetricMetabolicRate, ""},
	{model.MetricApoptosisMarkers, ColorOrange},
}

// Build turns a snapshot into the cytokine-levels and cell-health charts. Each call
// allocates fresh specs so no render ever shares series with a previous one.
func Build(snapshot model.MetricSnapshot) model.Figures {
	return model.Figures{
		CytokineLevels: CytokineLevels(snapshot),
		CellHealth:     CellHealth(snapshot),
	}
}

func CytokineLevels(snapshot model.MetricSnapshot) model.ChartSpec {
	return model.ChartSpec{
		ID: constant.ChartCytokineLevels,
		Data: []model.Trace{
			bar(model.MetricCytokine.Label(), snapshot.Cytokine, ""),
		},
		Layout: layout(cytokineTitle, "Parameter"),
	}
}

func CellHealth(snapshot model.MetricSnapshot) model.ChartSpec {
	return model.ChartSpec{
		ID: constant.ChartCellHealth,
		Data: lo.Map(cellHealthBars, func(b cellHealthBar, _ int) model.Trace {
			return bar(b.Metric.Label(), snapshot.Value(b.Metric), b.Color)
		}),
		Layout: layout(cellHealthTitle, "Parameters"),
	}
}

func bar(category string, value float64, color string) model.Trace {
	t := model.Trace{
		Type: TraceTypeBar,
		X:    []string{category},
		Y:    []float64{value},
		Name: category,
	}
	if color != "" {
		t.Marker = &model.Marker{Color: color}
	}
	return t
}

func layout(title, xTitle string) model.ChartLayout {
	return model.ChartLayout{
		Title:   model.Text{Text: title},
		XAxis:   model.Axis{Title: model.Text{Text: xTitle}},
		YAxis:   model.Axis{Title: model.Text{Text: levelAxis}},
		BarMode: BarModeGroup,
	}
}
