package chart

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/pkg/observability"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", apperr.ErrInvalidReq.Msg("unsupported chart format %q: expecting one of svg, png", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatPNG {
		return gochart.PNG
	}
	return gochart.SVG
}

const (
	chartHeight   = 480
	barWidth      = 80
	barSpacing    = 40
	minChartWidth = 480
	// axisFloor is the lowest upper bound of the Y axis; every metric lives in [0, 100].
	axisFloor = 100
)

var namedColors = map[string]drawing.Color{
	ColorRed:    gochart.ColorRed,
	ColorOrange: {R: 255, G: 165, B: 0, A: 255},
}

// Renderer rasterises ChartSpecs with go-chart.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws spec as a bar chart, one bar per trace category, and writes it to w.
func (r *Renderer) Render(w io.Writer, spec model.ChartSpec, format Format) error {
	if format != FormatSVG && format != FormatPNG {
		return apperr.ErrInvalidReq.Msg("unsupported chart format %q", format)
	}

	bars := make([]gochart.Value, 0, len(spec.Data))
	for _, trace := range spec.Data {
		style := gochart.Style{}
		if trace.Marker != nil {
			if c, ok := namedColors[trace.Marker.Color]; ok {
				style.FillColor = c
				style.StrokeColor = c
			}
		}
		for i, category := range trace.X {
			if i >= len(trace.Y) {
				break
			}
			bars = append(bars, gochart.Value{
				Label: category,
				Value: trace.Y[i],
				Style: style,
			})
		}
	}
	if len(bars) == 0 {
		return apperr.ErrInvalidReq.Msg("chart %q has no bars to render", spec.ID)
	}

	upper := float64(axisFloor)
	for _, b := range bars {
		upper = math.Max(upper, b.Value)
	}

	bc := gochart.BarChart{
		Title:      spec.Layout.Title.Text,
		Height:     chartHeight,
		Width:      int(math.Max(minChartWidth, float64(len(bars)*(barWidth+barSpacing)+2*barSpacing))),
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: gochart.YAxis{
			Name:  spec.Layout.YAxis.Title.Text,
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Ceil(upper)},
		},
		Bars: bars,
	}

	start := time.Now()
	err := bc.Render(format.provider(), w)
	observability.ChartRenderDuration.
		WithLabelValues(spec.ID, string(format)).
		Observe(time.Since(start).Seconds())
	if err != nil {
		return errors.Wrapf(err, "chart: failed to render %s as %s", spec.ID, format)
	}
	return nil
}
