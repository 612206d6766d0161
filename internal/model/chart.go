package model

// ChartSpec is a declarative, render-agnostic bar chart description. Its JSON form is a
// Plotly figure, so it can be handed to Plotly.react as is.
type ChartSpec struct {
	ID     string      `json:"-"`
	Data   []Trace     `json:"data"`
	Layout ChartLayout `json:"layout"`
}

type Trace struct {
	Type   string    `json:"type"`
	X      []string  `json:"x"`
	Y      []float64 `json:"y"`
	Name   string    `json:"name"`
	Marker *Marker   `json:"marker,omitempty"`
}

type Marker struct {
	Color string `json:"color"`
}

type ChartLayout struct {
	Title   Text   `json:"title"`
	XAxis   Axis   `json:"xaxis"`
	YAxis   Axis   `json:"yaxis"`
	BarMode string `json:"barmode,omitempty"`
}

type Axis struct {
	Title Text `json:"title"`
}

type Text struct {
	Text string `json:"text"`
}

// Figures is the pair of charts published on every dashboard render.
type Figures struct {
	CytokineLevels ChartSpec `json:"cytokine-levels"`
	CellHealth     ChartSpec `json:"cell-health"`
}

// ByID returns the chart with the given id.
func (f *Figures) ByID(id string) (ChartSpec, bool) {
	switch id {
	case f.CytokineLevels.ID:
		return f.CytokineLevels, true
	case f.CellHealth.ID:
		return f.CellHealth, true
	default:
		return ChartSpec{}, false
	}
}
