package dashboard

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/model"
)

const PropertyValue = "value"
const PropertyFigure = "figure"

type Control struct {
	ID    string            `json:"id"`
	Label string            `json:"label"`
	Kind  string            `json:"kind"`
	Min   int               `json:"min"`
	Max   int               `json:"max"`
	Step  int               `json:"step"`
	Value int               `json:"value"`
	Marks map[string]string `json:"marks"`
}

type Output struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

type Layout struct {
	Title    string    `json:"title"`
	Controls []Control `json:"controls"`
	Outputs  []Output  `json:"outputs"`
}

// Dependency follows the shape of a Dash callback declaration so Dash tooling can
// introspect the dashboard.
type Dependency struct {
	Output  string   `json:"output"`
	Outputs []Output `json:"outputs"`
	Inputs  []Output `json:"inputs"`
	State   []Output `json:"state"`
}

func slider(id, label string) Control {
	return Control{
		ID:    id,
		Label: label,
		Kind:  "slider",
		Min:   model.MinStep,
		Max:   model.MaxStep,
		Step:  1,
		Value: model.MinStep,
		Marks: lo.SliceToMap(lo.RangeFrom(model.MinStep, model.Steps), func(i int) (string, string) {
			return strconv.Itoa(i), strconv.Itoa(i)
		}),
	}
}

var outputs = []Output{
	{ID: constant.OutputCytokineGraph, Property: PropertyFigure},
	{ID: constant.OutputCellHealthGraph, Property: PropertyFigure},
}

// GetLayout describes the UI control surface: both sliders and both graphs.
func GetLayout() *Layout {
	return &Layout{
		Title: constant.DashTitle,
		Controls: []Control{
			slider(constant.ControlNicotine, "Nicotine Exposure Level:"),
			slider(constant.ControlMedicine, "Medicine Response Level:"),
		},
		Outputs: append([]Output(nil), outputs...),
	}
}

// GetDependencies returns the single callback wiring both sliders to both graphs.
func GetDependencies() []Dependency {
	return []Dependency{
		{
			Output:  multiOutputKey(outputs),
			Outputs: append([]Output(nil), outputs...),
			Inputs: []Output{
				{ID: constant.ControlNicotine, Property: PropertyValue},
				{ID: constant.ControlMedicine, Property: PropertyValue},
			},
			State: []Output{},
		},
	}
}

// multiOutputKey renders outputs the way Dash keys multi-output callbacks:
// "..a.figure...b.figure..".
func multiOutputKey(outs []Output) string {
	parts := lo.Map(outs, func(o Output, _ int) string {
		return o.ID + "." + o.Property
	})
	return ".." + strings.Join(parts, "...") + ".."
}
