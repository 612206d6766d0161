package web

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/pkg/bininfo"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// PlotlyScript is the plotly.js bundle the dashboard page draws its figures with.
const PlotlyScript = "https://cdn.plot.ly/plotly-2.27.0.min.js"

type pageData struct {
	Title   string
	Prefix  string
	Plotly  string
	Version string
}

// Pages holds the pre-rendered HTML of the landing and dashboard pages.
type Pages struct {
	Landing   []byte
	Dashboard []byte
}

func NewPages() (*Pages, error) {
	data := pageData{
		Title:   constant.DashTitle,
		Prefix:  constant.DashPathPrefix,
		Plotly:  PlotlyScript,
		Version: bininfo.Version,
	}

	landing, err := execute("landing.html", data)
	if err != nil {
		return nil, err
	}
	dashboard, err := execute("dashboard.html", data)
	if err != nil {
		return nil, err
	}

	return &Pages{
		Landing:   landing,
		Dashboard: dashboard,
	}, nil
}

func execute(name string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render page %s", name)
	}
	return buf.Bytes(), nil
}
