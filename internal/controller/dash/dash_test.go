package dash_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/cellviz/nicodash/internal/pkg/testentry"
)

func startApp(t *testing.T) *fiber.App {
	var app *fiber.App
	testentry.Populate(t, &app)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func callback(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	req := httptest.NewRequest(http.MethodPost, "/dash/_dash-update-component", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return do(t, app, req)
}

func TestUpdateComponent(t *testing.T) {
	app := startApp(t)

	tests := []struct {
		name      string
		nicotine  string
		medicine  string
		cytokine  float64
		viability float64
	}{
		{"baseline", "0", "0", 10, 100},
		{"exposure", "5", "0", 35, 60},
		{"medicine overrides nicotine", "10", "3", 42, 41},
		{"medicine alone", "0", "3", 42, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := callback(t, app, `{"inputs":[`+
				`{"id":"nicotine-slider","property":"value","value":`+tt.nicotine+`},`+
				`{"id":"medicine-slider","property":"value","value":`+tt.medicine+`}]}`)
			require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

			assert.True(t, gjson.GetBytes(body, "multi").Bool())
			assert.Equal(t, tt.cytokine, gjson.GetBytes(body, "response.cytokine-levels-graph.figure.data.0.y.0").Float())
			assert.Equal(t, "Cytokine Levels (Inflammation Markers)",
				gjson.GetBytes(body, "response.cytokine-levels-graph.figure.layout.title.text").String())

			cell := gjson.GetBytes(body, "response.cell-health-graph.figure")
			assert.Len(t, cell.Get("data").Array(), 4)
			assert.Equal(t, tt.viability, cell.Get("data.0.y.0").Float())
			assert.Equal(t, "red", cell.Get("data.1.marker.color").String())
			assert.Equal(t, "orange", cell.Get("data.3.marker.color").String())
			assert.Equal(t, "group", cell.Get("layout.barmode").String())
		})
	}
}

func TestUpdateComponentRejects(t *testing.T) {
	app := startApp(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"not json", `{"inputs":`, "INVALID_REQUEST"},
		{"missing medicine", `{"inputs":[{"id":"nicotine-slider","property":"value","value":1}]}`, "INVALID_REQUEST"},
		{"non numeric", `{"inputs":[{"id":"nicotine-slider","value":"1"},{"id":"medicine-slider","value":0}]}`, "INVALID_REQUEST"},
		{"fractional", `{"inputs":[{"id":"nicotine-slider","value":1.5},{"id":"medicine-slider","value":0}]}`, "INVALID_REQUEST"},
		{"above max", `{"inputs":[{"id":"nicotine-slider","value":11},{"id":"medicine-slider","value":0}]}`, "OUT_OF_RANGE"},
		{"below min", `{"inputs":[{"id":"nicotine-slider","value":0},{"id":"medicine-slider","value":-1}]}`, "OUT_OF_RANGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := callback(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.code, gjson.GetBytes(body, "code").String())
		})
	}
}

func TestSnapshot(t *testing.T) {
	app := startApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/dash/api/snapshot?nicotine=5", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 35.0, gjson.GetBytes(body, "cytokine").Float())
	assert.Equal(t, 60.0, gjson.GetBytes(body, "viability").Float())
	assert.Equal(t, 55.0, gjson.GetBytes(body, "oxidative_stress").Float())
	assert.Equal(t, 50.0, gjson.GetBytes(body, "metabolic_rate").Float())
	assert.Equal(t, 30.0, gjson.GetBytes(body, "apoptosis_markers").Float())
	assert.Equal(t, "exposure", gjson.GetBytes(body, "direction").String())

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/dash/api/snapshot?nicotine=11", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "OUT_OF_RANGE", gjson.GetBytes(body, "code").String())
	assert.Equal(t, "max", gjson.GetBytes(body, "violations.0.violation").String())
}

func TestFiguresAndSeries(t *testing.T) {
	app := startApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/dash/api/figures?medicine=10", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 0.0, gjson.GetBytes(body, "cytokine-levels.data.0.y.0").Float())
	assert.Equal(t, "Cell Health Parameters", gjson.GetBytes(body, "cell-health.layout.title.text").String())

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/dash/api/series", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "public")
	assert.True(t, gjson.ValidBytes(body))
}

func TestChartETag(t *testing.T) {
	app := startApp(t)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/dash/charts/cell-health.svg?nicotine=2", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/svg+xml", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, string(body), "Cell Health Parameters")

	etag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/dash/charts/cell-health.svg?nicotine=2", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, _ = do(t, app, req)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/dash/charts/cell-health.svg?nicotine=3", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, _ = do(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestChartRejects(t *testing.T) {
	app := startApp(t)

	for _, path := range []string{
		"/dash/charts/viability.svg",
		"/dash/charts/cell-health.gif",
		"/dash/charts/cytokine-levels.png?medicine=12",
	} {
		resp, body := do(t, app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
		assert.NotEmpty(t, gjson.GetBytes(body, "code").String(), path)
	}
}

func TestPages(t *testing.T) {
	app := startApp(t)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/dash", nil))
	assert.Equal(t, fiber.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/dash/", resp.Header.Get(fiber.HeaderLocation))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/dash/", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<title>Nicotine Effect on Cell Health</title>")

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/dash/_dash-layout", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "nicotine-slider", gjson.GetBytes(body, "controls.0.id").String())
	assert.Equal(t, "Medicine Response Level:", gjson.GetBytes(body, "controls.1.label").String())
	assert.Equal(t, "10", gjson.GetBytes(body, "controls.0.marks.10").String())

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/dash/_dash-dependencies", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, gjson.GetBytes(body, "0.inputs").Array(), 2)
}
