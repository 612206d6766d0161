package dash

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/core/chart"
	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/apperr"
	"github.com/cellviz/nicodash/internal/pkg/cachectrl"
	"github.com/cellviz/nicodash/internal/server/svr"
	"github.com/cellviz/nicodash/internal/util/rekuest"
)

type Charts struct {
	fx.In

	DashboardService *dashboard.Service
	Renderer         *chart.Renderer
}

type chartParams struct {
	Chart  string `params:"chart" validate:"required,chartid"`
	Format string `params:"format" validate:"required,oneof=svg png"`
}

func RegisterCharts(dash *svr.Dash, c Charts) {
	dash.Get("/charts/:chart.:format", c.GetChart)
}

// GetChart renders one of the two charts server-side for the selected levels.
func (c *Charts) GetChart(ctx *fiber.Ctx) error {
	var params chartParams
	if err := rekuest.ValidParams(ctx, &params); err != nil {
		return err
	}
	var state model.SelectionState
	if err := rekuest.ValidQuery(ctx, &state); err != nil {
		return err
	}

	format, err := chart.ParseFormat(params.Format)
	if err != nil {
		return err
	}

	frame, err := c.DashboardService.Render(ctx.UserContext(), state)
	if err != nil {
		return err
	}
	spec, ok := frame.Figures.ByID(params.Chart)
	if !ok {
		return apperr.ErrNotFound.Msg("chart %q not found", params.Chart)
	}

	var buf bytes.Buffer
	if err := c.Renderer.Render(&buf, spec, format); err != nil {
		return err
	}

	cachectrl.OptIn(ctx)
	if cachectrl.ETagMatches(ctx, buf.Bytes()) {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	ctx.Set(fiber.HeaderContentType, format.ContentType())
	return ctx.Send(buf.Bytes())
}
