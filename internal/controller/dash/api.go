package dash

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/core/selection"
	"github.com/cellviz/nicodash/internal/core/series"
	"github.com/cellviz/nicodash/internal/model"
	"github.com/cellviz/nicodash/internal/pkg/cachectrl"
	"github.com/cellviz/nicodash/internal/server/svr"
	"github.com/cellviz/nicodash/internal/util/rekuest"
)

type API struct {
	fx.In

	SeriesRepo       *series.Repo
	SelectionService *selection.Service
	DashboardService *dashboard.Service
}

func RegisterAPI(dash *svr.Dash, c API) {
	api := dash.Group("/api")
	api.Get("/series", c.GetSeries)
	api.Get("/snapshot", c.GetSnapshot)
	api.Get("/figures", c.GetFigures)
}

func (c *API) GetSeries(ctx *fiber.Ctx) error {
	tables, err := c.SeriesRepo.Tables(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx)
	return ctx.JSON(tables.View())
}

func (c *API) GetSnapshot(ctx *fiber.Ctx) error {
	var state model.SelectionState
	if err := rekuest.ValidQuery(ctx, &state); err != nil {
		return err
	}

	snapshot, err := c.SelectionService.SelectState(ctx.UserContext(), state)
	if err != nil {
		return err
	}

	return ctx.JSON(snapshot)
}

func (c *API) GetFigures(ctx *fiber.Ctx) error {
	var state model.SelectionState
	if err := rekuest.ValidQuery(ctx, &state); err != nil {
		return err
	}

	frame, err := c.DashboardService.Render(ctx.UserContext(), state)
	if err != nil {
		return err
	}

	return ctx.JSON(frame.Figures)
}
