package dash

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/constant"
	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/pkg/cachectrl"
	"github.com/cellviz/nicodash/internal/server/svr"
	"github.com/cellviz/nicodash/internal/web"
)

type Page struct {
	fx.In

	Pages *web.Pages
}

func RegisterPage(dash *svr.Dash, c Page) {
	dash.Get("/", c.Dashboard)
	dash.Get("/_dash-layout", c.Layout)
	dash.Get("/_dash-dependencies", c.Dependencies)
}

func (c *Page) Dashboard(ctx *fiber.Ctx) error {
	// routing is not strict, so the bare prefix lands here as well
	if ctx.Path() == constant.DashPathPrefix {
		return ctx.Redirect(constant.DashPathPrefix+"/", fiber.StatusMovedPermanently)
	}

	ctx.Type("html", "utf-8")
	return ctx.Send(c.Pages.Dashboard)
}

func (c *Page) Layout(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx)
	return ctx.JSON(dashboard.GetLayout())
}

func (c *Page) Dependencies(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx)
	return ctx.JSON(dashboard.GetDependencies())
}
