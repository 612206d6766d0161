package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cellviz/nicodash/internal/constant"
)

// Dash is the router group the interactive dashboard is served under.
type Dash struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Dash, *Meta) {
	dash := app.Group(constant.DashPathPrefix)
	meta := app.Group("/api/_")

	return &Dash{Router: dash}, &Meta{Router: meta}
}
