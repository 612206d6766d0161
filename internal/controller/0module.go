package controller

import (
	"go.uber.org/fx"

	controllerdash "github.com/cellviz/nicodash/internal/controller/dash"
	controllermeta "github.com/cellviz/nicodash/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (dash)
		controllerdash.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
