package dash

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controllers.dash", fx.Invoke(
		RegisterPage,
		RegisterCallback,
		RegisterAPI,
		RegisterCharts,
	))
}
