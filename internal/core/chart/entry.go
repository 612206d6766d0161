package chart

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("chart",
		fx.Provide(
			NewRenderer,
		),
	)
}
