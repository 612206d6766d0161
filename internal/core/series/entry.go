package series

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("series",
		fx.Provide(
			NewRepo,
		),
	)
}
