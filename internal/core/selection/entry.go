package selection

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("selection",
		fx.Provide(
			NewService,
		),
	)
}
