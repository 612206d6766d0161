package dashboard

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("dashboard",
		fx.Provide(
			NewService,
		),
	)
}
