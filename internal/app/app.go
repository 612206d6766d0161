package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/app/appconfig"
	"github.com/cellviz/nicodash/internal/app/appcontext"
	"github.com/cellviz/nicodash/internal/controller"
	"github.com/cellviz/nicodash/internal/core/chart"
	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/core/selection"
	"github.com/cellviz/nicodash/internal/core/series"
	"github.com/cellviz/nicodash/internal/infra"
	"github.com/cellviz/nicodash/internal/pkg/logger"
	"github.com/cellviz/nicodash/internal/server"
	"github.com/cellviz/nicodash/internal/web"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),
		fx.Provide(web.NewPages),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Core
		series.Module(),
		selection.Module(),
		chart.Module(),
		dashboard.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
