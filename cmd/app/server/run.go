package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/app"
	"github.com/cellviz/nicodash/internal/app/appconfig"
	"github.com/cellviz/nicodash/internal/app/appcontext"
)

// Run starts the HTTP host and blocks until the process is signalled to stop. A listener
// that cannot be bound fails startup; the process then exits non-zero.
func Run() {
	fxApp := app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(serve))

	startCtx, cancelStart := context.WithTimeout(context.Background(), fxApp.StartTimeout())
	err := fxApp.Start(startCtx)
	cancelStart()
	if err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}

	sig := <-fxApp.Done()
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("server did not shut down cleanly")
	}
}

func serve(lc fx.Lifecycle, conf *appconfig.Config, app *fiber.App) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			log.Info().Str("address", ln.Addr().String()).Msg("dashboard is being served")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithTimeout(conf.HTTPServerShutdownTimeout)
		},
	})
}
