package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/cellviz/nicodash/internal/app"
	"github.com/cellviz/nicodash/internal/app/appcontext"
)

// Populate starts the whole server application graph without binding a listener and
// fills targets from it. The graph is stopped when the test finishes.
func Populate(t *testing.T, targets ...any) {
	t.Helper()
	t.Setenv("NICODASH_LOG_FILE", "")
	t.Setenv("NICODASH_DEV_MODE", "false")
	t.Setenv("NICODASH_TRACING_ENABLED", "false")
	t.Setenv("NICODASH_SENTRY_DSN", "")

	opts := app.Options(appcontext.Declare(appcontext.EnvServer),
		// for testing, logger is too annoying. therefore, we use a NopLogger here
		fx.NopLogger,
		fx.Populate(targets...),
		fx.Invoke(func() {
			log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
		}),
	)

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)
}
