package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/app"
	"github.com/cellviz/nicodash/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// DepsFn returns a function that lazily builds the application graph and pulls T out
// of it, so a command only pays for the graph when it actually runs.
func DepsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := Start(fx.Populate(&deps))
		return deps, err
	}
}
