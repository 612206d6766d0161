package replay

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/cellviz/nicodash/cmd/app/cli"
	"github.com/cellviz/nicodash/internal/core/dashboard"
)

type CommandDeps struct {
	fx.In

	DashboardService *dashboard.Service
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()

	return &cli.Command{
		Name:      "replay",
		Usage:     "feed control=value events to the dashboard and print every published snapshot",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read events from `FILE` instead of stdin",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			var in io.Reader = os.Stdin
			if path := c.String("file"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return errors.Wrap(err, "failed to open events file")
				}
				defer f.Close()
				in = f
			}

			_, err = run(c.Context, deps.DashboardService, in, os.Stdout)
			return err
		},
	}
}
