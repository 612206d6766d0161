package render

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/cellviz/nicodash/cmd/app/cli"
	"github.com/cellviz/nicodash/internal/core/chart"
	"github.com/cellviz/nicodash/internal/core/dashboard"
	"github.com/cellviz/nicodash/internal/model"
)

type CommandDeps struct {
	fx.In

	DashboardService *dashboard.Service
	Renderer         *chart.Renderer
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()

	return &cli.Command{
		Name:  "render",
		Usage: "render both dashboard charts for the given levels into files",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "nicotine",
				Usage: "nicotine exposure level (0-10)",
			},
			&cli.IntFlag{
				Name:  "medicine",
				Usage: "medicine response level (0-10); overrides nicotine when non-zero",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: svg, png or json",
				Value: FormatSVG,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "directory to write the charts to",
				Value: ".",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			_, err = run(c.Context, deps, Options{
				State: model.SelectionState{
					Nicotine: c.Int("nicotine"),
					Medicine: c.Int("medicine"),
				},
				Format: c.String("format"),
				OutDir: c.String("out"),
			})
			return err
		},
	}
}
