package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/cellviz/nicodash/cmd/app/cli/render"
	"github.com/cellviz/nicodash/cmd/app/cli/replay"
	"github.com/cellviz/nicodash/cmd/app/server"
	"github.com/cellviz/nicodash/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.Name,
		Usage:       "nicotine effect on cell health dashboard",
		Description: "An interactive dashboard showing how simulated nicotine exposure and medicine response levels shift five synthetic cell-health metrics. Built with Go, fiber, go-chart and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			render.Command(),
			replay.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
