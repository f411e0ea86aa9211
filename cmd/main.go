package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func Cli() *cli.App {
	app := &cli.App{
		Name:        "scuzzie",
		Usage:       "Webcomic resource manager",
		Description: "Manage the resource files of a scuzzie webcomic and bootstrap its development environment",
		Flags: []cli.Flag{
			comicFlag(),
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug mode",
				Action: func(c *cli.Context, debugMode bool) error {
					if debugMode {
						slog.Info("Debug mode enabled")
						pterm.DefaultLogger.Level = pterm.LogLevelDebug
					}
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "setup",
				Usage:  "Prepare the development environment and install declared dependencies",
				Action: Setup,
			},
			{
				Name:  "new",
				Usage: "Create new comic resources",
				Subcommands: []*cli.Command{
					{
						Name:   "volume",
						Usage:  "Create a new volume",
						Action: NewVolume,
					},
					{
						Name:   "page",
						Usage:  "Create a new page",
						Action: NewPage,
					},
				},
			},
		},
	}
	return app
}
