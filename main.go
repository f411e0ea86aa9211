package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"scuzzie/cmd"
)

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	app := cmd.Cli()
	if err := app.Run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
