package cmd

import "github.com/urfave/cli/v2"

func comicFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "comic",
		Aliases: []string{"c"},
		Usage:   "Path to the comic directory",
		Value:   "comic",
	}
}
