package cmd

import (
	goerrors "errors"
	"log/slog"

	"github.com/urfave/cli/v2"

	"scuzzie/bootstrap"
	"scuzzie/errors"
	"scuzzie/system/pypkg"
)

// Setup bootstraps the development environment. The active-virtual-env
// precondition always exits 1; a failing install exits with the
// underlying tool's own status.
func Setup(cCtx *cli.Context) error {
	err := bootstrap.Run(pypkg.NewPoetryManager())
	if err == nil {
		return nil
	}

	var envErr *errors.ActiveVirtualEnvError
	if goerrors.As(err, &envErr) {
		slog.Warn(envErr.Error())
		return cli.Exit("", 1)
	}

	var coder interface{ ExitCode() int }
	if goerrors.As(err, &coder) && coder.ExitCode() > 0 {
		return cli.Exit(err.Error(), coder.ExitCode())
	}

	return cli.Exit(err.Error(), 1)
}
