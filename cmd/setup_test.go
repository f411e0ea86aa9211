package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"scuzzie/scuzzietest"
	"scuzzie/system/command"
)

type recordedCall struct {
	name string
	args []string
}

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		slog.SetDefault(old)
	})
	return &buf
}

// runSetup runs `scuzzie setup` with the shell seam and process exit
// captured.
func runSetup(t *testing.T, versionOutput string, versionErr, installErr error) (int, []recordedCall, *bytes.Buffer) {
	t.Helper()

	logs := captureLogs(t)

	exitCode := 0
	oldExiter := cli.OsExiter
	cli.OsExiter = func(code int) {
		exitCode = code
	}
	t.Cleanup(func() {
		cli.OsExiter = oldExiter
	})

	var calls []recordedCall
	oldNew := command.NewShellCommand
	command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
		calls = append(calls, recordedCall{name: name, args: args})

		fake := &scuzzietest.FakeShellCommand{Name: name, Args: args, InheritEnvVars: inheritEnvVars}
		if strings.Contains(strings.Join(args, " "), "--version") {
			fake.OutputStr = versionOutput
			fake.OutputErr = versionErr
		} else {
			fake.RunErr = installErr
		}
		return fake
	}
	t.Cleanup(func() {
		command.NewShellCommand = oldNew
	})

	app := Cli()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	_ = app.Run([]string{"scuzzie", "setup"})

	return exitCode, calls, logs
}

func installCalls(calls []recordedCall) int {
	n := 0
	for _, call := range calls {
		if call.name == "poetry" && len(call.args) > 0 && call.args[0] == "install" {
			n++
		}
	}
	return n
}

func Test_Setup_RefusesActiveVirtualEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("VIRTUAL_ENV", "/home/user/.venv")

	exitCode, calls, logs := runSetup(t, "Poetry (version 1.2.2)", nil, nil)

	assert.Equal(1, exitCode)
	assert.Equal(0, installCalls(calls), "install must never run inside a virtual environment")
	assert.Equal(1, strings.Count(logs.String(), "level=WARN"))
}

func Test_Setup_InstallsWithMatchingVersion(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("VIRTUAL_ENV", "")

	exitCode, calls, logs := runSetup(t, "Poetry (version 1.2.2)", nil, nil)

	assert.Equal(0, exitCode)
	assert.Equal(1, installCalls(calls))
	assert.Equal(0, strings.Count(logs.String(), "level=WARN"))
}

func Test_Setup_WarnsOnVersionMismatch(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("VIRTUAL_ENV", "")

	exitCode, calls, logs := runSetup(t, "Poetry (version 1.3.0)", nil, nil)

	assert.Equal(0, exitCode)
	assert.Equal(1, installCalls(calls))
	assert.Equal(1, strings.Count(logs.String(), "level=WARN"))
}

func Test_Setup_ProceedsWhenVersionUnknown(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("VIRTUAL_ENV", "")

	exitCode, calls, logs := runSetup(t, "", fmt.Errorf("executable file not found in $PATH"), nil)

	assert.Equal(0, exitCode)
	assert.Equal(1, installCalls(calls))
	assert.Equal(0, strings.Count(logs.String(), "level=WARN"))
}

func Test_Setup_PropagatesInstallExitCode(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	t.Setenv("VIRTUAL_ENV", "")

	installErr := fmt.Errorf("command 'poetry install' failed: %w", &scuzzietest.FakeExitError{Code: 4})
	exitCode, calls, _ := runSetup(t, "Poetry (version 1.2.2)", nil, installErr)

	require.Equal(1, installCalls(calls))
	assert.Equal(4, exitCode)
}
