package command

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
)

type ShellCommandContexter interface {
	Done() <-chan struct{}
	Err() error
}

type ShellCommandRunner interface {
	Run() error
	Output() (string, error)
	String() string
	GetName() string
	GetArgs() []string
	GetEnvVars() []string
	GetInheritEnvVars() bool
}

type ShellCommand struct {
	Name           string
	Args           []string
	EnvVars        []string
	InheritEnvVars bool
	Ctx            ShellCommandContexter
	cmd            *exec.Cmd
}

var NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) ShellCommandRunner {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Cancel = func() error {
		slog.Info("Interrupt signal received, cancelling command")
		err := cmd.Process.Signal(syscall.SIGTERM)
		if err != nil {
			slog.Error("Failed to cancel command: " + err.Error())
		}
		return err
	}
	cmd.Env = envVars
	if inheritEnvVars {
		cmd.Env = append(cmd.Env, os.Environ()...)
	}

	return &ShellCommand{
		Name:           name,
		Args:           args,
		EnvVars:        envVars,
		InheritEnvVars: inheritEnvVars,
		Ctx:            ctx,
		cmd:            cmd,
	}
}

// Run executes the command with stdout and stderr streamed to the caller's
// terminal.
func (s *ShellCommand) Run() error {
	s.cmd.Stdout = os.Stdout
	s.cmd.Stderr = os.Stderr

	slog.Debug("Running cmd: " + s.String())
	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command '%s': %w", s.String(), err)
	}

	err := s.cmd.Wait()
	select {
	case <-s.Ctx.Done():
		slog.Debug("Command was interrupted")
		return s.Ctx.Err()
	default:
		if err != nil {
			return fmt.Errorf("command '%s' failed: %w", s.String(), err)
		}
		slog.Debug("Command finished successfully")
		return nil
	}
}

// Output executes the command and returns its combined output with
// surrounding whitespace trimmed.
func (s *ShellCommand) Output() (string, error) {
	var buf bytes.Buffer
	s.cmd.Stdout = &buf
	s.cmd.Stderr = &buf

	slog.Debug("Running cmd: " + s.String())
	if err := s.cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start command '%s': %w", s.String(), err)
	}

	err := s.cmd.Wait()
	select {
	case <-s.Ctx.Done():
		slog.Debug("Command was interrupted")
		return "", s.Ctx.Err()
	default:
		if err != nil {
			return "", fmt.Errorf("command '%s' failed: %w", s.String(), err)
		}
		return strings.TrimSpace(buf.String()), nil
	}
}

func (s *ShellCommand) String() string {
	return s.cmd.String()
}

func (s *ShellCommand) GetName() string {
	return s.Name
}

func (s *ShellCommand) GetArgs() []string {
	return s.Args
}

func (s *ShellCommand) GetEnvVars() []string {
	return s.EnvVars
}

func (s *ShellCommand) GetInheritEnvVars() bool {
	return s.InheritEnvVars
}
