package scuzzietest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ShellCall struct {
	Binary         string
	ContainsArgs   []string
	InheritEnvVars bool
}

func (s *ShellCall) Equal(t *testing.T, name string, args []string, inheritEnvVars bool) {
	assert := assert.New(t)
	assert.Equal(s.Binary, name)
	for _, arg := range s.ContainsArgs {
		assert.Contains(args, arg)
	}
	assert.Equal(s.InheritEnvVars, inheritEnvVars)
}

// FakeShellCommand satisfies command.ShellCommandRunner without touching
// the host. Tests install it through the command.NewShellCommand seam.
type FakeShellCommand struct {
	Name           string
	Args           []string
	EnvVars        []string
	InheritEnvVars bool

	RunErr    error
	OutputStr string
	OutputErr error
}

func (f *FakeShellCommand) Run() error {
	return f.RunErr
}

func (f *FakeShellCommand) Output() (string, error) {
	if f.OutputErr != nil {
		return "", f.OutputErr
	}
	return f.OutputStr, nil
}

func (f *FakeShellCommand) String() string {
	return strings.Join(append([]string{f.Name}, f.Args...), " ")
}

func (f *FakeShellCommand) GetName() string {
	return f.Name
}

func (f *FakeShellCommand) GetArgs() []string {
	return f.Args
}

func (f *FakeShellCommand) GetEnvVars() []string {
	return f.EnvVars
}

func (f *FakeShellCommand) GetInheritEnvVars() bool {
	return f.InheritEnvVars
}
