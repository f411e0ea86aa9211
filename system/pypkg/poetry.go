package pypkg

import (
	"fmt"
	"log/slog"

	"scuzzie/errors"
	"scuzzie/system/command"
)

type PoetryManager struct {
	binary      string
	installOpts []string
	versionOpts []string
}

func NewPoetryManager() *PoetryManager {
	return &PoetryManager{
		binary:      "poetry",
		installOpts: []string{"install"},
		versionOpts: []string{"--version"},
	}
}

func (m *PoetryManager) GetBin() string {
	return m.binary
}

// Version returns the version line reported by the poetry binary, e.g.
// "Poetry (version 1.2.2)".
func (m *PoetryManager) Version() (string, error) {
	cmd := command.NewShellCommand(m.binary, m.versionOpts, nil, true)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf(errors.VersionQueryErrorTpl, m.binary, err)
	}
	return out, nil
}

func (m *PoetryManager) InstallDependencies() error {
	slog.Info("Installing project dependencies with " + m.binary)

	cmd := command.NewShellCommand(m.binary, m.installOpts, nil, true)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(errors.DependencyInstallErrorTpl, m.binary, err)
	}
	return nil
}
