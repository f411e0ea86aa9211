package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"

	"scuzzie/errors"
	"scuzzie/system"
	"scuzzie/system/pypkg"
)

// CompatibleVersion is the package manager version line this project is
// developed against. The check is a loose substring match on purpose,
// matching any patch release of the 1.2 series.
const CompatibleVersion = "1.2"

// Run prepares the development environment: refuse to nest inside an
// active virtual environment, soft-check the package manager version, then
// delegate the dependency installation. Install failures are returned
// unwrapped beyond the command context so the tool's own diagnostics and
// exit status stay visible.
func Run(pm pypkg.ProjectPackageManager) error {
	if path, active := system.ActiveVirtualEnv(); active {
		return &errors.ActiveVirtualEnvError{Path: path}
	}

	l := system.GetLocalSystem()
	slog.Debug(fmt.Sprintf("Detected system: %s %s (%s)", l.Vendor, l.Version, l.Arch))

	version, err := pm.Version()
	if err != nil {
		slog.Debug("Could not determine " + pm.GetBin() + " version, skipping compatibility check: " + err.Error())
	} else {
		slog.Debug("Detected " + pm.GetBin() + " version: " + version)
		if !strings.Contains(version, CompatibleVersion) {
			slog.Warn(fmt.Sprintf("This project has only been tested with %s %s, you may run into problems (reported: %s)",
				pm.GetBin(), CompatibleVersion, version))
		}
	}

	return pm.InstallDependencies()
}
