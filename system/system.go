package system

import (
	"os"
	"runtime"

	"github.com/zcalusic/sysinfo"
)

type LocalSystem struct {
	Vendor  string
	Version string
	Arch    string
}

var sysInfo = func() sysinfo.SysInfo {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return si
}

// GetLocalSystem describes the host for diagnostics. Distro detection only
// works on Linux; elsewhere the OS name stands in for the vendor.
func GetLocalSystem() *LocalSystem {
	if runtime.GOOS != "linux" {
		return &LocalSystem{
			Vendor: runtime.GOOS,
			Arch:   runtime.GOARCH,
		}
	}

	si := sysInfo()
	return &LocalSystem{
		Vendor:  si.OS.Vendor,
		Version: si.OS.Version,
		Arch:    si.OS.Architecture,
	}
}

// ActiveVirtualEnv reports the virtual environment the current process is
// running inside, if any. An unset or empty VIRTUAL_ENV means no
// environment is active.
func ActiveVirtualEnv() (string, bool) {
	path := os.Getenv("VIRTUAL_ENV")
	if path == "" {
		return "", false
	}
	return path, true
}
