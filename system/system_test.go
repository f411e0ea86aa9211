package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zcalusic/sysinfo"
)

func TestActiveVirtualEnv(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		unset      bool
		wantActive bool
	}{
		{
			name:       "active",
			value:      "/home/user/.venv",
			wantActive: true,
		},
		{
			name:       "empty means inactive",
			value:      "",
			wantActive: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			t.Setenv("VIRTUAL_ENV", tt.value)

			path, active := ActiveVirtualEnv()
			assert.Equal(tt.wantActive, active)
			if tt.wantActive {
				assert.Equal(tt.value, path)
			} else {
				assert.Empty(path)
			}
		})
	}
}

func TestGetLocalSystem(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("distro detection is linux-only")
	}

	assert := assert.New(t)

	old := sysInfo
	defer func() {
		sysInfo = old
	}()
	sysInfo = func() sysinfo.SysInfo {
		var si sysinfo.SysInfo
		si.OS.Vendor = "ubuntu"
		si.OS.Version = "22.04"
		si.OS.Architecture = "amd64"
		return si
	}

	l := GetLocalSystem()
	assert.Equal("ubuntu", l.Vendor)
	assert.Equal("22.04", l.Version)
	assert.Equal("amd64", l.Arch)
}
