package scuzzietest

import (
	"github.com/spf13/afero"

	"scuzzie/system/file"
)

// UseMemFs swaps the package filesystem for an in-memory one and returns
// it. Pair with a deferred ResetAppFs.
func UseMemFs() afero.Fs {
	fs := afero.NewMemMapFs()
	file.AppFs = fs
	return fs
}

func ResetAppFs() {
	file.AppFs = afero.NewOsFs()
}
