package file

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"scuzzie/errors"
)

var AppFs = afero.NewOsFs()

func IsPathExist(path string) (bool, error) {
	return afero.Exists(AppFs, path)
}

func IsFile(path string) (bool, error) {
	info, err := AppFs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Path does not exist: " + path)
			return false, nil
		}
		return false, fmt.Errorf("unable to check if path %s is a file: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

func IsDir(path string) (bool, error) {
	return afero.DirExists(AppFs, path)
}

func ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.ConfigNotFoundError{Path: path}
		}
		return nil, fmt.Errorf(errors.FileReadErrorTpl, path, err)
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	slog.Debug("Writing file: " + path)
	if err := afero.WriteFile(AppFs, path, data, 0o644); err != nil {
		return fmt.Errorf(errors.FileWriteErrorTpl, path, err)
	}
	return nil
}

func EnsureDir(path string) error {
	if err := AppFs.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf(errors.DirCreateErrorTpl, path, err)
	}
	return nil
}

// ReadDirNames returns the names of the subdirectories of path, creating
// the directory first if it does not exist yet.
func ReadDirNames(path string) ([]string, error) {
	if err := EnsureDir(path); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(AppFs, path)
	if err != nil {
		return nil, fmt.Errorf(errors.DirReadErrorTpl, path, err)
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() {
			names = append(names, info.Name())
		}
	}
	return names, nil
}
