package comic

import (
	"path/filepath"
	"strings"

	"scuzzie/errors"
	"scuzzie/system/file"
)

// AssetFilePath resolves an assets-rooted path like "/covers/one.png" to
// its location on disk under the comic's assets directory.
func AssetFilePath(comicPath, asset string) string {
	return filepath.Join(comicPath, "assets", strings.Trim(asset, "/"))
}

// ValidateAsset checks that an assets-rooted path refers to an existing
// file under <comic>/assets.
func ValidateAsset(comicPath, asset string) error {
	path := AssetFilePath(comicPath, asset)
	isFile, err := file.IsFile(path)
	if err != nil {
		return err
	}
	if !isFile {
		return &errors.AssetNotFoundError{Asset: asset, Path: path}
	}
	return nil
}

// SanitiseImagePath converts a user-supplied image path into its
// assets-rooted form. The input may be quoted (shells do this when a file
// is dragged onto a prompt) and absolute or relative, but must point
// inside the comic's assets directory.
func SanitiseImagePath(imagePath, comicPath string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(imagePath), `"'`)

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", err
	}
	assetsPath, err := filepath.Abs(filepath.Join(comicPath, "assets"))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(assetsPath, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &errors.AssetOutsideTreeError{Path: abs}
	}

	// the assets directory is treated as the root of the comic
	return "/" + filepath.ToSlash(rel), nil
}
