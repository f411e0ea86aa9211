package errors

import (
	"fmt"
	"strings"
)

// Generic errors

var FileCreateErrorTpl = "failed to create file %s: %w"
var FileOpenErrorTpl = "failed to open %s: %w"
var FileReadErrorTpl = "failed to read %s: %w"
var FileWriteErrorTpl = "failed to write %s: %w"
var DirCreateErrorTpl = "failed to create directory %s: %w"
var DirReadErrorTpl = "failed to read directory %s: %w"

// Resource config errors

var ComicConfigErrorTpl = "there is an issue with the comic config file: %w"
var VolumeConfigErrorTpl = "there is an issue with a volume config file: %w"
var PageConfigErrorTpl = "there is an issue with a page config file: %w"

// Package manager errors

var VersionQueryErrorTpl = "failed to query %s version: %w"
var DependencyInstallErrorTpl = "%s install failed: %w"

type ActiveVirtualEnvError struct {
	Path string
}

func (e *ActiveVirtualEnvError) Error() string {
	return fmt.Sprintf("must not be run inside a virtual environment (VIRTUAL_ENV=%s), deactivate it first", e.Path)
}

type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("failed to load config from %s, it may not exist", e.Path)
}

type DuplicateResourceError struct {
	Kind      string
	Slug      string
	Container string
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("%s %q already exists in %s", e.Kind, e.Slug, e.Container)
}

type MissingPagesError struct {
	Volume string
	Slugs  []string
}

func (e *MissingPagesError) Error() string {
	return fmt.Sprintf("volume %q lists the following pages that don't seem to exist: %s",
		e.Volume, strings.Join(e.Slugs, ", "))
}

type AssetNotFoundError struct {
	Asset string
	Path  string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset %s does not exist at %s", e.Asset, e.Path)
}

type AssetOutsideTreeError struct {
	Path string
}

func (e *AssetOutsideTreeError) Error() string {
	return fmt.Sprintf("%s is not in the assets directory, provide a path relative to the assets directory", e.Path)
}
