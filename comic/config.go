package comic

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"scuzzie/errors"
	"scuzzie/system/file"
)

type comicConfig struct {
	Name        string   `toml:"name"`
	Placeholder string   `toml:"placeholder"`
	Volumes     []string `toml:"volumes"`
}

type volumeConfig struct {
	Title string   `toml:"title"`
	Image string   `toml:"image"`
	Pages []string `toml:"pages"`
}

type pageConfig struct {
	Title string `toml:"title"`
	Image string `toml:"image"`
}

// Read deserializes the comic resource tree rooted at path.
func Read(path string) (*Comic, error) {
	var cfg comicConfig
	if err := readConfig(filepath.Join(path, "comic.toml"), &cfg, errors.ComicConfigErrorTpl); err != nil {
		return nil, err
	}
	if err := ValidateAsset(path, cfg.Placeholder); err != nil {
		return nil, fmt.Errorf(errors.ComicConfigErrorTpl, err)
	}

	c := New(path, cfg.Name, cfg.Placeholder, cfg.Volumes)
	if err := readVolumes(c); err != nil {
		return nil, err
	}
	return c, nil
}

func readVolumes(c *Comic) error {
	volumesPath := filepath.Join(c.Path, "volumes")
	names, err := file.ReadDirNames(volumesPath)
	if err != nil {
		return err
	}

	for _, name := range names {
		volumePath := filepath.Join(volumesPath, name)

		var cfg volumeConfig
		if err := readConfig(filepath.Join(volumePath, "volume.toml"), &cfg, errors.VolumeConfigErrorTpl); err != nil {
			return err
		}
		if err := ValidateAsset(c.Path, cfg.Image); err != nil {
			return fmt.Errorf(errors.VolumeConfigErrorTpl, err)
		}

		volume := NewVolume(cfg.Title, cfg.Image, cfg.Pages)
		if err := readPages(volume, volumePath, c.Path); err != nil {
			return err
		}
		if err := c.AddVolume(volume); err != nil {
			return err
		}
	}
	return nil
}

func readPages(volume *Volume, volumePath, comicPath string) error {
	pagesPath := filepath.Join(volumePath, "pages")
	names, err := file.ReadDirNames(pagesPath)
	if err != nil {
		return err
	}

	for _, name := range names {
		var cfg pageConfig
		if err := readConfig(filepath.Join(pagesPath, name, "page.toml"), &cfg, errors.PageConfigErrorTpl); err != nil {
			return err
		}
		if err := ValidateAsset(comicPath, cfg.Image); err != nil {
			return fmt.Errorf(errors.PageConfigErrorTpl, err)
		}

		if err := volume.AddPage(NewPage(cfg.Title, cfg.Image)); err != nil {
			return err
		}
	}

	var missing []string
	for _, s := range volume.PageSlugs {
		if _, ok := volume.Pages[s]; !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return &errors.MissingPagesError{Volume: volume.Title, Slugs: missing}
	}
	return nil
}

// Write serializes the comic back into its resource tree, creating
// directories as needed.
func Write(c *Comic) error {
	if c.Path == "" {
		return fmt.Errorf("attempted to write a comic without a path")
	}

	if err := ValidateAsset(c.Path, c.Placeholder); err != nil {
		return fmt.Errorf(errors.ComicConfigErrorTpl, err)
	}

	cfg := comicConfig{Name: c.Name, Placeholder: c.Placeholder, Volumes: c.VolumeSlugs}
	if err := writeConfig(filepath.Join(c.Path, "comic.toml"), &cfg); err != nil {
		return err
	}

	for _, volume := range c.EachVolume() {
		if err := writeVolume(c, volume); err != nil {
			return err
		}
	}
	return nil
}

func writeVolume(c *Comic, volume *Volume) error {
	if err := ValidateAsset(c.Path, volume.Image); err != nil {
		return fmt.Errorf(errors.VolumeConfigErrorTpl, err)
	}

	volumePath := filepath.Join(c.Path, "volumes", volume.Slug)
	cfg := volumeConfig{Title: volume.Title, Image: volume.Image, Pages: volume.PageSlugs}
	if err := writeConfig(filepath.Join(volumePath, "volume.toml"), &cfg); err != nil {
		return err
	}

	for _, page := range volume.EachPage() {
		if err := writePage(c, volumePath, page); err != nil {
			return err
		}
	}
	return nil
}

func writePage(c *Comic, volumePath string, page *Page) error {
	if err := ValidateAsset(c.Path, page.Image); err != nil {
		return fmt.Errorf(errors.PageConfigErrorTpl, err)
	}

	cfg := pageConfig{Title: page.Title, Image: page.Image}
	return writeConfig(filepath.Join(volumePath, "pages", page.Slug, "page.toml"), &cfg)
}

func readConfig(path string, out any, errTpl string) error {
	data, err := file.ReadFile(path)
	if err != nil {
		return fmt.Errorf(errTpl, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf(errTpl, err)
	}
	return nil
}

func writeConfig(path string, in any) error {
	data, err := toml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	return file.WriteFile(path, data)
}
