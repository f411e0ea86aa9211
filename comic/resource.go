// Package comic models a webcomic as a tree of volumes and pages backed
// by TOML resource files.
package comic

import (
	"fmt"
	"slices"

	"github.com/gosimple/slug"

	"scuzzie/errors"
)

// Page is one page of a comic. Image paths are rooted at the comic's
// assets directory, with a leading slash.
type Page struct {
	Title  string
	Slug   string
	Image  string
	volume *Volume
}

func NewPage(title, image string) *Page {
	return &Page{
		Title: title,
		Slug:  slug.Make(title),
		Image: image,
	}
}

func (p *Page) Volume() *Volume {
	return p.volume
}

// URL returns the site-relative URL the page will be published under.
func (p *Page) URL() (string, error) {
	if p.volume == nil {
		return "", fmt.Errorf("page %q has not been assigned to a volume", p.Title)
	}
	return "/volumes/" + p.volume.Slug + "/pages/" + p.Slug + ".html", nil
}

// Volume is an ordered collection of pages.
type Volume struct {
	Title     string
	Slug      string
	Image     string
	PageSlugs []string
	Pages     map[string]*Page
}

func NewVolume(title, image string, pageSlugs []string) *Volume {
	return &Volume{
		Title:     title,
		Slug:      slug.Make(title),
		Image:     image,
		PageSlugs: pageSlugs,
		Pages:     map[string]*Page{},
	}
}

func (v *Volume) URL() string {
	return "/volumes/" + v.Slug + ".html"
}

// LatestPage returns the last listed page, or nil for an empty volume.
func (v *Volume) LatestPage() *Page {
	if len(v.PageSlugs) == 0 {
		return nil
	}
	return v.Pages[v.PageSlugs[len(v.PageSlugs)-1]]
}

// EachPage returns the volume's pages in listed order.
func (v *Volume) EachPage() []*Page {
	pages := make([]*Page, 0, len(v.PageSlugs))
	for _, s := range v.PageSlugs {
		if page, ok := v.Pages[s]; ok {
			pages = append(pages, page)
		}
	}
	return pages
}

func (v *Volume) AddPage(page *Page) error {
	if _, ok := v.Pages[page.Slug]; ok {
		return &errors.DuplicateResourceError{Kind: "page", Slug: page.Slug, Container: v.Title}
	}

	page.volume = v

	if !slices.Contains(v.PageSlugs, page.Slug) {
		v.PageSlugs = append(v.PageSlugs, page.Slug)
	}
	v.Pages[page.Slug] = page
	return nil
}

// Comic is the root resource: a named collection of volumes plus a
// placeholder image used for pages created without one.
type Comic struct {
	Path        string
	Name        string
	Placeholder string
	VolumeSlugs []string
	Volumes     map[string]*Volume
}

func New(path, name, placeholder string, volumeSlugs []string) *Comic {
	return &Comic{
		Path:        path,
		Name:        name,
		Placeholder: placeholder,
		VolumeSlugs: volumeSlugs,
		Volumes:     map[string]*Volume{},
	}
}

// LatestVolume returns the last listed volume, or nil for an empty comic.
func (c *Comic) LatestVolume() *Volume {
	if len(c.VolumeSlugs) == 0 {
		return nil
	}
	return c.Volumes[c.VolumeSlugs[len(c.VolumeSlugs)-1]]
}

// EachVolume returns the comic's volumes in listed order.
func (c *Comic) EachVolume() []*Volume {
	volumes := make([]*Volume, 0, len(c.VolumeSlugs))
	for _, s := range c.VolumeSlugs {
		if volume, ok := c.Volumes[s]; ok {
			volumes = append(volumes, volume)
		}
	}
	return volumes
}

func (c *Comic) AddVolume(volume *Volume) error {
	if _, ok := c.Volumes[volume.Slug]; ok {
		return &errors.DuplicateResourceError{Kind: "volume", Slug: volume.Slug, Container: c.Name}
	}

	if !slices.Contains(c.VolumeSlugs, volume.Slug) {
		c.VolumeSlugs = append(c.VolumeSlugs, volume.Slug)
	}
	c.Volumes[volume.Slug] = volume
	return nil
}

// CreateVolume adds a new empty volume to the comic.
func (c *Comic) CreateVolume(title, image string) (*Volume, error) {
	volume := NewVolume(title, image, nil)
	if err := c.AddVolume(volume); err != nil {
		return nil, err
	}
	return volume, nil
}

// CreatePage adds a new page to the given volume. An empty image falls
// back to the comic's placeholder.
func (c *Comic) CreatePage(title, image string, volume *Volume) (*Page, error) {
	if image == "" {
		image = c.Placeholder
	}

	page := NewPage(title, image)
	if err := volume.AddPage(page); err != nil {
		return nil, err
	}
	return page, nil
}
