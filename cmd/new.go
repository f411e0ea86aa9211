package cmd

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"scuzzie/comic"
)

func NewVolume(cCtx *cli.Context) error {
	comicPath := cCtx.String("comic")

	c, err := comic.Read(comicPath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	title, err := pterm.DefaultInteractiveTextInput.Show("Provide a title for the new volume")
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	image, err := promptImagePath(c, comicPath, "Volume")
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	pterm.Println()
	pterm.Println("Volume details:")
	pterm.Println("  Title: " + title)
	pterm.Println("  Image: " + image)
	pterm.Println()

	if ok := confirmDetails(); !ok {
		return cli.Exit("aborted", 1)
	}

	if _, err := c.CreateVolume(title, image); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := comic.Write(c); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	pterm.Success.Println("Volume created.")
	return nil
}

func NewPage(cCtx *cli.Context) error {
	comicPath := cCtx.String("comic")

	c, err := comic.Read(comicPath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	volumes := c.EachVolume()
	if len(volumes) == 0 {
		return cli.Exit("no volumes found in comic, please run `scuzzie new volume` first!", 1)
	}

	volume := volumes[0]
	if len(volumes) > 1 {
		volume, err = promptForVolume(volumes)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	pterm.Println("Using volume: " + volume.Title)

	pterm.Println()
	pterm.Println("Please provide some page details. These can all be changed later.")
	pterm.Println()

	title, err := pterm.DefaultInteractiveTextInput.Show("Provide a title for the new page")
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	image, err := promptImagePath(c, comicPath, "Page")
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	pterm.Println()
	pterm.Println("Page details:")
	pterm.Println("  Volume: " + volume.Title)
	pterm.Println("  Title: " + title)
	pterm.Println("  Image: " + image)
	pterm.Println()

	if ok := confirmDetails(); !ok {
		return cli.Exit("aborted", 1)
	}

	if _, err := c.CreatePage(title, image, volume); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := comic.Write(c); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	pterm.Success.Println("Page created.")
	return nil
}

func promptForVolume(volumes []*comic.Volume) (*comic.Volume, error) {
	titles := make([]string, 0, len(volumes))
	for _, v := range volumes {
		titles = append(titles, v.Title)
	}

	picked, err := pterm.DefaultInteractiveSelect.
		WithOptions(titles).
		WithDefaultOption(titles[len(titles)-1]).
		Show("Select a volume")
	if err != nil {
		return nil, err
	}

	for _, v := range volumes {
		if v.Title == picked {
			return v, nil
		}
	}
	return volumes[len(volumes)-1], nil
}

func promptImagePath(c *comic.Comic, comicPath, resourceType string) (string, error) {
	pterm.Println()
	pterm.Println("You can provide an image for the " + resourceType + " now, or you can leave it blank to use the placeholder image.")
	pterm.Println("You can also drag the image onto this prompt rather than typing it manually.")
	pterm.Println()

	imagePath, err := pterm.DefaultInteractiveTextInput.Show(resourceType + " image")
	if err != nil {
		return "", err
	}
	if imagePath == "" {
		imagePath = comic.AssetFilePath(comicPath, c.Placeholder)
	}

	return comic.SanitiseImagePath(imagePath, comicPath)
}

func confirmDetails() bool {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show("Are these details correct?")
	return err == nil && ok
}
