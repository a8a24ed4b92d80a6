// Package assets loads the images the window frontend draws.
// Images are decoded once at startup; any failure is fatal to the caller.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"

	"github.com/vovakirdan/flappy/internal/config"
)

// Set holds the decoded startup images.
type Set struct {
	Background image.Image
	Bird       image.Image
	Pipe       image.Image
}

// Load decodes the background, bird and pipe images named in cfg.
// The first missing or unreadable file aborts the load.
func Load(cfg config.FlappyAssets) (Set, error) {
	var set Set

	files := []struct {
		name string
		dst  *image.Image
	}{
		{cfg.Background, &set.Background},
		{cfg.Bird, &set.Bird},
		{cfg.Pipe, &set.Pipe},
	}

	for _, f := range files {
		img, err := Decode(filepath.Join(cfg.Dir, f.name))
		if err != nil {
			return Set{}, err
		}
		*f.dst = img
	}
	return set, nil
}

// Decode reads a single image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}

	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("assets: %s is empty", path)
	}
	return img, nil
}
