// Package export renders the icon at its fixed size sequences and writes
// the ICO containers, PNG sets, and the asset manifest.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	ico "github.com/sergeymakinen/go-ico"

	"subnetree-icons/icon"
	"subnetree-icons/palette"
)

// ICOSizes are the resolutions embedded in each ICO container, smallest
// first. Windows picks the closest match at display time.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

// PNGSizes are the standalone raster sizes exported per theme.
var PNGSizes = []int{32, 64, 128, 256, 512}

// roundedBGMin is the smallest ICO resolution drawn with the rounded
// background; smaller frames fill edge to edge.
const roundedBGMin = 32

// WriteICO renders every ICO resolution for the theme and writes a single
// multi-image container, overwriting any existing file.
func WriteICO(path string, p palette.Palette) error {
	images := make([]image.Image, 0, len(ICOSizes))
	for _, size := range ICOSizes {
		images = append(images, icon.Render(size, p, size >= roundedBGMin))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Str("theme", p.Name).
		Ints("sizes", ICOSizes).
		Msg("Created ICO")
	return nil
}

// WritePNGSet renders each PNG resolution for the theme into dir, naming
// the files {prefix}-{size}.png. It returns the written paths.
func WritePNGSet(dir, prefix string, p palette.Palette) ([]string, error) {
	paths := make([]string, 0, len(PNGSizes))
	for _, size := range PNGSizes {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.png", prefix, size))
		if err := writePNG(path, icon.Render(size, p, true)); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		log.Info().
			Str("path", path).
			Str("theme", p.Name).
			Int("size", size).
			Msg("Created PNG")
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
