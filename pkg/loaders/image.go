package loaders

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// LoadTexture loads a PNG or JPEG image for use as a texture
func LoadTexture(filename string) (image.Image, error) {
	img, err := gg.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", filename, err)
	}
	if bounds := img.Bounds(); bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("texture %s is empty", filename)
	}
	return img, nil
}

// Format is an output image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
)

// jpegQuality is the encoder quality used for JPEG output
const jpegQuality = 95

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want png or jpg)", name)
	}
}

// SaveImage encodes img to filename in the given format
func SaveImage(filename string, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = gg.SavePNG(filename, img)
	case FormatJPEG:
		err = gg.SaveJPG(filename, img, jpegQuality)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to save image %s: %w", filename, err)
	}
	return nil
}

// Filename returns the file name for a render, e.g. render_20060102_150405.png
func Filename(dir, timestamp string, format Format) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, format))
}
