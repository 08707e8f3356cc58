package material

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardImage creates a checkerboard pattern image
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c1, c2 := color1.ToRGBA(), color2.ToRGBA()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Alternate colors based on check position
			if (x/checkSize+y/checkSize)%2 == 0 {
				img.SetRGBA(x, y, c1)
			} else {
				img.SetRGBA(x, y, c2)
			}
		}
	}

	return img
}

// NewStripeImage creates an image of vertical bands alternating between two
// colors, a stand-in for plank textures such as wood flooring
func NewStripeImage(width, height, stripeWidth int, color1, color2 core.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color1.ToRGBA()}, image.Point{}, draw.Src)

	band := &image.Uniform{C: color2.ToRGBA()}
	for x := stripeWidth; x < width; x += 2 * stripeWidth {
		draw.Draw(img, image.Rect(x, 0, min(x+stripeWidth, width), height), band, image.Point{}, draw.Src)
	}

	return img
}

// NewUVDebugImage creates an image showing texture coordinates as colors.
// U maps to the red channel, V maps to the green channel
func NewUVDebugImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / max(1, width-1)),
				G: uint8(255 * y / max(1, height-1)),
				A: 255,
			})
		}
	}

	return img
}
