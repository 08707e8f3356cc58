package material

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture tiles a decoded image across a surface
type Texture struct {
	Image  image.Image
	Scale  float64 // Texture repeats per unit of surface coordinate
	Offset float64 // Shift applied after scaling, in texture space
}

// NewTexture creates a new image texture
func NewTexture(img image.Image, scale, offset float64) *Texture {
	return &Texture{
		Image:  img,
		Scale:  scale,
		Offset: offset,
	}
}

// Evaluate samples the texture at the given coordinates using nearest-neighbor lookup
func (t *Texture) Evaluate(uv TextureCoords) core.Color {
	bounds := t.Image.Bounds()
	x := wrap(uv.U*t.Scale+t.Offset, bounds.Dx())
	y := wrap(uv.V*t.Scale+t.Offset, bounds.Dy())

	rgba := color.RGBAModel.Convert(t.Image.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
	return core.ColorFromRGBA(rgba)
}

func (t *Texture) coloration() {}

// wrap maps a texture-space coordinate onto a pixel index in [0, bound).
// Negative coordinates wrap around rather than mirror.
func wrap(value float64, bound int) int {
	coord := int(math.Floor(value * float64(bound)))
	wrapped := coord % bound
	if wrapped < 0 {
		wrapped += bound
	}
	return wrapped
}
