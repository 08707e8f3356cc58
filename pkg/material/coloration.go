package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Coloration provides the surface color of a material. The set is closed:
// SolidColor and Texture.
type Coloration interface {
	// Evaluate returns the color at the given texture coordinates
	Evaluate(uv TextureCoords) core.Color
	coloration()
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of coordinates
func (s *SolidColor) Evaluate(uv TextureCoords) core.Color {
	return s.Color
}

func (s *SolidColor) coloration() {}
