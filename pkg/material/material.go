package material

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultAlbedo is the diffuse reflectance used by the convenience constructors
const DefaultAlbedo = 0.8

// TextureCoords are surface coordinates of a hit point, before scaling
type TextureCoords struct {
	U, V float64
}

// Material describes how a primitive looks and how it treats light
type Material struct {
	Coloration Coloration // Color or texture lookup
	Albedo     float64    // Diffuse reflectance in (0, 1]
	Surface    Surface    // Optical behavior
}

// NewMaterial creates a new material
func NewMaterial(coloration Coloration, albedo float64, surface Surface) *Material {
	return &Material{
		Coloration: coloration,
		Albedo:     albedo,
		Surface:    surface,
	}
}

// FromColor creates a solid-colored material
func FromColor(color core.Color, albedo float64, surface Surface) *Material {
	return NewMaterial(NewSolidColor(color), albedo, surface)
}

// FromTexture creates a textured material with the default albedo
func FromTexture(img image.Image, scale, offset float64, surface Surface) *Material {
	return NewMaterial(NewTexture(img, scale, offset), DefaultAlbedo, surface)
}

// Color resolves the material's color at the given texture coordinates
func (m *Material) Color(uv TextureCoords) core.Color {
	return m.Coloration.Evaluate(uv)
}
