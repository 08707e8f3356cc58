package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is a renderable shape with a material. The set of primitives is
// closed: Sphere and Plane.
type Primitive interface {
	// Intersect returns the distance along the ray to the nearest surface
	// point in front of the ray origin
	Intersect(ray core.Ray) (float64, bool)

	// SurfaceNormal returns the outward unit normal at a point on the surface
	SurfaceNormal(hitPoint core.Point) core.Vec3

	// TextureCoords maps a point on the surface to texture coordinates
	TextureCoords(hitPoint core.Point) material.TextureCoords

	GetMaterial() *material.Material

	primitive()
}

// ColorAt resolves a primitive's material color at a point on its surface
func ColorAt(p Primitive, hitPoint core.Point) core.Color {
	return p.GetMaterial().Color(p.TextureCoords(hitPoint))
}
