package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere. A ray starting inside
// the sphere reports the exit point.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Project the center onto the ray
	l := s.Center.Subtract(ray.Origin)
	adj := l.Dot(ray.Direction)
	dSquared := l.Dot(l) - adj*adj

	radiusSquared := s.Radius * s.Radius
	if dSquared > radiusSquared {
		return 0, false
	}

	thc := math.Sqrt(radiusSquared - dSquared)
	t0 := adj - thc
	t1 := adj + thc

	switch {
	case t0 < 0 && t1 < 0:
		return 0, false
	case t0 < 0:
		return t1, true
	default:
		return math.Min(t0, t1), true
	}
}

// SurfaceNormal returns the unit normal pointing away from the center
func (s *Sphere) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return hitPoint.Subtract(s.Center).Normalize()
}

// TextureCoords maps the hit point to spherical coordinates in [0, 1]:
// longitude around the Y axis and colatitude from +Y
func (s *Sphere) TextureCoords(hitPoint core.Point) material.TextureCoords {
	hit := hitPoint.Subtract(s.Center)
	return material.TextureCoords{
		U: (1.0 + math.Atan2(hit.Z, hit.X)/math.Pi) * 0.5,
		V: math.Acos(hit.Y/s.Radius) / math.Pi,
	}
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() *material.Material {
	return s.Material
}

func (s *Sphere) primitive() {}
