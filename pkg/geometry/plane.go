package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite one-sided plane. Normal points into the
// surface, so it faces away from rays that can hit the plane.
type Plane struct {
	Origin   core.Point         // A point on the plane
	Normal   core.Vec3          // Unit normal, pointing into the surface
	Material *material.Material // Material of the plane
}

// parallelEpsilon rejects rays nearly parallel to, or facing away from, the plane
const parallelEpsilon = 1e-6

// NewPlane creates a new plane
func NewPlane(origin core.Point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{
		Origin:   origin,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if denominator <= parallelEpsilon {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	distance := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if distance < 0 {
		return 0, false
	}
	return distance, true
}

// SurfaceNormal returns the shading normal, which faces the incoming rays
func (p *Plane) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return core.Negate(p.Normal)
}

// TextureCoords projects the hit point onto an orthonormal basis spanning the plane
func (p *Plane) TextureCoords(hitPoint core.Point) material.TextureCoords {
	xAxis := p.Normal.Cross(core.NewVec3(0, 0, 1))
	if xAxis.Norm2() < 1e-12 {
		// Normal is parallel to Z
		xAxis = p.Normal.Cross(core.NewVec3(0, 1, 0))
	}
	xAxis = xAxis.Normalize()
	yAxis := p.Normal.Cross(xAxis)

	hit := hitPoint.Subtract(p.Origin)
	return material.TextureCoords{
		U: hit.Dot(xAxis),
		V: hit.Dot(yAxis),
	}
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() *material.Material {
	return p.Material
}

func (p *Plane) primitive() {}
