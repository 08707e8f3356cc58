package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Floor at y=2 seen by rays travelling +y
	plane := NewPlane(core.NewPoint(0, 2, 0), core.NewVec3(0, 1, 0), testMaterial())
	ray := core.NewRay(core.Origin, core.NewVec3(0, 1, 0))

	d, ok := plane.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(d-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", d)
	}
}

func TestPlane_Intersect_Rejections(t *testing.T) {
	plane := NewPlane(core.NewPoint(0, 2, 0), core.NewVec3(0, 1, 0), testMaterial())

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vec3
	}{
		{"parallel ray", core.Origin, core.NewVec3(1, 0, 0)},
		{"nearly parallel ray", core.Origin, core.NewVec3(1, 1e-7, 0).Normalize()},
		{"back face", core.NewPoint(0, 4, 0), core.NewVec3(0, -1, 0)},
		{"plane behind the ray", core.NewPoint(0, 4, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := plane.Intersect(core.NewRay(tt.origin, tt.direction)); ok {
				t.Errorf("Expected miss, but got hit at t=%f", d)
			}
		})
	}
}

func TestPlane_Intersect_PointOnSurface(t *testing.T) {
	plane := NewPlane(core.NewPoint(0, 0, -10), core.NewVec3(0.2, 0.1, -1), testMaterial())

	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			ray := core.NewRay(core.Origin, core.NewVec3(float64(i)/5, float64(j)/5, -1).Normalize())
			d, ok := plane.Intersect(ray)
			if !ok {
				continue
			}
			if d < 0 {
				t.Fatalf("Negative distance %f", d)
			}
			if offset := ray.At(d).Subtract(plane.Origin).Dot(plane.Normal); math.Abs(offset) > 1e-9 {
				t.Errorf("Hit point %v is %g off the plane", ray.At(d), offset)
			}
		}
	}
}

func TestPlane_SurfaceNormal(t *testing.T) {
	plane := NewPlane(core.NewPoint(0, 0, -30), core.NewVec3(0, 0, -2), testMaterial())

	if n := plane.SurfaceNormal(core.NewPoint(3, 4, -30)); n != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected shading normal (0, 0, 1), got %v", n)
	}
}

func TestPlane_TextureCoords(t *testing.T) {
	tests := []struct {
		name   string
		normal core.Vec3
	}{
		{"floor", core.NewVec3(0, 1, 0)},
		{"back wall uses fallback axis", core.NewVec3(0, 0, -1)},
		{"tilted", core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := NewPlane(core.NewPoint(1, 2, 3), tt.normal, testMaterial())

			if uv := plane.TextureCoords(plane.Origin); uv.U != 0 || uv.V != 0 {
				t.Errorf("Expected origin to map to (0, 0), got %v", uv)
			}

			// Moving one unit along an in-plane direction moves one unit in texture space
			inPlane := plane.Normal.Ortho()
			uv := plane.TextureCoords(plane.Origin.Add(inPlane))
			if length := math.Hypot(uv.U, uv.V); math.Abs(length-1) > 1e-9 {
				t.Errorf("Expected unit texture displacement, got %v (length %f)", uv, length)
			}

			// Moving along the normal does not change texture coordinates
			uv = plane.TextureCoords(plane.Origin.Add(plane.Normal.Mul(3)))
			if math.Abs(uv.U) > 1e-9 || math.Abs(uv.V) > 1e-9 {
				t.Errorf("Expected normal offset to be invisible, got %v", uv)
			}
		})
	}
}
