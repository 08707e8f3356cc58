package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func testMaterial() *material.Material {
	return material.FromColor(core.White, 1.0, material.Diffusive{})
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewPoint(2, 0, 0), core.NewVec3(0, 1, 0))

	if d, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss, but got hit at t=%f", d)
	}
}

func TestSphere_Intersect_Roots(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, -5), 1.0, testMaterial())

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"in front", core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1), true, 4.0},
		{"from inside", core.NewPoint(0, 0, -5), core.NewVec3(0, 0, -1), true, 1.0},
		{"from inside looking back", core.NewPoint(0, 0, -5.5), core.NewVec3(0, 0, 1), true, 1.5},
		{"behind the ray", core.NewPoint(0, 0, 0), core.NewVec3(0, 0, 1), false, 0},
		{"tangent", core.NewPoint(1, 0, 0), core.NewVec3(0, 0, -1), true, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t (t=%f)", tt.expectHit, ok, d)
			}
			if ok && math.Abs(d-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, d)
			}
		})
	}
}

func TestSphere_Intersect_PointOnSurface(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0.5, -0.25, -4), 1.5, testMaterial())

	hits := 0
	for i := -10; i <= 10; i++ {
		for j := -10; j <= 10; j++ {
			direction := core.NewVec3(float64(i)/10, float64(j)/10, -1).Normalize()
			ray := core.NewRay(core.Origin, direction)

			d, ok := sphere.Intersect(ray)
			if !ok {
				continue
			}
			hits++
			if d < 0 {
				t.Fatalf("Negative distance %f for direction %v", d, direction)
			}
			radius := ray.At(d).Subtract(sphere.Center).Norm()
			if math.Abs(radius-sphere.Radius) > 1e-9 {
				t.Errorf("Hit point %v is %f from center, expected %f", ray.At(d), radius, sphere.Radius)
			}
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit the sphere")
	}
}

func TestSphere_SurfaceNormal(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, -5), 2.0, testMaterial())

	normal := sphere.SurfaceNormal(core.NewPoint(0, 0, -3))
	if normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected (0, 0, 1), got %v", normal)
	}
}

func TestSphere_TextureCoords(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 0), 2.0, testMaterial())

	tests := []struct {
		name     string
		point    core.Point
		expected material.TextureCoords
	}{
		{"top pole", core.NewPoint(0, 2, 0), material.TextureCoords{U: 0.5, V: 0}},
		{"bottom pole", core.NewPoint(0, -2, 0), material.TextureCoords{U: 0.5, V: 1}},
		{"equator +x", core.NewPoint(2, 0, 0), material.TextureCoords{U: 0.5, V: 0.5}},
		{"equator +z", core.NewPoint(0, 0, 2), material.TextureCoords{U: 0.75, V: 0.5}},
		{"equator -z", core.NewPoint(0, 0, -2), material.TextureCoords{U: 0.25, V: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphere.TextureCoords(tt.point)
			if math.Abs(uv.U-tt.expected.U) > 1e-9 || math.Abs(uv.V-tt.expected.V) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, uv)
			}
		})
	}
}

func TestColorAt(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1.0, material.FromColor(core.Magenta, 0.8, material.Diffusive{}))

	if c := ColorAt(sphere, core.NewPoint(1, 0, 0)); c != core.Magenta {
		t.Errorf("Expected %v, got %v", core.Magenta, c)
	}
}
