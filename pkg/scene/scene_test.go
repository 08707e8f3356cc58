package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func diffuse() *material.Material {
	return material.FromColor(core.White, 1.0, material.Diffusive{})
}

func TestNewScene_Defaults(t *testing.T) {
	s := NewScene(320, 240, 60)
	if s.MaxRecursionDepth != DefaultMaxRecursionDepth {
		t.Errorf("Expected depth %d, got %d", DefaultMaxRecursionDepth, s.MaxRecursionDepth)
	}
	if s.ShadowBias != DefaultShadowBias {
		t.Errorf("Expected bias %g, got %g", DefaultShadowBias, s.ShadowBias)
	}
	if math.Abs(s.AspectRatio()-320.0/240.0) > 1e-12 {
		t.Errorf("Unexpected aspect ratio %g", s.AspectRatio())
	}
}

// TestTrace_Nearest puts two spheres on one ray; the nearer must win
// regardless of insertion order
func TestTrace_Nearest(t *testing.T) {
	ray := core.NewRay(core.Origin, core.NewVec3(0, 0, -1))

	tests := []struct {
		name  string
		order []float64 // sphere center z values in insertion order
	}{
		{"near first", []float64{-5, -10}},
		{"far first", []float64{-10, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(10, 10, 90)
			for _, z := range tt.order {
				s.Add(geometry.NewSphere(core.NewPoint(0, 0, z), 1, diffuse()))
			}

			hit, ok := s.Trace(ray)
			if !ok {
				t.Fatal("Expected a hit")
			}
			near := hit.Primitive.(*geometry.Sphere)
			if near.Center.Z != -5 {
				t.Errorf("Expected nearer sphere at z=-5, got z=%g", near.Center.Z)
			}
			if math.Abs(hit.Distance-4) > 1e-9 {
				t.Errorf("Expected distance 4, got %g", hit.Distance)
			}
		})
	}
}

func TestTrace_GloballyNearest(t *testing.T) {
	s := NewScene(10, 10, 90)
	s.Add(
		geometry.NewSphere(core.NewPoint(2, 0, -8), 1.5, diffuse()),
		geometry.NewSphere(core.NewPoint(-1, 0.5, -4), 1, diffuse()),
		geometry.NewPlane(core.NewPoint(0, 0, -20), core.NewVec3(0, 0, -1), diffuse()),
		geometry.NewPlane(core.NewPoint(0, 2, 0), core.NewVec3(0, 1, 0), diffuse()),
	)

	for i := 0; i < 50; i++ {
		dir := core.NewVec3(math.Sin(float64(i))*0.5, math.Cos(float64(i)*0.7)*0.5, -1).Normalize()
		ray := core.NewRay(core.Origin, dir)

		hit, ok := s.Trace(ray)
		if !ok {
			continue
		}
		for _, p := range s.Primitives {
			if d, ok := p.Intersect(ray); ok && d < hit.Distance {
				t.Fatalf("ray %d: primitive at %g nearer than reported %g", i, d, hit.Distance)
			}
		}
	}
}

func TestTrace_Miss(t *testing.T) {
	s := NewScene(10, 10, 90)
	s.Add(geometry.NewSphere(core.NewPoint(0, 0, -5), 1, diffuse()))

	if _, ok := s.Trace(core.NewRay(core.Origin, core.NewVec3(0, 0, 1))); ok {
		t.Error("Expected miss for ray pointing away")
	}
	if _, ok := NewScene(10, 10, 90).Trace(core.NewRay(core.Origin, core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected miss for empty scene")
	}
}

func TestTrace_FiltersNaN(t *testing.T) {
	s := NewScene(10, 10, 90)
	degenerate := geometry.NewSphere(core.NewPoint(0, 0, -3), math.NaN(), diffuse())
	valid := geometry.NewSphere(core.NewPoint(0, 0, -10), 1, diffuse())
	s.Add(degenerate, valid)

	ray := core.NewRay(core.Origin, core.NewVec3(0, 0, -1))
	if d, ok := degenerate.Intersect(ray); !ok || !math.IsNaN(d) {
		t.Fatalf("Expected degenerate sphere to report NaN, got %g %t", d, ok)
	}

	hit, ok := s.Trace(ray)
	if !ok {
		t.Fatal("Expected a hit on the valid sphere")
	}
	if hit.Primitive != valid {
		t.Errorf("Expected valid sphere, got %+v", hit.Primitive)
	}
	if math.IsNaN(hit.Distance) {
		t.Error("Trace returned a NaN distance")
	}
}

func TestTrace_TieFirstSeenWins(t *testing.T) {
	s := NewScene(10, 10, 90)
	first := geometry.NewSphere(core.NewPoint(0, 0, -5), 1, diffuse())
	second := geometry.NewSphere(core.NewPoint(0, 0, -5), 1, diffuse())
	s.Add(first, second)

	hit, ok := s.Trace(core.NewRay(core.Origin, core.NewVec3(0, 0, -1)))
	if !ok || hit.Primitive != first {
		t.Error("Expected the first of two coincident spheres")
	}
}
