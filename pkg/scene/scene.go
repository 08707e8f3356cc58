package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const (
	// DefaultShadowBias offsets secondary ray origins off the surface
	DefaultShadowBias = 1e-6
	// DefaultMaxRecursionDepth bounds reflection and refraction bounces
	DefaultMaxRecursionDepth = 8
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Width             int                  // Image width in pixels
	Height            int                  // Image height in pixels
	FOV               float64              // Field of view in degrees (informational)
	Primitives        []geometry.Primitive // Objects in the scene
	Lights            []lights.Light       // Lights in the scene
	MaxRecursionDepth int                  // Maximum reflection/refraction depth
	ShadowBias        float64              // Surface offset for bounce and shadow origins
}

// NewScene creates an empty scene with default depth and bias
func NewScene(width, height int, fov float64) *Scene {
	return &Scene{
		Width:             width,
		Height:            height,
		FOV:               fov,
		Primitives:        make([]geometry.Primitive, 0),
		Lights:            make([]lights.Light, 0),
		MaxRecursionDepth: DefaultMaxRecursionDepth,
		ShadowBias:        DefaultShadowBias,
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// Intersection is the nearest hit found by Trace
type Intersection struct {
	Distance  float64
	Primitive geometry.Primitive
}

// Trace returns the nearest intersection along ray, if any
func (s *Scene) Trace(ray core.Ray) (Intersection, bool) {
	var nearest Intersection
	found := false
	for _, primitive := range s.Primitives {
		distance, ok := primitive.Intersect(ray)
		if !ok || math.IsNaN(distance) {
			continue
		}
		if !found || distance < nearest.Distance {
			nearest = Intersection{Distance: distance, Primitive: primitive}
			found = true
		}
	}
	return nearest, found
}

// AspectRatio returns width over height
func (s *Scene) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}
