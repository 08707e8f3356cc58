package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpherical   LightType = "spherical"
)

// Light is a source of direct illumination. The set of lights is closed:
// Directional and Spherical.
type Light interface {
	Type() LightType

	// Sample returns the illumination arriving at point, before occlusion
	Sample(point core.Point) LightSample

	light()
}

// LightSample describes light arriving at a shading point
type LightSample struct {
	Direction core.Vec3  // Unit direction from the shading point to the light
	Distance  float64    // Distance to the light; +Inf for lights at infinity
	Color     core.Color // Light color
	Intensity float64    // Intensity after distance falloff
}
