package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Directional is a light infinitely far away, such as the sun. It has no
// distance falloff.
type Directional struct {
	Direction core.Vec3 // Unit direction the light travels in
	Color     core.Color
	Intensity float64
}

// NewDirectional creates a new directional light
func NewDirectional(direction core.Vec3, color core.Color, intensity float64) *Directional {
	return &Directional{
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

func (d *Directional) Type() LightType {
	return LightTypeDirectional
}

// Sample returns the same light for every point
func (d *Directional) Sample(point core.Point) LightSample {
	return LightSample{
		Direction: core.Negate(d.Direction),
		Distance:  math.Inf(1),
		Color:     d.Color,
		Intensity: d.Intensity,
	}
}

func (d *Directional) light() {}
