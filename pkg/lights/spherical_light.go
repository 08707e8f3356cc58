package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Spherical is a point light radiating equally in all directions
type Spherical struct {
	Position  core.Point
	Color     core.Color
	Intensity float64
}

// NewSpherical creates a new spherical light
func NewSpherical(position core.Point, color core.Color, intensity float64) *Spherical {
	return &Spherical{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

func (s *Spherical) Type() LightType {
	return LightTypeSpherical
}

// Sample spreads the light's intensity over a sphere through point,
// giving inverse-square falloff
func (s *Spherical) Sample(point core.Point) LightSample {
	distanceSquared := s.Position.DistanceSquared(point)
	return LightSample{
		Direction: s.Position.Subtract(point).Normalize(),
		Distance:  math.Sqrt(distanceSquared),
		Color:     s.Color,
		Intensity: s.Intensity / (4 * math.Pi * distanceSquared),
	}
}

func (s *Spherical) light() {}
