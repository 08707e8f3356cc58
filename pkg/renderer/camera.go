package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole at the world origin looking down -Z. Screen y grows
// downward, so +Y in world space maps toward the bottom of the image.
type Camera struct {
	width       int
	height      int
	fov         float64
	aspectRatio float64
}

// NewCamera creates a camera for a width x height image. The field of view
// is recorded but the sensor always spans [-1, 1] vertically.
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:       width,
		height:      height,
		fov:         fov,
		aspectRatio: float64(width) / float64(height),
	}
}

// FOV returns the configured field of view in degrees
func (c *Camera) FOV() float64 {
	return c.fov
}

// GetRay generates the primary ray through the center of pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	sensorX := ((float64(x)+0.5)/float64(c.width)*2.0 - 1.0) * c.aspectRatio
	sensorY := (float64(y)+0.5)/float64(c.height)*2.0 - 1.0

	direction := core.NewVec3(sensorX, sensorY, -1.0).Normalize()
	return core.NewRay(core.Origin, direction)
}
