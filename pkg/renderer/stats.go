package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	PrimaryHits      int           // Primary rays that hit a primitive
	ShadowRays       int           // Shadow rays cast toward lights
	SecondaryRays    int           // Reflection and refraction rays cast
	TotalInternal    int           // Refractions that ended in total internal reflection
	MaxDepthReached  int           // Deepest recursion level that traced a ray
	AverageLuminance float64       // Mean relative luminance of the output
	Duration         time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of pixels whose primary ray hit something
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255.0
		}
	}
	return total / float64(pixels)
}
