package renderer

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Reflectance material.ReflectanceFunc // Reflected share at refractive boundaries
}

// DefaultConfig returns the Fresnel reflectance model
func DefaultConfig() Config {
	return Config{
		Reflectance: material.Fresnel,
	}
}

// Raytracer renders a scene with recursive Whitted-style shading
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger core.Logger
	stats  RenderStats
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if config.Reflectance == nil {
		config.Reflectance = material.Fresnel
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s.Width, s.Height, s.FOV),
		config: config,
		logger: logger,
	}
}

// Render traces one primary ray per pixel and returns the image
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	start := time.Now()
	rt.stats = RenderStats{}
	width, height := rt.scene.Width, rt.scene.Height

	rt.logger.Printf("Rendering %dx%d: %d primitives, %d lights, max depth %d\n",
		width, height, len(rt.scene.Primitives), len(rt.scene.Lights), rt.scene.MaxRecursionDepth)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := rt.camera.GetRay(x, y)
			img.SetRGBA(x, y, rt.CastRay(ray, 0).ToRGBA())
		}
	}

	rt.stats.TotalPixels = width * height
	rt.stats.AverageLuminance = CalculateAverageLuminance(img)
	rt.stats.Duration = time.Since(start)

	rt.logger.Printf("Render completed in %v: %.1f%% primary hits, %d shadow rays, %d secondary rays, max depth %d\n",
		rt.stats.Duration, 100*rt.stats.HitRatio(), rt.stats.ShadowRays, rt.stats.SecondaryRays, rt.stats.MaxDepthReached)

	return img, rt.stats
}

// CastRay returns the color seen along ray at the given recursion depth.
// Rays at or beyond the scene's depth limit and rays that escape are black.
func (rt *Raytracer) CastRay(ray core.Ray, depth int) core.Color {
	if depth >= rt.scene.MaxRecursionDepth {
		return core.Black
	}

	hit, ok := rt.scene.Trace(ray)
	if !ok {
		return core.Black
	}

	if depth == 0 {
		rt.stats.PrimaryHits++
	}
	rt.stats.MaxDepthReached = max(rt.stats.MaxDepthReached, depth)

	return rt.shade(ray, hit, depth)
}

// shade blends the diffuse term with reflected and refracted light according
// to the hit primitive's surface
func (rt *Raytracer) shade(ray core.Ray, hit scene.Intersection, depth int) core.Color {
	hitPoint := ray.At(hit.Distance)
	normal := hit.Primitive.SurfaceNormal(hitPoint)
	diffuse := rt.diffuse(hit.Primitive, hitPoint, normal)
	bias := rt.scene.ShadowBias

	switch surface := hit.Primitive.GetMaterial().Surface.(type) {
	case material.Diffusive:
		return diffuse

	case material.Reflective:
		rt.stats.SecondaryRays++
		reflected := rt.CastRay(ray.Reflect(hitPoint, normal, bias), depth+1)
		return diffuse.Multiply(1 - surface.Reflectivity).
			Add(reflected.Multiply(surface.Reflectivity))

	case material.Refractive:
		cosIncident, n1, n2 := ray.IncidentData(normal, surface.Index)
		kr := rt.config.Reflectance(cosIncident, n1, n2)

		// reflect off the side the ray arrived from
		facing := normal
		if ray.Direction.Dot(normal) > 0 {
			facing = core.Negate(normal)
		}
		rt.stats.SecondaryRays++
		reflected := rt.CastRay(ray.Reflect(hitPoint, facing, bias), depth+1)

		refracted := core.Black
		if refractedRay, ok := ray.Refract(hitPoint, normal, surface.Index, bias); ok {
			rt.stats.SecondaryRays++
			refracted = rt.CastRay(refractedRay, depth+1)
		} else {
			rt.stats.TotalInternal++
		}

		transmitted := reflected.Multiply(kr).Add(refracted.Multiply(1 - kr))
		return diffuse.Multiply(1 - surface.Transparency).
			Add(transmitted.Multiply(surface.Transparency))

	default:
		panic(fmt.Sprintf("unsupported surface %T", surface))
	}
}

// diffuse sums the Lambertian contribution of every light that reaches
// hitPoint unobstructed
func (rt *Raytracer) diffuse(p geometry.Primitive, hitPoint core.Point, normal core.Vec3) core.Color {
	mat := p.GetMaterial()
	surfaceColor := geometry.ColorAt(p, hitPoint)
	reflected := mat.Albedo / math.Pi
	shadowOrigin := hitPoint.Add(normal.Mul(rt.scene.ShadowBias))

	result := core.Black
	for _, light := range rt.scene.Lights {
		sample := light.Sample(hitPoint)

		intensity := sample.Intensity
		if rt.occluded(core.NewRay(shadowOrigin, sample.Direction), sample.Distance) {
			intensity = 0
		}

		lightPower := normal.Dot(sample.Direction) * intensity
		result = result.Add(surfaceColor.MultiplyColor(sample.Color).Multiply(lightPower * reflected))
	}
	return result.Clamp()
}

// occluded reports whether anything lies along shadowRay nearer than distance
func (rt *Raytracer) occluded(shadowRay core.Ray, distance float64) bool {
	rt.stats.ShadowRays++
	hit, ok := rt.scene.Trace(shadowRay)
	return ok && hit.Distance < distance
}
