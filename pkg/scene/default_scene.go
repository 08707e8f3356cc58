package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: two solid spheres, a
// checkerboard sphere, a wood floor and a white backdrop under two
// directional lights and one red spherical light.
func NewDefaultScene() *Scene {
	s := NewScene(800, 600, 90.0)

	checkerboard := material.NewCheckerboardImage(256, 256, 32, core.White, core.Black)
	wood := material.NewStripeImage(256, 256, 24, core.DarkOrange, core.NewColor(0.55, 0.3, 0.1))

	s.Add(
		geometry.NewSphere(core.NewPoint(0, -1.5, -3), 1.0,
			material.FromColor(core.LightGreen, material.DefaultAlbedo, material.Diffusive{})),
		geometry.NewSphere(core.NewPoint(4, 0, -5), 2.0,
			material.FromColor(core.Magenta, material.DefaultAlbedo, material.Diffusive{})),
		geometry.NewSphere(core.NewPoint(-3, 0, -7), 2.0,
			material.FromTexture(checkerboard, 10.0, 0.0, material.Diffusive{})),
		// floor
		geometry.NewPlane(core.NewPoint(0, 2.5, 0), core.NewVec3(0, 1, 0),
			material.FromTexture(wood, 0.2, 0.0, material.Diffusive{})),
		// background
		geometry.NewPlane(core.NewPoint(0, 0, -30), core.NewVec3(0, 0, -1),
			material.FromColor(core.White.Multiply(0.8), material.DefaultAlbedo, material.Diffusive{})),
	)

	s.AddLight(
		lights.NewDirectional(core.NewVec3(5, 5, -5), core.White, 2.5),
		lights.NewDirectional(core.NewVec3(-2, 3, -5), core.Yellow, 1.5),
		lights.NewSpherical(core.NewPoint(0, -1, -3), core.Red, 200.0),
	)

	return s
}

// NewMirrorScene places a mirror sphere between two diffuse spheres above a
// reflective floor
func NewMirrorScene() *Scene {
	s := NewScene(800, 600, 90.0)

	s.Add(
		geometry.NewSphere(core.NewPoint(0, 0, -5), 1.5,
			material.FromColor(core.White, material.DefaultAlbedo, material.Reflective{Reflectivity: 0.9})),
		geometry.NewSphere(core.NewPoint(-3, 0.5, -6), 1.0,
			material.FromColor(core.Red, material.DefaultAlbedo, material.Diffusive{})),
		geometry.NewSphere(core.NewPoint(3, 0.5, -6), 1.0,
			material.FromColor(core.DarkBlue, material.DefaultAlbedo, material.Diffusive{})),
		geometry.NewPlane(core.NewPoint(0, 1.5, 0), core.NewVec3(0, 1, 0),
			material.FromColor(core.LightBlue, 0.6, material.Reflective{Reflectivity: 0.3})),
		geometry.NewPlane(core.NewPoint(0, 0, -30), core.NewVec3(0, 0, -1),
			material.FromColor(core.White.Multiply(0.8), material.DefaultAlbedo, material.Diffusive{})),
	)

	s.AddLight(
		lights.NewDirectional(core.NewVec3(1, 2, -3), core.White, 2.0),
		lights.NewSpherical(core.NewPoint(0, -4, -2), core.Yellow, 300.0),
	)

	return s
}

// NewGlassScene puts a glass sphere in front of a checkerboard backdrop
func NewGlassScene() *Scene {
	s := NewScene(800, 600, 90.0)

	checkerboard := material.NewCheckerboardImage(256, 256, 32, core.White, core.DarkBlue)

	s.Add(
		geometry.NewSphere(core.NewPoint(0, 0, -4), 1.5,
			material.FromColor(core.White, 0.2, material.Refractive{Transparency: 0.9, Index: 1.5})),
		geometry.NewSphere(core.NewPoint(2.5, 0.5, -8), 1.0,
			material.FromColor(core.DarkOrange, material.DefaultAlbedo, material.Diffusive{})),
		geometry.NewPlane(core.NewPoint(0, 1.5, 0), core.NewVec3(0, 1, 0),
			material.FromTexture(checkerboard, 0.1, 0.0, material.Diffusive{})),
		geometry.NewPlane(core.NewPoint(0, 0, -20), core.NewVec3(0, 0, -1),
			material.FromTexture(checkerboard, 0.05, 0.0, material.Diffusive{})),
	)

	s.AddLight(
		lights.NewDirectional(core.NewVec3(0, 1, -1), core.White, 2.5),
		lights.NewSpherical(core.NewPoint(-3, -3, -2), core.White, 400.0),
	)

	return s
}

// NewSingleSphereScene is a single lit sphere on black
func NewSingleSphereScene() *Scene {
	s := NewScene(400, 300, 90.0)

	s.Add(geometry.NewSphere(core.NewPoint(0, 0, -5), 1.0,
		material.FromColor(core.White, material.DefaultAlbedo, material.Diffusive{})))
	s.AddLight(lights.NewDirectional(core.NewVec3(0, 0, -1), core.White, 1.0))

	return s
}
