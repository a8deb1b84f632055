package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewGlassScene creates a row of glass spheres of increasing opacity in
// front of a striped backdrop, exercising refraction and shadow
// transparency.
func NewGlassScene() *Scene {
	s := &Scene{
		Background:       core.NewColor(0.04, 0.05, 0.08),
		AmbientColor:     core.White,
		AmbientIntensity: 0.2,
		CameraConfig: renderer.CameraConfig{
			Position:    core.NewVec3(0, 1.3, -5),
			Forward:     core.NewVec3(0, -0.05, 1),
			WorldUp:     core.NewVec3(0, 1, 0),
			FieldOfView: 60,
			Width:       800,
			Height:      450,
		},
	}

	floor := material.New(material.NewChecker(
		core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.25, 0.25, 0.25), 0.5))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor))

	backdrop := material.New(material.NewChecker(
		core.NewColor(0.9, 0.6, 0.2), core.NewColor(0.2, 0.4, 0.8), 1.5))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 6), core.NewVec3(0, 0, -1), backdrop))

	for i, opacity := range []float64{0.1, 0.4, 0.7} {
		glass := material.New(material.NewSolidColor(core.NewColor(0.85, 0.92, 1.0)))
		glass.Refractivity = 0.95
		glass.Opacity = opacity
		glass.Transparency = 1 - opacity
		s.AddObject(geometry.NewSphere(core.NewVec3(float64(i-1)*2.1, 1, 1.5), 0.9, glass))
	}

	s.AddLight(core.NewVec3(-3, 7, -4), core.White, 35)
	s.AddLight(core.NewVec3(4, 5, -1), core.NewColor(0.95, 0.9, 0.85), 18)

	return s
}
