package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates a showcase scene: a checkered ground plane, a
// matte sphere, a mirror sphere, a glass-like sphere and a small box, lit
// by two point lights.
func NewDefaultScene() *Scene {
	s := &Scene{
		Background:       core.NewColor(0.05, 0.07, 0.12),
		AmbientColor:     core.White,
		AmbientIntensity: 0.25,
		CameraConfig: renderer.CameraConfig{
			Position:    core.NewVec3(0, 1.5, -6),
			Forward:     core.NewVec3(0, -0.1, 1),
			WorldUp:     core.NewVec3(0, 1, 0),
			FieldOfView: 70,
			Width:       800,
			Height:      450,
		},
	}

	ground := material.New(material.NewChecker(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.15, 0.15, 0.15), 1.0))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))

	matte := material.New(material.NewSolidColor(core.NewColor(0.85, 0.2, 0.2)))
	s.AddObject(geometry.NewSphere(core.NewVec3(-2.2, 1, 1), 1, matte))

	mirror := material.New(material.NewSolidColor(core.NewColor(0.7, 0.7, 0.75)))
	mirror.Reflectivity = 0.8
	mirror.Glossiness = 0.5
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 1, 2.5), 1, mirror))

	glass := material.New(material.NewSolidColor(core.NewColor(0.8, 0.9, 1.0)))
	glass.Refractivity = 0.9
	glass.Opacity = 0.3
	glass.Transparency = 0.85
	s.AddObject(geometry.NewSphere(core.NewVec3(2.2, 1, 1), 1, glass))

	block := material.New(material.NewSolidColor(core.NewColor(0.2, 0.5, 0.85)))
	s.AddObject(geometry.NewBox(core.NewVec3(-0.6, 0, -0.8), core.NewVec3(0.6, 0.7, 0.2), block))

	s.AddLight(core.NewVec3(-4, 6, -3), core.White, 30)
	s.AddLight(core.NewVec3(5, 4, -2), core.NewColor(1, 0.9, 0.8), 20)

	return s
}
