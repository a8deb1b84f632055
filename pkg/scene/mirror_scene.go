package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewMirrorScene creates a hallway of two facing mirrors with a few colored
// spheres between them, stressing the reflection recursion bound.
func NewMirrorScene() *Scene {
	s := &Scene{
		Background:       core.NewColor(0.02, 0.02, 0.04),
		AmbientColor:     core.White,
		AmbientIntensity: 0.3,
		CameraConfig: renderer.CameraConfig{
			Position:    core.NewVec3(0, 1.2, -4),
			Forward:     core.NewVec3(0.15, 0, 1),
			WorldUp:     core.NewVec3(0, 1, 0),
			FieldOfView: 65,
			Width:       800,
			Height:      450,
		},
	}

	floor := material.New(material.NewChecker(
		core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.2, 0.2, 0.2), 0.75))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor))

	mirror := material.New(material.NewSolidColor(core.NewColor(0.6, 0.65, 0.7)))
	mirror.Reflectivity = 0.9
	s.AddObject(geometry.NewPlane(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0), mirror))
	s.AddObject(geometry.NewPlane(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0), mirror))

	red := material.New(material.NewSolidColor(core.NewColor(0.9, 0.15, 0.15)))
	green := material.New(material.NewSolidColor(core.NewColor(0.15, 0.8, 0.2)))
	s.AddObject(geometry.NewSphere(core.NewVec3(-1, 0.8, 2), 0.8, red))
	s.AddObject(geometry.NewSphere(core.NewVec3(1.2, 0.6, 3.5), 0.6, green))

	s.AddLight(core.NewVec3(0, 8, 0), core.White, 40)

	return s
}
