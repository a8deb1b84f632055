package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene holds everything needed to render: the drawable objects, the
// lights, and the global background and ambient settings. A scene must not
// be mutated while a render that reads it is in flight.
type Scene struct {
	Objects          []geometry.Object
	Lights           []*lights.PointLight
	Background       core.Color
	AmbientColor     core.Color
	AmbientIntensity float64

	CameraConfig renderer.CameraConfig
}

// GetObjects returns the drawable objects
func (s *Scene) GetObjects() []geometry.Object {
	return s.Objects
}

// GetLights returns the lights
func (s *Scene) GetLights() []*lights.PointLight {
	return s.Lights
}

// GetBackground returns the color for rays that hit nothing
func (s *Scene) GetBackground() core.Color {
	return s.Background
}

// GetAmbientLight returns the ambient light color and intensity
func (s *Scene) GetAmbientLight() (core.Color, float64) {
	return s.AmbientColor, s.AmbientIntensity
}

// NewCamera builds the camera described by the scene's CameraConfig
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// AddObject appends a drawable object to the scene
func (s *Scene) AddObject(obj geometry.Object) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, intensity))
}
