package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// sceneFile is the on-disk YAML layout of a scene description
type sceneFile struct {
	Camera struct {
		Position        []float64 `yaml:"position"`
		Forward         []float64 `yaml:"forward"`
		Up              []float64 `yaml:"up"`
		FieldOfView     float64   `yaml:"fov"`
		Width           int       `yaml:"width"`
		Height          int       `yaml:"height"`
		ReflectionDepth int       `yaml:"reflection_depth"`
	} `yaml:"camera"`

	Background []float64 `yaml:"background"`
	Ambient    struct {
		Color     []float64 `yaml:"color"`
		Intensity float64   `yaml:"intensity"`
	} `yaml:"ambient"`

	Materials map[string]materialFile `yaml:"materials"`
	Objects   []objectFile            `yaml:"objects"`
	Lights    []lightFile             `yaml:"lights"`
}

type materialFile struct {
	Color   []float64 `yaml:"color"`
	Checker *struct {
		ColorA []float64 `yaml:"color_a"`
		ColorB []float64 `yaml:"color_b"`
		Size   float64   `yaml:"size"`
	} `yaml:"checker"`
	Glossiness   float64  `yaml:"glossiness"`
	Reflectivity float64  `yaml:"reflectivity"`
	Refractivity float64  `yaml:"refractivity"`
	Opacity      *float64 `yaml:"opacity"` // Defaults to fully opaque when omitted
	Transparency float64  `yaml:"transparency"`
}

type objectFile struct {
	Type     string    `yaml:"type"` // sphere, plane or box
	Material string    `yaml:"material"`
	Center   []float64 `yaml:"center"` // sphere
	Radius   float64   `yaml:"radius"` // sphere
	Point    []float64 `yaml:"point"`  // plane
	Normal   []float64 `yaml:"normal"` // plane
	Min      []float64 `yaml:"min"`    // box
	Max      []float64 `yaml:"max"`    // box
}

type lightFile struct {
	Position  []float64 `yaml:"position"`
	Color     []float64 `yaml:"color"`
	Intensity float64   `yaml:"intensity"`
}

// LoadSceneFile reads a YAML scene description from path
func LoadSceneFile(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return LoadScene(data)
}

// LoadScene parses a YAML scene description
func LoadScene(data []byte) (*scene.Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scene yaml: %w", err)
	}

	s := &scene.Scene{
		Background:       toColor(file.Background),
		AmbientColor:     toColor(file.Ambient.Color),
		AmbientIntensity: file.Ambient.Intensity,
		CameraConfig: renderer.CameraConfig{
			Position:        toVec3(file.Camera.Position),
			Forward:         toVec3(file.Camera.Forward),
			WorldUp:         toVec3(file.Camera.Up),
			FieldOfView:     file.Camera.FieldOfView,
			Width:           file.Camera.Width,
			Height:          file.Camera.Height,
			ReflectionDepth: file.Camera.ReflectionDepth,
		},
	}

	materials := make(map[string]*material.Material, len(file.Materials))
	for name, m := range file.Materials {
		materials[name] = buildMaterial(m)
	}

	for i, obj := range file.Objects {
		mat, ok := materials[obj.Material]
		if !ok {
			return nil, fmt.Errorf("object %d: unknown material %q", i, obj.Material)
		}

		switch obj.Type {
		case "sphere":
			if obj.Radius <= 0 {
				return nil, fmt.Errorf("object %d: sphere needs a positive radius", i)
			}
			s.AddObject(geometry.NewSphere(toVec3(obj.Center), obj.Radius, mat))
		case "plane":
			normal := toVec3(obj.Normal)
			if normal.Length() == 0 {
				return nil, fmt.Errorf("object %d: plane needs a normal", i)
			}
			s.AddObject(geometry.NewPlane(toVec3(obj.Point), normal, mat))
		case "box":
			s.AddObject(geometry.NewBox(toVec3(obj.Min), toVec3(obj.Max), mat))
		default:
			return nil, fmt.Errorf("object %d: unknown type %q", i, obj.Type)
		}
	}

	for _, l := range file.Lights {
		s.AddLight(toVec3(l.Position), toColor(l.Color), l.Intensity)
	}

	return s, nil
}

func buildMaterial(m materialFile) *material.Material {
	var source material.ColorSource
	if m.Checker != nil {
		source = material.NewChecker(toColor(m.Checker.ColorA), toColor(m.Checker.ColorB), m.Checker.Size)
	} else {
		source = material.NewSolidColor(toColor(m.Color))
	}

	mat := material.New(source)
	mat.Glossiness = m.Glossiness
	mat.Reflectivity = m.Reflectivity
	mat.Refractivity = m.Refractivity
	if m.Opacity != nil {
		mat.Opacity = *m.Opacity
	}
	mat.Transparency = m.Transparency
	return mat
}

func toVec3(values []float64) core.Vec3 {
	if len(values) != 3 {
		return core.Vec3{}
	}
	return core.NewVec3(values[0], values[1], values[2])
}

func toColor(values []float64) core.Color {
	if len(values) != 3 {
		return core.Black
	}
	return core.NewColor(values[0], values[1], values[2])
}
