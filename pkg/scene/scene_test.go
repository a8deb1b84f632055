package scene

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene must satisfy the renderer's view of a scene
var _ renderer.Scene = (*Scene)(nil)

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Scene
	}{
		{"default", NewDefaultScene},
		{"mirror", NewMirrorScene},
		{"glass", NewGlassScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build()

			if len(s.GetObjects()) == 0 {
				t.Error("Scene should contain objects")
			}
			if len(s.GetLights()) == 0 {
				t.Error("Scene should contain lights")
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
				t.Errorf("Camera resolution should be positive, got %dx%d",
					s.CameraConfig.Width, s.CameraConfig.Height)
			}
			if s.CameraConfig.FieldOfView <= 0 || s.CameraConfig.FieldOfView >= 180 {
				t.Errorf("Field of view should be a usable angle, got %f", s.CameraConfig.FieldOfView)
			}

			for i, obj := range s.GetObjects() {
				if obj.GetMaterial() == nil {
					t.Errorf("Object %d has no material", i)
				}
			}

			if s.NewCamera() == nil {
				t.Error("NewCamera should build a camera from the scene config")
			}
		})
	}
}

func TestScene_AddLight(t *testing.T) {
	s := &Scene{}
	s.AddLight(core.NewVec3(0, 5, 0), core.White, 25)

	if len(s.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(s.Lights))
	}
	if s.Lights[0].Intensity != 25 {
		t.Errorf("Expected intensity 25, got %f", s.Lights[0].Intensity)
	}
}
