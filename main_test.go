package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name         string
		sceneType    string
		expectedName string
	}{
		{"default scene", "default", "default"},
		{"mirror scene", "mirror", "mirror"},
		{"glass scene", "glass", "glass"},

		// Unknown names fall back to the default scene
		{"unknown scene", "nonexistent", "default"},
		{"empty scene name", "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, name, err := createScene(tt.sceneType)
			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for scene type '%s', got nil", tt.sceneType)
			}
			if name != tt.expectedName {
				t.Errorf("Expected scene name '%s', got '%s'", tt.expectedName, name)
			}

			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if scene.CameraConfig.Height <= 0 {
				t.Errorf("Scene camera height should be positive, got %d", scene.CameraConfig.Height)
			}
			if len(scene.Objects) == 0 {
				t.Error("Expected scene to contain objects")
			}
		})
	}
}

func TestSelectScene(t *testing.T) {
	// Built-in selection ignores the file path when it is empty
	scene, name, err := selectScene("mirror", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if scene == nil || name != "mirror" {
		t.Errorf("Expected mirror scene, got name '%s'", name)
	}

	// A scene file takes precedence and names the output after the file
	path := filepath.Join(t.TempDir(), "two-spheres.yaml")
	yaml := `
camera:
  position: [0, 0, -5]
  forward: [0, 0, 1]
  width: 100
  height: 100
materials:
  m: {color: [1, 0, 0]}
objects:
  - type: sphere
    material: m
    center: [0, 0, 0]
    radius: 1
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	scene, name, err = selectScene("default", path)
	if err != nil {
		t.Fatalf("Unexpected error loading scene file: %v", err)
	}
	if name != "two-spheres" {
		t.Errorf("Expected name 'two-spheres', got '%s'", name)
	}
	if len(scene.Objects) != 1 {
		t.Errorf("Expected 1 object from the scene file, got %d", len(scene.Objects))
	}

	// Missing file propagates the error
	if _, _, err := selectScene("default", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing scene file")
	}
}
