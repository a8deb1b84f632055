package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'mirror' or 'glass'")
	sceneFile := flag.String("file", "", "Load a scene from a YAML file instead of a built-in scene")
	width := flag.Int("width", 0, "Override render width")
	height := flag.Int("height", 0, "Override render height")
	depth := flag.Int("depth", 0, "Override maximum reflection depth")
	format := flag.String("format", "png", "Output image format: 'png' or 'bmp'")
	output := flag.String("output", "", "Output file path (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Checkered ground with matte, mirror and glass spheres")
		fmt.Println("  mirror  - Two facing mirror planes bouncing rays between them")
		fmt.Println("  glass   - Glass spheres of increasing opacity before a striped backdrop")
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	selectedScene, name, err := selectScene(*sceneType, *sceneFile)
	if err != nil {
		logger.Fatalf("Error loading scene: %v", err)
	}

	if *width > 0 {
		selectedScene.CameraConfig.Width = *width
	}
	if *height > 0 {
		selectedScene.CameraConfig.Height = *height
	}
	if *depth > 0 {
		selectedScene.CameraConfig.ReflectionDepth = *depth
	}
	selectedScene.CameraConfig.Logger = logger

	camera := selectedScene.NewCamera()
	fb := renderer.NewFramebuffer(selectedScene.CameraConfig.Width, selectedScene.CameraConfig.Height)

	logger.Printf("Rendering scene '%s' at %dx%d...", name,
		selectedScene.CameraConfig.Width, selectedScene.CameraConfig.Height)

	stats := camera.RenderThreaded(selectedScene, fb,
		selectedScene.CameraConfig.Width, selectedScene.CameraConfig.Height)
	logger.Printf("Render completed in %v (%d primary rays)", stats.Elapsed, stats.PrimaryRays)

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			logger.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))
	}

	file, err := os.Create(filename)
	if err != nil {
		logger.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := fb.Encode(file, *format); err != nil {
		logger.Fatalf("Error encoding image: %v", err)
	}

	logger.Printf("Render saved as %s", filename)
}

// selectScene resolves the -scene/-file flags into a scene and a name
// used for the output directory.
func selectScene(sceneType, sceneFile string) (*scene.Scene, string, error) {
	if sceneFile != "" {
		s, err := loaders.LoadSceneFile(sceneFile)
		if err != nil {
			return nil, "", err
		}
		name := filepath.Base(sceneFile)
		name = name[:len(name)-len(filepath.Ext(name))]
		return s, name, nil
	}
	return createScene(sceneType)
}

// createScene builds one of the built-in scenes by name. Unknown names
// fall back to the default scene.
func createScene(sceneType string) (*scene.Scene, string, error) {
	switch sceneType {
	case "mirror":
		return scene.NewMirrorScene(), "mirror", nil
	case "glass":
		return scene.NewGlassScene(), "glass", nil
	case "default":
		return scene.NewDefaultScene(), "default", nil
	default:
		return scene.NewDefaultScene(), "default", nil
	}
}
