package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse is the JSON response for a pixel inspection request
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect casts a single ray through a pixel and reports what it hit
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid y coordinate"})
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	sceneObj := s.createScene(req.Scene)
	if sceneObj == nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unknown scene: " + req.Scene})
		return
	}

	response := inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// inspectPixel casts the same ray the renderer would trace for the given
// image pixel and returns information about the nearest hit. Image rows
// grow downward, viewport y grows upward, so the row index is flipped.
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	camera := sceneObj.NewCamera()
	camera.SetRenderSize(width, height)

	viewportX := 2.0*float64(pixelX)/float64(width) - 1.0
	viewportY := 2.0*float64(height-pixelY-1)/float64(height) - 1.0
	ray := camera.GetRay(viewportX, viewportY)

	hit, ok := renderer.ClosestIntersection(ray, sceneObj, nil)
	if !ok {
		return InspectResponse{Hit: false}
	}

	geometryType, properties := extractGeometryInfo(hit.Object)
	properties["material"] = extractMaterialInfo(hit.Object.GetMaterial())

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.Distance,
		Color:        [3]float64{hit.Color.R, hit.Color.G, hit.Color.B},
		Properties:   properties,
	}
}

// extractGeometryInfo reports the shape type and its defining parameters
func extractGeometryInfo(obj geometry.Object) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := obj.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = [3]float64{geom.Point.X, geom.Point.Y, geom.Point.Z}
		properties["normal"] = [3]float64{geom.Normal.X, geom.Normal.Y, geom.Normal.Z}
		return "plane", properties

	case *geometry.Box:
		properties["min"] = [3]float64{geom.Min.X, geom.Min.Y, geom.Min.Z}
		properties["max"] = [3]float64{geom.Max.X, geom.Max.Y, geom.Max.Z}
		return "box", properties

	default:
		return "unknown", properties
	}
}

// extractMaterialInfo reports the material's shading coefficients
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"glossiness":   mat.Glossiness,
		"reflectivity": mat.Reflectivity,
		"refractivity": mat.Refractivity,
		"opacity":      mat.Opacity,
		"transparency": mat.Transparency,
	}

	switch src := mat.Color.(type) {
	case *material.SolidColor:
		properties["colorSource"] = "solid"
		properties["color"] = [3]float64{src.Color.R, src.Color.G, src.Color.B}
	case *material.Checker:
		properties["colorSource"] = "checker"
		properties["colorA"] = [3]float64{src.ColorA.R, src.ColorA.G, src.ColorA.B}
		properties["colorB"] = [3]float64{src.ColorB.R, src.ColorB.G, src.ColorB.B}
		properties["size"] = src.Size
	default:
		properties["colorSource"] = "unknown"
	}

	return properties
}
