package material

// Material describes the surface properties used by the shading engine.
// All scalars are nominally in [0, 1]; out-of-range values are accepted
// and flow through the blending math unvalidated.
type Material struct {
	Color        ColorSource
	Glossiness   float64 // Specular highlight strength (reserved, no contribution yet)
	Reflectivity float64 // Mirror blend weight
	Refractivity float64 // Index-like parameter for the transmission direction
	Opacity      float64 // 1-Opacity is how much refracted light shows through
	Transparency float64 // How much light passes through when shadowing
}

// New creates a material with the given color source and default scalars
// (fully opaque, no reflection or refraction).
func New(color ColorSource) *Material {
	return &Material{Color: color, Opacity: 1}
}
