package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a positional light whose reach is controlled by Intensity:
// full strength at the light itself, fading linearly to nothing at a
// distance of Intensity world units.
type PointLight struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color, intensity float64) *PointLight {
	return &PointLight{Position: position, Color: color, Intensity: intensity}
}

// IntensityAtDistance returns the light's strength at the given distance:
// 1 at distance 0, falling linearly to 0 at distance Intensity and beyond.
// The falloff never divides by the distance, so a light coinciding with the
// shaded point is well defined.
func (l *PointLight) IntensityAtDistance(distance float64) float64 {
	if l.Intensity <= 0 || distance >= l.Intensity {
		return 0
	}
	return 1 - distance/l.Intensity
}
