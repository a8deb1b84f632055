package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying surface colors
type ColorSource interface {
	// ColorAt returns the surface color at the given world-space point
	ColorAt(point core.Vec3) core.Color
}

// SolidColor provides a uniform color everywhere
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAt returns the solid color regardless of position
func (s *SolidColor) ColorAt(point core.Vec3) core.Color {
	return s.Color
}

// Checker provides an alternating two-color pattern in the XZ plane,
// useful for ground planes.
type Checker struct {
	ColorA core.Color
	ColorB core.Color
	Size   float64 // Edge length of one check in world units
}

// NewChecker creates a checker pattern with the given check size
func NewChecker(colorA, colorB core.Color, size float64) *Checker {
	if size <= 0 {
		size = 1
	}
	return &Checker{ColorA: colorA, ColorB: colorB, Size: size}
}

// ColorAt alternates colors based on which check the point falls in
func (c *Checker) ColorAt(point core.Vec3) core.Color {
	ix := int(math.Floor(point.X / c.Size))
	iz := int(math.Floor(point.Z / c.Size))
	if (ix+iz)%2 == 0 {
		return c.ColorA
	}
	return c.ColorB
}
