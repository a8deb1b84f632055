package core

// Color represents an RGB color with float64 channels.
// Channels are nominally in [0, 1] but intermediate shading results may
// exceed that range until Clamp is applied.
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the channel-wise product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Lerp linearly interpolates from c to target by t, where t=0 yields c
// and t=1 yields target. t is not clamped.
func (c Color) Lerp(target Color, t float64) Color {
	return Color{
		R: c.R + (target.R-c.R)*t,
		G: c.G + (target.G-c.G)*t,
		B: c.B + (target.B-c.B)*t,
	}
}

// Clamp limits each channel to [0, 1]. Re-clamping a clamped color is a no-op.
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(1, c.R)),
		G: max(0, min(1, c.G)),
		B: max(0, min(1, c.B)),
	}
}

// Lerp linearly interpolates between two scalars by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
