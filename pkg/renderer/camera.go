package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultReflectionDepth bounds the recursive reflection/refraction tree
const DefaultReflectionDepth = 5

// Scene is the read-only view of a scene the renderer consumes. Defined
// here so the renderer does not depend on any concrete scene package.
type Scene interface {
	GetObjects() []geometry.Object
	GetLights() []*lights.PointLight
	GetBackground() core.Color
	GetAmbientLight() (color core.Color, intensity float64)
}

// CameraConfig holds camera configuration
type CameraConfig struct {
	Position        core.Vec3
	Forward         core.Vec3 // Requested look direction
	WorldUp         core.Vec3 // World-space up used to derive the basis
	FieldOfView     float64   // Horizontal field of view in degrees
	Width           int       // Render width in pixels
	Height          int       // Render height in pixels
	ReflectionDepth int       // Recursion bound; 0 means DefaultReflectionDepth
	Logger          Logger    // Optional; render timing is logged when set
}

// Camera generates primary rays and drives the render loop
type Camera struct {
	position core.Vec3
	forward  core.Vec3
	up       core.Vec3
	right    core.Vec3

	fieldOfView     float64
	width, height   int
	reflectionDepth int
	logger          Logger

	// Derived caches, recomputed whenever their inputs change
	screenPosition core.Vec3
	yRatio         float64
}

// NewCamera creates a camera with an orthonormal basis derived from the
// requested forward direction and world up
func NewCamera(config CameraConfig) *Camera {
	forward := config.Forward.Normalize()
	worldUp := config.WorldUp
	if worldUp.Length() == 0 {
		worldUp = core.NewVec3(0, 1, 0)
	}
	right := worldUp.Cross(forward).Normalize()
	up := forward.Cross(right).Normalize()

	fov := config.FieldOfView
	if fov <= 0 {
		fov = 60
	}
	depth := config.ReflectionDepth
	if depth <= 0 {
		depth = DefaultReflectionDepth
	}

	c := &Camera{
		position:        config.Position,
		forward:         forward,
		up:              up,
		right:           right,
		reflectionDepth: depth,
		logger:          config.Logger,
	}
	c.SetFieldOfView(fov)
	c.SetRenderSize(config.Width, config.Height)
	return c
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// Forward returns the camera's forward direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// FieldOfView returns the horizontal field of view in degrees
func (c *Camera) FieldOfView() float64 {
	return c.fieldOfView
}

// SetFieldOfView updates the field of view and recomputes the virtual
// screen position so the viewport range [-1,1] spans exactly that angle
func (c *Camera) SetFieldOfView(degrees float64) {
	c.fieldOfView = degrees
	screenDistance := 1.0 / math.Tan(degrees*math.Pi/180.0/2.0)
	c.screenPosition = c.position.Add(c.forward.Multiply(screenDistance))
}

// RenderSize returns the render resolution
func (c *Camera) RenderSize() (width, height int) {
	return c.width, c.height
}

// SetRenderSize updates the resolution and recomputes the aspect correction
func (c *Camera) SetRenderSize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	c.width = width
	c.height = height
	c.yRatio = float64(height) / float64(width)
}

// ReflectionDepth returns the recursion bound for reflection and refraction
func (c *Camera) ReflectionDepth() int {
	return c.reflectionDepth
}

// SetReflectionDepth updates the recursion bound
func (c *Camera) SetReflectionDepth(depth int) {
	c.reflectionDepth = depth
}

// GetRay generates the primary ray through viewport coordinates
// (viewportX, viewportY), each in [-1, 1]. The direction is intentionally
// left unnormalized; only its direction matters downstream.
func (c *Camera) GetRay(viewportX, viewportY float64) core.Ray {
	pointOnScreen := c.screenPosition.
		Add(c.right.Multiply(viewportX)).
		Add(c.up.Multiply(viewportY * c.yRatio))

	return core.NewRay(c.position, pointOnScreen.Subtract(c.position))
}
