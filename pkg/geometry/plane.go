package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (normalized at construction)
	Material *material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Material: mat}
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() *material.Material {
	return p.Material
}

// Intersect tests if a ray intersects the plane
func (p *Plane) Intersect(ray core.Ray) (*Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < minHitDistance {
		return nil, false
	}

	point := ray.At(t)

	return &Intersection{
		Point:    point,
		Normal:   faceForward(p.Normal, ray.Direction),
		Impact:   ray.Direction,
		Object:   p,
		Color:    p.Material.Color.ColorAt(point),
		Distance: t,
	}, true
}
