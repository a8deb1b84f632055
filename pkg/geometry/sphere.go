package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() *material.Material {
	return s.Material
}

// Intersect tests if a ray intersects the sphere and returns the nearest hit
func (s *Sphere) Intersect(ray core.Ray) (*Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return nil, false
	}

	// Nearest root in front of the ray; fall back to the far root when the
	// origin is inside the sphere
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < minHitDistance {
		root = (-halfB + sqrtD) / a
		if root < minHitDistance {
			return nil, false
		}
	}

	point := ray.At(root)
	outward := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &Intersection{
		Point:    point,
		Normal:   faceForward(outward, ray.Direction),
		Impact:   ray.Direction,
		Object:   s,
		Color:    s.Material.Color.ColorAt(point),
		Distance: root,
	}, true
}
