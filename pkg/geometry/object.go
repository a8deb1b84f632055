package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection records where and how a ray met a surface
type Intersection struct {
	Point    core.Vec3  // Point of intersection
	Normal   core.Vec3  // Surface normal at the point, facing the incoming ray
	Impact   core.Vec3  // Direction of the incoming ray
	Object   Object     // The object that was hit (owned by the scene)
	Color    core.Color // Surface color sampled at the point
	Distance float64    // Distance from the ray origin along the ray
}

// Object is the capability every drawable scene object exposes: it can
// report its own nearest intersection with a ray and carries a material.
type Object interface {
	// Intersect returns the nearest intersection in front of the ray,
	// or false if the ray misses.
	Intersect(ray core.Ray) (*Intersection, bool)
	GetMaterial() *material.Material
}

// minHitDistance rejects intersections essentially at the ray origin,
// which otherwise reappear due to floating-point error.
const minHitDistance = 1e-6

// faceForward flips the outward normal when the ray arrives from behind,
// so shading always sees a normal facing the incoming ray.
func faceForward(outward core.Vec3, rayDirection core.Vec3) core.Vec3 {
	if rayDirection.Dot(outward) > 0 {
		return outward.Negate()
	}
	return outward
}
