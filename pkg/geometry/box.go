package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Box represents an axis-aligned box defined by two opposite corners
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material *material.Material
}

// NewBox creates a new axis-aligned box. Corner coordinates are normalized
// so Min holds the smaller component on each axis.
func NewBox(a, b core.Vec3, mat *material.Material) *Box {
	return &Box{
		Min:      core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max:      core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
		Material: mat,
	}
}

// GetMaterial returns the box's material
func (b *Box) GetMaterial() *material.Material {
	return b.Material
}

// Intersect tests if a ray intersects the box using the slab method
func (b *Box) Intersect(ray core.Ray) (*Intersection, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	directions := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if directions[axis] == 0 {
			// Parallel to this slab: miss unless the origin lies inside it
			if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
				return nil, false
			}
			continue
		}
		invD := 1.0 / directions[axis]
		t0 := (mins[axis] - origins[axis]) * invD
		t1 := (maxs[axis] - origins[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = max(tMin, t0)
		tMax = min(tMax, t1)
		if tMin > tMax {
			return nil, false
		}
	}

	// Entry point, or exit point when the origin is inside the box
	t := tMin
	if t < minHitDistance {
		t = tMax
		if t < minHitDistance {
			return nil, false
		}
	}

	point := ray.At(t)

	return &Intersection{
		Point:    point,
		Normal:   faceForward(b.normalAt(point), ray.Direction),
		Impact:   ray.Direction,
		Object:   b,
		Color:    b.Material.Color.ColorAt(point),
		Distance: t,
	}, true
}

// normalAt returns the outward normal of the face nearest to the point
func (b *Box) normalAt(point core.Vec3) core.Vec3 {
	distances := []struct {
		d      float64
		normal core.Vec3
	}{
		{math.Abs(point.X - b.Min.X), core.NewVec3(-1, 0, 0)},
		{math.Abs(point.X - b.Max.X), core.NewVec3(1, 0, 0)},
		{math.Abs(point.Y - b.Min.Y), core.NewVec3(0, -1, 0)},
		{math.Abs(point.Y - b.Max.Y), core.NewVec3(0, 1, 0)},
		{math.Abs(point.Z - b.Min.Z), core.NewVec3(0, 0, -1)},
		{math.Abs(point.Z - b.Max.Z), core.NewVec3(0, 0, 1)},
	}

	best := distances[0]
	for _, candidate := range distances[1:] {
		if candidate.d < best.d {
			best = candidate
		}
	}
	return best.normal
}
