package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ClosestIntersection scans every object in the scene except excluded and
// returns the nearest intersection along the ray, or false when the ray
// misses everything. The exclusion lets a secondary ray cast from a surface
// skip the surface it started on. Ties on distance keep the first object
// encountered in scene order.
func ClosestIntersection(ray core.Ray, scene Scene, excluded geometry.Object) (*geometry.Intersection, bool) {
	var closest *geometry.Intersection

	for _, object := range scene.GetObjects() {
		if object == excluded {
			continue
		}
		hit, ok := object.Intersect(ray)
		if !ok {
			continue
		}
		if closest == nil || hit.Distance < closest.Distance {
			closest = hit
		}
	}

	return closest, closest != nil
}
