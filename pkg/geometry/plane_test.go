package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial())

	tests := []struct {
		name         string
		ray          core.Ray
		wantHit      bool
		wantDistance float64
	}{
		{
			name:         "ray from above straight down",
			ray:          core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
			wantHit:      true,
			wantDistance: 5,
		},
		{
			name:    "ray parallel to the plane",
			ray:     core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "plane behind the ray",
			ray:     core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := plane.Intersect(tt.ray)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, ok)
			}
			if ok && math.Abs(hit.Distance-tt.wantDistance) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.wantDistance, hit.Distance)
			}
		})
	}
}

func TestPlane_NormalFacesRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial())

	// From above the normal points up, from below it flips down
	above, _ := plane.Intersect(core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)))
	if above.Normal.Y <= 0 {
		t.Errorf("Normal should face a ray arriving from above, got %v", above.Normal)
	}

	below, _ := plane.Intersect(core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)))
	if below.Normal.Y >= 0 {
		t.Errorf("Normal should face a ray arriving from below, got %v", below.Normal)
	}
}
