package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestBox_Intersect(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())

	tests := []struct {
		name         string
		ray          core.Ray
		wantHit      bool
		wantDistance float64
		wantNormal   core.Vec3
	}{
		{
			name:         "head-on from -z",
			ray:          core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			wantHit:      true,
			wantDistance: 4,
			wantNormal:   core.NewVec3(0, 0, -1),
		},
		{
			name:         "from above",
			ray:          core.NewRay(core.NewVec3(0.5, 4, 0), core.NewVec3(0, -1, 0)),
			wantHit:      true,
			wantDistance: 3,
			wantNormal:   core.NewVec3(0, 1, 0),
		},
		{
			name:    "miss to the side",
			ray:     core.NewRay(core.NewVec3(3, 0, -5), core.NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:    "parallel slab miss",
			ray:     core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.Intersect(tt.ray)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.Distance-tt.wantDistance) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.wantDistance, hit.Distance)
			}
			if hit.Normal != tt.wantNormal {
				t.Errorf("Expected normal %v, got %v", tt.wantNormal, hit.Normal)
			}
		})
	}
}

func TestBox_IntersectFromInside(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("Ray from inside should hit the exit face")
	}
	if math.Abs(hit.Distance-1.0) > 1e-9 {
		t.Errorf("Expected exit at distance 1, got %f", hit.Distance)
	}
}

func TestBox_CornerNormalization(t *testing.T) {
	// Corners given in any order produce the same box
	a := NewBox(core.NewVec3(1, 2, 3), core.NewVec3(-1, -2, -3), testMaterial())
	if a.Min != core.NewVec3(-1, -2, -3) || a.Max != core.NewVec3(1, 2, 3) {
		t.Errorf("Corners not normalized: min=%v max=%v", a.Min, a.Max)
	}
}
