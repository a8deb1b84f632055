package renderer

import (
	"bytes"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestRenderThreaded_WritesEveryPixel(t *testing.T) {
	scene := &testScene{background: core.NewColor(0.1, 0.2, 0.3)}
	camera := testCamera(8, 6, 90)
	fb := NewFramebuffer(8, 6)

	stats := camera.RenderThreaded(scene, fb, 8, 6)

	if stats.PrimaryRays != 48 {
		t.Errorf("Expected 48 primary rays, got %d", stats.PrimaryRays)
	}
	if stats.Elapsed <= 0 {
		t.Error("Render duration should be measured")
	}

	// Every pixel was written: alpha is fully opaque everywhere
	img := fb.Image()
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Pixel (%d,%d) was never written", x, y)
			}
		}
	}
}

func TestRenderThreaded_RowFlip(t *testing.T) {
	// A sphere above the camera axis must land in the upper image rows
	sphere := geometry.NewSphere(core.NewVec3(0, 3, 0), 1.5, solidMaterial(core.NewColor(1, 0, 0)))
	scene := &testScene{
		objects:          []geometry.Object{sphere},
		background:       core.Black,
		ambientColor:     core.White,
		ambientIntensity: 1,
	}

	camera := testCamera(21, 21, 90)
	fb := NewFramebuffer(21, 21)
	camera.RenderThreaded(scene, fb, 21, 21)

	var topHits, bottomHits int
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if fb.ColorAt(x, y).R > 0.5 {
				if y < 10 {
					topHits++
				} else if y > 10 {
					bottomHits++
				}
			}
		}
	}

	if topHits == 0 {
		t.Error("Sphere above the camera should appear in the top image rows")
	}
	if bottomHits != 0 {
		t.Errorf("Sphere above the camera should not appear in the bottom rows, found %d pixels", bottomHits)
	}
}

func TestFramebuffer_ConcurrentDisjointWrites(t *testing.T) {
	fb := NewFramebuffer(64, 64)

	var wg sync.WaitGroup
	for y := 0; y < 64; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			for x := 0; x < 64; x++ {
				fb.SetColor(x, y, core.NewColor(1, 1, 1))
			}
		}(y)
	}
	wg.Wait()

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got := fb.ColorAt(x, y); got != core.NewColor(1, 1, 1) {
				t.Fatalf("Pixel (%d,%d): expected white, got %v", x, y, got)
			}
		}
	}
}

func TestFramebuffer_OutOfBoundsIgnored(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	// Must not panic
	fb.SetColor(-1, 0, core.White)
	fb.SetColor(0, -1, core.White)
	fb.SetColor(4, 0, core.White)
	fb.SetColor(0, 4, core.White)
}

func TestFramebuffer_Encode(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetColor(1, 1, core.NewColor(1, 0, 0))

	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"bmp", false},
		{"gif", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := fb.Encode(&buf, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected an error for format %q", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode(%q) failed: %v", tt.format, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Encode(%q) produced no output", tt.format)
			}
		})
	}
}

func TestFramebuffer_Row(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetColor(0, 1, core.NewColor(1, 0, 0))

	row := fb.Row(1)
	if len(row) != 3*4 {
		t.Fatalf("Expected 12 bytes for a 3-pixel RGBA row, got %d", len(row))
	}
	if row[0] != 255 || row[1] != 0 || row[2] != 0 || row[3] != 255 {
		t.Errorf("Row bytes should reflect the written pixel, got %v", row[:4])
	}
}
