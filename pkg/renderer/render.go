package renderer

import (
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Logger is the minimal logging interface the renderer needs
type Logger interface {
	Printf(format string, args ...interface{})
}

// PixelSink receives rendered pixels. SetColor must be safe for concurrent
// calls on disjoint coordinates; it is never called twice for the same
// pixel within one render.
type PixelSink interface {
	SetColor(x, y int, color core.Color)
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Width       int
	Height      int
	PrimaryRays int64
	Elapsed     time.Duration
}

// RenderThreaded renders the scene into the sink at the given resolution,
// one goroutine per scanline, and blocks until every row has completed.
// Rows write disjoint pixels so no locking is needed; the scene must not be
// mutated while the render runs.
func (c *Camera) RenderThreaded(scene Scene, sink PixelSink, width, height int) RenderStats {
	c.SetRenderSize(width, height)
	start := time.Now()

	var wg sync.WaitGroup
	for y := height - 1; y >= 0; y-- {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			c.renderRow(scene, sink, y)
		}(y)
	}
	wg.Wait()

	stats := RenderStats{
		Width:       width,
		Height:      height,
		PrimaryRays: int64(width) * int64(height),
		Elapsed:     time.Since(start),
	}
	if c.logger != nil {
		c.logger.Printf("Rendered %dx%d (%d primary rays) in %v",
			stats.Width, stats.Height, stats.PrimaryRays, stats.Elapsed)
	}
	return stats
}

// renderRow traces every pixel of one scanline. The sink's row index is
// flipped because viewport y grows upward while image rows grow downward.
func (c *Camera) renderRow(scene Scene, sink PixelSink, y int) {
	for x := 0; x < c.width; x++ {
		viewportX := 2.0*float64(x)/float64(c.width) - 1.0
		viewportY := 2.0*float64(y)/float64(c.height) - 1.0

		ray := c.GetRay(viewportX, viewportY)

		var color core.Color
		if hit, ok := ClosestIntersection(ray, scene, nil); ok {
			color = RecursiveColor(hit, scene, 0, c.reflectionDepth)
		} else {
			color = scene.GetBackground()
		}

		sink.SetColor(x, c.height-y-1, color)
	}
}
