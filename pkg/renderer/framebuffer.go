package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is an image-backed PixelSink. Concurrent SetColor calls on
// disjoint pixels are safe because each pixel maps to its own slice cells.
type Framebuffer struct {
	width  int
	height int
	img    *image.RGBA
}

// NewFramebuffer creates a framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Size returns the framebuffer dimensions
func (f *Framebuffer) Size() (width, height int) {
	return f.width, f.height
}

// SetColor writes a color to the pixel at (x, y). Out-of-bounds writes are
// ignored. The color is clamped before quantization.
func (f *Framebuffer) SetColor(x, y int, c core.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	clamped := c.Clamp()
	f.img.SetRGBA(x, y, color.RGBA{
		R: uint8(255 * clamped.R),
		G: uint8(255 * clamped.G),
		B: uint8(255 * clamped.B),
		A: 255,
	})
}

// ColorAt reads back the quantized color at (x, y)
func (f *Framebuffer) ColorAt(x, y int) core.Color {
	c := f.img.RGBAAt(x, y)
	return core.NewColor(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// Image returns the underlying image. Do not read it while a render into
// this framebuffer is still running.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Row returns the raw RGBA bytes of one row, sliced from the backing array
func (f *Framebuffer) Row(y int) []byte {
	start := f.img.PixOffset(0, y)
	return f.img.Pix[start : start+f.width*4]
}

// Encode writes the framebuffer to w in the given format ("png" or "bmp")
func (f *Framebuffer) Encode(w io.Writer, format string) error {
	switch format {
	case "png":
		return png.Encode(w, f.img)
	case "bmp":
		return bmp.Encode(w, f.img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
