package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a width x height grid of RGB byte triples. Row 0 is the
// bottom of the image, matching camera coordinate t = 0.
//
// Writes to distinct pixels are independent, so concurrent tiles may fill
// disjoint regions without locking.
type Framebuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid framebuffer size %dx%d", width, height))
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Clear resets every pixel to black
func (fb *Framebuffer) Clear() {
	clear(fb.pix)
}

// SetPixel clamps each channel of c to [0, 1] and stores it scaled to [0, 255]
func (fb *Framebuffer) SetPixel(x, y int, c core.Vec3) {
	i := fb.offset(x, y)
	c = c.Clamp(0, 1)
	fb.pix[i] = uint8(c.X * 255)
	fb.pix[i+1] = uint8(c.Y * 255)
	fb.pix[i+2] = uint8(c.Z * 255)
}

// Pixel returns the stored bytes at (x, y)
func (fb *Framebuffer) Pixel(x, y int) (r, g, b uint8) {
	i := fb.offset(x, y)
	return fb.pix[i], fb.pix[i+1], fb.pix[i+2]
}

// RGB returns the raw pixel bytes, bottom row first
func (fb *Framebuffer) RGB() []uint8 {
	return fb.pix
}

// Image converts the framebuffer to an opaque RGBA image with the top row first
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.CopyTo(img)
	return img
}

// CopyTo writes the framebuffer into img, flipping it so row 0 is at the top.
// img must have the same size as the framebuffer.
func (fb *Framebuffer) CopyTo(img *image.RGBA) {
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := fb.Pixel(x, y)
			img.SetRGBA(x, fb.height-1-y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
}

func (fb *Framebuffer) offset(x, y int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) outside %dx%d framebuffer", x, y, fb.width, fb.height))
	}
	return (y*fb.width + x) * 3
}
