// Package annotate keeps the paint buffers for the screenshot currently
// selected for annotation.
//
// Coordinates passed to a Canvas are texture coordinates: the origin is the
// bottom-left pixel and y grows upwards. Storage is a regular top-left
// *image.RGBA, so a texture row y lives at image row height-1-y.
package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"
)

// StampRadius is the half-size of the square brush. A radius of 2 paints a
// 5x5 block per input sample.
const StampRadius = 2

// DefaultInk is the red used for strokes.
var DefaultInk = color.RGBA{255, 0, 0, 255}

const painted = 0xFF

// Canvas holds the original, display and mask buffers for one image.
type Canvas struct {
	original *image.RGBA
	display  *image.RGBA
	mask     *image.Alpha

	revision atomic.Uint64
	onCommit func(display *image.RGBA)
}

// New snapshots src into fresh original and display buffers and an empty
// mask. The returned canvas never references src.
func New(src image.Image) *Canvas {
	b := src.Bounds()
	rect := image.Rect(0, 0, b.Dx(), b.Dy())
	orig := image.NewRGBA(rect)
	draw.Draw(orig, rect, src, b.Min, draw.Src)
	disp := image.NewRGBA(rect)
	copy(disp.Pix, orig.Pix)
	return &Canvas{
		original: orig,
		display:  disp,
		mask:     image.NewAlpha(rect),
	}
}

// OnCommit registers fn to run after each commit of the display buffer.
func (c *Canvas) OnCommit(fn func(display *image.RGBA)) {
	if c == nil {
		return
	}
	c.onCommit = fn
}

// Size reports the canvas width and height.
func (c *Canvas) Size() image.Point {
	if c == nil {
		return image.Point{}
	}
	return c.display.Bounds().Size()
}

// Display returns the working buffer. Callers must treat it as read-only.
func (c *Canvas) Display() *image.RGBA {
	if c == nil {
		return nil
	}
	return c.display
}

// Original returns the untouched snapshot.
func (c *Canvas) Original() *image.RGBA {
	if c == nil {
		return nil
	}
	return c.original
}

// Revision increases every time a buffer is committed.
func (c *Canvas) Revision() uint64 {
	if c == nil {
		return 0
	}
	return c.revision.Load()
}

// Stamp paints a (2*StampRadius+1)^2 square of ink centred on the texture
// coordinate (x, y). Out-of-range input is clamped, as is every pixel of
// the stamp, so strokes near an edge cover only the part of the square that
// lies on the canvas.
func (c *Canvas) Stamp(x, y int, ink color.RGBA) {
	if c == nil {
		return
	}
	w, h := c.Size().X, c.Size().Y
	if w == 0 || h == 0 {
		return
	}
	x = clamp(x, 0, w-1)
	y = clamp(y, 0, h-1)
	for i := -StampRadius; i <= StampRadius; i++ {
		for j := -StampRadius; j <= StampRadius; j++ {
			px := clamp(x+i, 0, w-1)
			py := clamp(y+j, 0, h-1)
			row := h - 1 - py
			c.display.SetRGBA(px, row, ink)
			c.mask.Pix[c.mask.PixOffset(px, row)] = painted
		}
	}
	c.commit()
}

// Clear copies the original pixel back over every painted pixel. Pixels
// that were never painted are left alone. The mask keeps its bits, so
// calling Clear again changes nothing.
func (c *Canvas) Clear() {
	if c == nil {
		return
	}
	for i, m := range c.mask.Pix {
		if m != painted {
			continue
		}
		off := i * 4
		copy(c.display.Pix[off:off+4], c.original.Pix[off:off+4])
	}
	c.commit()
}

// ClearMask marks every pixel as unpainted.
func (c *Canvas) ClearMask() {
	if c == nil {
		return
	}
	clear(c.mask.Pix)
	c.commit()
}

// Painted reports whether the texture coordinate (x, y) is marked in the
// mask. Coordinates outside the canvas report false.
func (c *Canvas) Painted(x, y int) bool {
	if c == nil {
		return false
	}
	sz := c.Size()
	if x < 0 || y < 0 || x >= sz.X || y >= sz.Y {
		return false
	}
	return c.mask.Pix[c.mask.PixOffset(x, sz.Y-1-y)] == painted
}

// PaintedCount returns how many pixels are marked in the mask.
func (c *Canvas) PaintedCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, m := range c.mask.Pix {
		if m == painted {
			n++
		}
	}
	return n
}

// At returns the display pixel at texture coordinate (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return c.display.RGBAAt(x, c.Size().Y-1-y)
}

// OriginalAt returns the original pixel at texture coordinate (x, y).
func (c *Canvas) OriginalAt(x, y int) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return c.original.RGBAAt(x, c.Size().Y-1-y)
}

func (c *Canvas) commit() {
	c.revision.Add(1)
	if c.onCommit != nil {
		c.onCommit(c.display)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
