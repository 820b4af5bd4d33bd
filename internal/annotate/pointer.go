package annotate

import (
	"image"
	"image/color"
)

// PointerKind classifies an input sample from the drawing area.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerDrag
	PointerUp
)

// ShouldPaint reports whether a pointer sample of the given kind produces a
// stroke. Only presses and drags paint, and only while drawing is enabled.
func ShouldPaint(kind PointerKind, drawing bool) bool {
	if !drawing {
		return false
	}
	return kind == PointerDown || kind == PointerDrag
}

// MapPointer converts a screen position inside area into texture
// coordinates for an image of the given size. The area origin is
// subtracted, the vertical axis is flipped so the top row of the area maps
// to texture row height-1 and the bottom row to texture row 0, and both
// axes are clamped to the image.
//
// When area is not the same size as the image the offsets are scaled back
// to the image pixel under the centre of the screen pixel first.
func MapPointer(p image.Point, area image.Rectangle, size image.Point) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return image.Point{}
	}
	dx := p.X - area.Min.X
	dy := p.Y - area.Min.Y
	// scaled offsets sample the centre of the screen pixel
	if aw := area.Dx(); aw > 0 && aw != size.X {
		dx = (2*dx + 1) * size.X / (2 * aw)
	}
	if ah := area.Dy(); ah > 0 && ah != size.Y {
		dy = (2*dy + 1) * size.Y / (2 * ah)
	}
	return image.Pt(
		clamp(dx, 0, size.X-1),
		clamp(size.Y-1-dy, 0, size.Y-1),
	)
}

// Pointer maps p into the canvas and stamps it with ink when the sample
// should paint. It reports whether a stroke was applied. Samples outside
// area are ignored.
func (c *Canvas) Pointer(kind PointerKind, drawing bool, p image.Point, area image.Rectangle, ink color.RGBA) bool {
	if c == nil || !ShouldPaint(kind, drawing) || !p.In(area) {
		return false
	}
	t := MapPointer(p, area, c.Size())
	c.Stamp(t.X, t.Y, ink)
	return true
}
