// Package render holds the small raster helpers shared by the browser and
// the command line: thumbnails, card shadows and checkerboard backdrops.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Thumbnail scales img to width pixels wide, keeping its aspect ratio.
// The height is never less than one pixel.
func Thumbnail(img image.Image, width int) *image.RGBA {
	if img == nil || width <= 0 || img.Bounds().Empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	b := img.Bounds()
	height := max(width*b.Dy()/b.Dx(), 1)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Fit returns the largest rectangle with the aspect ratio of size that fits
// centred inside area. Images smaller than area keep their own size.
func Fit(size image.Point, area image.Rectangle) image.Rectangle {
	if size.X <= 0 || size.Y <= 0 || area.Empty() {
		return image.Rectangle{Min: area.Min, Max: area.Min}
	}
	w, h := size.X, size.Y
	if w > area.Dx() || h > area.Dy() {
		if w*area.Dy() > h*area.Dx() {
			h = max(h*area.Dx()/w, 1)
			w = area.Dx()
		} else {
			w = max(w*area.Dy()/h, 1)
			h = area.Dy()
		}
	}
	origin := area.Min.Add(image.Pt((area.Dx()-w)/2, (area.Dy()-h)/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}

// Checkerboard fills r with alternating squares of cell pixels.
func Checkerboard(dst draw.Image, r image.Rectangle, light, dark color.Color, cell int) {
	if cell <= 0 {
		cell = 8
	}
	lu, du := image.NewUniform(light), image.NewUniform(dark)
	for y := r.Min.Y; y < r.Max.Y; y += cell {
		for x := r.Min.X; x < r.Max.X; x += cell {
			c := lu
			if ((x-r.Min.X)/cell+(y-r.Min.Y)/cell)%2 == 1 {
				c = du
			}
			sq := image.Rect(x, y, x+cell, y+cell).Intersect(r)
			draw.Draw(dst, sq, c, image.Point{}, draw.Src)
		}
	}
}
