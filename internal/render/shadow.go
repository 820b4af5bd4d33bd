package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shadow describes a soft drop shadow drawn under a thumbnail card.
type Shadow struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// CardShadow is the shadow used for the selected entry in the browser.
func CardShadow() Shadow {
	return Shadow{Radius: 6, Offset: image.Pt(4, 4), Opacity: 0.45}
}

// Apply returns img composited over its blurred shadow on a canvas grown
// to hold both, along with the position of img's top-left corner inside
// that canvas. A zero opacity returns img unchanged.
func (s Shadow) Apply(img *image.RGBA) (*image.RGBA, image.Point) {
	if img == nil || img.Bounds().Empty() || s.Opacity <= 0 {
		return img, image.Point{}
	}
	radius := max(s.Radius, 0)
	alpha := uint8(min(s.Opacity, 1)*255 + 0.5)

	src := img.Bounds()
	halo := src.Inset(-radius)
	shadow := halo.Add(s.Offset)
	all := src.Union(shadow)

	mask := image.NewGray(image.Rect(0, 0, halo.Dx(), halo.Dy()))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0 {
				mask.SetGray(x-halo.Min.X, y-halo.Min.Y, color.Gray{Y: a})
			}
		}
	}
	mask = boxBlur(mask, radius)

	dst := image.NewRGBA(image.Rect(0, 0, all.Dx(), all.Dy()))
	ink := image.NewUniform(color.RGBA{A: alpha})
	draw.DrawMask(dst, mask.Bounds().Add(shadow.Min.Sub(all.Min)), ink, image.Point{}, mask, image.Point{}, draw.Over)
	at := src.Min.Sub(all.Min)
	draw.Draw(dst, src.Sub(all.Min), img, src.Min, draw.Over)
	return dst, at
}

// boxBlur runs a horizontal then a vertical running-sum pass.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	tmp := image.NewGray(src.Bounds())
	for y := 0; y < h; y++ {
		blurLine(src.Pix[y*src.Stride:], tmp.Pix[y*tmp.Stride:], w, 1, radius)
	}
	for x := 0; x < w; x++ {
		blurLine(tmp.Pix[x:], out.Pix[x:], h, tmp.Stride, radius)
	}
	return out
}

// blurLine averages n samples spaced step apart over a window of radius.
func blurLine(in, out []uint8, n, step, radius int) {
	sums := make([]int, n+1)
	for i := 0; i < n; i++ {
		sums[i+1] = sums[i] + int(in[i*step])
	}
	for i := 0; i < n; i++ {
		lo := max(i-radius, 0)
		hi := min(i+radius, n-1)
		out[i*step] = uint8((sums[hi+1] - sums[lo]) / (hi - lo + 1))
	}
}
