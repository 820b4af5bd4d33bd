package render

import (
	"image"
	"image/color"
	"testing"
)

func TestShadowExpandsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(5, 5, color.RGBA{R: 255, A: 255})

	s := Shadow{Radius: 4, Offset: image.Pt(8, 6), Opacity: 1}
	out, at := s.Apply(img)
	if out == nil {
		t.Fatal("expected output image")
	}
	want := image.Rect(0, 0, 22, 20)
	if !out.Bounds().Eq(want) {
		t.Fatalf("unexpected bounds %v, want %v", out.Bounds(), want)
	}
	if at != (image.Point{}) {
		t.Fatalf("content moved to %v", at)
	}
	if out.RGBAAt(13, 11).A == 0 {
		t.Fatal("expected shadow alpha under the offset pixel")
	}
	if got := out.RGBAAt(5, 5); got.R != 255 || got.A != 255 {
		t.Fatalf("subject pixel lost: %+v", got)
	}
}

func TestShadowZeroOpacity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	out, _ := Shadow{Radius: 12, Offset: image.Pt(20, 10)}.Apply(img)
	if out != img {
		t.Fatal("expected the same image back")
	}
}

func TestShadowNegativeOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{A: 255})
	out, at := Shadow{Radius: 1, Offset: image.Pt(-3, -2), Opacity: 1}.Apply(img)
	if at != image.Pt(4, 3) {
		t.Fatalf("unexpected content offset %v", at)
	}
	if out.RGBAAt(at.X, at.Y).A != 255 {
		t.Fatal("subject not drawn at reported offset")
	}
}

func TestBlurSpreadsAlpha(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 5, 5))
	g.SetGray(2, 2, color.Gray{Y: 250})
	out := boxBlur(g, 1)
	if out.GrayAt(1, 2).Y == 0 || out.GrayAt(2, 1).Y == 0 {
		t.Fatal("blur did not reach neighbours")
	}
	if out.GrayAt(0, 0).Y != 0 {
		t.Fatal("blur reached too far")
	}
}

func TestThumbnailKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	th := Thumbnail(src, 100)
	if got := th.Bounds().Size(); got != image.Pt(100, 25) {
		t.Fatalf("unexpected thumbnail size %v", got)
	}
	thin := Thumbnail(image.NewRGBA(image.Rect(0, 0, 1000, 1)), 10)
	if thin.Bounds().Dy() != 1 {
		t.Fatalf("height should be clamped to 1, got %d", thin.Bounds().Dy())
	}
	if !Thumbnail(nil, 10).Bounds().Empty() {
		t.Fatal("nil image should give an empty thumbnail")
	}
}

func TestFit(t *testing.T) {
	area := image.Rect(0, 0, 200, 100)
	if got := Fit(image.Pt(400, 100), area); got != image.Rect(0, 25, 200, 75) {
		t.Fatalf("wide fit %v", got)
	}
	if got := Fit(image.Pt(100, 200), area); got != image.Rect(75, 0, 125, 100) {
		t.Fatalf("tall fit %v", got)
	}
	if got := Fit(image.Pt(20, 10), area); got != image.Rect(90, 45, 110, 55) {
		t.Fatalf("small image should be centred at native size, got %v", got)
	}
}

func TestCheckerboard(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	light := color.RGBA{200, 200, 200, 255}
	dark := color.RGBA{100, 100, 100, 255}
	Checkerboard(dst, dst.Bounds(), light, dark, 8)
	if dst.RGBAAt(0, 0) != light || dst.RGBAAt(8, 0) != dark || dst.RGBAAt(8, 8) != light {
		t.Fatal("unexpected checker pattern")
	}
}
