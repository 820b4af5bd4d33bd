package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func sample() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{10, 20, 30, 255})
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds %v", got)
	}
	if got := img.RGBAAt(1, 2); got != (color.RGBA{10, 20, 30, 255}) {
		t.Fatalf("pixel %+v", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestSaveAndLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.jpg")
	if err := Save(path, sample()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f, err := Sniff(data); err != nil || f != JPEG {
		t.Fatalf("sniff = %q, %v", f, err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be gone, have %d entries", len(entries))
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "shot.bmp"), sample())
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"PNG": PNG, ".jpg": JPEG, "jpeg": JPEG} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestToRGBARebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 9))
	src.SetRGBA(5, 5, color.RGBA{1, 1, 1, 255})
	out := ToRGBA(src)
	if out.Bounds().Min != (image.Point{}) {
		t.Fatalf("origin %v", out.Bounds().Min)
	}
	if out.RGBAAt(0, 0) != (color.RGBA{1, 1, 1, 255}) {
		t.Fatalf("pixel not carried over")
	}
}
