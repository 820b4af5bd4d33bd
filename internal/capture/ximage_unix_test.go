//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"image/color"
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestXImageToRGBA(t *testing.T) {
	formats := []xproto.Format{{Depth: 24, BitsPerPixel: 32, ScanlinePad: 32}}
	// two pixels, BGRX order
	data := []byte{0x30, 0x20, 0x10, 0x00, 0x03, 0x02, 0x01, 0x00}
	img, err := xImageToRGBA(formats, 24, data, 2, 1)
	if err != nil {
		t.Fatalf("xImageToRGBA: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Fatalf("pixel 0 = %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0x01, 0x02, 0x03, 0xFF}) {
		t.Fatalf("pixel 1 = %+v", got)
	}
}

func TestXImageToRGBAUnknownDepth(t *testing.T) {
	formats := []xproto.Format{{Depth: 24, BitsPerPixel: 32}}
	if _, err := xImageToRGBA(formats, 16, []byte{0, 0}, 1, 1); err == nil {
		t.Fatal("expected error for unknown depth")
	}
}
