//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"fmt"
	"image"

	"github.com/jezek/xgb/xproto"
)

// xImageToRGBA converts a ZPixmap reply in BGR(A) byte order into RGBA.
func xImageToRGBA(formats []xproto.Format, depth byte, data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("screen has empty geometry")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("screen pixels: empty image data")
	}
	bitsPerPixel := 0
	for _, f := range formats {
		if f.Depth == depth {
			bitsPerPixel = int(f.BitsPerPixel)
			break
		}
	}
	if bitsPerPixel == 0 {
		return nil, fmt.Errorf("unsupported screen depth %d", depth)
	}
	bpp := bitsPerPixel / 8
	if bpp < 3 {
		return nil, fmt.Errorf("unsupported pixel format %d bpp", bitsPerPixel)
	}
	stride := len(data) / height
	if stride*height != len(data) || stride < width*bpp {
		return nil, fmt.Errorf("screen pixels: unexpected stride")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			src := row[x*bpp:]
			dst := img.Pix[img.PixOffset(x, y):]
			dst[0] = src[2]
			dst[1] = src[1]
			dst[2] = src[0]
			// depth-24 visuals leave the fourth byte undefined
			dst[3] = 0xFF
		}
	}
	return img, nil
}
