//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import (
	"fmt"
	"image"
)

var x11ScreenshotFn = func() (*image.RGBA, error) {
	return nil, fmt.Errorf("X11 capture is not supported on this platform")
}
