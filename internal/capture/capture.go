// Package capture takes desktop screenshots and writes them into the
// screenshot folder.
//
// Writing is asynchronous: Start returns before the file exists, and callers
// wait for it with WaitForFile.
package capture

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/example/shotdesk/internal/imageio"
)

// Options configures a single capture request.
type Options struct {
	Resolution    Resolution
	IncludeCursor bool

	// OnError, when set, is called from the capture goroutine if the
	// grab or the write fails. Errors are always logged.
	OnError func(path string, err error)
}

// Capturer starts a capture that will eventually be written to path.
type Capturer interface {
	Start(path string, opts Options)
}

// grabFn returns the current desktop contents. Tests replace it.
var grabFn = grabDesktop

// Screen captures the whole desktop.
type Screen struct{}

var _ Capturer = (*Screen)(nil)

// Start grabs the desktop in the background and writes it to path.
func (s *Screen) Start(path string, opts Options) {
	go func() {
		if err := Write(path, opts); err != nil {
			log.Printf("capture %s: %v", path, err)
			if opts.OnError != nil {
				opts.OnError(path, err)
			}
		}
	}()
}

// Write grabs the desktop and writes it to path synchronously.
func Write(path string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	img, err := grabFn(opts)
	if err != nil {
		return err
	}
	img = Scale(img, opts.Resolution)
	return imageio.Save(path, img)
}

// Scale resizes img to res. The native resolution leaves img untouched.
func Scale(img *image.RGBA, res Resolution) *image.RGBA {
	if res.Native() || img == nil {
		return img
	}
	if img.Bounds().Dx() == res.Width && img.Bounds().Dy() == res.Height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, res.Width, res.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func grabDesktop(opts Options) (*image.RGBA, error) {
	img, portalErr := portalScreenshotFn(opts)
	if portalErr == nil {
		return img, nil
	}
	img, err := x11ScreenshotFn()
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", errors.Join(portalErr, fmt.Errorf("x11 fallback: %w", err)))
	}
	return img, nil
}
