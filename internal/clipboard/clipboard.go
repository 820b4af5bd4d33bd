// Package clipboard publishes screenshots and their paths to the system
// clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"
	"sync"

	"github.com/example/shotdesk/internal/imageio"
)

var errNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")

// backend owns the clipboard contents once written.
type backend interface {
	writeImage(pngData []byte) error
	writeText(text []byte) error
}

var (
	initOnce sync.Once
	initErr  error
	active   backend
)

func ensureInit() error {
	initOnce.Do(func() {
		if needsDisplay() && !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		active, initErr = newBackend()
	})
	return initErr
}

func needsDisplay() bool {
	return runtime.GOOS != "windows" && runtime.GOOS != "darwin"
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// WriteImage publishes img as PNG data.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return active.writeImage(buf.Bytes())
}

// WriteText publishes text as UTF-8.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return active.writeText([]byte(text))
}

// CopyFile decodes the screenshot at path and publishes its pixels.
func CopyFile(path string) error {
	img, err := imageio.Load(path)
	if err != nil {
		return err
	}
	if err := WriteImage(img); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}
