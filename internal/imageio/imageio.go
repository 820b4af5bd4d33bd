// Package imageio decodes and encodes the PNG and JPEG files kept in the
// screenshot folder.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// Format names an on-disk image encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpg"
)

// JPEGQuality is used whenever a JPEG is written.
const JPEGQuality = 90

// ErrUnsupported is returned for data that is neither PNG nor JPEG.
var ErrUnsupported = errors.New("unsupported image format")

// ParseFormat accepts png, jpg and jpeg in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// FormatOf derives the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Sniff inspects the leading bytes of data.
func Sniff(data []byte) (Format, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("sniff image: %w", err)
	}
	switch kind {
	case matchers.TypePng:
		return PNG, nil
	case matchers.TypeJpeg:
		return JPEG, nil
	}
	return "", ErrUnsupported
}

// Decode turns PNG or JPEG bytes into an RGBA buffer with a zero origin.
func Decode(data []byte) (*image.RGBA, error) {
	f, err := Sniff(data)
	if err != nil {
		return nil, err
	}
	var img image.Image
	switch f {
	case PNG:
		img, err = png.Decode(bytes.NewReader(data))
	case JPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return ToRGBA(img), nil
}

// Load reads and decodes the image at path.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// ToRGBA copies img into a new zero-origin RGBA buffer, or returns it as is
// when it already is one.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	}
	return fmt.Errorf("%w: %q", ErrUnsupported, string(f))
}

// Save encodes img to path, picking the format from the extension. The file
// is written under a temporary name and renamed into place so that pollers
// never observe a half-written image.
func Save(path string, img image.Image) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shotdesk-*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if err := Encode(tmp, img, f); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
