package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"sync"
	"testing"

	"github.com/example/shotdesk/internal/imageio"
)

type fakeBackend struct {
	image []byte
	text  []byte
}

func (f *fakeBackend) writeImage(data []byte) error { f.image = data; return nil }
func (f *fakeBackend) writeText(text []byte) error  { f.text = text; return nil }

func useFake(t *testing.T) *fakeBackend {
	t.Helper()
	t.Setenv("DISPLAY", ":0")
	fake := &fakeBackend{}
	orig := newBackend
	newBackend = func() (backend, error) { return fake, nil }
	initOnce, initErr, active = sync.Once{}, nil, nil
	t.Cleanup(func() {
		newBackend = orig
		initOnce, initErr, active = sync.Once{}, nil, nil
	})
	return fake
}

func TestWriteText(t *testing.T) {
	fake := useFake(t)
	if err := WriteText("/tmp/a.png"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if string(fake.text) != "/tmp/a.png" {
		t.Fatalf("text = %q", fake.text)
	}
}

func TestCopyFilePublishesPNG(t *testing.T) {
	fake := useFake(t)
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "shot.jpg")
	if err := imageio.Save(path, img); err != nil {
		t.Fatal(err)
	}
	if err := CopyFile(path); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := png.Decode(bytes.NewReader(fake.image))
	if err != nil {
		t.Fatalf("clipboard data is not PNG: %v", err)
	}
	if got.Bounds().Size() != img.Bounds().Size() {
		t.Fatalf("size %v, want %v", got.Bounds().Size(), img.Bounds().Size())
	}
}

func TestNoDisplay(t *testing.T) {
	if !needsDisplay() {
		t.Skip("no display server needed on this platform")
	}
	useFake(t)
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if err := WriteText("x"); !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}
