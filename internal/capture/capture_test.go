package capture

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/shotdesk/internal/imageio"
)

func stubGrab(t *testing.T, fn func(Options) (*image.RGBA, error)) {
	t.Helper()
	orig := grabFn
	grabFn = fn
	t.Cleanup(func() { grabFn = orig })
}

func TestWriteScalesToResolution(t *testing.T) {
	stubGrab(t, func(Options) (*image.RGBA, error) {
		return image.NewRGBA(image.Rect(0, 0, 1920, 1080)), nil
	})
	path := filepath.Join(t.TempDir(), "ScreenShots", "shot.png")
	if err := Write(path, Options{Resolution: Resolution{Width: 800, Height: 600}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(800, 600) {
		t.Fatalf("size %v, want 800x600", got)
	}
}

func TestStartReportsErrors(t *testing.T) {
	sentinel := errors.New("portal offline")
	stubGrab(t, func(Options) (*image.RGBA, error) { return nil, sentinel })

	errc := make(chan error, 1)
	s := &Screen{}
	s.Start(filepath.Join(t.TempDir(), "shot.png"), Options{OnError: func(_ string, err error) { errc <- err }})
	select {
	case err := <-errc:
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}
}

func TestGrabFallsBackToX11(t *testing.T) {
	prevPortal, prevX11 := portalScreenshotFn, x11ScreenshotFn
	t.Cleanup(func() {
		portalScreenshotFn = prevPortal
		x11ScreenshotFn = prevX11
	})
	want := image.NewRGBA(image.Rect(0, 0, 2, 2))
	portalScreenshotFn = func(Options) (*image.RGBA, error) { return nil, errors.New("no portal") }
	x11ScreenshotFn = func() (*image.RGBA, error) { return want, nil }

	got, err := grabDesktop(Options{})
	if err != nil {
		t.Fatalf("grabDesktop: %v", err)
	}
	if got != want {
		t.Fatal("expected the X11 image")
	}

	x11ScreenshotFn = func() (*image.RGBA, error) { return nil, errors.New("no display") }
	_, err = grabDesktop(Options{})
	if err == nil || !strings.Contains(err.Error(), "no portal") || !strings.Contains(err.Error(), "x11 fallback") {
		t.Fatalf("expected both failures in error, got %v", err)
	}
}

func TestWaitForFileAppears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("png"), 0o644)
	}()
	err := WaitForFile(context.Background(), path, Poll{Interval: 10 * time.Millisecond, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("WaitForFile: %v", err)
	}
}

func TestWaitForFileTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")
	err := WaitForFile(context.Background(), path, Poll{Interval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestWaitForFileIgnoresEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := WaitForFile(context.Background(), path, Poll{Interval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout for empty file, got %v", err)
	}
}

func TestWaitForFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WaitForFile(ctx, filepath.Join(t.TempDir(), "x.png"), Poll{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseResolution(t *testing.T) {
	cases := map[string]Resolution{
		"":          {},
		"native":    {},
		"1280x720":  {Width: 1280, Height: 720},
		" 800X600 ": {Width: 800, Height: 600},
	}
	for in, want := range cases {
		got, err := ParseResolution(in)
		if err != nil || got != want {
			t.Errorf("ParseResolution(%q) = %v, %v", in, got, err)
		}
	}
	for _, bad := range []string{"800", "0x600", "axb"} {
		if _, err := ParseResolution(bad); err == nil {
			t.Errorf("ParseResolution(%q) should fail", bad)
		}
	}
	if Presets[1].String() != "1280x720" || Presets[0].String() != "native" {
		t.Errorf("unexpected preset names %v", Presets)
	}
}
