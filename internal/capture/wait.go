package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrTimeout is returned by WaitForFile when the file never appeared.
var ErrTimeout = errors.New("timed out waiting for capture")

// Poll bounds how WaitForFile checks for a file.
type Poll struct {
	Interval time.Duration
	Timeout  time.Duration
}

// DefaultPoll checks every 100ms for up to 10s.
func DefaultPoll() Poll {
	return Poll{Interval: 100 * time.Millisecond, Timeout: 10 * time.Second}
}

func (p Poll) normalize() Poll {
	d := DefaultPoll()
	if p.Interval <= 0 {
		p.Interval = d.Interval
	}
	if p.Timeout <= 0 {
		p.Timeout = d.Timeout
	}
	return p
}

// WaitForFile blocks until path exists with a non-zero size, the timeout
// elapses, or ctx is done. The parent directory is watched so that the
// check runs as soon as the file is created; the ticker keeps polling when
// the watcher cannot be set up.
func WaitForFile(ctx context.Context, path string, p Poll) error {
	p = p.normalize()
	if ready(path) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var events <-chan fsnotify.Event
	if w, err := fsnotify.NewWatcher(); err == nil {
		defer w.Close()
		if err := w.Add(filepath.Dir(path)); err == nil {
			events = w.Events
		}
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%s after %s: %w", filepath.Base(path), p.Timeout, ErrTimeout)
			}
			return ctx.Err()
		case <-ticker.C:
		case <-events:
		}
		if ready(path) {
			return nil
		}
	}
}

func ready(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
