package library

import (
	"context"
	"fmt"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch reports changes to the folder contents on the returned channel
// until ctx is done. Bursts of events collapse into a single pending
// notification. The folder is created if needed so that it can be watched.
func (l *Library) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := l.EnsureDir(); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", l.Dir, err)
	}
	if err := w.Add(l.Dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", l.Dir, err)
	}
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Write) {
					continue
				}
				if !IsScreenshot(ev.Name) {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watch %s: %v", l.Dir, err)
			}
		}
	}()
	return ch, nil
}
