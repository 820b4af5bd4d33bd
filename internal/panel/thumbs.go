package panel

import (
	"image"
	"log"
	"sync"
	"time"

	"github.com/example/shotdesk/internal/library"
	"github.com/example/shotdesk/internal/render"
)

// thumbCache builds list thumbnails in the background. Entries are keyed by
// path and rebuilt when the file's modification time changes.
type thumbCache struct {
	width int
	load  Loader
	// ready is called from the loading goroutine after each thumbnail.
	ready func()

	mu      sync.Mutex
	items   map[string]thumb
	pending map[string]bool
}

type thumb struct {
	mod time.Time
	img *image.RGBA
}

func newThumbCache(width int, load Loader, ready func()) *thumbCache {
	return &thumbCache{
		width:   width,
		load:    load,
		ready:   ready,
		items:   make(map[string]thumb),
		pending: make(map[string]bool),
	}
}

// Get returns the thumbnail for e, or nil while it is still being built.
// Files that fail to decode stay nil.
func (t *thumbCache) Get(e library.Entry) *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	if th, ok := t.items[e.Path]; ok && th.mod.Equal(e.ModTime) {
		return th.img
	}
	if t.pending[e.Path] {
		return nil
	}
	t.pending[e.Path] = true
	go t.build(e)
	return nil
}

func (t *thumbCache) build(e library.Entry) {
	var img *image.RGBA
	if src, err := t.load(e.Path); err != nil {
		log.Printf("thumbnail %s: %v", e.Name, err)
	} else {
		img = render.Thumbnail(src, t.width)
	}
	t.mu.Lock()
	t.items[e.Path] = thumb{mod: e.ModTime, img: img}
	delete(t.pending, e.Path)
	t.mu.Unlock()
	if t.ready != nil {
		t.ready()
	}
}

// Prune forgets thumbnails of files that are no longer listed.
func (t *thumbCache) Prune(entries []library.Entry) {
	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		keep[e.Path] = true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for p := range t.items {
		if !keep[p] {
			delete(t.items, p)
		}
	}
}
