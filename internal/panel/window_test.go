package panel

import (
	"context"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/shotdesk/internal/capture"
	"github.com/example/shotdesk/internal/library"
	"github.com/example/shotdesk/internal/theme"
)

type countingButton struct {
	TextButton
	draws int
}

func (b *countingButton) Draw(dst *image.RGBA, state ButtonState) {
	b.draws++
	b.TextButton.Draw(dst, state)
}

func TestCacheButtonRedrawsOnLabelChange(t *testing.T) {
	label := "Draw: off"
	inner := &countingButton{TextButton: TextButton{label: func() string { return label }, theme: theme.Default()}}
	cb := &CacheButton{Button: inner}
	cb.SetRect(image.Rect(0, 0, 80, 20))
	dst := image.NewRGBA(image.Rect(0, 0, 100, 30))

	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateDefault)
	assert.Equal(t, 1, inner.draws)

	cb.Draw(dst, StateHover)
	assert.Equal(t, 2, inner.draws)

	label = "Draw: on"
	cb.Draw(dst, StateDefault)
	assert.Equal(t, 3, inner.draws)

	cb.SetRect(image.Rect(0, 0, 90, 20))
	cb.Draw(dst, StateDefault)
	assert.Equal(t, 4, inner.draws)
}

func TestLayoutRowAndHitTest(t *testing.T) {
	th := theme.Default()
	var hits []string
	mk := func(s string) *CacheButton {
		return NewTextButton(th, func() string { return s }, func() { hits = append(hits, s) })
	}
	row := []*CacheButton{mk("Open"), mk("Delete")}
	end := layoutRow(row, image.Pt(10, 0), 28)
	assert.Greater(t, end, row[1].Rect().Max.X-1)
	assert.Less(t, row[0].Rect().Max.X, row[1].Rect().Min.X)

	b := buttonAt(row, row[1].Rect().Min.Add(image.Pt(1, 1)))
	require.NotNil(t, b)
	b.Activate()
	assert.Equal(t, []string{"Delete"}, hits)
	assert.Nil(t, buttonAt(row, image.Pt(0, 100)))
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "short", ellipsize("short", 200))
	got := ellipsize("ScreenShot_2024-01-01_00-00-00.png", 70)
	assert.LessOrEqual(t, textWidth(got), 70)
	assert.Contains(t, got, "...")
}

func TestThumbCacheBuildsOnce(t *testing.T) {
	var loads atomic.Int32
	ready := make(chan struct{}, 4)
	gate := make(chan struct{})
	cache := newThumbCache(20, func(string) (*image.RGBA, error) {
		<-gate
		loads.Add(1)
		return image.NewRGBA(image.Rect(0, 0, 40, 10)), nil
	}, func() { ready <- struct{}{} })

	e := library.Entry{Path: "/s/a.png", Name: "a.png", ModTime: time.Unix(100, 0)}
	assert.Nil(t, cache.Get(e))
	assert.Nil(t, cache.Get(e), "still pending")
	close(gate)
	<-ready
	th := cache.Get(e)
	require.NotNil(t, th)
	assert.Equal(t, image.Pt(20, 5), th.Bounds().Size())
	assert.Equal(t, int32(1), loads.Load())

	e.ModTime = time.Unix(200, 0)
	assert.Nil(t, cache.Get(e), "changed files are rebuilt")
	<-ready
	assert.Equal(t, int32(2), loads.Load())

	cache.Prune(nil)
	cache.mu.Lock()
	assert.Empty(t, cache.items)
	cache.mu.Unlock()
}

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	c := newTestController(t)
	writeShot(t, c, "a.png")
	writeShot(t, c, "b.png")
	require.NoError(t, c.Reload())
	w := NewWindow(c, nil)
	w.thumbs = newThumbCache(thumbWidth, c.Load, nil)
	w.send = func(any) {}
	w.buildButtons(context.Background())
	return w
}

func press(p image.Point) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirPress}
}

func TestWindowSelectAndPaint(t *testing.T) {
	w := newTestWindow(t)
	dst := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	w.draw(dst)
	assert.True(t, w.imageArea.Empty(), "nothing selected yet")

	row := w.layout.rowRect(1)
	assert.True(t, w.onMouse(press(row.Min.Add(image.Pt(4, 4)))))
	e, ok := w.ctrl.State.Selected()
	require.True(t, ok)
	assert.Equal(t, "b.png", e.Name)

	w.draw(dst)
	require.False(t, w.imageArea.Empty())

	// drawing is off: pressing on the image does not paint
	mid := w.imageArea.Min.Add(image.Pt(w.imageArea.Dx()/2, w.imageArea.Dy()/2))
	w.onMouse(press(mid))
	w.onMouse(mouse.Event{X: float32(mid.X), Y: float32(mid.Y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	assert.Zero(t, w.ctrl.State.Canvas().PaintedCount())

	assert.True(t, w.onKey(context.Background(), key.Event{Rune: 'd', Direction: key.DirPress}))
	assert.True(t, w.onMouse(press(mid)))
	assert.NotZero(t, w.ctrl.State.Canvas().PaintedCount())
	w.onMouse(mouse.Event{X: float32(mid.X), Y: float32(mid.Y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	w.draw(dst)
}

func TestWindowToolbarButtons(t *testing.T) {
	w := newTestWindow(t)
	dst := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	w.draw(dst)

	find := func(prefix string) *CacheButton {
		for _, b := range w.buttons() {
			if len(b.Label()) >= len(prefix) && b.Label()[:len(prefix)] == prefix {
				return b
			}
		}
		t.Fatalf("no button %q", prefix)
		return nil
	}
	sortBtn := find("Sort")
	w.onMouse(press(sortBtn.Rect().Min.Add(image.Pt(2, 2))))
	assert.Equal(t, library.SortByDate, w.ctrl.State.View.Sort)

	res := find("Res")
	w.onMouse(press(res.Rect().Min.Add(image.Pt(2, 2))))
	assert.Equal(t, capture.Presets[1], w.ctrl.Resolution)

	w.onMouse(press(find("Rename").Rect().Min.Add(image.Pt(2, 2))))
	assert.Contains(t, w.ctrl.State.Status, ErrNoSelection.Error())
}

func TestWindowRenamePrompt(t *testing.T) {
	w := newTestWindow(t)
	require.NoError(t, w.ctrl.Select(0))
	w.ctrl.State.BeginPrompt(PromptRename, "")
	for _, r := range "level1" {
		w.onKey(context.Background(), key.Event{Rune: r, Direction: key.DirPress})
	}
	w.onKey(context.Background(), key.Event{Code: key.CodeReturnEnter, Direction: key.DirPress})
	e, ok := w.ctrl.State.Selected()
	require.True(t, ok)
	assert.Equal(t, "level1.png", e.Name)
	assert.False(t, w.ctrl.State.Prompt.Active())
}

func TestStepSelection(t *testing.T) {
	w := newTestWindow(t)
	w.onKey(context.Background(), key.Event{Code: key.CodeDownArrow, Direction: key.DirPress})
	assert.Equal(t, 0, w.ctrl.State.SelectedIndex())
	w.onKey(context.Background(), key.Event{Code: key.CodeDownArrow, Direction: key.DirPress})
	w.onKey(context.Background(), key.Event{Code: key.CodeDownArrow, Direction: key.DirPress})
	assert.Equal(t, 1, w.ctrl.State.SelectedIndex())
	w.onKey(context.Background(), key.Event{Code: key.CodeUpArrow, Direction: key.DirPress})
	assert.Equal(t, 0, w.ctrl.State.SelectedIndex())
}

func TestNextResolutionCycles(t *testing.T) {
	r := capture.Resolution{}
	for range capture.Presets {
		r = nextResolution(r)
	}
	assert.Equal(t, capture.Resolution{}, r)
	assert.Equal(t, capture.Presets[0], nextResolution(capture.Resolution{Width: 3, Height: 3}))
}
