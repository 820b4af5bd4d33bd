package panel

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shotdesk/internal/annotate"
	"github.com/example/shotdesk/internal/capture"
	"github.com/example/shotdesk/internal/imageio"
	"github.com/example/shotdesk/internal/theme"
)

// Events sent to the window from background goroutines.
type (
	captureDone struct {
		path string
		err  error
	}
	folderChanged struct{}
)

// Window is the browser's shiny shell around a Controller.
type Window struct {
	ctrl  *Controller
	theme *theme.Theme

	width, height int
	layout        layout
	toolbar       []*CacheButton
	actions       []*CacheButton
	hover         *CacheButton
	pressed       *CacheButton
	dragging      bool
	imageArea     image.Rectangle

	thumbs *thumbCache
	send   func(any)
}

// NewWindow prepares a window for c using th for its colors.
func NewWindow(c *Controller, th *theme.Theme) *Window {
	if th == nil {
		th = theme.Default()
	}
	w := &Window{ctrl: c, theme: th, width: 1200, height: 800}
	w.layout = computeLayout(w.width, w.height)
	return w
}

// Run opens the window and blocks until it is closed or ctx is done.
func (w *Window) Run(ctx context.Context) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = w.main(ctx, s)
	})
	return runErr
}

func (w *Window) main(ctx context.Context, s screen.Screen) error {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.width, Height: w.height, Title: "shotdesk"})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer win.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.send = win.Send
	w.thumbs = newThumbCache(thumbWidth, w.ctrl.Load, func() { win.Send(paint.Event{}) })
	w.buildButtons(ctx)

	if err := w.ctrl.Reload(); err != nil {
		w.ctrl.State.Status = err.Error()
	}
	if changes, err := w.ctrl.Library.Watch(ctx); err != nil {
		log.Printf("watch: %v", err)
	} else {
		go func() {
			for range changes {
				win.Send(folderChanged{})
			}
		}()
	}
	go func() {
		<-ctx.Done()
		win.Send(lifecycle.Event{To: lifecycle.StageDead})
	}()

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			w.width, w.height = e.WidthPx, e.HeightPx
			w.layout = computeLayout(w.width, w.height)
			win.Send(paint.Event{})
		case paint.Event:
			w.paint(s, win)
		case folderChanged:
			w.report(w.ctrl.Reload())
			w.thumbs.Prune(w.ctrl.State.Entries())
			win.Send(paint.Event{})
		case captureDone:
			w.report(w.ctrl.FinishCapture(e.path, e.err))
			win.Send(paint.Event{})
		case key.Event:
			if w.onKey(ctx, e) {
				win.Send(paint.Event{})
			}
		case mouse.Event:
			if w.onMouse(e) {
				win.Send(paint.Event{})
			}
		case error:
			log.Printf("window: %v", e)
		}
	}
}

func (w *Window) buildButtons(ctx context.Context) {
	st := w.ctrl.State
	btn := func(label func() string, fn func() error) *CacheButton {
		return NewTextButton(w.theme, label, func() { w.report(fn()) })
	}
	static := func(s string) func() string { return func() string { return s } }

	w.toolbar = []*CacheButton{
		btn(static("Capture"), func() error { return w.capture(ctx) }),
		btn(func() string { return "Format: " + strings.ToUpper(string(w.ctrl.Format)) }, func() error {
			if w.ctrl.Format == imageio.PNG {
				w.ctrl.Format = imageio.JPEG
			} else {
				w.ctrl.Format = imageio.PNG
			}
			return nil
		}),
		btn(func() string { return "Res: " + w.ctrl.Resolution.String() }, func() error {
			w.ctrl.Resolution = nextResolution(w.ctrl.Resolution)
			return nil
		}),
		btn(func() string { return "Sort: " + st.View.Sort.String() }, func() error {
			st.ToggleSort()
			return nil
		}),
		btn(func() string {
			if st.View.Filter == "" {
				return "Filter"
			}
			return "Filter: " + st.View.Filter
		}, func() error {
			st.BeginPrompt(PromptFilter, st.View.Filter)
			return nil
		}),
		btn(func() string {
			if st.Drawing {
				return "Draw: on"
			}
			return "Draw: off"
		}, func() error {
			st.ToggleDrawing()
			return nil
		}),
		btn(static("Clear Drawing"), func() error {
			st.ClearDrawing()
			return nil
		}),
		btn(static("Save Annotated"), func() error {
			_, err := w.ctrl.SaveAnnotated()
			return err
		}),
		btn(static("Refresh"), w.ctrl.Reload),
	}
	w.actions = []*CacheButton{
		btn(static("Open"), w.ctrl.OpenSelected),
		btn(static("Delete"), w.ctrl.DeleteSelected),
		btn(static("Rename"), w.beginRename),
		btn(static("Comment"), func() error {
			if _, ok := st.Selected(); !ok {
				return ErrNoSelection
			}
			st.BeginPrompt(PromptComment, w.ctrl.Comment())
			return nil
		}),
		btn(static("Copy"), w.ctrl.CopySelected),
	}
}

func (w *Window) capture(ctx context.Context) error {
	_, err := w.ctrl.StartCapture(ctx, func(path string, err error) {
		w.send(captureDone{path: path, err: err})
	})
	return err
}

func (w *Window) buttons() []*CacheButton {
	out := make([]*CacheButton, 0, len(w.toolbar)+len(w.actions))
	return append(append(out, w.toolbar...), w.actions...)
}

// report shows err in the status bar. Cancelled actions are not errors.
func (w *Window) report(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	log.Print(err)
	w.ctrl.State.Status = err.Error()
}

func nextResolution(r capture.Resolution) capture.Resolution {
	for i, p := range capture.Presets {
		if p == r {
			return capture.Presets[(i+1)%len(capture.Presets)]
		}
	}
	return capture.Presets[0]
}

// onKey handles a key event and reports whether a repaint is needed.
func (w *Window) onKey(ctx context.Context, e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	st := w.ctrl.State
	if st.Prompt.Active() {
		switch e.Code {
		case key.CodeEscape:
			st.CancelPrompt()
		case key.CodeReturnEnter:
			w.report(w.ctrl.Submit(st.SubmitPrompt()))
		case key.CodeDeleteBackspace:
			st.Backspace()
		default:
			if e.Rune > 0 {
				st.Type(e.Rune)
			}
		}
		return true
	}

	ctrl := e.Modifiers&key.ModControl != 0
	switch {
	case ctrl && e.Code == key.CodeS:
		_, err := w.ctrl.SaveAnnotated()
		w.report(err)
	case ctrl && e.Code == key.CodeC:
		w.report(w.ctrl.CopySelected())
	case ctrl && e.Code == key.CodeN:
		w.report(w.capture(ctx))
	case e.Code == key.CodeDeleteForward:
		w.report(w.ctrl.DeleteSelected())
	case e.Code == key.CodeF2:
		w.report(w.beginRename())
	case e.Code == key.CodeF5:
		w.report(w.ctrl.Reload())
	case e.Code == key.CodeUpArrow:
		w.step(-1)
	case e.Code == key.CodeDownArrow:
		w.step(1)
	case e.Rune == '/':
		st.BeginPrompt(PromptFilter, st.View.Filter)
	case e.Rune == 'd':
		st.ToggleDrawing()
	default:
		return false
	}
	return true
}

// beginRename opens the rename prompt on the selected name, extension
// dropped.
func (w *Window) beginRename() error {
	st := w.ctrl.State
	e, ok := st.Selected()
	if !ok {
		return ErrNoSelection
	}
	st.BeginPrompt(PromptRename, strings.TrimSuffix(e.Name, filepath.Ext(e.Name)))
	return nil
}

// step moves the selection through the visible list.
func (w *Window) step(delta int) {
	st := w.ctrl.State
	n := len(st.Visible())
	if n == 0 {
		return
	}
	i := st.SelectedIndex() + delta
	i = max(0, min(i, n-1))
	w.report(w.ctrl.Select(i))
	w.scrollTo(i)
}

func (w *Window) scrollTo(i int) {
	st := w.ctrl.State
	rows := w.layout.rowsShown()
	if i < st.Scroll {
		st.Scroll = i
	} else if i >= st.Scroll+rows {
		st.Scroll = i - rows + 1
	}
}

// onMouse handles a mouse event and reports whether a repaint is needed.
func (w *Window) onMouse(e mouse.Event) bool {
	st := w.ctrl.State
	p := image.Pt(int(e.X), int(e.Y))

	if e.Direction == mouse.DirStep {
		if !p.In(w.layout.list) {
			return false
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			st.Scroll = max(st.Scroll-1, 0)
		case mouse.ButtonWheelDown:
			st.Scroll = min(st.Scroll+1, max(len(st.Visible())-w.layout.rowsShown(), 0))
		}
		return true
	}

	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		if b := buttonAt(w.buttons(), p); b != nil {
			w.pressed = b
			b.Activate()
			return true
		}
		if i := w.layout.rowAt(p, st.Scroll, len(st.Visible())); i >= 0 {
			w.report(w.ctrl.Select(i))
			return true
		}
		if p.In(w.imageArea) {
			w.dragging = true
			return st.Pointer(annotate.PointerDown, p, w.imageArea)
		}
		return false
	case mouse.DirRelease:
		w.pressed = nil
		was := w.dragging
		w.dragging = false
		st.Pointer(annotate.PointerUp, p, w.imageArea)
		return was
	default:
		if w.dragging {
			return st.Pointer(annotate.PointerDrag, p, w.imageArea)
		}
		st.Pointer(annotate.PointerMove, p, w.imageArea)
		hover := buttonAt(w.buttons(), p)
		changed := hover != w.hover
		w.hover = hover
		return changed
	}
}
