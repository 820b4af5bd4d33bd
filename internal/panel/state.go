// Package panel is the screenshot browser: a pure State driven by the
// window, a Controller that applies user actions to the library, and the
// shiny window itself.
package panel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/example/shotdesk/internal/annotate"
	"github.com/example/shotdesk/internal/library"
)

// ErrNoSelection is returned by actions that need a selected screenshot.
var ErrNoSelection = errors.New("no screenshot selected")

// Loader decodes the screenshot at path.
type Loader func(path string) (*image.RGBA, error)

// PromptKind identifies what the status line is collecting text for.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptRename
	PromptComment
	PromptFilter
)

func (k PromptKind) String() string {
	switch k {
	case PromptRename:
		return "Rename"
	case PromptComment:
		return "Comment"
	case PromptFilter:
		return "Filter"
	}
	return ""
}

// Prompt is a one-line text entry shown in the status bar.
type Prompt struct {
	Kind PromptKind
	Text string
}

// Active reports whether the prompt is collecting input.
func (p Prompt) Active() bool { return p.Kind != PromptNone }

// State is everything the browser shows. It is owned by the window's event
// goroutine and has no locking.
type State struct {
	View    library.View
	Drawing bool
	Ink     color.RGBA
	Prompt  Prompt
	Status  string
	Scroll  int

	entries  []library.Entry
	visible  []library.Entry
	selected string
	canvas   *annotate.Canvas
}

// NewState returns an empty browser sorted by name with red ink.
func NewState() *State {
	return &State{View: library.View{Sort: library.SortByName}, Ink: annotate.DefaultInk}
}

// Refresh replaces the listing. A selection whose file disappeared is
// dropped together with its canvas.
func (s *State) Refresh(entries []library.Entry) {
	s.entries = append(s.entries[:0], entries...)
	s.apply()
	if s.selected == "" {
		return
	}
	for _, e := range s.entries {
		if e.Path == s.selected {
			return
		}
	}
	s.Deselect()
}

func (s *State) apply() {
	s.visible = s.View.Apply(s.entries)
	s.Scroll = min(s.Scroll, max(len(s.visible)-1, 0))
}

// Entries returns every listed screenshot, unsorted.
func (s *State) Entries() []library.Entry { return s.entries }

// Visible returns the sorted and filtered listing shown to the user.
func (s *State) Visible() []library.Entry { return s.visible }

// SetFilter changes the name filter and reapplies the view.
func (s *State) SetFilter(text string) {
	s.View.Filter = text
	s.apply()
}

// SetSort changes the sort order and reapplies the view.
func (s *State) SetSort(order library.SortOrder) {
	s.View.Sort = order
	s.apply()
}

// ToggleSort flips between name and date order.
func (s *State) ToggleSort() library.SortOrder {
	if s.View.Sort == library.SortByName {
		s.SetSort(library.SortByDate)
	} else {
		s.SetSort(library.SortByName)
	}
	return s.View.Sort
}

// Select loads the i-th visible screenshot into a fresh canvas, replacing
// any previous one together with its strokes.
func (s *State) Select(i int, load Loader) error {
	if i < 0 || i >= len(s.visible) {
		return ErrNoSelection
	}
	return s.SelectPath(s.visible[i].Path, load)
}

// SelectPath is Select by file path.
func (s *State) SelectPath(path string, load Loader) error {
	img, err := load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	s.selected = path
	s.canvas = annotate.New(img)
	return nil
}

// Deselect drops the current selection.
func (s *State) Deselect() {
	s.selected = ""
	s.canvas = nil
}

// Selected returns the selected entry.
func (s *State) Selected() (library.Entry, bool) {
	if s.selected == "" {
		return library.Entry{}, false
	}
	for _, e := range s.entries {
		if e.Path == s.selected {
			return e, true
		}
	}
	return library.Entry{Path: s.selected, Name: filepath.Base(s.selected)}, true
}

// SelectedIndex returns the position of the selection in Visible, or -1.
func (s *State) SelectedIndex() int {
	for i, e := range s.visible {
		if e.Path == s.selected {
			return i
		}
	}
	return -1
}

// Canvas returns the annotation buffers of the selection, or nil.
func (s *State) Canvas() *annotate.Canvas { return s.canvas }

// ToggleDrawing flips the drawing switch and returns the new value.
func (s *State) ToggleDrawing() bool {
	s.Drawing = !s.Drawing
	return s.Drawing
}

// Pointer forwards a pointer event over the drawing area to the canvas and
// reports whether anything was painted.
func (s *State) Pointer(kind annotate.PointerKind, p image.Point, area image.Rectangle) bool {
	if s.canvas == nil {
		return false
	}
	return s.canvas.Pointer(kind, s.Drawing, p, area, s.Ink)
}

// ClearDrawing restores every painted pixel of the selection.
func (s *State) ClearDrawing() {
	s.canvas.Clear()
}

// BeginPrompt starts collecting text, prefilled with initial.
func (s *State) BeginPrompt(kind PromptKind, initial string) {
	s.Prompt = Prompt{Kind: kind, Text: initial}
}

// Type appends r to the prompt. The filter applies as it is typed.
func (s *State) Type(r rune) {
	if !s.Prompt.Active() || !unicode.IsPrint(r) {
		return
	}
	s.Prompt.Text += string(r)
	if s.Prompt.Kind == PromptFilter {
		s.SetFilter(s.Prompt.Text)
	}
}

// Backspace removes the last rune of the prompt.
func (s *State) Backspace() {
	if !s.Prompt.Active() || s.Prompt.Text == "" {
		return
	}
	r := []rune(s.Prompt.Text)
	s.Prompt.Text = string(r[:len(r)-1])
	if s.Prompt.Kind == PromptFilter {
		s.SetFilter(s.Prompt.Text)
	}
}

// CancelPrompt abandons the prompt. A cancelled filter keeps what was typed.
func (s *State) CancelPrompt() {
	s.Prompt = Prompt{}
}

// SubmitPrompt ends the prompt and returns it with its text trimmed.
func (s *State) SubmitPrompt() Prompt {
	p := s.Prompt
	p.Text = strings.TrimSpace(p.Text)
	s.Prompt = Prompt{}
	return p
}
