package panel

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/shotdesk/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button is a clickable element of the browser window.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Label() string
	Activate()
}

// CacheButton wraps a Button and keeps its rendered states until the
// rectangle or the label changes.
type CacheButton struct {
	Button
	label string
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if l := cb.Button.Label(); l != cb.label {
		cb.label = l
		cb.cache = [3]*image.RGBA{}
	}
	if cb.cache[state] == nil {
		img := image.NewRGBA(cb.Button.Rect())
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// TextButton draws a label on a themed background.
type TextButton struct {
	label      func() string
	rect       image.Rectangle
	theme      *theme.Theme
	onActivate func()
}

// NewTextButton returns a cached button whose label is re-read on every
// draw.
func NewTextButton(th *theme.Theme, label func() string, onActivate func()) *CacheButton {
	return &CacheButton{Button: &TextButton{label: label, theme: th, onActivate: onActivate}}
}

func (b *TextButton) Label() string {
	if b.label == nil {
		return ""
	}
	return b.label()
}

func (b *TextButton) Draw(dst *image.RGBA, state ButtonState) {
	bg := b.theme.ButtonBackground
	switch state {
	case StateHover:
		bg = b.theme.ButtonBackgroundHover
	case StatePressed:
		bg = b.theme.ButtonBackgroundPress
	}
	draw.Draw(dst, b.rect, image.NewUniform(bg), image.Point{}, draw.Src)
	strokeRect(dst, b.rect, b.theme.ButtonBorder)
	drawText(dst, b.Label(), image.Pt(b.rect.Min.X+buttonPad, b.rect.Min.Y+(b.rect.Dy()+9)/2), b.theme.ButtonText)
}

func (b *TextButton) Rect() image.Rectangle { return b.rect }

func (b *TextButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *TextButton) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

const buttonPad = 6

// layoutRow places buttons left to right from origin, each wide enough for
// its label, and returns the x just past the last one.
func layoutRow(buttons []*CacheButton, origin image.Point, height int) int {
	x := origin.X
	for _, b := range buttons {
		w := textWidth(b.Label()) + 2*buttonPad
		b.SetRect(image.Rect(x, origin.Y+2, x+w, origin.Y+height-2))
		x += w + 4
	}
	return x
}

// buttonAt returns the button under p, or nil.
func buttonAt(buttons []*CacheButton, p image.Point) *CacheButton {
	for _, b := range buttons {
		if p.In(b.Rect()) {
			return b
		}
	}
	return nil
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// drawText writes s with its baseline at dot.
func drawText(dst *image.RGBA, s string, dot image.Point, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13, Dot: fixed.P(dot.X, dot.Y)}
	d.DrawString(s)
}

// ellipsize shortens s with "..." so that it fits in width pixels.
func ellipsize(s string, width int) string {
	if textWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && textWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
