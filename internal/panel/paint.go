package panel

import (
	"image"
	"image/draw"
	"log"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/shotdesk/internal/render"
)

var (
	faceOnce  sync.Once
	largeFace font.Face
)

// placeholderFace is the font used for the empty drawing area.
func placeholderFace() font.Face {
	faceOnce.Do(func() {
		largeFace = basicfont.Face7x13
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("parse font: %v", err)
			return
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 22, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			log.Printf("font face: %v", err)
			return
		}
		largeFace = face
	})
	return largeFace
}

func (w *Window) paint(s screen.Screen, win screen.Window) {
	b, err := s.NewBuffer(image.Pt(w.width, w.height))
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	w.draw(b.RGBA())
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

// draw renders the whole window into dst.
func (w *Window) draw(dst *image.RGBA) {
	th := w.theme
	l := w.layout
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)

	draw.Draw(dst, l.toolbar, image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)
	layoutRow(w.toolbar, l.toolbar.Min.Add(image.Pt(4, 0)), toolbarHeight)
	layoutRow(w.actions, l.actions.Min.Add(image.Pt(margin, 0)), actionHeight)
	for _, b := range w.buttons() {
		b.Draw(dst, w.buttonState(b))
	}

	w.drawList(dst)
	w.drawView(dst)

	st := w.ctrl.State
	if _, ok := st.Selected(); ok {
		line := "Comment: " + w.ctrl.Comment()
		drawText(dst, ellipsize(line, l.comment.Dx()-2*margin), image.Pt(l.comment.Min.X+margin, l.comment.Min.Y+15), th.Foreground)
	}

	draw.Draw(dst, l.status, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	status := st.Status
	if st.Prompt.Active() {
		status = st.Prompt.Kind.String() + ": " + st.Prompt.Text + "_"
	}
	drawText(dst, ellipsize(status, l.status.Dx()-2*margin), image.Pt(l.status.Min.X+margin, l.status.Min.Y+15), th.Foreground)
}

func (w *Window) buttonState(b *CacheButton) ButtonState {
	switch b {
	case w.pressed:
		return StatePressed
	case w.hover:
		return StateHover
	}
	return StateDefault
}

func (w *Window) drawList(dst *image.RGBA) {
	th := w.theme
	l := w.layout
	st := w.ctrl.State
	draw.Draw(dst, l.list, image.NewUniform(th.ListBackground), image.Point{}, draw.Src)

	visible := st.Visible()
	sel := st.SelectedIndex()
	for n := 0; n < l.rowsShown(); n++ {
		i := st.Scroll + n
		if i >= len(visible) {
			break
		}
		e := visible[i]
		row := l.rowRect(n)
		if i == sel {
			draw.Draw(dst, row, image.NewUniform(th.Selection), image.Point{}, draw.Src)
		}
		if thumb := w.thumbs.Get(e); thumb != nil {
			img, at := thumb, image.Point{}
			if i == sel {
				img, at = render.CardShadow().Apply(thumb)
			}
			origin := row.Min.Add(image.Pt(margin, max((rowHeight-thumb.Bounds().Dy())/2, 2))).Sub(at)
			target := img.Bounds().Add(origin).Intersect(row)
			draw.Draw(dst, target, img, target.Min.Sub(origin), draw.Over)
		}
		textX := row.Min.X + 2*margin + thumbWidth
		width := row.Max.X - textX - margin
		drawText(dst, ellipsize(e.Name, width), image.Pt(textX, row.Min.Y+24), th.Foreground)
		if !e.ModTime.IsZero() {
			drawText(dst, e.ModTime.Format("2006-01-02 15:04:05"), image.Pt(textX, row.Min.Y+42), th.Foreground)
		}
	}
	if len(visible) == 0 {
		drawText(dst, "No screenshots", l.list.Min.Add(image.Pt(margin, 24)), th.Foreground)
	}
}

func (w *Window) drawView(dst *image.RGBA) {
	th := w.theme
	view := w.layout.view
	canvas := w.ctrl.State.Canvas()
	if canvas == nil {
		w.imageArea = image.Rectangle{}
		face := placeholderFace()
		msg := "Select a screenshot"
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: face}
		width := d.MeasureString(msg).Ceil()
		d.Dot = fixed.P(view.Min.X+(view.Dx()-width)/2, view.Min.Y+view.Dy()/2)
		d.DrawString(msg)
		return
	}

	disp := canvas.Display()
	area := render.Fit(canvas.Size(), view)
	w.imageArea = area
	render.Checkerboard(dst, area, th.CheckerLight, th.CheckerDark, 8)
	if area.Size() == disp.Bounds().Size() {
		draw.Draw(dst, area, disp, disp.Bounds().Min, draw.Over)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, area, disp, disp.Bounds(), draw.Over, nil)
	}
	if w.ctrl.State.Drawing {
		strokeRect(dst, area.Inset(-2), w.ctrl.State.Ink)
	}
}
