//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// newBackend is replaced by tests.
var newBackend = newX11Backend

// x11Backend owns the CLIPBOARD selection through a hidden window and
// answers conversion requests from other clients until it loses ownership.
type x11Backend struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  x11Atoms

	mu   sync.RWMutex
	mime xproto.Atom
	data []byte
}

type x11Atoms struct {
	clipboard, targets, utf8, textPlain, png xproto.Atom
}

func newX11Backend() (backend, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	win, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, win, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check()
	if err != nil {
		conn.Close()
		return nil, err
	}
	b := &x11Backend{conn: conn, window: win}
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "image/png"}
	dst := []*xproto.Atom{&b.atoms.clipboard, &b.atoms.targets, &b.atoms.utf8, &b.atoms.textPlain, &b.atoms.png}
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			xproto.DestroyWindow(conn, win)
			conn.Close()
			return nil, err
		}
		*dst[i] = reply.Atom
	}
	go b.serve()
	return b, nil
}

func (b *x11Backend) writeImage(data []byte) error { return b.own(b.atoms.png, data) }

func (b *x11Backend) writeText(text []byte) error { return b.own(b.atoms.utf8, text) }

func (b *x11Backend) own(mime xproto.Atom, data []byte) error {
	b.mu.Lock()
	b.mime, b.data = mime, append([]byte(nil), data...)
	b.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(b.conn, b.window, b.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (b *x11Backend) serve() {
	for {
		ev, err := b.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			b.answer(e)
		case xproto.SelectionClearEvent:
			b.mu.Lock()
			b.mime, b.data = 0, nil
			b.mu.Unlock()
		}
	}
}

// answer writes the requested target onto the requestor's property, or
// refuses with AtomNone, then sends the SelectionNotify reply.
func (b *x11Backend) answer(e xproto.SelectionRequestEvent) {
	b.mu.RLock()
	mime, data := b.mime, b.data
	b.mu.RUnlock()

	prop := e.Property
	if prop == xproto.AtomNone {
		prop = e.Target
	}
	isText := mime == b.atoms.utf8
	switch {
	case e.Target == b.atoms.targets:
		targets := []xproto.Atom{b.atoms.targets}
		if isText {
			targets = append(targets, b.atoms.utf8, xproto.AtomString, b.atoms.textPlain)
		} else if mime != 0 {
			targets = append(targets, mime)
		}
		buf := make([]byte, 4*len(targets))
		for i, a := range targets {
			xgb.Put32(buf[4*i:], uint32(a))
		}
		xproto.ChangeProperty(b.conn, xproto.PropModeReplace, e.Requestor, prop, xproto.AtomAtom, 32, uint32(len(targets)), buf)
	case len(data) > 0 && (e.Target == mime || isText && (e.Target == xproto.AtomString || e.Target == b.atoms.textPlain)):
		xproto.ChangeProperty(b.conn, xproto.PropModeReplace, e.Requestor, prop, e.Target, 8, uint32(len(data)), data)
	default:
		prop = xproto.AtomNone
	}

	reply := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  prop,
	}
	xproto.SendEvent(b.conn, false, e.Requestor, 0, string(reply.Bytes()))
}
