//go:build ((linux || freebsd || openbsd || netbsd || dragonfly || darwin) && cgo) || windows

package clipboard

import (
	"golang.design/x/clipboard"
)

type nativeBackend struct{}

func newNativeBackend() (backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	return nativeBackend{}, nil
}

// newBackend is replaced by tests.
var newBackend = newNativeBackend

func (nativeBackend) writeImage(data []byte) error {
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

func (nativeBackend) writeText(text []byte) error {
	clipboard.Write(clipboard.FmtText, text)
	return nil
}
