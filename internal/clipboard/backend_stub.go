//go:build !(linux || freebsd || openbsd || netbsd || dragonfly || darwin || windows) || (darwin && !cgo)

package clipboard

import "errors"

// newBackend is replaced by tests.
var newBackend = func() (backend, error) {
	return nil, errors.New("clipboard is not supported on this platform")
}
