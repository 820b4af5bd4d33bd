package capture

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is the output size of a capture. The zero value keeps the
// desktop's own size.
type Resolution struct {
	Width  int
	Height int
}

// Presets lists the resolutions offered in the panel, native first.
var Presets = []Resolution{
	{},
	{Width: 1280, Height: 720},
	{Width: 800, Height: 600},
}

// Native reports whether r keeps the captured size.
func (r Resolution) Native() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Resolution) String() string {
	if r.Native() {
		return "native"
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution accepts "native" (or empty) and WIDTHxHEIGHT.
func ParseResolution(s string) (Resolution, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "native" {
		return Resolution{}, nil
	}
	w, h, ok := strings.Cut(v, "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution %q", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution %q", s)
	}
	return Resolution{Width: width, Height: height}, nil
}
