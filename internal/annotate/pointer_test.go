package annotate

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPointerFlipsAxis(t *testing.T) {
	area := image.Rect(100, 50, 140, 80) // 40x30, same as the image
	size := image.Pt(40, 30)

	top := MapPointer(image.Pt(110, 50), area, size)
	assert.Equal(t, image.Pt(10, 29), top)

	bottom := MapPointer(image.Pt(110, area.Max.Y-1), area, size)
	assert.Equal(t, image.Pt(10, 0), bottom)

	mid := MapPointer(image.Pt(120, 60), area, size)
	assert.Equal(t, image.Pt(20, 19), mid)
}

func TestMapPointerEveryRowUnderPointer(t *testing.T) {
	area := image.Rect(0, 0, 20, 20)
	size := image.Pt(20, 20)
	for row := 0; row < 20; row++ {
		got := MapPointer(image.Pt(3, row), area, size)
		// texture y stored top-down lands back on the screen row
		assert.Equal(t, row, size.Y-1-got.Y, "screen row %d", row)
	}
}

func TestMapPointerClamps(t *testing.T) {
	area := image.Rect(0, 0, 10, 10)
	size := image.Pt(10, 10)
	assert.Equal(t, image.Pt(0, 9), MapPointer(image.Pt(-5, -5), area, size))
	assert.Equal(t, image.Pt(9, 0), MapPointer(image.Pt(50, 50), area, size))
}

func TestMapPointerScaledArea(t *testing.T) {
	area := image.Rect(0, 0, 50, 25) // image shown at half size
	size := image.Pt(100, 50)
	assert.Equal(t, image.Pt(41, 38), MapPointer(image.Pt(20, 5), area, size))
	assert.Equal(t, image.Pt(1, 0), MapPointer(image.Pt(0, 24), area, size))
	assert.Equal(t, image.Pt(99, 49), MapPointer(image.Pt(49, 0), area, size))
}

func TestShouldPaint(t *testing.T) {
	cases := []struct {
		kind    PointerKind
		drawing bool
		want    bool
	}{
		{PointerDown, true, true},
		{PointerDrag, true, true},
		{PointerUp, true, false},
		{PointerMove, true, false},
		{PointerDown, false, false},
		{PointerDrag, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShouldPaint(tc.kind, tc.drawing), "kind=%d drawing=%v", tc.kind, tc.drawing)
	}
}

func TestPointerStampsMappedCoordinate(t *testing.T) {
	c := New(gradient(20, 20))
	area := image.Rect(10, 10, 30, 30)

	assert.False(t, c.Pointer(PointerUp, true, image.Pt(15, 15), area, DefaultInk))
	assert.False(t, c.Pointer(PointerDown, false, image.Pt(15, 15), area, DefaultInk))
	assert.False(t, c.Pointer(PointerDown, true, image.Pt(5, 5), area, DefaultInk))
	assert.Zero(t, c.PaintedCount())

	assert.True(t, c.Pointer(PointerDown, true, image.Pt(15, 12), area, DefaultInk))
	// (5, 2) from the area origin flips to texture (5, 17), stored row 2
	assert.True(t, c.Painted(5, 17))
	assert.Equal(t, DefaultInk, c.At(5, 17))
	// the stamp is centred on the stored row under the pointer
	for row := 0; row <= 4; row++ {
		assert.Equal(t, DefaultInk, c.Display().RGBAAt(5, row), "stored row %d", row)
	}
	assert.NotEqual(t, DefaultInk, c.Display().RGBAAt(5, 5))
	assert.False(t, c.Painted(5, 14))
}
