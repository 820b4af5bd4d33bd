package panel

import "image"

const (
	toolbarHeight = 28
	actionHeight  = 28
	statusHeight  = 22
	commentHeight = 22
	listWidth     = 260
	rowHeight     = 60
	thumbWidth    = 72
	margin        = 8
)

// layout holds the regions of the window for a given size.
type layout struct {
	toolbar image.Rectangle
	list    image.Rectangle
	actions image.Rectangle
	view    image.Rectangle
	comment image.Rectangle
	status  image.Rectangle
}

func computeLayout(width, height int) layout {
	width = max(width, listWidth+2*margin)
	height = max(height, toolbarHeight+actionHeight+statusHeight+commentHeight+2*margin)
	l := layout{
		toolbar: image.Rect(0, 0, width, toolbarHeight),
		status:  image.Rect(0, height-statusHeight, width, height),
	}
	l.list = image.Rect(0, toolbarHeight, listWidth, l.status.Min.Y)
	right := image.Rect(listWidth, toolbarHeight, width, l.status.Min.Y)
	l.actions = image.Rect(right.Min.X, right.Min.Y, right.Max.X, right.Min.Y+actionHeight)
	l.comment = image.Rect(right.Min.X, right.Max.Y-commentHeight, right.Max.X, right.Max.Y)
	l.view = image.Rect(right.Min.X+margin, l.actions.Max.Y+margin, right.Max.X-margin, l.comment.Min.Y-margin)
	if l.view.Empty() {
		l.view = image.Rectangle{Min: l.view.Min, Max: l.view.Min}
	}
	return l
}

// rowsShown is how many list rows fit.
func (l layout) rowsShown() int {
	return max(l.list.Dy()/rowHeight, 1)
}

// rowRect is the rectangle of the n-th row on screen.
func (l layout) rowRect(n int) image.Rectangle {
	y := l.list.Min.Y + n*rowHeight
	return image.Rect(l.list.Min.X, y, l.list.Max.X, y+rowHeight)
}

// rowAt returns the index into the visible entries under p, or -1.
func (l layout) rowAt(p image.Point, scroll, count int) int {
	if !p.In(l.list) {
		return -1
	}
	i := scroll + (p.Y-l.list.Min.Y)/rowHeight
	if i < 0 || i >= count {
		return -1
	}
	return i
}
