package window

// Side identifies one of the eight resize handles around a window.
type Side int

const (
	SideNone Side = iota
	Top
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

// Sides lists the eight handles in the order they are laid out.
var Sides = []Side{TopLeft, Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case TopLeft:
		return "topLeft"
	case TopRight:
		return "topRight"
	case BottomLeft:
		return "bottomLeft"
	case BottomRight:
		return "bottomRight"
	}
	return "none"
}

// MovesTop reports whether dragging s moves the top edge.
func (s Side) MovesTop() bool {
	return s == Top || s == TopLeft || s == TopRight
}

// MovesBottom reports whether dragging s moves the bottom edge.
func (s Side) MovesBottom() bool {
	return s == Bottom || s == BottomLeft || s == BottomRight
}

// MovesLeft reports whether dragging s moves the left edge.
func (s Side) MovesLeft() bool {
	return s == Left || s == TopLeft || s == BottomLeft
}

// MovesRight reports whether dragging s moves the right edge.
func (s Side) MovesRight() bool {
	return s == Right || s == TopRight || s == BottomRight
}

// IsCorner reports whether s resizes both axes.
func (s Side) IsCorner() bool {
	return s == TopLeft || s == TopRight || s == BottomLeft || s == BottomRight
}

// Cursor is a cursor glyph the window asks its host to show. The names follow
// the CSS cursor keywords.
type Cursor string

const (
	CursorDefault Cursor = "auto"

	CursorNWSE Cursor = "nwse-resize"
	CursorNESW Cursor = "nesw-resize"
	CursorNS   Cursor = "ns-resize"
	CursorEW   Cursor = "ew-resize"

	// Blocked glyphs point only in the direction the window can still grow.
	CursorN  Cursor = "n-resize"
	CursorS  Cursor = "s-resize"
	CursorE  Cursor = "e-resize"
	CursorW  Cursor = "w-resize"
	CursorNE Cursor = "ne-resize"
	CursorNW Cursor = "nw-resize"
	CursorSE Cursor = "se-resize"
	CursorSW Cursor = "sw-resize"
)

// Blocked reports whether c is one of the at-minimum glyphs.
func (c Cursor) Blocked() bool {
	switch c {
	case CursorN, CursorS, CursorE, CursorW, CursorNE, CursorNW, CursorSE, CursorSW:
		return true
	}
	return false
}

var sideCursors = map[Side][2]Cursor{
	TopLeft:     {CursorNWSE, CursorNW},
	Top:         {CursorNS, CursorN},
	TopRight:    {CursorNESW, CursorNE},
	Right:       {CursorEW, CursorE},
	BottomRight: {CursorNWSE, CursorSE},
	Bottom:      {CursorNS, CursorS},
	BottomLeft:  {CursorNESW, CursorSW},
	Left:        {CursorEW, CursorW},
}

// CursorFor returns the glyph for a handle, blocked when the window is
// already at its minimum along that handle's axes.
func CursorFor(s Side, atMinimum bool) Cursor {
	c, ok := sideCursors[s]
	if !ok {
		return CursorDefault
	}
	if atMinimum {
		return c[1]
	}
	return c[0]
}
