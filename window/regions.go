package window

import "chrome-kit/input"

// HandleMargin is the thickness of the invisible resize handles. Handles are
// centred on the window's outline, so half of each sits outside it.
const HandleMargin = 12.0

// RegionKind classifies a point relative to a window.
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionEdge
	RegionHeader
	RegionContent
)

// Region is the result of a hit test. Side is set for RegionEdge only.
type Region struct {
	Kind RegionKind
	Side Side
}

// HandleRect returns the hit area of side s for a window occupying b.
func HandleRect(b Rect, s Side) Rect {
	const m = HandleMargin
	left, right := b.X-m/2, b.X+b.W-m/2
	top, bottom := b.Y-m/2, b.Y+b.H-m/2

	switch s {
	case TopLeft:
		return Rect{X: left, Y: top, W: m, H: m}
	case TopRight:
		return Rect{X: right, Y: top, W: m, H: m}
	case BottomLeft:
		return Rect{X: left, Y: bottom, W: m, H: m}
	case BottomRight:
		return Rect{X: right, Y: bottom, W: m, H: m}
	case Top:
		return Rect{X: b.X + m/2, Y: top, W: b.W - m, H: m}
	case Bottom:
		return Rect{X: b.X + m/2, Y: bottom, W: b.W - m, H: m}
	case Left:
		return Rect{X: left, Y: b.Y + m/2, W: m, H: b.H - m}
	case Right:
		return Rect{X: right, Y: b.Y + m/2, W: m, H: b.H - m}
	}
	return Rect{}
}

// hitTest classifies p against a window occupying b with a header strip of
// headerHeight. Handles win over the header and content.
func hitTest(b Rect, headerHeight float64, draggable bool, p input.Point) Region {
	for _, s := range Sides {
		if HandleRect(b, s).Contains(p) {
			return Region{Kind: RegionEdge, Side: s}
		}
	}
	if !b.Contains(p) {
		return Region{}
	}
	if draggable && p.Y < b.Y+headerHeight {
		return Region{Kind: RegionHeader}
	}
	return Region{Kind: RegionContent}
}
