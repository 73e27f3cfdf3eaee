package window

import (
	"math"

	"chrome-kit/input"
)

// Geometry is a window's position and size. X and Y are offsets from the
// window's placement origin and may go negative.
type Geometry struct {
	X, Y          float64
	Width, Height float64
	// Dragging is true while a resize handle holds the pointer.
	Dragging bool
}

// Anchor is captured when a gesture starts. Every move is computed from the
// anchor, never from the previous move, so rounding does not accumulate.
type Anchor struct {
	Pointer input.Point
	Start   Geometry
	Side    Side
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p input.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Resize returns the geometry produced by dragging a's handle to p. Sides on
// the top or left move the origin by the clamped delta; sides on the bottom
// or right only change the size. Neither dimension drops below its minimum.
func Resize(a Anchor, p input.Point, minWidth, minHeight float64) Geometry {
	g := a.Start
	d := p.Sub(a.Pointer)

	if a.Side.MovesTop() {
		dy := math.Min(d.Y, a.Start.Height-minHeight)
		g.Y = a.Start.Y + dy
		g.Height = math.Max(a.Start.Height-dy, minHeight)
	}
	if a.Side.MovesBottom() {
		g.Height = math.Max(a.Start.Height+d.Y, minHeight)
	}
	if a.Side.MovesRight() {
		g.Width = math.Max(a.Start.Width+d.X, minWidth)
	}
	if a.Side.MovesLeft() {
		dx := math.Min(d.X, a.Start.Width-minWidth)
		g.X = a.Start.X + dx
		g.Width = math.Max(a.Start.Width-dx, minWidth)
	}
	return g
}

// Translate returns the geometry produced by dragging the header from the
// anchor to p. Position is never clamped; windows may leave the visible
// canvas.
func Translate(a Anchor, p input.Point) Geometry {
	g := a.Start
	d := p.Sub(a.Pointer)
	g.X += d.X
	g.Y += d.Y
	return g
}

// AtMinimum reports whether g is at the floor for the axes s resizes.
// Corners are at minimum only when both axes are.
func AtMinimum(s Side, g Geometry, minWidth, minHeight float64) bool {
	switch {
	case s.IsCorner():
		return g.Width <= minWidth && g.Height <= minHeight
	case s == Top || s == Bottom:
		return g.Height <= minHeight
	case s == Left || s == Right:
		return g.Width <= minWidth
	}
	return false
}
