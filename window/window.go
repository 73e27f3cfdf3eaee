// Package window implements the interaction engine of a resizable,
// draggable window: eight resize handles, a draggable header, breakpoint
// driven content selection and a scrolling content region.
//
// A Window is driven by pointer events in world units and never touches
// global state. The cursor it wants shown is exposed through Cursor for the
// host to apply.
package window

import (
	"math"

	"chrome-kit/input"
)

// State is the interaction state of a window.
type State int

const (
	Idle State = iota
	DraggingHeader
	DraggingEdge
)

func (s State) String() string {
	switch s {
	case DraggingHeader:
		return "dragging-header"
	case DraggingEdge:
		return "dragging-edge"
	}
	return "idle"
}

// WheelStep is how far one wheel notch scrolls the content.
const WheelStep = 40.0

// Window holds the mutable state of one window instance.
type Window struct {
	// Origin is where the host placed the window; geometry X and Y are
	// offsets from it.
	Origin input.Point

	OnWidthChange  func(width float64)
	OnHeightChange func(height float64)
	OnScroll       func(scrollTop int)

	props  Props
	geom   Geometry
	state  State
	anchor Anchor

	hover     Side
	cursor    Cursor
	scrollTop float64
}

// New creates a window from props, clamping the initial size to the
// minimums.
func New(p Props) *Window {
	p = p.normalized()
	return &Window{
		props: p,
		geom: Geometry{
			Width:  math.Max(p.Width, p.MinWidth),
			Height: math.Max(p.Height, p.MinHeight),
		},
		cursor: CursorDefault,
	}
}

func (w *Window) Props() Props { return w.props }
func (w *Window) Geometry() Geometry { return w.geom }
func (w *Window) State() State { return w.state }
func (w *Window) Cursor() Cursor { return w.cursor }
func (w *Window) ScrollTop() float64 { return w.scrollTop }

// Anchor returns the anchor of the active gesture. ok is false when idle.
func (w *Window) Anchor() (a Anchor, ok bool) {
	return w.anchor, w.state != Idle
}

// ActiveSide returns the handle being dragged, or SideNone.
func (w *Window) ActiveSide() Side {
	if w.state != DraggingEdge {
		return SideNone
	}
	return w.anchor.Side
}

// HoveredSide returns the handle under the pointer, or SideNone.
func (w *Window) HoveredSide() Side {
	return w.hover
}

// SetProps applies new props and reconciles the geometry against them. It
// runs regardless of any gesture in progress and fires no callbacks.
func (w *Window) SetProps(p Props) {
	p = p.normalized()
	prev := w.geom
	w.geom = Reconcile(w.geom, w.props, p)
	w.props = p
	w.scrollTop = math.Min(w.scrollTop, w.maxScroll())

	// Rebase an active gesture so the next move keeps the corrected size.
	if w.state != Idle {
		w.anchor.Start.Width += w.geom.Width - prev.Width
		w.anchor.Start.Height += w.geom.Height - prev.Height
	}
}

// Bounds returns the window's outline in world units.
func (w *Window) Bounds() Rect {
	return Rect{
		X: w.Origin.X + w.geom.X,
		Y: w.Origin.Y + w.geom.Y,
		W: w.geom.Width,
		H: w.geom.Height,
	}
}

// ScrollRect returns the visible content region in world units.
func (w *Window) ScrollRect() Rect {
	b := w.Bounds()
	off := math.Min(w.props.Metrics().ScrollOffset, b.H)
	return Rect{X: b.X, Y: b.Y + off, W: b.W, H: b.H - off}
}

// Layout returns the content variant for the current width.
func (w *Window) Layout() (Layout, bool) {
	return SelectLayout(w.props.Layouts, w.geom.Width)
}

// ContentSize returns the size given to the selected layout.
func (w *Window) ContentSize() (width, height float64) {
	l, _ := w.Layout()
	return ContentSize(w.props, w.geom, l)
}

// HitTest classifies a world point against the window.
func (w *Window) HitTest(p input.Point) Region {
	m := w.props.Metrics()
	return hitTest(w.Bounds(), m.HeaderHeight, m.Draggable, p)
}

// EdgeDown starts resizing from side s. Any gesture already in progress is
// replaced.
func (w *Window) EdgeDown(s Side, p input.Point) {
	if s == SideNone {
		return
	}
	w.geom.Dragging = true
	w.anchor = Anchor{Pointer: p, Start: w.geom, Side: s}
	w.state = DraggingEdge
	w.updateCursor(s)
}

// HeaderDown starts moving the window. Skins without a drag strip ignore it.
func (w *Window) HeaderDown(p input.Point) {
	if !w.props.Metrics().Draggable {
		return
	}
	w.geom.Dragging = false
	w.anchor = Anchor{Pointer: p, Start: w.geom}
	w.state = DraggingHeader
}

// Move advances the active gesture to p.
func (w *Window) Move(p input.Point) {
	switch w.state {
	case DraggingHeader:
		w.geom = Translate(w.anchor, p)
	case DraggingEdge:
		next := Resize(w.anchor, p, w.props.MinWidth, w.props.MinHeight)
		prev := w.geom
		w.geom = next
		if next.Width != prev.Width && w.OnWidthChange != nil {
			w.OnWidthChange(next.Width)
		}
		if next.Height != prev.Height && w.OnHeightChange != nil {
			w.OnHeightChange(next.Height)
		}
		w.clampScroll()
		w.updateCursor(w.anchor.Side)
	}
}

// Up ends the active gesture.
func (w *Window) Up(p input.Point) {
	w.end()
	r := w.HitTest(p)
	if r.Kind == RegionEdge {
		w.hover = r.Side
		w.updateCursor(r.Side)
		return
	}
	w.hover = SideNone
	w.cursor = CursorDefault
}

// Blur ends any gesture as if the pointer was released, for hosts that lose
// focus mid-drag and never see the release.
func (w *Window) Blur() {
	w.end()
	w.hover = SideNone
	w.cursor = CursorDefault
}

func (w *Window) end() {
	w.state = Idle
	w.anchor = Anchor{}
	w.geom.Dragging = false
}

// EnterEdge records that the pointer is over handle s.
func (w *Window) EnterEdge(s Side) {
	w.hover = s
	w.updateCursor(s)
}

// LeaveEdge records that the pointer left the handles. The cursor is kept
// while a resize holds the pointer.
func (w *Window) LeaveEdge() {
	w.hover = SideNone
	if w.state != DraggingEdge {
		w.cursor = CursorDefault
	}
}

func (w *Window) updateCursor(s Side) {
	w.cursor = CursorFor(s, AtMinimum(s, w.geom, w.props.MinWidth, w.props.MinHeight))
}

// Scroll moves the content by dy pixels, positive towards the end. It
// reports whether the scroll position changed.
func (w *Window) Scroll(dy float64) bool {
	if !w.props.Scrollable {
		return false
	}
	top := math.Max(0, math.Min(w.scrollTop+dy, w.maxScroll()))
	if top == w.scrollTop {
		return false
	}
	w.scrollTop = top
	if w.OnScroll != nil {
		w.OnScroll(int(math.Round(top)))
	}
	return true
}

// clampScroll pulls the scroll position back inside the content after a
// resize and reports the new position.
func (w *Window) clampScroll() {
	top := math.Min(w.scrollTop, w.maxScroll())
	if top == w.scrollTop {
		return
	}
	w.scrollTop = top
	if w.OnScroll != nil {
		w.OnScroll(int(math.Round(top)))
	}
}

func (w *Window) maxScroll() float64 {
	if !w.props.Scrollable {
		return 0
	}
	_, h := w.ContentSize()
	m := w.props.Metrics()
	visible := w.geom.Height - math.Min(m.ScrollOffset, w.geom.Height)
	return math.Max(0, h+m.ContentPadding-visible)
}

// Contains reports whether p hits the window or one of its handles.
func (w *Window) Contains(p input.Point) bool {
	return w.HitTest(p).Kind != RegionNone
}

// HandlePointer drives the window from a routed pointer event.
func (w *Window) HandlePointer(ev input.Event) bool {
	switch ev.Kind {
	case input.Down:
		r := w.HitTest(ev.Point)
		switch r.Kind {
		case RegionEdge:
			w.EdgeDown(r.Side, ev.Point)
		case RegionHeader:
			w.HeaderDown(ev.Point)
		}
		return r.Kind != RegionNone

	case input.Move:
		if w.state != Idle {
			w.Move(ev.Point)
			return true
		}
		r := w.HitTest(ev.Point)
		if r.Kind == RegionEdge {
			if r.Side != w.hover {
				w.EnterEdge(r.Side)
			}
		} else if w.hover != SideNone {
			w.LeaveEdge()
		}
		return r.Kind != RegionNone

	case input.Up:
		w.Up(ev.Point)
		return true

	case input.Wheel:
		if !w.ScrollRect().Contains(ev.Point) {
			return false
		}
		w.Scroll(-ev.WheelY * WheelStep)
		return w.props.Scrollable

	case input.Blur:
		w.Blur()
		return true

	case input.Leave:
		if w.hover != SideNone {
			w.LeaveEdge()
		}
		return false
	}
	return false
}
