package window

import (
	"testing"

	"chrome-kit/input"
	"chrome-kit/skin"
)

func newTestWindow() *Window {
	w := New(DefaultProps())
	w.Origin = input.Point{X: 100, Y: 100}
	return w
}

func down(x, y float64) input.Event { return input.Event{Kind: input.Down, Point: input.Point{X: x, Y: y}} }
func move(x, y float64) input.Event { return input.Event{Kind: input.Move, Point: input.Point{X: x, Y: y}} }
func up(x, y float64) input.Event   { return input.Event{Kind: input.Up, Point: input.Point{X: x, Y: y}} }

func TestNewClampsToMinimum(t *testing.T) {
	p := DefaultProps()
	p.Width, p.Height = 50, 60
	g := New(p).Geometry()
	if g.Width != 200 || g.Height != 200 {
		t.Errorf("initial size = %vx%v, want 200x200", g.Width, g.Height)
	}
}

func TestHitTestRegions(t *testing.T) {
	w := newTestWindow() // outline spans (100,100)-(700,500)

	tests := []struct {
		name string
		p    input.Point
		want Region
	}{
		{"top left corner", input.Point{X: 98, Y: 98}, Region{Kind: RegionEdge, Side: TopLeft}},
		{"top edge", input.Point{X: 400, Y: 103}, Region{Kind: RegionEdge, Side: Top}},
		{"right edge outside outline", input.Point{X: 704, Y: 300}, Region{Kind: RegionEdge, Side: Right}},
		{"bottom right corner", input.Point{X: 700, Y: 500}, Region{Kind: RegionEdge, Side: BottomRight}},
		{"bottom edge", input.Point{X: 400, Y: 499}, Region{Kind: RegionEdge, Side: Bottom}},
		{"bottom left corner", input.Point{X: 95, Y: 505}, Region{Kind: RegionEdge, Side: BottomLeft}},
		{"left edge", input.Point{X: 101, Y: 300}, Region{Kind: RegionEdge, Side: Left}},
		{"header", input.Point{X: 400, Y: 115}, Region{Kind: RegionHeader}},
		{"content", input.Point{X: 400, Y: 300}, Region{Kind: RegionContent}},
		{"outside", input.Point{X: 800, Y: 300}, Region{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.HitTest(tt.p); got != tt.want {
				t.Errorf("HitTest(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestEdgeDragFiresCallbacks(t *testing.T) {
	w := newTestWindow()
	var widths, heights []float64
	w.OnWidthChange = func(v float64) { widths = append(widths, v) }
	w.OnHeightChange = func(v float64) { heights = append(heights, v) }

	w.HandlePointer(down(700, 500))
	if w.State() != DraggingEdge || w.ActiveSide() != BottomRight {
		t.Fatalf("state = %v side = %v, want dragging bottomRight", w.State(), w.ActiveSide())
	}
	if !w.Geometry().Dragging {
		t.Errorf("Dragging flag not set")
	}

	w.HandlePointer(move(750, 520))
	w.HandlePointer(move(750, 540)) // width unchanged
	w.HandlePointer(up(750, 540))

	g := w.Geometry()
	if g.Width != 650 || g.Height != 440 || g.X != 0 || g.Y != 0 {
		t.Errorf("geometry = %+v", g)
	}
	if len(widths) != 1 || widths[0] != 650 {
		t.Errorf("width callbacks = %v, want [650]", widths)
	}
	if len(heights) != 2 || heights[1] != 440 {
		t.Errorf("height callbacks = %v, want [420 440]", heights)
	}
	if w.State() != Idle || w.Geometry().Dragging {
		t.Errorf("gesture not ended: state %v dragging %v", w.State(), w.Geometry().Dragging)
	}
}

func TestMissingCallbacksAreSkipped(t *testing.T) {
	w := newTestWindow()
	w.HandlePointer(down(700, 500))
	w.HandlePointer(move(800, 600))
	w.HandlePointer(up(800, 600))
	if g := w.Geometry(); g.Width != 700 || g.Height != 500 {
		t.Errorf("geometry = %+v", g)
	}
}

func TestHeaderDragTranslatesWithoutClamp(t *testing.T) {
	w := newTestWindow()

	w.HandlePointer(down(300, 110))
	if w.State() != DraggingHeader {
		t.Fatalf("state = %v, want dragging-header", w.State())
	}
	w.HandlePointer(move(-900, -400))
	w.HandlePointer(up(-900, -400))

	g := w.Geometry()
	if g.X != -1200 || g.Y != -510 {
		t.Errorf("offset = (%v, %v), want (-1200, -510)", g.X, g.Y)
	}
	if g.Width != 600 || g.Height != 400 {
		t.Errorf("header drag changed size: %+v", g)
	}

	// A second drag starts from the residual offset.
	b := w.Bounds()
	w.HandlePointer(down(b.X+50, b.Y+10))
	w.HandlePointer(move(b.X+60, b.Y+30))
	w.HandlePointer(up(b.X+60, b.Y+30))
	if g := w.Geometry(); g.X != -1190 || g.Y != -490 {
		t.Errorf("second drag offset = (%v, %v), want (-1190, -490)", g.X, g.Y)
	}
}

func TestSkinWithoutHeaderDoesNotDrag(t *testing.T) {
	p := DefaultProps()
	p.Style = skin.Style("Unknown")
	w := New(p)
	w.HeaderDown(input.Point{X: 10, Y: 5})
	if w.State() != Idle {
		t.Errorf("state = %v, want idle", w.State())
	}
	if r := w.HitTest(input.Point{X: 300, Y: 10}); r.Kind != RegionContent {
		t.Errorf("HitTest = %+v, want content", r)
	}
}

func TestNewestPointerDownWins(t *testing.T) {
	w := newTestWindow()
	w.EdgeDown(Right, input.Point{X: 700, Y: 300})
	w.EdgeDown(Bottom, input.Point{X: 400, Y: 500})
	w.Move(input.Point{X: 900, Y: 550})

	g := w.Geometry()
	if g.Width != 600 || g.Height != 450 {
		t.Errorf("geometry = %+v, want width 600 height 450", g)
	}
	if a, ok := w.Anchor(); !ok || a.Side != Bottom {
		t.Errorf("anchor = %+v ok=%v, want bottom", a, ok)
	}
}

func TestBlurEndsDrag(t *testing.T) {
	w := newTestWindow()
	w.HandlePointer(move(700, 500))
	w.HandlePointer(down(700, 500))
	w.HandlePointer(move(720, 520))
	w.HandlePointer(input.Event{Kind: input.Blur})

	if w.State() != Idle || w.Geometry().Dragging {
		t.Errorf("blur left state %v dragging %v", w.State(), w.Geometry().Dragging)
	}
	if w.Cursor() != CursorDefault {
		t.Errorf("cursor = %q, want default", w.Cursor())
	}

	// Moves after the implicit release no longer resize.
	w.Move(input.Point{X: 900, Y: 900})
	if g := w.Geometry(); g.Width != 620 || g.Height != 420 {
		t.Errorf("geometry changed after blur: %+v", g)
	}
}

func TestCursorFeedback(t *testing.T) {
	w := newTestWindow()

	w.HandlePointer(move(704, 300))
	if w.HoveredSide() != Right || w.Cursor() != CursorEW {
		t.Fatalf("hover = %v cursor = %q, want right/ew-resize", w.HoveredSide(), w.Cursor())
	}

	// Drag the right edge to its minimum: the cursor switches to blocked.
	w.HandlePointer(down(704, 300))
	w.HandlePointer(move(0, 300))
	if w.Cursor() != CursorE {
		t.Errorf("cursor at minimum = %q, want e-resize", w.Cursor())
	}

	// Leaving the handle mid-drag keeps the cursor.
	w.HandlePointer(input.Event{Kind: input.Leave})
	if w.Cursor() != CursorE {
		t.Errorf("cursor after leave during drag = %q", w.Cursor())
	}

	// Releasing away from every handle resets it.
	w.HandlePointer(up(0, 300))
	if w.Cursor() != CursorDefault {
		t.Errorf("cursor after release = %q, want default", w.Cursor())
	}
}

func TestLeaveResetsCursorWhenIdle(t *testing.T) {
	w := newTestWindow()
	w.HandlePointer(move(400, 103))
	if w.Cursor() != CursorNS {
		t.Fatalf("cursor = %q, want ns-resize", w.Cursor())
	}
	w.HandlePointer(move(400, 300))
	if w.Cursor() != CursorDefault || w.HoveredSide() != SideNone {
		t.Errorf("cursor = %q hover = %v after moving to content", w.Cursor(), w.HoveredSide())
	}
}

func TestSetPropsReconciles(t *testing.T) {
	w := newTestWindow()

	p := w.Props()
	p.Width = 100
	w.SetProps(p)
	if g := w.Geometry(); g.Width != 200 {
		t.Errorf("width below minimum = %v, want 200", g.Width)
	}

	p.MinWidth, p.MinHeight = 800, 450
	w.SetProps(p)
	if g := w.Geometry(); g.Width != 800 || g.Height != 450 {
		t.Errorf("raised minimums = %vx%v, want 800x450", g.Width, g.Height)
	}

	p.Height = 900
	w.SetProps(p)
	if g := w.Geometry(); g.Height != 900 {
		t.Errorf("height = %v, want 900", g.Height)
	}
}

func TestReconcileKeepsDraggedSizeWhenPropsUnchanged(t *testing.T) {
	p := DefaultProps()
	g := Geometry{X: 10, Y: 20, Width: 750, Height: 300}
	got := Reconcile(g, p, p)
	if got != g {
		t.Errorf("Reconcile = %+v, want %+v", got, g)
	}
}

func TestReconcileNegativeMinimum(t *testing.T) {
	p := DefaultProps()
	next := p
	next.MinWidth = -50
	next.Width = -10
	got := Reconcile(Geometry{Width: 600, Height: 400}, p, next)
	if got.Width != 0 {
		t.Errorf("width = %v, want 0", got.Width)
	}
}

func TestScroll(t *testing.T) {
	p := DefaultProps()
	p.Layouts = []Layout{{Height: 1000}}
	w := New(p)

	var tops []int
	w.OnScroll = func(top int) { tops = append(tops, top) }

	// Visible region is 400 - 22 = 378 tall, so the content scrolls 622px.
	if !w.Scroll(100.4) {
		t.Fatalf("Scroll reported no change")
	}
	w.Scroll(10000)
	if w.Scroll(50) {
		t.Errorf("Scroll past the end reported a change")
	}
	w.Scroll(-10000)

	want := []int{100, 622, 0}
	if len(tops) != len(want) {
		t.Fatalf("scroll callbacks = %v, want %v", tops, want)
	}
	for i := range want {
		if tops[i] != want[i] {
			t.Errorf("scroll callbacks = %v, want %v", tops, want)
			break
		}
	}
}

func TestScrollWheelInsideContent(t *testing.T) {
	p := DefaultProps()
	p.Layouts = []Layout{{Height: 1000}}
	w := New(p)

	w.HandlePointer(input.Event{Kind: input.Wheel, Point: input.Point{X: 300, Y: 200}, WheelY: -1})
	if w.ScrollTop() != WheelStep {
		t.Errorf("ScrollTop = %v, want %v", w.ScrollTop(), WheelStep)
	}
	if w.HandlePointer(input.Event{Kind: input.Wheel, Point: input.Point{X: 300, Y: 5}, WheelY: -1}) {
		t.Errorf("wheel over header was consumed")
	}
}

func TestScrollDisabled(t *testing.T) {
	p := DefaultProps()
	p.Scrollable = false
	p.Layouts = []Layout{{Height: 1000}}
	w := New(p)
	if w.Scroll(100) {
		t.Errorf("non-scrollable window scrolled")
	}
}

func TestSafariScrollIncludesPadding(t *testing.T) {
	p := DefaultProps()
	p.Style = skin.Safari
	p.Layouts = []Layout{{Height: 500}}
	w := New(p)
	w.Scroll(10000)
	// 500 content + 38 padding - 400 visible.
	if w.ScrollTop() != 138 {
		t.Errorf("ScrollTop = %v, want 138", w.ScrollTop())
	}
}

func TestWindowLayoutFollowsWidth(t *testing.T) {
	p := DefaultProps()
	p.Layouts = []Layout{{Name: "phone", Breakpoint: 0}, {Name: "tablet", Breakpoint: 400}, {Name: "desktop", Breakpoint: 800}}
	w := newTestWindowWith(p)

	if l, _ := w.Layout(); l.Name != "tablet" {
		t.Errorf("layout at 600 = %q, want tablet", l.Name)
	}
	w.HandlePointer(down(700, 300))
	w.HandlePointer(move(950, 300))
	w.HandlePointer(up(950, 300))
	if l, _ := w.Layout(); l.Name != "desktop" {
		t.Errorf("layout at %v = %q, want desktop", w.Geometry().Width, l.Name)
	}
}

func newTestWindowWith(p Props) *Window {
	w := New(p)
	w.Origin = input.Point{X: 100, Y: 100}
	return w
}

func TestSetPropsDuringHeaderDragKeepsMinimum(t *testing.T) {
	w := New(DefaultProps())
	w.HandlePointer(down(300, 10))

	p := DefaultProps()
	p.MinWidth, p.MinHeight = 800, 700
	w.SetProps(p)
	w.HandlePointer(move(320, 20))

	g := w.Geometry()
	if g.Width != 800 || g.Height != 700 {
		t.Errorf("size after move = %vx%v, want 800x700", g.Width, g.Height)
	}
	if g.X != 20 || g.Y != 10 {
		t.Errorf("offset = (%v, %v), want (20, 10)", g.X, g.Y)
	}
}

func TestSetPropsDuringEdgeDragRebases(t *testing.T) {
	w := newTestWindow()
	w.HandlePointer(down(700, 300))
	w.HandlePointer(move(750, 300))

	p := DefaultProps()
	p.MinWidth = 800
	w.SetProps(p)
	if got := w.Geometry().Width; got != 800 {
		t.Fatalf("reconciled width = %v, want 800", got)
	}

	// The drag continues 10px further from the corrected size.
	w.HandlePointer(move(760, 300))
	if got := w.Geometry().Width; got != 810 {
		t.Errorf("width after move = %v, want 810", got)
	}
}

func TestResizeClampsScroll(t *testing.T) {
	p := DefaultProps()
	p.Layouts = []Layout{{Height: 1000}}
	w := New(p)

	var tops []int
	w.OnScroll = func(top int) { tops = append(tops, top) }
	w.Scroll(10000)

	w.HandlePointer(down(300, 400))
	w.HandlePointer(move(300, 900))
	w.HandlePointer(up(300, 900))

	// 1000 content - (900 - 22) visible.
	if w.ScrollTop() != 122 {
		t.Errorf("ScrollTop = %v, want 122", w.ScrollTop())
	}
	if len(tops) != 2 || tops[0] != 622 || tops[1] != 122 {
		t.Errorf("scroll callbacks = %v, want [622 122]", tops)
	}
}
