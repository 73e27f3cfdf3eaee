package window

import (
	"image/color"
	"math"

	"chrome-kit/skin"
)

// Layout is one content variant. It becomes eligible once the window is
// wider than its breakpoint.
type Layout struct {
	Name       string
	Breakpoint float64
	// Height is the content's own height, used when the window scrolls.
	Height float64
	Label  string
	Color  color.Color
}

// Props is the configuration a host passes to a window.
type Props struct {
	Width, Height       float64
	MinWidth, MinHeight float64
	Title               string
	Style               skin.Style
	// HeaderHeight only applies to the None style.
	HeaderHeight float64
	// Appearance selects the dark palette when true.
	Appearance bool
	Scrollable bool
	Layouts    []Layout
}

// DefaultProps returns the props a freshly placed window starts with.
func DefaultProps() Props {
	return Props{
		Width:        600,
		Height:       400,
		MinWidth:     200,
		MinHeight:    200,
		Title:        "Title",
		Style:        skin.MacOS,
		HeaderHeight: skin.DefaultHeaderHeight,
		Appearance:   true,
		Scrollable:   true,
	}
}

func (p Props) normalized() Props {
	p.MinWidth = math.Max(p.MinWidth, 0)
	p.MinHeight = math.Max(p.MinHeight, 0)
	return p
}

// Metrics returns the skin sizes for p.
func (p Props) Metrics() skin.Metrics {
	return skin.MetricsFor(p.Style, p.HeaderHeight)
}

// Reconcile corrects g after props change from prev to next. A changed width
// or height replaces the current value; either way the result never drops
// below the new minimums. Position is untouched.
func Reconcile(g Geometry, prev, next Props) Geometry {
	next = next.normalized()
	if next.Width != prev.Width {
		g.Width = math.Max(next.Width, next.MinWidth)
	}
	if next.Height != prev.Height {
		g.Height = math.Max(next.Height, next.MinHeight)
	}
	g.Width = math.Max(g.Width, next.MinWidth)
	g.Height = math.Max(g.Height, next.MinHeight)
	return g
}
