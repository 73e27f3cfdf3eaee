package window

import (
	"math"
	"sort"
)

// SelectLayout picks the layout with the largest breakpoint still below
// width, falling back to the smallest breakpoint when none qualifies. A
// single layout is always used. ok is false when layouts is empty.
func SelectLayout(layouts []Layout, width float64) (l Layout, ok bool) {
	switch len(layouts) {
	case 0:
		return Layout{}, false
	case 1:
		return layouts[0], true
	}

	sorted := make([]Layout, len(layouts))
	copy(sorted, layouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Breakpoint < sorted[j].Breakpoint
	})

	best := 0
	for i, l := range sorted {
		if l.Breakpoint < width {
			best = i
		}
	}
	return sorted[best], true
}

// ContentSize returns the size the selected layout is given. Content always
// fills the width. Scrolling content keeps its own height and overflows;
// otherwise it fills what the skin's chrome leaves.
func ContentSize(p Props, g Geometry, l Layout) (w, h float64) {
	if p.Scrollable && l.Height > 0 {
		return g.Width, l.Height
	}
	return g.Width, math.Max(g.Height-p.Metrics().ChromeHeight, 0)
}
