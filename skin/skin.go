// Package skin describes the header skins a window can wear and resolves the
// visual variant used to draw its chrome.
package skin

// Style names a header skin.
type Style string

const (
	MacOS   Style = "macOS"
	Safari  Style = "Safari"
	Firefox Style = "Firefox"
	Chrome  Style = "Chrome"
	None    Style = "None"
)

// Styles lists every known skin in panel order.
var Styles = []Style{MacOS, Safari, Firefox, Chrome, None}

// DefaultHeaderHeight is the drag strip height used by the None skin when no
// height is configured.
const DefaultHeaderHeight = 30.0

// Metrics holds the fixed sizes a skin contributes to the window layout.
type Metrics struct {
	// HeaderHeight is the height of the draggable header strip.
	HeaderHeight float64
	// ScrollOffset is where the scroll region starts, measured from the top.
	ScrollOffset float64
	// ChromeHeight is subtracted from the window height to size content
	// that does not scroll.
	ChromeHeight float64
	// ContentPadding pushes content down inside the scroll region. Safari
	// draws its header over the region instead of above it.
	ContentPadding float64
	// Draggable reports whether the header strip starts a drag.
	Draggable bool
}

// Known reports whether s is one of the named skins.
func Known(s Style) bool {
	for _, k := range Styles {
		if k == s {
			return true
		}
	}
	return false
}

// MetricsFor returns the layout sizes for s. headerHeight only applies to the
// None skin; a non-positive value falls back to DefaultHeaderHeight.
// Unknown styles get zero metrics and no drag strip.
func MetricsFor(s Style, headerHeight float64) Metrics {
	switch s {
	case MacOS:
		return Metrics{HeaderHeight: 22, ScrollOffset: 22, ChromeHeight: 22, Draggable: true}
	case Safari:
		return Metrics{HeaderHeight: 38, ScrollOffset: 0, ChromeHeight: 38, ContentPadding: 38, Draggable: true}
	case Firefox:
		return Metrics{HeaderHeight: 74, ScrollOffset: 74, ChromeHeight: 74, Draggable: true}
	case Chrome:
		return Metrics{HeaderHeight: 79, ScrollOffset: 79, ChromeHeight: 79, Draggable: true}
	case None:
		if headerHeight <= 0 {
			headerHeight = DefaultHeaderHeight
		}
		return Metrics{HeaderHeight: headerHeight, Draggable: true}
	}
	return Metrics{}
}
