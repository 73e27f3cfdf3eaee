package skin

// Shadow names the drop shadow drawn under a window.
type Shadow int

const (
	// ShadowSoft is a drop shadow with a faint outline.
	ShadowSoft Shadow = iota
	// ShadowOutlined is a drop shadow with a darker outline, used by dark
	// macOS and Safari windows.
	ShadowOutlined
)

// Decoration names what the header draws besides the title.
type Decoration int

const (
	DecorationNone Decoration = iota
	// DecorationTrafficLights is the macOS close/minimise/zoom trio.
	DecorationTrafficLights
	// DecorationToolbar is the traffic lights plus a centred address field.
	DecorationToolbar
	// DecorationTabBar is a tab strip above a navigation bar.
	DecorationTabBar
)

// Palette selects the header colours.
type Palette int

const (
	PaletteLight Palette = iota
	PaletteDark
)

// Variant is the finite set of visual choices for window chrome.
type Variant struct {
	CornerRadius float64
	// ScrollRadius rounds the scroll region; Top is false when only the
	// bottom corners are rounded.
	ScrollRadius    float64
	ScrollRoundTop  bool
	Shadow          Shadow
	InsetHighlight  bool
	Decoration      Decoration
	Palette         Palette
	ShowTitle       bool
	AppearsSwitched bool
}

// Resolve maps a skin and appearance (true is dark) to its variant.
func Resolve(s Style, dark bool) Variant {
	v := Variant{CornerRadius: 6, ScrollRadius: 6, ScrollRoundTop: true}
	if s == MacOS {
		v.CornerRadius = 4
		v.ScrollRadius = 4
		v.ScrollRoundTop = false
	}
	if s == Firefox || s == Chrome {
		v.ScrollRoundTop = false
	}

	// Only macOS and Safari honour the appearance switch.
	if s == MacOS || s == Safari {
		v.AppearsSwitched = true
		if dark {
			v.Shadow = ShadowOutlined
			v.InsetHighlight = true
			v.Palette = PaletteDark
		}
	}

	switch s {
	case MacOS:
		v.Decoration = DecorationTrafficLights
		v.ShowTitle = true
	case Safari:
		v.Decoration = DecorationToolbar
		v.ShowTitle = true
	case Firefox, Chrome:
		v.Decoration = DecorationTabBar
		v.ShowTitle = true
	}
	return v
}
