package button

import "image/color"

// LineHeight is the fixed text line height of every size.
const LineHeight = 16.0

// SizeBlock holds the metrics of one size.
type SizeBlock struct {
	Radius   float64
	PadX     float64
	PadY     float64
	FontSize float64
}

var sizeBlocks = map[Size]SizeBlock{
	Small:  {Radius: 4, PadX: 8, PadY: 4, FontSize: 12},
	Medium: {Radius: 8, PadX: 16, PadY: 8, FontSize: 14},
	Large:  {Radius: 12, PadX: 24, PadY: 12, FontSize: 16},
}

// SizeBlockFor returns the metrics for s. ok is false for unknown sizes,
// which get zero padding.
func SizeBlockFor(s Size) (SizeBlock, bool) {
	b, ok := sizeBlocks[s]
	return b, ok
}

// Theme holds the colours of one type.
type Theme struct {
	Background       color.RGBA
	Foreground       color.RGBA
	HoverBackground  color.RGBA
	ActiveBackground color.RGBA
	HoverForeground  color.RGBA
	// Outline is drawn inset by one pixel when its alpha is non-zero.
	Outline      color.RGBA
	HoverOutline color.RGBA
}

var themes = map[Type]Theme{
	Primary: {
		Background:       color.RGBA{0x00, 0x6d, 0xff, 0xff},
		Foreground:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		HoverBackground:  color.RGBA{0x29, 0x86, 0xff, 0xff},
		ActiveBackground: color.RGBA{0x00, 0x5b, 0xd1, 0xff},
		HoverForeground:  color.RGBA{0xff, 0xff, 0xff, 0xff},
	},
	Secondary: {
		Background:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Foreground:       color.RGBA{0x00, 0x00, 0x00, 0xff},
		HoverBackground:  color.RGBA{0xff, 0xff, 0xff, 0xff},
		ActiveBackground: color.RGBA{0xff, 0xff, 0xff, 0xff},
		HoverForeground:  color.RGBA{0x00, 0x6d, 0xff, 0xff},
		Outline:          color.RGBA{0x00, 0x00, 0x00, 0x33},
		HoverOutline:     color.RGBA{0x00, 0x6d, 0xff, 0xff},
	},
}

// ThemeFor returns the colours for t. ok is false for unknown types.
func ThemeFor(t Type) (Theme, bool) {
	th, ok := themes[t]
	return th, ok
}

// Appearance is the resolved look of a button in its current state.
type Appearance struct {
	Background color.RGBA
	Foreground color.RGBA
	Outline    color.RGBA
	Radius     float64
	FontSize   float64
	// Block is true for full-width layout.
	Block bool
	// Styled is false when neither the type nor the size matched.
	Styled bool
}

// Appearance resolves the button's look from its props and pointer state.
// Unknown types draw without a background in black text; unknown sizes
// draw without padding or rounding.
func (b *Button) Appearance() Appearance {
	a := Appearance{
		Foreground: color.RGBA{0, 0, 0, 0xff},
		Block:      b.Props.FullWidth,
	}

	if sb, ok := SizeBlockFor(b.Props.Size); ok {
		a.Radius = sb.Radius
		a.FontSize = sb.FontSize
		a.Styled = true
	}

	th, ok := ThemeFor(b.Props.Type)
	if !ok {
		return a
	}
	a.Styled = true
	a.Background = th.Background
	a.Foreground = th.Foreground
	a.Outline = th.Outline
	switch {
	case b.pressed && b.hovered:
		a.Background = th.ActiveBackground
		a.Foreground = th.HoverForeground
		a.Outline = th.HoverOutline
	case b.hovered:
		a.Background = th.HoverBackground
		a.Foreground = th.HoverForeground
		a.Outline = th.HoverOutline
	}
	return a
}
