package render

import "image/color"

var (
	ColorBackground  = color.RGBA{30, 30, 35, 255}
	ColorGrid        = color.RGBA{32, 32, 10, 10}
	ColorGridBlocked = color.RGBA{20, 20, 25, 255}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorShadow      = color.RGBA{0, 0, 0, 100}

	// Window chrome
	ColorOutlineSoft     = color.RGBA{0, 0, 0, 40}
	ColorOutlineDark     = color.RGBA{0, 0, 0, 200}
	ColorInsetHighlight  = color.RGBA{255, 255, 255, 50}
	ColorHeaderLight     = color.RGBA{236, 236, 236, 255}
	ColorHeaderDark      = color.RGBA{56, 56, 58, 255}
	ColorTitleLight      = color.RGBA{60, 60, 60, 255}
	ColorTitleDark       = color.RGBA{220, 220, 220, 255}
	ColorBody            = color.RGBA{255, 255, 255, 255}
	ColorTabStrip        = color.RGBA{222, 225, 230, 255}
	ColorAddressField    = color.RGBA{0, 0, 0, 20}
	ColorTrafficClose    = color.RGBA{255, 95, 87, 255}
	ColorTrafficMinimise = color.RGBA{254, 188, 46, 255}
	ColorTrafficZoom     = color.RGBA{40, 200, 64, 255}
	ColorPlaceholder     = color.RGBA{150, 150, 150, 255}
	ColorLayoutLabel     = color.RGBA{255, 255, 255, 230}
	ColorEdgeHover       = color.RGBA{0, 120, 255, 255}
	ColorEdgeBlocked     = color.RGBA{220, 50, 50, 255}

	ColorPanel     = color.RGBA{40, 40, 40, 220}
	ColorPanelText = color.RGBA{220, 220, 220, 255}
	ColorWarning   = color.RGBA{255, 200, 50, 255}
)

const (
	ShadowOffset     = 5.0
	TrafficRadius    = 6.0
	TrafficSpacing   = 20.0
	TabHeight        = 36.0
	PlaceholderLabel = "Connect me →"
)
