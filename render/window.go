// Package render draws canvas components with ebiten.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chrome-kit/canvas"
	"chrome-kit/input"
	"chrome-kit/skin"
	"chrome-kit/window"
)

// screenRect is a rectangle in screen pixels.
type screenRect struct {
	X, Y, W, H float64
}

func toScreen(cam *canvas.Camera, r window.Rect) screenRect {
	s := cam.WorldToScreen(input.Point{X: r.X, Y: r.Y})
	return screenRect{X: s.X, Y: s.Y, W: cam.Scale(r.W), H: cam.Scale(r.H)}
}

// DrawWindow renders a window with its chrome, its scroll region and the
// handle under the pointer.
func DrawWindow(screen *ebiten.Image, cam *canvas.Camera, fonts *Fonts, w *window.Window) {
	p := w.Props()
	m := p.Metrics()
	v := skin.Resolve(p.Style, p.Appearance)
	b := toScreen(cam, w.Bounds())
	radius := float32(cam.Scale(v.CornerRadius))

	vector.DrawFilledRect(screen, float32(b.X+cam.Scale(ShadowOffset)), float32(b.Y+cam.Scale(ShadowOffset)), float32(b.W), float32(b.H), ColorShadow, false)
	fillRoundedRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), radius, true, true, ColorBody)

	drawContent(screen, cam, fonts, w, v)
	drawHeader(screen, cam, fonts, w, v, b, cam.Scale(math.Min(m.ChromeHeight, w.Bounds().H)))

	outline := color.Color(ColorOutlineSoft)
	if v.Shadow == skin.ShadowOutlined {
		outline = ColorOutlineDark
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, outline, true)
	if v.InsetHighlight {
		vector.StrokeRect(screen, float32(b.X+1), float32(b.Y+1), float32(b.W-2), float32(b.H-2), 1, ColorInsetHighlight, true)
	}

	drawHandle(screen, cam, w)
}

func drawContent(screen *ebiten.Image, cam *canvas.Camera, fonts *Fonts, w *window.Window, v skin.Variant) {
	sr := toScreen(cam, w.ScrollRect())
	if sr.W <= 0 || sr.H <= 0 {
		return
	}
	dst := clip(screen, sr.X, sr.Y, sr.W, sr.H)
	face := fonts.Face()

	l, ok := w.Layout()
	if !ok {
		msg := PlaceholderLabel
		tx := sr.X + (sr.W-TextWidth(face, msg))/2
		ty := sr.Y + sr.H/2 - 8
		DrawTextLines(dst, face, msg, int(tx), int(ty), ColorPlaceholder)
		return
	}

	pad := cam.Scale(w.Props().Metrics().ContentPadding)
	cw, ch := w.ContentSize()
	top := sr.Y + pad - cam.Scale(w.ScrollTop())
	if l.Color != nil {
		fillRoundedRect(dst, float32(sr.X), float32(top), float32(cam.Scale(cw)), float32(cam.Scale(ch)),
			float32(cam.Scale(v.ScrollRadius)), v.ScrollRoundTop, true, l.Color)
	}
	label := l.Label
	if label == "" {
		label = l.Name
	}
	DrawTextLines(dst, face, label, int(sr.X+10), int(top+10), ColorLayoutLabel)
}

func drawHeader(screen *ebiten.Image, cam *canvas.Camera, fonts *Fonts, w *window.Window, v skin.Variant, b screenRect, h float64) {
	if h <= 0 {
		return
	}
	bg, fg := color.Color(ColorHeaderLight), color.Color(ColorTitleLight)
	if v.Palette == skin.PaletteDark {
		bg, fg = ColorHeaderDark, ColorTitleDark
	}
	r := float32(cam.Scale(v.CornerRadius))
	fillRoundedRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(h), r, true, false, bg)

	dst := clip(screen, b.X, b.Y, b.W, h)
	face := fonts.Face()
	title := w.Props().Title

	switch v.Decoration {
	case skin.DecorationTrafficLights:
		drawTrafficLights(dst, cam, b.X, b.Y+h/2)
		if v.ShowTitle {
			tx := b.X + (b.W-TextWidth(face, title))/2
			DrawTextLines(dst, face, title, int(tx), int(b.Y+h/2-8), fg)
		}
	case skin.DecorationToolbar:
		drawTrafficLights(dst, cam, b.X, b.Y+h/2)
		field := screenRect{X: b.X + b.W/4, Y: b.Y + h/4, W: b.W / 2, H: h / 2}
		vector.DrawFilledRect(dst, float32(field.X), float32(field.Y), float32(field.W), float32(field.H), ColorAddressField, true)
		if v.ShowTitle {
			tx := field.X + (field.W-TextWidth(face, title))/2
			DrawTextLines(dst, face, title, int(tx), int(field.Y+field.H/2-8), fg)
		}
	case skin.DecorationTabBar:
		tabH := math.Min(cam.Scale(TabHeight), h)
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(tabH), ColorTabStrip, true)
		tab := screenRect{X: b.X + cam.Scale(8), Y: b.Y + cam.Scale(6), W: math.Min(cam.Scale(220), b.W/2), H: tabH - cam.Scale(6)}
		vector.DrawFilledRect(dst, float32(tab.X), float32(tab.Y), float32(tab.W), float32(tab.H), bg, true)
		if v.ShowTitle {
			DrawTextLines(dst, face, title, int(tab.X+8), int(tab.Y+tab.H/2-8), fg)
		}
		nav := h - tabH
		field := screenRect{X: b.X + cam.Scale(80), Y: b.Y + tabH + nav/4, W: b.W - cam.Scale(120), H: nav / 2}
		if field.W > 0 && field.H > 0 {
			vector.DrawFilledRect(dst, float32(field.X), float32(field.Y), float32(field.W), float32(field.H), ColorAddressField, true)
		}
	}
}

func drawTrafficLights(dst *ebiten.Image, cam *canvas.Camera, x, cy float64) {
	r := float32(cam.Scale(TrafficRadius))
	for i, c := range []color.Color{ColorTrafficClose, ColorTrafficMinimise, ColorTrafficZoom} {
		cx := x + cam.Scale(14+TrafficSpacing*float64(i))
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, c, true)
	}
}

// drawHandle highlights the active handle, or the hovered one when idle.
func drawHandle(screen *ebiten.Image, cam *canvas.Camera, w *window.Window) {
	side := w.ActiveSide()
	if side == window.SideNone {
		side = w.HoveredSide()
	}
	if side == window.SideNone {
		return
	}
	clr := color.Color(ColorEdgeHover)
	if w.Cursor().Blocked() {
		clr = ColorEdgeBlocked
	}
	h := toScreen(cam, window.HandleRect(w.Bounds(), side))
	vector.StrokeRect(screen, float32(h.X), float32(h.Y), float32(h.W), float32(h.H), 2, clr, true)
}
