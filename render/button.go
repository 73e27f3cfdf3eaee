package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chrome-kit/button"
	"chrome-kit/canvas"
	"chrome-kit/input"
)

// PlaceButton lays b out at the world position (x, y), measuring its label
// with the face of its size. containerWidth is used for full-width buttons.
func PlaceButton(b *button.Button, fonts *Fonts, x, y, containerWidth float64) {
	face := fonts.FaceOf(b.Appearance().FontSize)
	b.Place(x, y, containerWidth, TextWidth(face, b.Label()))
}

// DrawButton renders b from its resolved appearance.
func DrawButton(screen *ebiten.Image, cam *canvas.Camera, fonts *Fonts, b *button.Button) {
	a := b.Appearance()
	r := b.Bounds()
	s := cam.WorldToScreen(input.Point{X: r.X, Y: r.Y})
	x, y := float32(s.X), float32(s.Y)
	w, h := float32(cam.Scale(r.W)), float32(cam.Scale(r.H))
	radius := float32(cam.Scale(a.Radius))

	if a.Background.A > 0 {
		fillRoundedRect(screen, x, y, w, h, radius, true, true, a.Background)
	}
	if a.Outline.A > 0 {
		vector.StrokeRect(screen, x+1, y+1, w-2, h-2, 1, a.Outline, true)
	}

	face := fonts.FaceOf(a.FontSize)
	label := b.Label()
	tx := s.X + (float64(w)-TextWidth(face, label))/2
	ty := s.Y + (float64(h)-button.LineHeight)/2
	DrawTextLines(screen, face, label, int(tx), int(ty), a.Foreground)
}
