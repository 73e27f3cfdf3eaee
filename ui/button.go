package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chrome-kit/input"
	"chrome-kit/render"
)

// Button is a toolbar button in screen space.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()
}

func (b *Button) Contains(p input.Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image, fonts *render.Fonts) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), render.ColorPanel, false)
	face := fonts.Face()
	tx := b.X + (b.W-render.TextWidth(face, b.Label))/2
	render.DrawTextLines(screen, face, b.Label, int(tx), int(b.Y)+8, render.ColorPanelText)
}
