// Package ui draws the screen-space overlay: the zoom toolbar and the
// debug panel.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chrome-kit/input"
	"chrome-kit/render"
)

const (
	ButtonSize   = 30.0
	ButtonMargin = 10.0
)

type System struct {
	buttons []*Button
	fonts   *render.Fonts
	Debug   *DebugPanel
}

func NewSystem(fonts *render.Fonts, onZoomIn, onZoomOut func()) *System {
	return &System{
		fonts: fonts,
		buttons: []*Button{
			{Label: "+", W: ButtonSize, H: ButtonSize, OnClick: onZoomIn},
			{Label: "-", W: ButtonSize, H: ButtonSize, OnClick: onZoomOut},
		},
		Debug: &DebugPanel{},
	}
}

// Layout pins the buttons to the top-right corner.
func (s *System) Layout(screenW float64) {
	for i, b := range s.buttons {
		b.X = screenW - float64(i+1)*(b.W+ButtonMargin)
		b.Y = ButtonMargin
	}
}

// Contains reports whether p, in screen pixels, is over a toolbar button.
func (s *System) Contains(p input.Point) bool {
	for _, b := range s.buttons {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// Click runs the button under p. It returns false when p misses every
// button.
func (s *System) Click(p input.Point) bool {
	for _, b := range s.buttons {
		if b.Contains(p) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (s *System) Draw(screen *ebiten.Image, screenW, screenH float64) {
	for _, b := range s.buttons {
		b.Draw(screen, s.fonts)
	}
	s.Debug.Draw(screen, s.fonts, screenW, screenH)
}
