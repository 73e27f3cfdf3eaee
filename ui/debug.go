package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chrome-kit/render"
)

// DebugPanel shows state of the component under inspection and any scene
// warnings in the bottom-right corner.
type DebugPanel struct {
	Lines    []string
	Warnings []string
}

func (d *DebugPanel) SetWarnings(ws []string) {
	d.Warnings = ws
}

func (d *DebugPanel) Clear() {
	d.Lines = nil
}

func (d *DebugPanel) Draw(screen *ebiten.Image, fonts *render.Fonts, screenW, screenH float64) {
	if d == nil || (len(d.Lines) == 0 && len(d.Warnings) == 0) {
		return
	}
	const pw, lineH = 320.0, 16.0
	ph := lineH*float64(len(d.Lines)+len(d.Warnings)) + 16
	x, y := screenW-pw-10, screenH-ph-10
	vector.DrawFilledRect(screen, float32(x), float32(y), pw, float32(ph), render.ColorPanel, false)

	face := fonts.Face()
	ty := int(y) + 8
	if len(d.Lines) > 0 {
		render.DrawTextLines(screen, face, strings.Join(d.Lines, "\n"), int(x)+8, ty, render.ColorPanelText)
		ty += int(lineH) * len(d.Lines)
	}
	if len(d.Warnings) > 0 {
		render.DrawTextLines(screen, face, strings.Join(d.Warnings, "\n"), int(x)+8, ty, render.ColorWarning)
	}
}
