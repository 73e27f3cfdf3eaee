package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chrome-kit/window"
)

// CursorShape maps a window cursor to the closest system shape. The host
// has no directional glyphs, so blocked cursors show as not-allowed.
func CursorShape(c window.Cursor) ebiten.CursorShapeType {
	if c.Blocked() {
		return ebiten.CursorShapeNotAllowed
	}
	switch c {
	case window.CursorNWSE:
		return ebiten.CursorShapeNWSEResize
	case window.CursorNESW:
		return ebiten.CursorShapeNESWResize
	case window.CursorNS:
		return ebiten.CursorShapeNSResize
	case window.CursorEW:
		return ebiten.CursorShapeEWResize
	}
	return ebiten.CursorShapeDefault
}
