package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chrome-kit/input"
)

// InputSystem turns host mouse and keyboard state into pointer events for
// the router. Events nobody consumes pan and zoom the canvas.
type InputSystem struct {
	game *Game

	// Panning state
	isPanning  bool
	lastMouseX int
	lastMouseY int

	focused bool
	last    input.Point
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g, focused: true}
}

func (is *InputSystem) Update() {
	g := is.game
	mx, my := ebiten.CursorPosition()
	sp := input.Point{X: float64(mx), Y: float64(my)}
	wp := g.camera.ScreenToWorld(sp)

	is.handleControlKeys()
	if !is.handleFocus(wp) {
		return
	}
	is.handleZoom(sp, wp)
	is.handleMouseInteraction(sp, wp)
	is.handlePanning(mx, my)
}

func (is *InputSystem) handleControlKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		is.game.screenshotRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		is.game.reloadScene()
	}
}

// handleFocus treats losing host focus as a release, since the matching
// button-up may never arrive. It reports whether input should be processed.
func (is *InputSystem) handleFocus(wp input.Point) bool {
	focused := ebiten.IsFocused()
	if is.focused && !focused {
		is.game.router.Dispatch(input.Event{Kind: input.Blur, Point: wp})
		is.isPanning = false
	}
	is.focused = focused
	return focused
}

func (is *InputSystem) handleZoom(sp, wp input.Point) {
	g := is.game
	_, dy := ebiten.Wheel()
	if dy != 0 && !g.ui.Contains(sp) {
		if !g.router.Dispatch(input.Event{Kind: input.Wheel, Point: wp, WheelY: dy}) {
			g.camera.ZoomBy(dy)
		}
	}

	// Keyboard Zooming
	var kdy float64
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		kdy += 0.1
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		kdy -= 0.1
	}
	if kdy != 0 {
		g.camera.ZoomBy(kdy)
	}
}

func (is *InputSystem) handleMouseInteraction(sp, wp input.Point) {
	g := is.game
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.ui.Click(sp):
		case ebiten.IsKeyPressed(ebiten.KeySpace):
			is.startPan()
		case !g.router.Dispatch(input.Event{Kind: input.Down, Point: wp}):
			is.startPan()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		is.startPan()
	}

	if !is.isPanning && wp != is.last {
		g.router.Dispatch(input.Event{Kind: input.Move, Point: wp})
	}
	is.last = wp

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.router.Dispatch(input.Event{Kind: input.Up, Point: wp})
	}
}

func (is *InputSystem) startPan() {
	is.isPanning = true
	is.lastMouseX, is.lastMouseY = ebiten.CursorPosition()
}

func (is *InputSystem) handlePanning(mx, my int) {
	if !is.isPanning {
		return
	}
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if !held {
		is.isPanning = false
		return
	}
	is.game.camera.Pan(float64(mx-is.lastMouseX), float64(my-is.lastMouseY))
	is.lastMouseX, is.lastMouseY = mx, my
}
