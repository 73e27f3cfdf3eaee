package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chrome-kit/button"
	"chrome-kit/canvas"
	"chrome-kit/config"
	"chrome-kit/input"
	"chrome-kit/render"
	"chrome-kit/scene"
	"chrome-kit/ui"
	"chrome-kit/window"
)

// placedButton is a button with the world position the scene gave it.
type placedButton struct {
	*button.Button
	id    string
	x, y  float64
	width float64
}

type Game struct {
	cfg    config.Config
	camera *canvas.Camera
	fonts  *render.Fonts

	windows []*window.Window
	buttons []placedButton
	ids     map[input.Target]string
	router  *input.Router

	// Sub-systems
	input *InputSystem
	ui    *ui.System

	screenshotRequested bool
}

func NewGame(cfg config.Config, sc *scene.Scene) *Game {
	g := &Game{
		cfg:    cfg,
		camera: canvas.NewCamera(),
		fonts:  render.LoadFonts(cfg.Font.Path, cfg.Font.Size),
		ids:    make(map[input.Target]string),
		router: input.NewRouter(),
	}
	g.camera.Resize(cfg.Screen.Width, cfg.Screen.Height)

	for _, spec := range sc.Windows {
		w := newWindow(spec)
		g.windows = append(g.windows, w)
		g.ids[w] = spec.ID
		g.router.Add(w)
	}
	for _, spec := range sc.Buttons {
		b := placedButton{Button: button.New(spec.Props()), id: spec.ID, x: spec.X, y: spec.Y, width: spec.Width}
		g.buttons = append(g.buttons, b)
		g.ids[b.Button] = spec.ID
		g.router.Add(b.Button)
	}
	g.placeButtons()

	g.input = NewInputSystem(g)
	g.ui = ui.NewSystem(g.fonts, g.camera.ZoomIn, g.camera.ZoomOut)
	g.setWarnings(sc)
	return g
}

func (g *Game) setWarnings(sc *scene.Scene) {
	var warnings []string
	for _, w := range sc.Warnings() {
		warnings = append(warnings, w.String())
	}
	g.ui.Debug.SetWarnings(warnings)
}

// reloadScene re-reads the scene file and applies the new props to the
// components it already shows, matched by id. Gestures in progress keep
// running against the corrected geometry.
func (g *Game) reloadScene() {
	sc, err := loadScene(g.cfg.Scene.Path)
	if err != nil {
		slog.Error("reload scene", "path", g.cfg.Scene.Path, "err", err)
		return
	}
	for _, w := range g.windows {
		if spec, ok := sc.Window(g.ids[w]); ok {
			w.SetProps(spec.Props())
		}
	}
	for i := range g.buttons {
		b := &g.buttons[i]
		if spec, ok := sc.Button(b.id); ok {
			b.Props = spec.Props()
			b.x, b.y, b.width = spec.X, spec.Y, spec.Width
		}
	}
	g.placeButtons()
	for _, w := range sc.Warnings() {
		slog.Warn("scene property", "component", w.ID, "issue", w.String())
	}
	g.setWarnings(sc)
	slog.Info("scene reloaded", "path", g.cfg.Scene.Path)
}

func newWindow(spec scene.WindowSpec) *window.Window {
	w := window.New(spec.Props())
	w.Origin = input.Point{X: spec.X, Y: spec.Y}
	log := slog.With("window", spec.ID)
	w.OnWidthChange = func(width float64) {
		log.Debug("width changed", "width", width)
	}
	w.OnHeightChange = func(height float64) {
		log.Debug("height changed", "height", height)
	}
	w.OnScroll = func(top int) {
		log.Debug("scrolled", "scrollTop", top)
	}
	return w
}

// placeButtons re-measures every button, since labels change with the
// click count.
func (g *Game) placeButtons() {
	for _, b := range g.buttons {
		render.PlaceButton(b.Button, g.fonts, b.x, b.y, b.width)
	}
}

func (g *Game) Update() error {
	sw, _ := g.camera.ScreenSize()
	g.ui.Layout(sw)
	g.placeButtons()

	g.input.Update()

	if lines := g.inspect(); lines != nil {
		g.ui.Debug.Lines = lines
	} else {
		g.ui.Debug.Clear()
	}
	ebiten.SetCursorShape(g.cursorShape())
	return nil
}

// active returns the target holding the pointer, preferring the one that
// captured it.
func (g *Game) active() input.Target {
	if t := g.router.Captured(); t != nil {
		return t
	}
	return g.router.Hovered()
}

func (g *Game) cursorShape() ebiten.CursorShapeType {
	switch t := g.active().(type) {
	case *window.Window:
		return render.CursorShape(t.Cursor())
	case *button.Button:
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)
	render.DrawGrid(screen, g.camera)

	for _, w := range g.windows {
		render.DrawWindow(screen, g.camera, g.fonts, w)
	}
	for _, b := range g.buttons {
		render.DrawButton(screen, g.camera, g.fonts, b.Button)
	}

	mx, my := ebiten.CursorPosition()
	wp := g.camera.ScreenToWorld(input.Point{X: float64(mx), Y: float64(my)})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Camera: (%.1f, %.1f) Zoom: %.2f\n"+
			"Mouse World: (%.1f, %.1f)\n"+
			"Drag: header to move, edges to resize\n"+
			"Pan: Left Drag (Empty Space) or Middle Drag",
		g.camera.X, g.camera.Y, g.camera.Zoom,
		wp.X, wp.Y,
	), 10, 10)

	sw, sh := g.camera.ScreenSize()
	g.ui.Draw(screen, sw, sh)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	path := g.cfg.Screenshot.Path
	f, err := os.Create(path)
	if err != nil {
		slog.Error("screenshot", "path", path, "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		slog.Error("screenshot", "path", path, "err", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
