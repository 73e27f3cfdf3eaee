package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chrome-kit/canvas"
	"chrome-kit/input"
)

const (
	GridSizeSmall = 50.0
	GridSizeLarge = 100.0
)

// DrawGrid renders the infinite coordinate grid. Negative world space is
// blocked out.
func DrawGrid(screen *ebiten.Image, cam *canvas.Camera) {
	sw, sh := cam.ScreenSize()
	tl := cam.ScreenToWorld(input.Point{})
	br := cam.ScreenToWorld(input.Point{X: sw, Y: sh})

	startX := math.Max(math.Floor(tl.X/GridSizeLarge)*GridSizeLarge, 0)
	startY := math.Max(math.Floor(tl.Y/GridSizeLarge)*GridSizeLarge, 0)
	origin := cam.WorldToScreen(input.Point{})

	for wx := startX; wx < br.X; wx += GridSizeSmall {
		sx := cam.WorldToScreen(input.Point{X: wx}).X
		vector.StrokeLine(screen, float32(sx), float32(math.Max(0, origin.Y)), float32(sx), float32(sh), 1, ColorGrid, false)
	}
	for wy := startY; wy < br.Y; wy += GridSizeSmall {
		sy := cam.WorldToScreen(input.Point{Y: wy}).Y
		vector.StrokeLine(screen, float32(math.Max(0, origin.X)), float32(sy), float32(sw), float32(sy), 1, ColorGrid, false)
	}

	if origin.X > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(origin.X), float32(sh), ColorGridBlocked, false)
	}
	if origin.Y > 0 {
		vector.DrawFilledRect(screen, float32(math.Max(0, origin.X)), 0, float32(sw), float32(origin.Y), ColorGridBlocked, false)
	}

	ox, oy := float32(origin.X), float32(origin.Y)
	vector.StrokeLine(screen, ox-15, oy, ox+15, oy, 2, ColorOriginCross, false)
	vector.StrokeLine(screen, ox, oy-15, ox, oy+15, 2, ColorOriginCross, false)
}
