// Package canvas maps between world and screen coordinates of the
// infinite canvas the components are placed on.
package canvas

import (
	"math"

	"chrome-kit/input"
)

const (
	DefaultX    = 400.0
	DefaultY    = 200.0
	ZoomMin     = 0.1
	ZoomMax     = 10.0
	ZoomSpeed   = 0.1
	ZoomStep    = 1.1
	PanLimitMin = -200.0
)

// Camera controls the viewport of the infinite canvas.
type Camera struct {
	X, Y float64 // World position of the center of the screen
	Zoom float64

	width, height float64
}

// NewCamera returns a camera centred on the default world position.
func NewCamera() *Camera {
	return &Camera{X: DefaultX, Y: DefaultY, Zoom: 1}
}

// Resize records the screen size in pixels.
func (c *Camera) Resize(width, height int) {
	c.width, c.height = float64(width), float64(height)
}

// ScreenSize returns the size passed to Resize.
func (c *Camera) ScreenSize() (width, height float64) {
	return c.width, c.height
}

func (c *Camera) WorldToScreen(p input.Point) input.Point {
	return input.Point{
		X: (p.X-c.X)*c.Zoom + c.width/2,
		Y: (p.Y-c.Y)*c.Zoom + c.height/2,
	}
}

func (c *Camera) ScreenToWorld(p input.Point) input.Point {
	return input.Point{
		X: (p.X-c.width/2)/c.Zoom + c.X,
		Y: (p.Y-c.height/2)/c.Zoom + c.Y,
	}
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(v float64) float64 {
	return v * c.Zoom
}

// ZoomBy applies steps of ZoomSpeed. A result outside the zoom limits is
// ignored.
func (c *Camera) ZoomBy(steps float64) {
	c.setZoom(c.Zoom * math.Pow(1+ZoomSpeed, steps))
}

func (c *Camera) ZoomIn()  { c.setZoom(c.Zoom * ZoomStep) }
func (c *Camera) ZoomOut() { c.setZoom(c.Zoom / ZoomStep) }

func (c *Camera) setZoom(z float64) {
	if z > ZoomMin && z < ZoomMax {
		c.Zoom = z
	}
}

// Pan moves the view by a screen-space delta. The camera cannot travel
// further than PanLimitMin into negative world space.
func (c *Camera) Pan(dx, dy float64) {
	c.X = math.Max(c.X-dx/c.Zoom, PanLimitMin)
	c.Y = math.Max(c.Y-dy/c.Zoom, PanLimitMin)
}
