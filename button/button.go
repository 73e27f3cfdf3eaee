// Package button implements a themeable toggle button that counts its clicks.
package button

import (
	"strconv"

	"chrome-kit/input"
)

// Type selects the colour theme.
type Type string

const (
	Primary   Type = "Primary"
	Secondary Type = "Secondary"
)

// Size selects padding and font scale.
type Size string

const (
	Small  Size = "S"
	Medium Size = "M"
	Large  Size = "L"
)

// Props configures a button. Type and Size are free-form; values outside
// the known sets render unstyled.
type Props struct {
	Text      string
	Type      Type
	Size      Size
	FullWidth bool
}

func DefaultProps() Props {
	return Props{Text: "Button", Type: Primary, Size: Medium}
}

// Rect is a button's box in world units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p input.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Button is one button instance.
type Button struct {
	Props Props

	count   int
	hovered bool
	pressed bool
	bounds  Rect
}

func New(p Props) *Button {
	return &Button{Props: p}
}

// Click increments the counter.
func (b *Button) Click() {
	b.count++
}

func (b *Button) Count() int { return b.count }
func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }
func (b *Button) Bounds() Rect { return b.bounds }

// Label is the rendered text: the configured text followed by the count.
func (b *Button) Label() string {
	return b.Props.Text + strconv.Itoa(b.count)
}

// Place lays the button out at (x, y). Full-width buttons span
// containerWidth; inline buttons wrap textWidth plus padding.
func (b *Button) Place(x, y, containerWidth, textWidth float64) {
	sb, _ := SizeBlockFor(b.Props.Size)
	r := Rect{X: x, Y: y, H: LineHeight + 2*sb.PadY}
	if b.Props.FullWidth {
		r.W = containerWidth
	} else {
		r.W = textWidth + 2*sb.PadX
	}
	b.bounds = r
}

func (b *Button) Contains(p input.Point) bool {
	return b.bounds.Contains(p)
}

// HandlePointer tracks hover and press state. A click is a press and a
// release both inside the button.
func (b *Button) HandlePointer(ev input.Event) bool {
	switch ev.Kind {
	case input.Move:
		b.hovered = b.Contains(ev.Point)
		return b.hovered
	case input.Down:
		b.pressed = b.Contains(ev.Point)
		return b.pressed
	case input.Up:
		inside := b.Contains(ev.Point)
		if b.pressed && inside {
			b.Click()
		}
		b.pressed = false
		b.hovered = inside
		return inside
	case input.Leave:
		b.hovered = false
	case input.Blur:
		b.pressed = false
		b.hovered = false
	}
	return false
}
