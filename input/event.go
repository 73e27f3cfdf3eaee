// Package input defines the pointer model shared by canvas components and
// routes pointer events to them.
package input

// Point is a pointer position in world units.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Kind is the type of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Wheel
	// Blur is sent when the host loses focus. Components treat it as an
	// implicit release.
	Blur
	// Leave is sent by the router to a target the pointer is no longer over.
	Leave
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Wheel:
		return "wheel"
	case Blur:
		return "blur"
	case Leave:
		return "leave"
	}
	return "unknown"
}

// Event is a single pointer event.
type Event struct {
	Kind  Kind
	Point Point
	// WheelY is the vertical wheel delta for Wheel events, positive when
	// scrolling up.
	WheelY float64
}
