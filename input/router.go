package input

// Target is a component that receives pointer events.
type Target interface {
	// Contains reports whether p falls inside the target's hit area.
	Contains(p Point) bool
	// HandlePointer processes ev and reports whether it consumed it.
	HandlePointer(ev Event) bool
}

// Router delivers pointer events to targets. Targets are stacked in the
// order they were added; the last one is on top.
//
// A target that receives Down captures the pointer until Up or Blur, so
// moves outside its hit area still reach it.
type Router struct {
	targets  []Target
	captured Target
	hovered  Target
}

func NewRouter(targets ...Target) *Router {
	return &Router{targets: targets}
}

// Add stacks t on top of the existing targets.
func (r *Router) Add(t Target) {
	r.targets = append(r.targets, t)
}

// Captured returns the target holding the pointer, or nil.
func (r *Router) Captured() Target {
	return r.captured
}

// Hovered returns the target under the pointer, or nil.
func (r *Router) Hovered() Target {
	return r.hovered
}

// TargetAt returns the top-most target containing p, or nil.
func (r *Router) TargetAt(p Point) Target {
	for i := len(r.targets) - 1; i >= 0; i-- {
		if r.targets[i].Contains(p) {
			return r.targets[i]
		}
	}
	return nil
}

// Dispatch routes ev and reports whether a target consumed it. Events that
// nobody consumes fall through to the canvas.
func (r *Router) Dispatch(ev Event) bool {
	switch ev.Kind {
	case Down:
		t := r.TargetAt(ev.Point)
		r.captured = t
		r.hover(t, ev.Point)
		if t == nil {
			return false
		}
		t.HandlePointer(ev)
		return true

	case Move:
		if r.captured != nil {
			r.captured.HandlePointer(ev)
			return true
		}
		t := r.TargetAt(ev.Point)
		r.hover(t, ev.Point)
		if t == nil {
			return false
		}
		return t.HandlePointer(ev)

	case Up:
		t := r.captured
		r.captured = nil
		if t == nil {
			t = r.TargetAt(ev.Point)
		}
		if t == nil {
			return false
		}
		t.HandlePointer(ev)
		r.hover(r.TargetAt(ev.Point), ev.Point)
		return true

	case Wheel:
		t := r.TargetAt(ev.Point)
		if t == nil {
			return false
		}
		return t.HandlePointer(ev)

	case Blur:
		t := r.captured
		r.captured = nil
		if t != nil {
			t.HandlePointer(ev)
		}
		r.hover(nil, ev.Point)
		return t != nil
	}
	return false
}

func (r *Router) hover(t Target, p Point) {
	if r.hovered == t {
		return
	}
	if r.hovered != nil {
		r.hovered.HandlePointer(Event{Kind: Leave, Point: p})
	}
	r.hovered = t
}
