package main

import (
	"fmt"
	"strings"

	"chrome-kit/button"
	"chrome-kit/propctl"
	"chrome-kit/scene"
	"chrome-kit/window"
)

// inspect describes the component under the pointer for the debug panel.
func (g *Game) inspect() []string {
	t := g.active()
	id := g.ids[t]
	switch c := t.(type) {
	case *window.Window:
		return describeWindow(id, c)
	case *button.Button:
		return describeButton(id, c)
	}
	return nil
}

func describeWindow(id string, w *window.Window) []string {
	geo := w.Geometry()
	layout := "-"
	if l, ok := w.Layout(); ok {
		layout = l.Name
	}
	cw, ch := w.ContentSize()
	return []string{
		fmt.Sprintf("window %s (%s)", id, w.Props().Style),
		fmt.Sprintf("offset (%.0f, %.0f) size %.0fx%.0f", geo.X, geo.Y, geo.Width, geo.Height),
		fmt.Sprintf("state %s side %s", w.State(), sideOf(w)),
		fmt.Sprintf("cursor %s", w.Cursor()),
		fmt.Sprintf("layout %s content %.0fx%.0f scroll %.0f", layout, cw, ch, w.ScrollTop()),
		controlsLine(propctl.WindowPanel(), scene.WindowValues(w.Props())),
	}
}

// controlsLine lists the property controls the panel shows for values.
func controlsLine(p propctl.Panel, values map[string]interface{}) string {
	keys, err := p.VisibleKeys(values)
	if err != nil {
		return "controls: " + err.Error()
	}
	return "controls: " + strings.Join(keys, " ")
}

func sideOf(w *window.Window) window.Side {
	if s := w.ActiveSide(); s != window.SideNone {
		return s
	}
	return w.HoveredSide()
}

func describeButton(id string, b *button.Button) []string {
	r := b.Bounds()
	return []string{
		fmt.Sprintf("button %s (%s, %s)", id, b.Props.Type, b.Props.Size),
		fmt.Sprintf("bounds (%.0f, %.0f) %.0fx%.0f", r.X, r.Y, r.W, r.H),
		fmt.Sprintf("clicks %d hovered %t pressed %t", b.Count(), b.Hovered(), b.Pressed()),
		controlsLine(propctl.ButtonPanel(), scene.ButtonValues(b.Props)),
	}
}
