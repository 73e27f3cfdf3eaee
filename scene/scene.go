// Package scene loads the description of the components placed on a canvas.
package scene

import (
	"fmt"
	"image/color"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"chrome-kit/button"
	"chrome-kit/propctl"
	"chrome-kit/skin"
	"chrome-kit/window"
)

type ColorState struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c ColorState) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

type LayoutSpec struct {
	Name       string     `yaml:"name"`
	Breakpoint float64    `yaml:"breakpoint"`
	Height     float64    `yaml:"height"`
	Label      string     `yaml:"label"`
	Color      ColorState `yaml:"color"`
}

type WindowSpec struct {
	ID           string       `yaml:"id"`
	X            float64      `yaml:"x"`
	Y            float64      `yaml:"y"`
	Width        float64      `yaml:"width"`
	Height       float64      `yaml:"height"`
	MinWidth     float64      `yaml:"minWidth"`
	MinHeight    float64      `yaml:"minHeight"`
	Title        string       `yaml:"title"`
	Style        string       `yaml:"style"`
	HeaderHeight float64      `yaml:"headerHeight"`
	Appearance   bool         `yaml:"appearance"`
	Scrollable   bool         `yaml:"scrollable"`
	Layouts      []LayoutSpec `yaml:"layouts"`
}

type ButtonSpec struct {
	ID         string  `yaml:"id"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Text       string  `yaml:"text"`
	ButtonType string  `yaml:"buttonType"`
	ButtonSize string  `yaml:"buttonSize"`
	FullWidth  bool    `yaml:"fullWidth"`
}

type Scene struct {
	Windows []WindowSpec `yaml:"windows"`
	Buttons []ButtonSpec `yaml:"buttons"`
}

// Warning is a non-fatal problem found while loading. Err is set when a
// panel predicate could not be evaluated; otherwise Issue describes a bad
// enum value.
type Warning struct {
	ID    string
	Issue propctl.Issue
	Err   error
}

func (w Warning) String() string {
	if w.Err != nil {
		return w.ID + ": " + w.Err.Error()
	}
	return w.ID + ": " + w.Issue.String()
}

func defaultWindowSpec() WindowSpec {
	p := window.DefaultProps()
	return WindowSpec{
		Width:        p.Width,
		Height:       p.Height,
		MinWidth:     p.MinWidth,
		MinHeight:    p.MinHeight,
		Title:        p.Title,
		Style:        string(p.Style),
		HeaderHeight: p.HeaderHeight,
		Appearance:   p.Appearance,
		Scrollable:   p.Scrollable,
	}
}

func defaultButtonSpec() ButtonSpec {
	p := button.DefaultProps()
	return ButtonSpec{
		Width:      200,
		Text:       p.Text,
		ButtonType: string(p.Type),
		ButtonSize: string(p.Size),
	}
}

// UnmarshalYAML fills fields the document leaves out with window defaults.
func (s *WindowSpec) UnmarshalYAML(n *yaml.Node) error {
	type raw WindowSpec
	r := raw(defaultWindowSpec())
	if err := n.Decode(&r); err != nil {
		return err
	}
	*s = WindowSpec(r)
	return nil
}

// UnmarshalYAML fills fields the document leaves out with button defaults.
func (s *ButtonSpec) UnmarshalYAML(n *yaml.Node) error {
	type raw ButtonSpec
	r := raw(defaultButtonSpec())
	if err := n.Decode(&r); err != nil {
		return err
	}
	*s = ButtonSpec(r)
	return nil
}

// Load reads a scene file.
func Load(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return s, nil
}

// Parse decodes a scene document. Components without an id get a random
// one.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i := range s.Windows {
		if s.Windows[i].ID == "" {
			s.Windows[i].ID = uuid.NewString()
		}
	}
	for i := range s.Buttons {
		if s.Buttons[i].ID == "" {
			s.Buttons[i].ID = uuid.NewString()
		}
	}
	return &s, nil
}

// Warnings validates every component against its property panel.
func (s *Scene) Warnings() []Warning {
	return s.warnings(propctl.WindowPanel(), propctl.ButtonPanel())
}

func (s *Scene) warnings(wp, bp propctl.Panel) []Warning {
	var out []Warning
	check := func(id string, p propctl.Panel, values map[string]interface{}) {
		for _, issue := range p.Validate(values) {
			out = append(out, Warning{ID: id, Issue: issue})
		}
		if _, err := p.Visible(values); err != nil {
			out = append(out, Warning{ID: id, Err: err})
		}
	}
	for _, w := range s.Windows {
		check(w.ID, wp, w.Values())
	}
	for _, b := range s.Buttons {
		check(b.ID, bp, b.Values())
	}
	return out
}

// Window returns the window entry with the given id.
func (s *Scene) Window(id string) (WindowSpec, bool) {
	for _, w := range s.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return WindowSpec{}, false
}

// Button returns the button entry with the given id.
func (s *Scene) Button(id string) (ButtonSpec, bool) {
	for _, b := range s.Buttons {
		if b.ID == id {
			return b, true
		}
	}
	return ButtonSpec{}, false
}

// Props converts the scene entry into window props.
func (s WindowSpec) Props() window.Props {
	p := window.Props{
		Width:        s.Width,
		Height:       s.Height,
		MinWidth:     s.MinWidth,
		MinHeight:    s.MinHeight,
		Title:        s.Title,
		Style:        skin.Style(s.Style),
		HeaderHeight: s.HeaderHeight,
		Appearance:   s.Appearance,
		Scrollable:   s.Scrollable,
	}
	for _, l := range s.Layouts {
		p.Layouts = append(p.Layouts, window.Layout{
			Name:       l.Name,
			Breakpoint: l.Breakpoint,
			Height:     l.Height,
			Label:      l.Label,
			Color:      l.Color.RGBA(),
		})
	}
	return p
}

// Values returns the property values as the panel sees them.
func (s WindowSpec) Values() map[string]interface{} {
	return WindowValues(s.Props())
}

// WindowValues returns the panel values of live window props.
func WindowValues(p window.Props) map[string]interface{} {
	return map[string]interface{}{
		"style":        string(p.Style),
		"appearance":   p.Appearance,
		"title":        p.Title,
		"headerHeight": p.HeaderHeight,
		"scrollable":   p.Scrollable,
		"minWidth":     p.MinWidth,
		"minHeight":    p.MinHeight,
		"width":        p.Width,
		"height":       p.Height,
		"layouts":      p.Layouts,
	}
}

// Props converts the scene entry into button props.
func (s ButtonSpec) Props() button.Props {
	return button.Props{
		Text:      s.Text,
		Type:      button.Type(s.ButtonType),
		Size:      button.Size(s.ButtonSize),
		FullWidth: s.FullWidth,
	}
}

func (s ButtonSpec) Values() map[string]interface{} {
	return ButtonValues(s.Props())
}

// ButtonValues returns the panel values of live button props.
func ButtonValues(p button.Props) map[string]interface{} {
	return map[string]interface{}{
		"text":       p.Text,
		"buttonType": string(p.Type),
		"buttonSize": string(p.Size),
		"fullWidth":  p.FullWidth,
	}
}
