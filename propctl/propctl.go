// Package propctl describes the property panel a design tool renders for a
// component: one editor control per property, with optional visibility
// predicates over the other property values.
package propctl

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Kind is the editor a control is rendered with.
type Kind string

const (
	String            Kind = "string"
	Boolean           Kind = "boolean"
	Enum              Kind = "enum"
	SegmentedEnum     Kind = "segmented-enum"
	Number            Kind = "number"
	Array             Kind = "array"
	ComponentInstance Kind = "component-instance"
)

// Control is one editable property.
type Control struct {
	Key   string
	Title string
	Kind  Kind
	// Options lists the choices of Enum and SegmentedEnum controls.
	Options []string
	// EnabledTitle and DisabledTitle label the two states of a Boolean.
	EnabledTitle  string
	DisabledTitle string
	// Hidden is a Starlark expression over the sibling values. The control
	// is hidden when it evaluates truthy. Empty means always visible.
	Hidden string
	// Item describes the elements of an Array control.
	Item *Control
}

// Panel is the ordered set of controls of one component.
type Panel struct {
	Name     string
	Controls []Control
}

// Lookup returns the control for key.
func (p Panel) Lookup(key string) (Control, bool) {
	for _, c := range p.Controls {
		if c.Key == key {
			return c, true
		}
	}
	return Control{}, false
}

// IsHidden evaluates the control's predicate against values.
func (c Control) IsHidden(values map[string]interface{}) (bool, error) {
	if c.Hidden == "" {
		return false, nil
	}
	globals, err := toStringDict(values)
	if err != nil {
		return false, fmt.Errorf("evaluate %s hidden predicate: %w", c.Key, err)
	}
	thread := &starlark.Thread{Name: c.Key}
	v, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, c.Key+".hidden", c.Hidden, globals)
	if err != nil {
		return false, fmt.Errorf("evaluate %s hidden predicate: %w", c.Key, err)
	}
	return bool(v.Truth()), nil
}

// Visible returns the controls shown for values, in panel order.
func (p Panel) Visible(values map[string]interface{}) ([]Control, error) {
	var out []Control
	for _, c := range p.Controls {
		hidden, err := c.IsHidden(values)
		if err != nil {
			return nil, fmt.Errorf("%s panel: %w", p.Name, err)
		}
		if !hidden {
			out = append(out, c)
		}
	}
	return out, nil
}

// VisibleKeys returns the keys of the controls shown for values, in panel
// order.
func (p Panel) VisibleKeys(values map[string]interface{}) ([]string, error) {
	cs, err := p.Visible(values)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(cs))
	for _, c := range cs {
		keys = append(keys, c.Key)
	}
	return keys, nil
}
