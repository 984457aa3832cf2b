package output

import (
	"fmt"
	"strings"

	"github.com/bnema/wlout/internal/protocols"
)

// Directive is the change requested for one head within a configuration.
// Unset fields keep the head's current value.
type Directive struct {
	Head protocols.ObjectID
	// Name is only used in messages.
	Name   string
	Enable bool

	Position     *Position
	Mode         *Mode
	CustomMode   *CustomMode
	Transform    *Transform
	Scale        *float64
	AdaptiveSync *AdaptiveSync
}

// CustomMode is a mode the head did not advertise.
type CustomMode struct {
	Width   int32
	Height  int32
	Refresh int32 // in mHz, 0 lets the compositor choose
}

func (m CustomMode) String() string {
	return Mode{Width: m.Width, Height: m.Height, Refresh: m.Refresh}.String()
}

// DirectiveOption configures an enable directive.
type DirectiveOption func(*Directive)

// Enable returns a directive that enables h with the given changes.
func Enable(h Head, opts ...DirectiveOption) Directive {
	d := Directive{Head: h.ID, Name: h.Name, Enable: true}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Disable returns a directive that turns h off.
func Disable(h Head) Directive {
	return Directive{Head: h.ID, Name: h.Name}
}

func WithPosition(p Position) DirectiveOption {
	return func(d *Directive) {
		d.Position = &p
	}
}

// WithMode selects one of the head's advertised modes.
func WithMode(m Mode) DirectiveOption {
	return func(d *Directive) {
		d.Mode = &m
		d.CustomMode = nil
	}
}

// WithCustomMode requests an arbitrary resolution. refresh is in
// milli-Hertz, 0 lets the compositor pick.
func WithCustomMode(width, height, refresh int32) DirectiveOption {
	return func(d *Directive) {
		d.CustomMode = &CustomMode{Width: width, Height: height, Refresh: refresh}
		d.Mode = nil
	}
}

func WithTransform(t Transform) DirectiveOption {
	return func(d *Directive) {
		d.Transform = &t
	}
}

func WithScale(scale float64) DirectiveOption {
	return func(d *Directive) {
		d.Scale = &scale
	}
}

func WithAdaptiveSync(a AdaptiveSync) DirectiveOption {
	return func(d *Directive) {
		d.AdaptiveSync = &a
	}
}

func (d Directive) String() string {
	name := d.Name
	if name == "" {
		name = d.Head.String()
	}
	if !d.Enable {
		return "disable " + name
	}

	parts := []string{"enable " + name}
	if d.Mode != nil {
		parts = append(parts, "mode "+d.Mode.String())
	}
	if d.CustomMode != nil {
		parts = append(parts, "custom mode "+d.CustomMode.String())
	}
	if d.Position != nil {
		parts = append(parts, "position "+d.Position.String())
	}
	if d.Transform != nil {
		parts = append(parts, "transform "+d.Transform.String())
	}
	if d.Scale != nil {
		parts = append(parts, fmt.Sprintf("scale %g", *d.Scale))
	}
	if d.AdaptiveSync != nil {
		parts = append(parts, "adaptive sync "+d.AdaptiveSync.String())
	}
	return strings.Join(parts, " ")
}
