package env

import (
	"fmt"
	"strings"
)

var axisOrder = AxisValues()

// Conditions is one point of the environment space. Zero value of a field
// means the axis is not constrained, zero Conditions is the default
// environment. Conditions is comparable and may be used as a map key.
type Conditions struct {
	ColorScheme  ColorScheme
	Motion       Motion
	Contrast     Contrast
	Transparency Transparency
	Orientation  Orientation
	DisplayMode  DisplayMode
	Theme        ThemeRef
	Breakpoint   Breakpoint
}

// FromFeatures collects features into Conditions. Two different values for
// the same axis are an error, repeating the same value is not.
func FromFeatures(features ...Feature) (Conditions, error) {
	var c Conditions
	for _, f := range features {
		if f == nil {
			continue
		}
		if cur := c.Get(f.Axis()); cur != nil && cur != f {
			return Conditions{}, fmt.Errorf("conflicting %s conditions: %v and %v", f.Axis(), cur, f)
		}
		var err error
		if c, err = c.With(f); err != nil {
			return Conditions{}, err
		}
	}
	return c, nil
}

// With returns a copy of c with the axis of f set to f.
func (c Conditions) With(f Feature) (Conditions, error) {
	switch v := f.(type) {
	case ColorScheme:
		c.ColorScheme = v
	case Motion:
		c.Motion = v
	case Contrast:
		c.Contrast = v
	case Transparency:
		c.Transparency = v
	case Orientation:
		c.Orientation = v
	case DisplayMode:
		c.DisplayMode = v
	case ThemeRef:
		c.Theme = v
	case Breakpoint:
		c.Breakpoint = v
	default:
		return c, fmt.Errorf("unsupported feature type %T", f)
	}
	return c, nil
}

// Get returns the feature set on axis a or nil.
func (c Conditions) Get(a Axis) Feature {
	switch a {
	case AxisColorScheme:
		if c.ColorScheme != 0 {
			return c.ColorScheme
		}
	case AxisMotion:
		if c.Motion != 0 {
			return c.Motion
		}
	case AxisContrast:
		if c.Contrast != 0 {
			return c.Contrast
		}
	case AxisTransparency:
		if c.Transparency != 0 {
			return c.Transparency
		}
	case AxisOrientation:
		if c.Orientation != 0 {
			return c.Orientation
		}
	case AxisDisplayMode:
		if c.DisplayMode != 0 {
			return c.DisplayMode
		}
	case AxisTheme:
		if c.Theme != "" {
			return c.Theme
		}
	case AxisBreakpoint:
		if c.Breakpoint != 0 {
			return c.Breakpoint
		}
	}
	return nil
}

// Count returns the number of constrained axes, theme included.
func (c Conditions) Count() int {
	n := 0
	for _, a := range axisOrder {
		if c.Get(a) != nil {
			n++
		}
	}
	return n
}

// IsDefault reports whether no axis is constrained.
func (c Conditions) IsDefault() bool {
	return c == Conditions{}
}

// HasTheme reports whether a theme is pinned.
func (c Conditions) HasTheme() bool {
	return c.Theme != ""
}

// Features returns the constrained axes in axis order, theme included.
func (c Conditions) Features() []Feature {
	var res []Feature
	for _, a := range axisOrder {
		if f := c.Get(a); f != nil {
			res = append(res, f)
		}
	}
	return res
}

// MediaFeatures returns the constrained axes which render as @media
// clauses, in axis order. Theme is never one of them.
func (c Conditions) MediaFeatures() []MediaFeature {
	var res []MediaFeature
	for _, f := range c.Features() {
		if mf, ok := f.(MediaFeature); ok {
			res = append(res, mf)
		}
	}
	return res
}

// Singles decomposes c into conditions constraining exactly one axis each,
// in axis order.
func (c Conditions) Singles() []Conditions {
	features := c.Features()
	res := make([]Conditions, 0, len(features))
	for _, f := range features {
		single, _ := Conditions{}.With(f)
		res = append(res, single)
	}
	return res
}

// Covers reports whether every axis constrained in o is constrained to the
// same value in c.
func (c Conditions) Covers(o Conditions) bool {
	for _, f := range o.Features() {
		if c.Get(f.Axis()) != f {
			return false
		}
	}
	return true
}

func (c Conditions) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range c.Features() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", f.Axis(), f)
	}
	sb.WriteByte(']')
	return sb.String()
}
