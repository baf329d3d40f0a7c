// Package env models the rendering environment a style is evaluated in: one
// optional value per condition axis plus an optional theme.
package env

import "strconv"

//go:generate go tool go-enum --names --values --nocase --marshal --mustparse

// Axis identifies one dimension of the environment. Declaration order is the
// fixed order used to decompose conditions into media features and to try
// single-axis reductions.
// ENUM(color-scheme=1, motion, contrast, transparency, orientation, display-mode, theme, breakpoint)
type Axis int

// Preferred color scheme.
// ENUM(light=1, dark)
type ColorScheme int

// Device orientation.
// ENUM(portrait=1, landscape)
type Orientation int

// Transparency preference.
// ENUM(reduce=1, no-preference)
type Transparency int

// Display mode of the web application.
// ENUM(standalone=1, fullscreen, minimal-ui, browser)
type DisplayMode int

// Motion preference.
// ENUM(reduce=1, no-preference)
type Motion int

// Contrast preference.
// ENUM(more=1, less, no-preference)
type Contrast int

// Responsive breakpoint, ordered from the narrowest to the widest.
// ENUM(x-small=1, small, medium, large, x-large, xx-large)
type Breakpoint int

// ThemeRef references a theme by the prefix its data-theme attribute value
// starts with.
type ThemeRef string

// Feature is a single condition on one axis.
type Feature interface {
	Axis() Axis
}

// MediaFeature is a condition which renders as one clause of an @media
// query.
type MediaFeature interface {
	Feature
	// Condition returns clause text without surrounding parentheses,
	// resolving breakpoint thresholds through w.
	Condition(w Widths) string
}

// Widths resolves breakpoint thresholds in pixels.
type Widths interface {
	MinWidth(bp Breakpoint) int
}

type defaultWidths struct{}

func (defaultWidths) MinWidth(bp Breakpoint) int {
	return bp.DefaultWidth()
}

// DefaultWidths resolves breakpoints to their global default thresholds.
var DefaultWidths Widths = defaultWidths{}

func (ColorScheme) Axis() Axis  { return AxisColorScheme }
func (Orientation) Axis() Axis  { return AxisOrientation }
func (Transparency) Axis() Axis { return AxisTransparency }
func (DisplayMode) Axis() Axis  { return AxisDisplayMode }
func (Motion) Axis() Axis       { return AxisMotion }
func (Contrast) Axis() Axis     { return AxisContrast }
func (Breakpoint) Axis() Axis   { return AxisBreakpoint }
func (ThemeRef) Axis() Axis     { return AxisTheme }

func (x ColorScheme) Condition(Widths) string {
	return "prefers-color-scheme: " + x.String()
}

func (x Orientation) Condition(Widths) string {
	return "orientation: " + x.String()
}

func (x Transparency) Condition(Widths) string {
	return "prefers-reduced-transparency: " + x.String()
}

func (x DisplayMode) Condition(Widths) string {
	return "display-mode: " + x.String()
}

func (x Motion) Condition(Widths) string {
	return "prefers-reduced-motion: " + x.String()
}

func (x Contrast) Condition(Widths) string {
	return "prefers-contrast: " + x.String()
}

func (x Breakpoint) Condition(w Widths) string {
	if w == nil {
		w = DefaultWidths
	}
	return "min-width: " + strconv.Itoa(w.MinWidth(x)) + "px"
}

// DefaultWidth returns the global min-width threshold of the breakpoint in
// pixels. Extra small and small share a threshold.
func (x Breakpoint) DefaultWidth() int {
	switch x {
	case BreakpointXSmall, BreakpointSmall:
		return 576
	case BreakpointMedium:
		return 768
	case BreakpointLarge:
		return 992
	case BreakpointXLarge:
		return 1200
	case BreakpointXxLarge:
		return 1400
	default:
		return 0
	}
}

func (t ThemeRef) String() string {
	return string(t)
}
