// Package theme describes site themes as consumed by CSS generation: an
// attribute prefix, a color scheme, and breakpoint thresholds.
package theme

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stylec/css"
	"stylec/env"
	"stylec/utils/names"
)

// Theme is immutable for the duration of a generation pass.
type Theme struct {
	// ID is the prefix data-theme attribute values of this theme start
	// with.
	ID          string
	Name        string
	ColorScheme env.ColorScheme
	// Auto themes only follow the system light/dark preference and never
	// get rules of their own.
	Auto        bool
	Breakpoints Breakpoints
}

// New creates a theme from its display name. The ID is derived from the
// name the same way class names are: kebab-cased with a trailing "theme"
// word removed.
func New(name string, scheme env.ColorScheme, bps Breakpoints) Theme {
	return Theme{
		ID:          IDFromName(name),
		Name:        name,
		ColorScheme: scheme,
		Breakpoints: bps,
	}
}

// IDFromName turns a type or display name into a theme ID, for example
// "OceanDarkTheme" becomes "ocean-dark".
func IDFromName(name string) string {
	id := names.Kebab(name)
	if trimmed := strings.TrimSuffix(id, "-theme"); trimmed != "" {
		id = trimmed
	}
	return id
}

// DisplayName returns Name, or a title-cased ID when Name is empty.
func (t Theme) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(t.ID, "-", " "))
}

// Ref returns the reference used for this theme in environment conditions.
func (t Theme) Ref() env.ThemeRef {
	return env.ThemeRef(t.ID)
}

// MinWidth implements env.Widths using theme breakpoints.
func (t Theme) MinWidth(bp env.Breakpoint) int {
	return t.Breakpoints.MinWidth(bp)
}

// Selector returns the attribute selector scoping rules to this theme.
func (t Theme) Selector() css.Selector {
	return css.Selector{Attribute: &css.AttributeSelector{Name: "data-theme", Operator: "^=", Value: t.ID}}
}

func (t Theme) String() string {
	return t.ID
}

// Active returns themes which receive rules of their own, auto themes and
// themes repeating an earlier ID are dropped.
func Active(themes []Theme) []Theme {
	res := make([]Theme, 0, len(themes))
	seen := make(map[string]struct{}, len(themes))
	for _, t := range themes {
		if t.Auto || t.ID == "" {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		res = append(res, t)
	}
	return res
}

// Refs maps themes to their references preserving order.
func Refs(themes []Theme) []env.ThemeRef {
	res := make([]env.ThemeRef, 0, len(themes))
	for _, t := range themes {
		res = append(res, t.Ref())
	}
	return res
}

// Find returns the theme ref points to. An exact ID match wins, otherwise
// the first theme whose ID starts with ref is returned, the way the
// attribute selector would match it.
func Find(themes []Theme, ref env.ThemeRef) (Theme, bool) {
	for _, t := range themes {
		if t.ID == string(ref) {
			return t, true
		}
	}
	for _, t := range themes {
		if strings.HasPrefix(t.ID, string(ref)) {
			return t, true
		}
	}
	return Theme{}, false
}

// Fingerprint identifies a list of themes by everything CSS generation
// depends on.
func Fingerprint(themes []Theme) string {
	var sb strings.Builder
	for _, t := range themes {
		fmt.Fprintf(&sb, "%s|%s|%t|", t.ID, t.ColorScheme, t.Auto)
		for _, bp := range env.BreakpointValues() {
			fmt.Fprintf(&sb, "%d,", t.MinWidth(bp))
		}
		sb.WriteByte(';')
	}
	return sb.String()
}
