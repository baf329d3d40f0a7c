package env

import (
	"cmp"
	"slices"
)

// Space is the complete Cartesian product of all axis values, each axis
// also taking the unconstrained value, for a given list of themes.
type Space struct {
	Themes []ThemeRef
	Points []Conditions

	themeRank map[ThemeRef]int
}

// SpaceSize returns the number of points in a space built for the given
// number of distinct themes.
func SpaceSize(themes int) int {
	size := themes + 1
	size *= len(ColorSchemeValues()) + 1
	size *= len(OrientationValues()) + 1
	size *= len(TransparencyValues()) + 1
	size *= len(DisplayModeValues()) + 1
	size *= len(MotionValues()) + 1
	size *= len(ContrastValues()) + 1
	size *= len(BreakpointValues()) + 1
	return size
}

// NewSpace enumerates every point of the environment space. Points are
// produced in generation order: color scheme is the outermost loop, then
// orientation, transparency, display mode, motion, contrast, theme, and
// breakpoint innermost, the unconstrained value coming first on every axis.
// Empty and repeated theme references are ignored.
func NewSpace(themes []ThemeRef) *Space {
	s := &Space{themeRank: make(map[ThemeRef]int, len(themes))}
	for _, t := range themes {
		if t == "" {
			continue
		}
		if _, ok := s.themeRank[t]; ok {
			continue
		}
		s.Themes = append(s.Themes, t)
		s.themeRank[t] = len(s.Themes)
	}

	schemes := append([]ColorScheme{0}, ColorSchemeValues()...)
	orientations := append([]Orientation{0}, OrientationValues()...)
	transparencies := append([]Transparency{0}, TransparencyValues()...)
	modes := append([]DisplayMode{0}, DisplayModeValues()...)
	motions := append([]Motion{0}, MotionValues()...)
	contrasts := append([]Contrast{0}, ContrastValues()...)
	refs := append([]ThemeRef{""}, s.Themes...)
	breakpoints := append([]Breakpoint{0}, BreakpointValues()...)

	s.Points = make([]Conditions, 0, SpaceSize(len(s.Themes)))
	for _, cs := range schemes {
		for _, o := range orientations {
			for _, tr := range transparencies {
				for _, dm := range modes {
					for _, m := range motions {
						for _, ct := range contrasts {
							for _, t := range refs {
								for _, bp := range breakpoints {
									s.Points = append(s.Points, Conditions{
										ColorScheme:  cs,
										Orientation:  o,
										Transparency: tr,
										DisplayMode:  dm,
										Motion:       m,
										Contrast:     ct,
										Theme:        t,
										Breakpoint:   bp,
									})
								}
							}
						}
					}
				}
			}
		}
	}
	return s
}

// Len returns the number of points.
func (s *Space) Len() int {
	return len(s.Points)
}

// Compare orders conditions the way NewSpace generates them. Themes unknown
// to the space sort after known ones, by reference.
func (s *Space) Compare(a, b Conditions) int {
	return cmp.Or(
		cmp.Compare(a.ColorScheme, b.ColorScheme),
		cmp.Compare(a.Orientation, b.Orientation),
		cmp.Compare(a.Transparency, b.Transparency),
		cmp.Compare(a.DisplayMode, b.DisplayMode),
		cmp.Compare(a.Motion, b.Motion),
		cmp.Compare(a.Contrast, b.Contrast),
		cmp.Compare(s.rank(a.Theme), s.rank(b.Theme)),
		cmp.Compare(a.Theme, b.Theme),
		cmp.Compare(a.Breakpoint, b.Breakpoint),
	)
}

// CompareAxes orders conditions by the first axis, in axis order, on which
// they differ. Conditions constraining that axis come before those leaving
// it unset, otherwise values on it are compared as Compare does.
func (s *Space) CompareAxes(a, b Conditions) int {
	for _, ax := range axisOrder {
		fa, fb := a.Get(ax), b.Get(ax)
		switch {
		case fa == fb:
			continue
		case fa == nil:
			return 1
		case fb == nil:
			return -1
		}
		sa, _ := Conditions{}.With(fa)
		sb, _ := Conditions{}.With(fb)
		return s.Compare(sa, sb)
	}
	return 0
}

// Sort orders conditions by constrained axis count first and generation
// order second.
func (s *Space) Sort(cs []Conditions) {
	slices.SortFunc(cs, func(a, b Conditions) int {
		return cmp.Or(cmp.Compare(a.Count(), b.Count()), s.Compare(a, b))
	})
}

func (s *Space) rank(t ThemeRef) int {
	if t == "" {
		return 0
	}
	if r, ok := s.themeRank[t]; ok {
		return r
	}
	return len(s.Themes) + 1
}
