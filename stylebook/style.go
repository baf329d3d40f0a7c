package stylebook

import (
	"stylec/css"
	"stylec/env"
	"stylec/style"
)

type variant struct {
	when  env.Conditions
	decls css.Declarations
}

// bookStyle applies base declarations and then every matching variant in
// book order, later declarations of a property replacing earlier ones.
type bookStyle struct {
	name     string
	base     css.Declarations
	variants []variant
}

func (s *bookStyle) Name() string {
	return s.name
}

func (s *bookStyle) Style(c style.Content, e env.Conditions) (style.Content, error) {
	c = c.With(s.base...)
	for _, v := range s.variants {
		if matches(v.when, e) {
			c = c.With(v.decls...)
		}
	}
	return c, nil
}

// matches reports whether environment e satisfies when. Breakpoints are
// mobile first: a variant for a breakpoint applies to it and every wider
// one.
func matches(when, e env.Conditions) bool {
	for _, f := range when.Features() {
		if f.Axis() == env.AxisBreakpoint {
			if e.Breakpoint == 0 || e.Breakpoint < when.Breakpoint {
				return false
			}
			continue
		}
		if e.Get(f.Axis()) != f {
			return false
		}
	}
	return true
}
