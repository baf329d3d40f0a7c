package theme

import (
	"fmt"

	"stylec/env"
)

const breakpointCount = 6

// Breakpoints holds min-width thresholds in pixels. Zero value resolves
// every breakpoint to its global default.
type Breakpoints struct {
	px [breakpointCount]int
}

// DefaultBreakpoints returns the global default thresholds.
func DefaultBreakpoints() Breakpoints {
	var b Breakpoints
	for _, bp := range env.BreakpointValues() {
		b.px[bp-1] = bp.DefaultWidth()
	}
	return b
}

// NewBreakpoints resolves theme specific thresholds. Breakpoints without an
// override take the nearest narrower override when cascade is set, and the
// global default otherwise. Extra small never inherits.
func NewBreakpoints(overrides map[env.Breakpoint]int, cascade bool) (Breakpoints, error) {
	var (
		b   Breakpoints
		set [breakpointCount]bool
	)
	for bp, px := range overrides {
		if !bp.IsValid() {
			return Breakpoints{}, fmt.Errorf("invalid breakpoint %v", bp)
		}
		if px <= 0 {
			return Breakpoints{}, fmt.Errorf("breakpoint %s: width must be positive, got %d", bp, px)
		}
		b.px[bp-1] = px
		set[bp-1] = true
	}

	for i, bp := range env.BreakpointValues() {
		if set[i] {
			continue
		}
		b.px[i] = bp.DefaultWidth()
		if !cascade {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if set[j] {
				b.px[i] = b.px[j]
				break
			}
		}
	}
	return b, nil
}

// MinWidth implements env.Widths.
func (b Breakpoints) MinWidth(bp env.Breakpoint) int {
	if !bp.IsValid() {
		return 0
	}
	if px := b.px[bp-1]; px > 0 {
		return px
	}
	return bp.DefaultWidth()
}

// Overrides returns thresholds which differ from global defaults.
func (b Breakpoints) Overrides() map[env.Breakpoint]int {
	res := make(map[env.Breakpoint]int)
	for _, bp := range env.BreakpointValues() {
		if px := b.MinWidth(bp); px != bp.DefaultWidth() {
			res[bp] = px
		}
	}
	return res
}
