// Package synth renders condition and declaration pairs as CSS rules.
package synth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"stylec/css"
	"stylec/env"
	"stylec/resolve"
	"stylec/theme"
)

// ErrUnknownTheme is returned for conditions pinning a theme which is not
// active.
var ErrUnknownTheme = errors.New("unknown theme")

// Synthesizer renders rules for a fixed set of themes.
type Synthesizer struct {
	log    *zap.Logger
	themes []theme.Theme
	space  *env.Space
}

// New creates a synthesizer for themes. Auto themes never get rules of
// their own and are dropped.
func New(themes []theme.Theme, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	active := theme.Active(themes)
	return &Synthesizer{
		log:    log.Named("synth"),
		themes: active,
		space:  env.NewSpace(theme.Refs(active)),
	}
}

// Themes returns the active themes.
func (s *Synthesizer) Themes() []theme.Theme {
	return s.themes
}

// Space returns the condition space spanned by the active themes.
func (s *Synthesizer) Space() *env.Space {
	return s.space
}

// Render appends to sheet the rule applying decls to class under cond.
//
// Unconstrained conditions produce a bare class rule. A pinned theme scopes
// the class with the theme attribute selector, unless it is the only active
// theme, and provides breakpoint widths. Remaining axes become @media
// features joined with "and", breakpoints using global default widths when
// no theme is pinned.
func (s *Synthesizer) Render(sheet *css.Stylesheet, class string, cond env.Conditions, decls css.Declarations) error {
	sel := css.ClassSelector(class)

	var widths env.Widths = env.DefaultWidths
	if cond.HasTheme() {
		t, ok := theme.Find(s.themes, cond.Theme)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTheme, cond.Theme)
		}
		widths = t
		if len(s.themes) > 1 {
			sel = sel.Within(t.Selector())
		}
	}

	features := cond.MediaFeatures()
	if len(features) == 0 {
		sheet.AddRule(sel, decls.Clone())
		return nil
	}

	clauses := make([]string, 0, len(features))
	for _, f := range features {
		clauses = append(clauses, f.Condition(widths))
	}
	sheet.AddMedia(css.NewMediaQuery(clauses...), sel, decls.Clone())
	return nil
}

// Result renders an analysis: the default rule first, then one rule per
// variation in result order.
func (s *Synthesizer) Result(class string, res *resolve.Result) (*css.Stylesheet, error) {
	sheet := &css.Stylesheet{}
	if err := s.Render(sheet, class, env.Conditions{}, res.Default); err != nil {
		return nil, err
	}
	for _, cond := range res.Order {
		if err := s.Render(sheet, class, cond, res.Unique[cond]); err != nil {
			return nil, fmt.Errorf("class %s, conditions %s: %w", class, cond, err)
		}
	}
	s.log.Debug("Rules rendered", zap.String("class", class), zap.Int("rules", sheet.Len()))
	return sheet, nil
}

// PerTheme renders decls once for every active theme, each rule pinned to
// its theme. When cond constrains no media axis the theme color scheme is
// used so that the rule still only applies under it. Without active themes
// cond is rendered as is.
func (s *Synthesizer) PerTheme(sheet *css.Stylesheet, class string, cond env.Conditions, decls css.Declarations) error {
	if len(s.themes) == 0 {
		return s.Render(sheet, class, cond, decls)
	}
	for _, t := range s.themes {
		pinned := cond
		pinned.Theme = t.Ref()
		if len(pinned.MediaFeatures()) == 0 && t.ColorScheme.IsValid() {
			pinned.ColorScheme = t.ColorScheme
		}
		if err := s.Render(sheet, class, pinned, decls); err != nil {
			return err
		}
	}
	return nil
}
