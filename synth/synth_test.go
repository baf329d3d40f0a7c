package synth_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"stylec/css"
	"stylec/env"
	"stylec/resolve"
	"stylec/style"
	"stylec/synth"
	"stylec/theme"
)

func brandThemes(t *testing.T) []theme.Theme {
	t.Helper()
	bps, err := theme.NewBreakpoints(map[env.Breakpoint]int{env.BreakpointLarge: 1100}, false)
	if err != nil {
		t.Fatalf("NewBreakpoints() error = %v", err)
	}
	return []theme.Theme{
		theme.New("BrandTheme", env.ColorSchemeLight, bps),
		theme.New("Plain", env.ColorSchemeDark, theme.Breakpoints{}),
	}
}

func render(t *testing.T, s *synth.Synthesizer, cond env.Conditions, decls css.Declarations) string {
	t.Helper()
	var sheet css.Stylesheet
	if err := s.Render(&sheet, "x", cond, decls); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sheet.String()
}

func TestRender(t *testing.T) {
	decls := css.Declarations{css.Decl("color", "red"), css.Decl("margin", "0")}

	tests := []struct {
		name string
		cond env.Conditions
		want string
	}{
		{
			name: "bare class",
			cond: env.Conditions{},
			want: ".x {\n    color: red;\n    margin: 0;\n}\n",
		},
		{
			name: "theme only",
			cond: env.Conditions{Theme: "brand"},
			want: "[data-theme^=\"brand\"] .x {\n    color: red;\n    margin: 0;\n}\n",
		},
		{
			name: "theme with breakpoint uses theme width",
			cond: env.Conditions{Theme: "brand", Breakpoint: env.BreakpointLarge},
			want: "@media (min-width: 1100px) {\n" +
				"    [data-theme^=\"brand\"] .x {\n" +
				"        color: red;\n" +
				"        margin: 0;\n" +
				"    }\n" +
				"}\n",
		},
		{
			name: "media only uses default width",
			cond: env.Conditions{Breakpoint: env.BreakpointLarge},
			want: "@media (min-width: 992px) {\n    .x {\n        color: red;\n        margin: 0;\n    }\n}\n",
		},
		{
			name: "features in axis order",
			cond: env.Conditions{Orientation: env.OrientationPortrait, ColorScheme: env.ColorSchemeDark, Motion: env.MotionReduce},
			want: "@media (prefers-color-scheme: dark) and (prefers-reduced-motion: reduce) and (orientation: portrait) {\n" +
				"    .x {\n        color: red;\n        margin: 0;\n    }\n}\n",
		},
	}

	s := synth.New(brandThemes(t), zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, s, tt.cond, decls); got != tt.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRender_SingleThemeOmitsSelector(t *testing.T) {
	themes := brandThemes(t)[:1]
	s := synth.New(themes, zap.NewNop())
	decls := css.Declarations{css.Decl("font-size", "3rem")}

	if got, want := render(t, s, env.Conditions{Theme: "brand"}, decls), ".x {\n    font-size: 3rem;\n}\n"; got != want {
		t.Errorf("theme only =\n%s\nwant\n%s", got, want)
	}

	got := render(t, s, env.Conditions{Theme: "brand", Breakpoint: env.BreakpointLarge}, decls)
	want := "@media (min-width: 1100px) {\n    .x {\n        font-size: 3rem;\n    }\n}\n"
	if got != want {
		t.Errorf("theme with breakpoint =\n%s\nwant\n%s", got, want)
	}
}

func TestNew_FiltersAutoThemes(t *testing.T) {
	themes := brandThemes(t)
	auto := theme.New("Auto", 0, theme.Breakpoints{})
	auto.Auto = true
	themes = append(themes, auto)

	s := synth.New(themes, zap.NewNop())
	if len(s.Themes()) != 2 {
		t.Fatalf("Themes() = %v, want 2 themes", s.Themes())
	}
	if s.Space().Len() != env.SpaceSize(2) {
		t.Errorf("Space().Len() = %d, want %d", s.Space().Len(), env.SpaceSize(2))
	}

	var sheet css.Stylesheet
	err := s.Render(&sheet, "x", env.Conditions{Theme: "auto"}, nil)
	if !errors.Is(err, synth.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestResult_DarkScheme(t *testing.T) {
	dark := style.Func("dark-text", func(c style.Content, e env.Conditions) (style.Content, error) {
		if e.ColorScheme == env.ColorSchemeDark {
			return c.Set("color", "white"), nil
		}
		return c.Set("color", "black"), nil
	})

	s := synth.New(nil, zaptest.NewLogger(t))
	res, err := resolve.NewAnalyzer(zap.NewNop()).Analyze(dark, s.Space())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	sheet, err := s.Result("dark-text", res)
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}

	text := sheet.String()
	want := ".dark-text {\n    color: black;\n}\n\n" +
		"@media (prefers-color-scheme: dark) {\n" +
		"    .dark-text {\n" +
		"        color: white;\n" +
		"    }\n" +
		"}\n"
	if text != want {
		t.Errorf("Result() =\n%s\nwant\n%s", text, want)
	}
	if n := strings.Count(text, "@media (prefers-color-scheme: dark)"); n != 1 {
		t.Errorf("expected exactly one dark block, got %d", n)
	}
	if strings.Contains(text, "data-theme") {
		t.Error("no theme attribute expected")
	}
}

func TestResult_ThemeBreakpoint(t *testing.T) {
	hero := style.Func("hero", func(c style.Content, e env.Conditions) (style.Content, error) {
		if e.Theme == "brand" && e.Breakpoint == env.BreakpointLarge {
			return c.Set("font-size", "3rem"), nil
		}
		return c.Set("font-size", "2rem"), nil
	})

	s := synth.New(brandThemes(t), zap.NewNop())
	res, err := resolve.NewAnalyzer(zap.NewNop()).Analyze(hero, s.Space())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	sheet, err := s.Result("hero", res)
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}

	blocks := sheet.MediaBlocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 media block, got %d:\n%s", len(blocks), sheet)
	}
	if got := blocks[0].Query.String(); got != "(min-width: 1100px)" {
		t.Errorf("query = %q, want theme width", got)
	}
	if got := blocks[0].Rules[0].Selector.String(); got != `[data-theme^="brand"] .hero` {
		t.Errorf("selector = %q", got)
	}
}

func TestResult_Tie(t *testing.T) {
	wide := style.Func("wide", func(c style.Content, e env.Conditions) (style.Content, error) {
		if e.Orientation == env.OrientationLandscape || e.DisplayMode == env.DisplayModeStandalone {
			return c.Set("max-width", "none"), nil
		}
		return c.Set("max-width", "60ch"), nil
	})

	s := synth.New(nil, zap.NewNop())
	res, err := resolve.NewAnalyzer(zap.NewNop()).Analyze(wide, s.Space())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	sheet, err := s.Result("wide", res)
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if n := strings.Count(sheet.String(), "max-width: none;"); n != 1 {
		t.Errorf("expected exactly one rule for the variation, got %d:\n%s", n, sheet)
	}
	if !strings.Contains(sheet.String(), "@media (orientation: landscape) {") {
		t.Errorf("orientation precedes display mode in axis order:\n%s", sheet)
	}
}

func TestPerTheme(t *testing.T) {
	s := synth.New(brandThemes(t), zap.NewNop())
	decls := css.Declarations{css.Decl("box-shadow", "none")}

	var sheet css.Stylesheet
	if err := s.PerTheme(&sheet, "x", env.Conditions{}, decls); err != nil {
		t.Fatalf("PerTheme() error = %v", err)
	}
	want := "@media (prefers-color-scheme: light) {\n    [data-theme^=\"brand\"] .x {\n        box-shadow: none;\n    }\n}\n\n" +
		"@media (prefers-color-scheme: dark) {\n    [data-theme^=\"plain\"] .x {\n        box-shadow: none;\n    }\n}\n"
	if got := sheet.String(); got != want {
		t.Errorf("PerTheme() =\n%s\nwant\n%s", got, want)
	}

	sheet = css.Stylesheet{}
	if err := s.PerTheme(&sheet, "x", env.Conditions{Breakpoint: env.BreakpointLarge}, decls); err != nil {
		t.Fatalf("PerTheme() error = %v", err)
	}
	got := sheet.String()
	if !strings.Contains(got, "@media (min-width: 1100px) {\n    [data-theme^=\"brand\"] .x") ||
		!strings.Contains(got, "@media (min-width: 992px) {\n    [data-theme^=\"plain\"] .x") {
		t.Errorf("PerTheme() must use each theme's widths:\n%s", got)
	}
}

func TestPerTheme_NoThemes(t *testing.T) {
	s := synth.New(nil, zap.NewNop())
	var sheet css.Stylesheet
	if err := s.PerTheme(&sheet, "x", env.Conditions{Motion: env.MotionReduce}, css.Declarations{css.Decl("animation", "none")}); err != nil {
		t.Fatalf("PerTheme() error = %v", err)
	}
	if got := sheet.MediaBlocks(); len(got) != 1 || got[0].Query.String() != "(prefers-reduced-motion: reduce)" {
		t.Errorf("unexpected output:\n%s", sheet.String())
	}
}
