package registry_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"stylec/css"
	"stylec/env"
	"stylec/registry"
	"stylec/resolve"
	"stylec/style"
	"stylec/theme"
)

func colorStyle(name, light, dark string) style.Style {
	return style.Func(name, func(c style.Content, e env.Conditions) (style.Content, error) {
		if e.ColorScheme == env.ColorSchemeDark {
			return c.Set("color", dark), nil
		}
		return c.Set("color", light), nil
	})
}

func twoThemes(t *testing.T) []theme.Theme {
	t.Helper()
	bps, err := theme.NewBreakpoints(map[env.Breakpoint]int{env.BreakpointLarge: 1100}, false)
	if err != nil {
		t.Fatalf("NewBreakpoints() error = %v", err)
	}
	return []theme.Theme{
		theme.New("Brand", env.ColorSchemeLight, bps),
		theme.New("Night", env.ColorSchemeDark, theme.Breakpoints{}),
	}
}

func TestRegisterStyle_Order(t *testing.T) {
	r := registry.New(zaptest.NewLogger(t), registry.WithWorkers(4))
	for _, name := range []string{"Zebra", "Alpha", "Middle"} {
		r.RegisterStyle(colorStyle(name, "black", "white"))
	}

	text, err := r.GenerateAllCSS(nil)
	if err != nil {
		t.Fatalf("GenerateAllCSS() error = %v", err)
	}

	zebra, alpha, middle := strings.Index(text, ".zebra {"), strings.Index(text, ".alpha {"), strings.Index(text, ".middle {")
	if zebra < 0 || alpha < 0 || middle < 0 {
		t.Fatalf("missing rules:\n%s", text)
	}
	if !(zebra < alpha && alpha < middle) {
		t.Errorf("rules are not in registration order:\n%s", text)
	}
	if got := r.Classes(); strings.Join(got, ",") != "zebra,alpha,middle" {
		t.Errorf("Classes() = %v", got)
	}
}

func TestRegisterStyle_Replace(t *testing.T) {
	r := registry.New(zap.NewNop())
	r.RegisterStyle(colorStyle("Card", "black", "white"))
	r.RegisterStyle(colorStyle("Banner", "navy", "teal"))

	before, err := r.GenerateAllCSS(nil)
	if err != nil {
		t.Fatalf("GenerateAllCSS() error = %v", err)
	}
	if !strings.Contains(before, "color: white;") {
		t.Fatalf("unexpected output:\n%s", before)
	}

	if class := r.RegisterStyle(colorStyle("Card", "black", "silver")); class != "card" {
		t.Errorf("RegisterStyle() = %q, want card", class)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	after, err := r.GenerateAllCSS(nil)
	if err != nil {
		t.Fatalf("GenerateAllCSS() error = %v", err)
	}
	if strings.Contains(after, "color: white;") || !strings.Contains(after, "color: silver;") {
		t.Errorf("replaced style was not regenerated:\n%s", after)
	}
	if strings.Index(after, ".card {") > strings.Index(after, ".banner {") {
		t.Errorf("replaced style must keep its position:\n%s", after)
	}
}

func TestGenerateAllCSS_Cache(t *testing.T) {
	var calls atomic.Int64
	counted := style.Func("Counted", func(c style.Content, e env.Conditions) (style.Content, error) {
		calls.Add(1)
		if e.Theme == "night" {
			return c.Set("color", "white"), nil
		}
		return c.Set("color", "black"), nil
	})

	r := registry.New(zap.NewNop())
	r.RegisterStyle(counted)
	themes := twoThemes(t)

	first, err := r.GenerateAllCSS(themes)
	if err != nil {
		t.Fatalf("GenerateAllCSS() error = %v", err)
	}
	n := calls.Load()
	if n == 0 {
		t.Fatal("style was never evaluated")
	}

	second, err := r.GenerateAllCSS(themes)
	if err != nil {
		t.Fatalf("GenerateAllCSS() error = %v", err)
	}
	if calls.Load() != n {
		t.Errorf("cached style was analyzed again")
	}
	if first != second {
		t.Errorf("cached output differs:\n%s\n%s", first, second)
	}
	if !strings.Contains(first, "[data-theme^=\"night\"] .counted {") {
		t.Errorf("expected theme scoped rule:\n%s", first)
	}

	if _, err := r.GenerateAllCSS(themes[:1]); err != nil {
		t.Fatalf("GenerateAllCSS() error = %v", err)
	}
	if calls.Load() == n {
		t.Error("changing themes must invalidate cached rules")
	}
}

func TestGenerateAllCSS_DegradedStyle(t *testing.T) {
	broken := style.Func("Broken", func(c style.Content, e env.Conditions) (style.Content, error) {
		return c, errors.New("not implemented")
	})

	r := registry.New(zap.NewNop())
	r.RegisterStyle(colorStyle("Before", "black", "white"))
	r.RegisterStyle(broken)
	r.RegisterStyle(colorStyle("After", "red", "pink"))

	text, err := r.GenerateAllCSS(nil)
	if !errors.Is(err, resolve.ErrNoDefault) {
		t.Fatalf("expected ErrNoDefault, got %v", err)
	}
	if len(multierr.Errors(err)) != 1 {
		t.Errorf("expected one error, got %v", err)
	}
	if !strings.Contains(text, ".before {") || !strings.Contains(text, ".after {") {
		t.Errorf("healthy styles must still be generated:\n%s", text)
	}
	if strings.Contains(text, ".broken") {
		t.Errorf("broken style must not produce rules:\n%s", text)
	}
}

func TestBuild_Cancelled(t *testing.T) {
	r := registry.New(zap.NewNop(), registry.WithWorkers(1))
	r.RegisterStyle(colorStyle("Card", "black", "white"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sheet, err := r.Build(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sheet != nil {
		t.Error("expected no stylesheet")
	}
}

var adhocClass = regexp.MustCompile(`^style-[0-9a-f]{12}$`)

func TestRegisterStyles(t *testing.T) {
	r := registry.New(zap.NewNop())
	shadow := css.Declarations{css.Decl("box-shadow", "0 1px 2px rgba(0, 0, 0, 0.2)")}

	class, err := r.RegisterStyles([]env.Feature{env.ColorSchemeDark, env.MotionReduce}, shadow)
	if err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}
	if !adhocClass.MatchString(class) {
		t.Errorf("class = %q", class)
	}

	again, err := r.RegisterStyles([]env.Feature{env.MotionReduce, env.ColorSchemeDark}, shadow)
	if err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}
	if again != class {
		t.Errorf("class depends on feature order: %q vs %q", again, class)
	}

	other, err := r.RegisterStyles([]env.Feature{env.ColorSchemeDark, env.MotionReduce}, css.Declarations{css.Decl("box-shadow", "none")})
	if err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}
	if other == class {
		t.Error("different declarations must get different classes")
	}

	if got := r.ClassNameFor([]env.Feature{env.MotionReduce, env.ColorSchemeDark}, shadow); got != class {
		t.Errorf("ClassNameFor() = %q, want %q", got, class)
	}
	if got := r.ClassNameFor([]env.Feature{env.MotionReduce}, shadow); got != "" {
		t.Errorf("ClassNameFor() = %q for unknown rule", got)
	}

	text, err := r.GenerateAdHocCSS(nil)
	if err != nil {
		t.Fatalf("GenerateAdHocCSS() error = %v", err)
	}
	if n := strings.Count(text, "."+class+" {"); n != 1 {
		t.Errorf("rule rendered %d times:\n%s", n, text)
	}
	want := "@media (prefers-color-scheme: dark) and (prefers-reduced-motion: reduce) {\n    ." + class + " {\n"
	if !strings.HasPrefix(text, want) {
		t.Errorf("GenerateAdHocCSS() =\n%s\nwant prefix\n%s", text, want)
	}
}

func TestRegisterStyles_Options(t *testing.T) {
	r := registry.New(zap.NewNop())
	if r.HasAdHoc() {
		t.Fatal("new registry has no ad-hoc rules")
	}

	decls := css.Declarations{css.Decl("outline", "none")}
	class, err := r.RegisterStyles(nil, decls, registry.WithClassName("plain-outline"))
	if err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}
	if class != "plain-outline" {
		t.Errorf("class = %q", class)
	}

	themed, err := r.RegisterStyles(nil, decls, registry.WithClassName("themed-outline"), registry.ForEachTheme())
	if err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}
	if !r.HasAdHoc() {
		t.Fatal("HasAdHoc() = false")
	}

	text, err := r.GenerateAdHocCSS(twoThemes(t))
	if err != nil {
		t.Fatalf("GenerateAdHocCSS() error = %v", err)
	}
	if !strings.HasPrefix(text, ".plain-outline {\n    outline: none;\n}\n") {
		t.Errorf("expected bare rule first:\n%s", text)
	}
	for _, want := range []string{
		"@media (prefers-color-scheme: light) {\n    [data-theme^=\"brand\"] ." + themed + " {",
		"@media (prefers-color-scheme: dark) {\n    [data-theme^=\"night\"] ." + themed + " {",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}

func TestClassNameFor_FirstNameKept(t *testing.T) {
	r := registry.New(zap.NewNop())
	features := []env.Feature{env.ContrastMore}
	decls := css.Declarations{css.Decl("border-width", "2px")}

	for _, name := range []string{"strong-border", "thick-border"} {
		if _, err := r.RegisterStyles(features, decls, registry.WithClassName(name)); err != nil {
			t.Fatalf("RegisterStyles(%s) error = %v", name, err)
		}
	}

	if got := r.ClassNameFor(features, decls); got != "strong-border" {
		t.Errorf("ClassNameFor() = %q, want strong-border", got)
	}

	// both classes are still rendered
	text, err := r.GenerateAdHocCSS(nil)
	if err != nil {
		t.Fatalf("GenerateAdHocCSS() error = %v", err)
	}
	for _, class := range []string{".strong-border {", ".thick-border {"} {
		if !strings.Contains(text, class) {
			t.Errorf("missing %q in:\n%s", class, text)
		}
	}
}

func TestRegisterStyles_Conflict(t *testing.T) {
	r := registry.New(zap.NewNop())
	if _, err := r.RegisterStyles([]env.Feature{env.ColorSchemeDark, env.ColorSchemeLight}, nil); err == nil {
		t.Error("expected error for conflicting features")
	}
	if r.HasAdHoc() {
		t.Error("conflicting registration must not be queued")
	}
}

func TestRegisterStyles_UnknownTheme(t *testing.T) {
	r := registry.New(zap.NewNop())
	if _, err := r.RegisterStyles([]env.Feature{env.ThemeRef("missing")}, css.Declarations{css.Decl("color", "red")}); err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}
	if _, err := r.GenerateAdHocCSS(twoThemes(t)); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRegisterResponsive(t *testing.T) {
	r := registry.New(zap.NewNop())
	class, err := r.RegisterResponsive("font-size", map[env.Breakpoint]string{
		env.BreakpointXLarge: "3rem",
		env.BreakpointSmall:  "1.5rem",
		env.BreakpointMedium: "2rem",
	})
	if err != nil {
		t.Fatalf("RegisterResponsive() error = %v", err)
	}
	if !strings.HasPrefix(class, "font-size-") {
		t.Errorf("class = %q", class)
	}

	sheet, err := r.AdHoc(nil)
	if err != nil {
		t.Fatalf("AdHoc() error = %v", err)
	}
	if rules := sheet.RulesBySelector("." + class); len(rules) != 1 {
		t.Fatalf("expected one base rule, got %d", len(rules))
	} else if v, _ := rules[0].Declarations.Get("font-size"); v != "1.5rem" {
		t.Errorf("base font-size = %q", v)
	}

	blocks := sheet.MediaBlocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 media blocks, got %d", len(blocks))
	}
	if blocks[0].Query.String() != "(min-width: 768px)" || blocks[1].Query.String() != "(min-width: 1200px)" {
		t.Errorf("queries = %s, %s", blocks[0].Query, blocks[1].Query)
	}

	if _, err := r.RegisterResponsive("font-size", nil); err == nil {
		t.Error("expected error without values")
	}
}

func TestStylesheet(t *testing.T) {
	r := registry.New(zap.NewNop())
	r.RegisterStyle(colorStyle("Card", "black", "white"))
	if _, err := r.RegisterStyles([]env.Feature{env.OrientationLandscape}, css.Declarations{css.Decl("columns", "2")}); err != nil {
		t.Fatalf("RegisterStyles() error = %v", err)
	}

	sheet, err := r.Stylesheet(context.Background(), nil)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	classes := sheet.Classes()
	if len(classes) != 2 || classes[0] != "card" || !adhocClass.MatchString(classes[1]) {
		t.Errorf("Classes() = %v", classes)
	}
}
