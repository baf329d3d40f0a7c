package env

import (
	"errors"
	"strings"
	"testing"
)

func TestConditions_Count(t *testing.T) {
	tests := []struct {
		name string
		c    Conditions
		want int
	}{
		{"default", Conditions{}, 0},
		{"color scheme", Conditions{ColorScheme: ColorSchemeDark}, 1},
		{"theme only", Conditions{Theme: "brand"}, 1},
		{"theme and breakpoint", Conditions{Theme: "brand", Breakpoint: BreakpointLarge}, 2},
		{"all", Conditions{
			ColorScheme:  ColorSchemeLight,
			Motion:       MotionReduce,
			Contrast:     ContrastMore,
			Transparency: TransparencyNoPreference,
			Orientation:  OrientationPortrait,
			DisplayMode:  DisplayModeBrowser,
			Theme:        "brand",
			Breakpoint:   BreakpointXxLarge,
		}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConditions_MapKey(t *testing.T) {
	m := map[Conditions]int{}
	m[Conditions{ColorScheme: ColorSchemeDark, Theme: "brand"}] = 1
	m[Conditions{Theme: "brand", ColorScheme: ColorSchemeDark}] = 2

	if len(m) != 1 {
		t.Fatalf("expected equal conditions to share a key, got %d keys", len(m))
	}
	if m[Conditions{ColorScheme: ColorSchemeDark, Theme: "brand"}] != 2 {
		t.Error("expected second assignment to overwrite the first")
	}
}

func TestConditions_MediaFeatures(t *testing.T) {
	c := Conditions{
		Breakpoint:   BreakpointMedium,
		Theme:        "brand",
		DisplayMode:  DisplayModeMinimalUi,
		Orientation:  OrientationLandscape,
		Transparency: TransparencyReduce,
		Contrast:     ContrastLess,
		Motion:       MotionNoPreference,
		ColorScheme:  ColorSchemeDark,
	}

	var got []string
	for _, f := range c.MediaFeatures() {
		got = append(got, f.Condition(DefaultWidths))
	}

	want := []string{
		"prefers-color-scheme: dark",
		"prefers-reduced-motion: no-preference",
		"prefers-contrast: less",
		"prefers-reduced-transparency: reduce",
		"orientation: landscape",
		"display-mode: minimal-ui",
		"min-width: 768px",
	}

	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("MediaFeatures() = %q, want %q", got, want)
	}
}

func TestConditions_Singles(t *testing.T) {
	c := Conditions{Breakpoint: BreakpointLarge, Theme: "brand", Orientation: OrientationPortrait}
	singles := c.Singles()

	want := []Conditions{
		{Orientation: OrientationPortrait},
		{Theme: "brand"},
		{Breakpoint: BreakpointLarge},
	}
	if len(singles) != len(want) {
		t.Fatalf("Singles() returned %d conditions, want %d", len(singles), len(want))
	}
	for i := range want {
		if singles[i] != want[i] {
			t.Errorf("Singles()[%d] = %v, want %v", i, singles[i], want[i])
		}
		if singles[i].Count() != 1 {
			t.Errorf("Singles()[%d] constrains %d axes", i, singles[i].Count())
		}
	}

	if len(Conditions{}.Singles()) != 0 {
		t.Error("default conditions must not decompose into anything")
	}
}

func TestFromFeatures(t *testing.T) {
	t.Run("collects", func(t *testing.T) {
		c, err := FromFeatures(BreakpointSmall, ColorSchemeDark, ThemeRef("ocean"))
		if err != nil {
			t.Fatalf("FromFeatures() error = %v", err)
		}
		want := Conditions{Breakpoint: BreakpointSmall, ColorScheme: ColorSchemeDark, Theme: "ocean"}
		if c != want {
			t.Errorf("FromFeatures() = %v, want %v", c, want)
		}
	})

	t.Run("repeated value", func(t *testing.T) {
		if _, err := FromFeatures(MotionReduce, MotionReduce); err != nil {
			t.Errorf("repeating the same value must be accepted, got %v", err)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		if _, err := FromFeatures(ColorSchemeDark, ColorSchemeLight); err == nil {
			t.Error("expected error for conflicting values")
		}
	})
}

func TestConditions_Covers(t *testing.T) {
	point := Conditions{ColorScheme: ColorSchemeDark, Breakpoint: BreakpointLarge}
	if !point.Covers(Conditions{ColorScheme: ColorSchemeDark}) {
		t.Error("expected point to cover its own sub-condition")
	}
	if point.Covers(Conditions{ColorScheme: ColorSchemeLight}) {
		t.Error("different value must not be covered")
	}
	if !point.Covers(Conditions{}) {
		t.Error("every point covers the default conditions")
	}
}

func TestConditions_String(t *testing.T) {
	if got := (Conditions{}).String(); got != "[]" {
		t.Errorf("String() = %q, want []", got)
	}
	c := Conditions{ColorScheme: ColorSchemeDark, Theme: "brand", Breakpoint: BreakpointXLarge}
	if got, want := c.String(), "[color-scheme=dark theme=brand breakpoint=x-large]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBreakpoint_Condition(t *testing.T) {
	tests := []struct {
		bp   Breakpoint
		want string
	}{
		{BreakpointXSmall, "min-width: 576px"},
		{BreakpointSmall, "min-width: 576px"},
		{BreakpointMedium, "min-width: 768px"},
		{BreakpointLarge, "min-width: 992px"},
		{BreakpointXLarge, "min-width: 1200px"},
		{BreakpointXxLarge, "min-width: 1400px"},
	}

	for _, tt := range tests {
		t.Run(tt.bp.String(), func(t *testing.T) {
			if got := tt.bp.Condition(nil); got != tt.want {
				t.Errorf("Condition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		input     string
		expected  DisplayMode
		shouldErr bool
	}{
		{"standalone", DisplayModeStandalone, false},
		{"Minimal-UI", DisplayModeMinimalUi, false},
		{"browser", DisplayModeBrowser, false},
		{"window", DisplayMode(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDisplayMode(tt.input)
			if tt.shouldErr {
				if !errors.Is(err, ErrInvalidDisplayMode) {
					t.Errorf("expected ErrInvalidDisplayMode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseDisplayMode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAxisOrder(t *testing.T) {
	want := "color-scheme motion contrast transparency orientation display-mode theme breakpoint"
	if got := strings.Join(AxisNames(), " "); got != want {
		t.Errorf("AxisNames() = %q, want %q", got, want)
	}
}
