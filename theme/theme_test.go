package theme

import (
	"testing"

	"stylec/env"
)

func TestNewBreakpoints(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[env.Breakpoint]int
		cascade   bool
		want      []int
	}{
		{
			name: "defaults",
			want: []int{576, 576, 768, 992, 1200, 1400},
		},
		{
			name:      "cascade upward",
			overrides: map[env.Breakpoint]int{env.BreakpointMedium: 700},
			cascade:   true,
			want:      []int{576, 576, 700, 700, 700, 700},
		},
		{
			name:      "cascade stops at next override",
			overrides: map[env.Breakpoint]int{env.BreakpointSmall: 500, env.BreakpointXLarge: 1300},
			cascade:   true,
			want:      []int{576, 500, 500, 500, 1300, 1300},
		},
		{
			name:      "no cascade",
			overrides: map[env.Breakpoint]int{env.BreakpointMedium: 700},
			want:      []int{576, 576, 700, 992, 1200, 1400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBreakpoints(tt.overrides, tt.cascade)
			if err != nil {
				t.Fatalf("NewBreakpoints() error = %v", err)
			}
			for i, bp := range env.BreakpointValues() {
				if got := b.MinWidth(bp); got != tt.want[i] {
					t.Errorf("MinWidth(%s) = %d, want %d", bp, got, tt.want[i])
				}
			}
		})
	}
}

func TestNewBreakpoints_Invalid(t *testing.T) {
	if _, err := NewBreakpoints(map[env.Breakpoint]int{env.BreakpointLarge: 0}, true); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewBreakpoints(map[env.Breakpoint]int{env.Breakpoint(42): 10}, true); err == nil {
		t.Error("expected error for unknown breakpoint")
	}
}

func TestBreakpoints_ZeroValue(t *testing.T) {
	var b Breakpoints
	if b.MinWidth(env.BreakpointLarge) != 992 {
		t.Errorf("zero Breakpoints should resolve to defaults, got %d", b.MinWidth(env.BreakpointLarge))
	}
	if len(b.Overrides()) != 0 {
		t.Errorf("zero Breakpoints should have no overrides, got %v", b.Overrides())
	}
	if len(DefaultBreakpoints().Overrides()) != 0 {
		t.Error("default breakpoints should have no overrides")
	}
}

func TestIDFromName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OceanDarkTheme", "ocean-dark"},
		{"Brand", "brand"},
		{"Theme", "theme"},
		{"sea breeze", "sea-breeze"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IDFromName(tt.in); got != tt.want {
				t.Errorf("IDFromName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTheme_DisplayName(t *testing.T) {
	th := Theme{ID: "ocean-dark"}
	if got := th.DisplayName(); got != "Ocean Dark" {
		t.Errorf("DisplayName() = %q, want %q", got, "Ocean Dark")
	}
	th.Name = "Deep Sea"
	if got := th.DisplayName(); got != "Deep Sea" {
		t.Errorf("DisplayName() = %q, want %q", got, "Deep Sea")
	}
}

func TestActive(t *testing.T) {
	themes := []Theme{
		{ID: "auto", Auto: true},
		{ID: "light", ColorScheme: env.ColorSchemeLight},
		{ID: "dark", ColorScheme: env.ColorSchemeDark},
		{ID: "light"},
		{ID: ""},
	}
	active := Active(themes)
	if len(active) != 2 || active[0].ID != "light" || active[1].ID != "dark" {
		t.Fatalf("Active() = %v, want [light dark]", active)
	}
	if active[0].ColorScheme != env.ColorSchemeLight {
		t.Error("first occurrence of a repeated ID must win")
	}

	refs := Refs(active)
	if len(refs) != 2 || refs[0] != "light" || refs[1] != "dark" {
		t.Errorf("Refs() = %v", refs)
	}
}

func TestFind(t *testing.T) {
	themes := []Theme{{ID: "brand-light"}, {ID: "brand"}, {ID: "ocean"}}

	if th, ok := Find(themes, "brand"); !ok || th.ID != "brand" {
		t.Errorf("Find(brand) = %v, %v; exact match expected", th, ok)
	}
	if th, ok := Find(themes, "oce"); !ok || th.ID != "ocean" {
		t.Errorf("Find(oce) = %v, %v; prefix match expected", th, ok)
	}
	if _, ok := Find(themes, "forest"); ok {
		t.Error("Find(forest) should fail")
	}
}

func TestTheme_Selector(t *testing.T) {
	th := New("BrandTheme", env.ColorSchemeLight, Breakpoints{})
	if got := th.Selector().String(); got != `[data-theme^="brand"]` {
		t.Errorf("Selector() = %q", got)
	}
}

func TestFingerprint(t *testing.T) {
	bps, err := NewBreakpoints(map[env.Breakpoint]int{env.BreakpointLarge: 1000}, false)
	if err != nil {
		t.Fatal(err)
	}
	a := []Theme{{ID: "brand"}}
	b := []Theme{{ID: "brand", Breakpoints: bps}}
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("breakpoint overrides must change the fingerprint")
	}
	if Fingerprint(a) != Fingerprint([]Theme{{ID: "brand", Breakpoints: DefaultBreakpoints()}}) {
		t.Error("explicit defaults must not change the fingerprint")
	}
}
