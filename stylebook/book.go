// Package stylebook loads declarative style definitions: themes, styles with
// conditional variants, ad-hoc rules and responsive values.
package stylebook

import (
	"bytes"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"stylec/css"
	"stylec/env"
	"stylec/registry"
	"stylec/style"
	"stylec/theme"
	"stylec/utils/names"
)

type (
	// Book is the document as stored on disk.
	Book struct {
		ThemeSpecs []ThemeSpec      `yaml:"themes,omitempty" validate:"dive"`
		StyleSpecs []StyleSpec      `yaml:"styles" validate:"dive"`
		AdHoc      []AdHocSpec      `yaml:"adhoc,omitempty" validate:"dive"`
		Responsive []ResponsiveSpec `yaml:"responsive,omitempty" validate:"dive"`

		themes []theme.Theme
		styles []*bookStyle
	}

	ThemeSpec struct {
		Name        string                 `yaml:"name" validate:"required"`
		ID          string                 `yaml:"id,omitempty"`
		ColorScheme env.ColorScheme        `yaml:"color_scheme,omitempty"`
		Auto        bool                   `yaml:"auto,omitempty"`
		Cascade     bool                   `yaml:"cascade,omitempty"`
		Breakpoints map[env.Breakpoint]int `yaml:"breakpoints,omitempty" validate:"dive,gt=0"`
	}

	StyleSpec struct {
		Name     string        `yaml:"name" validate:"required"`
		Base     string        `yaml:"base"`
		Variants []VariantSpec `yaml:"variants,omitempty" validate:"dive"`
	}

	VariantSpec struct {
		When         When   `yaml:"when"`
		Declarations string `yaml:"declarations" validate:"required"`
	}

	AdHocSpec struct {
		When         When   `yaml:"when,omitempty"`
		Declarations string `yaml:"declarations" validate:"required"`
		Class        string `yaml:"class,omitempty"`
		PerTheme     bool   `yaml:"per_theme,omitempty"`
	}

	ResponsiveSpec struct {
		Property string                    `yaml:"property" validate:"required"`
		Values   map[env.Breakpoint]string `yaml:"values" validate:"required,min=1,dive,required"`
	}

	// When lists axis values a variant applies to. Unset axes match any
	// environment.
	When struct {
		ColorScheme  env.ColorScheme  `yaml:"color_scheme,omitempty"`
		Motion       env.Motion       `yaml:"motion,omitempty"`
		Contrast     env.Contrast     `yaml:"contrast,omitempty"`
		Transparency env.Transparency `yaml:"transparency,omitempty"`
		Orientation  env.Orientation  `yaml:"orientation,omitempty"`
		DisplayMode  env.DisplayMode  `yaml:"display_mode,omitempty"`
		Theme        string           `yaml:"theme,omitempty"`
		Breakpoint   env.Breakpoint   `yaml:"breakpoint,omitempty"`
	}
)

// Conditions converts w.
func (w When) Conditions() env.Conditions {
	return env.Conditions{
		ColorScheme:  w.ColorScheme,
		Motion:       w.Motion,
		Contrast:     w.Contrast,
		Transparency: w.Transparency,
		Orientation:  w.Orientation,
		DisplayMode:  w.DisplayMode,
		Theme:        env.ThemeRef(w.Theme),
		Breakpoint:   w.Breakpoint,
	}
}

// Load reads and compiles the book at path.
func Load(path string, log *zap.Logger) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylebook: %w", err)
	}
	b, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("stylebook %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes, validates and compiles a book.
func Parse(data []byte, log *zap.Logger) (*Book, error) {
	if log == nil {
		log = zap.NewNop()
	}

	b := &Book{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(b); err != nil {
		return nil, fmt.Errorf("failed to decode stylebook: %w", err)
	}
	if err := gencfg.Validate(b, gencfg.WithAdditionalChecks(checkUnique)); err != nil {
		return nil, err
	}
	if err := b.compile(); err != nil {
		return nil, err
	}

	log.Debug("Stylebook loaded",
		zap.Int("themes", len(b.themes)),
		zap.Int("styles", len(b.styles)),
		zap.Int("adhoc", len(b.AdHoc)),
		zap.Int("responsive", len(b.Responsive)))
	return b, nil
}

// checkUnique makes sure no two styles end up with the same class and no
// two themes share an ID.
func checkUnique(sl validator.StructLevel) {
	b := sl.Current().Interface().(Book)

	classes := make(map[string]struct{}, len(b.StyleSpecs))
	for i, s := range b.StyleSpecs {
		class := names.Kebab(s.Name)
		if _, ok := classes[class]; ok {
			sl.ReportError(s.Name, fmt.Sprintf("StyleSpecs[%d].Name", i), "Name", "unique", class)
		}
		classes[class] = struct{}{}
	}

	ids := make(map[string]struct{}, len(b.ThemeSpecs))
	for i, t := range b.ThemeSpecs {
		id := t.ID
		if id == "" {
			id = theme.IDFromName(t.Name)
		}
		if _, ok := ids[id]; ok {
			sl.ReportError(t.Name, fmt.Sprintf("ThemeSpecs[%d].Name", i), "Name", "unique", id)
		}
		ids[id] = struct{}{}
	}
}

func (b *Book) compile() error {
	for _, spec := range b.ThemeSpecs {
		bps, err := theme.NewBreakpoints(spec.Breakpoints, spec.Cascade)
		if err != nil {
			return fmt.Errorf("theme %s: %w", spec.Name, err)
		}
		t := theme.New(spec.Name, spec.ColorScheme, bps)
		if spec.ID != "" {
			t.ID = spec.ID
		}
		t.Auto = spec.Auto
		b.themes = append(b.themes, t)
	}

	for _, spec := range b.StyleSpecs {
		s, err := b.compileStyle(spec)
		if err != nil {
			return fmt.Errorf("style %s: %w", spec.Name, err)
		}
		b.styles = append(b.styles, s)
	}

	for i, spec := range b.AdHoc {
		if err := b.checkWhen(spec.When); err != nil {
			return fmt.Errorf("adhoc[%d]: %w", i, err)
		}
		if _, err := css.ParseDeclarations(spec.Declarations); err != nil {
			return fmt.Errorf("adhoc[%d]: %w", i, err)
		}
	}
	return nil
}

func (b *Book) compileStyle(spec StyleSpec) (*bookStyle, error) {
	base, err := css.ParseDeclarations(spec.Base)
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	s := &bookStyle{name: spec.Name, base: base}
	for i, v := range spec.Variants {
		if err := b.checkWhen(v.When); err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
		decls, err := css.ParseDeclarations(v.Declarations)
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
		s.variants = append(s.variants, variant{when: v.When.Conditions(), decls: decls})
	}
	return s, nil
}

func (b *Book) checkWhen(w When) error {
	if w.Theme == "" {
		return nil
	}
	if _, ok := theme.Find(b.themes, env.ThemeRef(w.Theme)); !ok {
		return fmt.Errorf("unknown theme %q", w.Theme)
	}
	return nil
}

// Themes returns compiled themes, auto themes included.
func (b *Book) Themes() []theme.Theme {
	return b.themes
}

// Styles returns compiled styles in book order.
func (b *Book) Styles() []style.Style {
	res := make([]style.Style, 0, len(b.styles))
	for _, s := range b.styles {
		res = append(res, s)
	}
	return res
}

// Register adds everything the book defines to reg. Entries which cannot be
// registered are reported together, the rest is registered anyway.
func (b *Book) Register(reg *registry.Registry) error {
	for _, s := range b.styles {
		reg.RegisterStyle(s)
	}

	var err error
	for i, spec := range b.AdHoc {
		decls, perr := css.ParseDeclarations(spec.Declarations)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("adhoc[%d]: %w", i, perr))
			continue
		}
		var opts []registry.AdHocOption
		if spec.Class != "" {
			opts = append(opts, registry.WithClassName(spec.Class))
		}
		if spec.PerTheme {
			opts = append(opts, registry.ForEachTheme())
		}
		if _, rerr := reg.RegisterStyles(spec.When.Conditions().Features(), decls, opts...); rerr != nil {
			err = multierr.Append(err, fmt.Errorf("adhoc[%d]: %w", i, rerr))
		}
	}
	for _, spec := range b.Responsive {
		if _, rerr := reg.RegisterResponsive(spec.Property, spec.Values); rerr != nil {
			err = multierr.Append(err, rerr)
		}
	}
	return err
}
