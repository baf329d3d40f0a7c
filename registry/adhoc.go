package registry

import (
	"encoding/hex"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylec/css"
	"stylec/env"
	"stylec/synth"
	"stylec/theme"
	"stylec/utils/names"
)

var classSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:stylec:class"))

type pending struct {
	class    string
	cond     env.Conditions
	decls    css.Declarations
	perTheme bool
}

type adhocOptions struct {
	class    string
	perTheme bool
}

// AdHocOption configures RegisterStyles.
type AdHocOption func(*adhocOptions)

// WithClassName uses name instead of the content derived class name.
func WithClassName(name string) AdHocOption {
	return func(o *adhocOptions) {
		o.class = name
	}
}

// ForEachTheme renders one rule per active theme, each scoped to its theme
// and using its breakpoint widths.
func ForEachTheme() AdHocOption {
	return func(o *adhocOptions) {
		o.perTheme = true
	}
}

// RegisterStyles queues decls to be applied exactly when features hold and
// returns the class name to use. Unless overridden the class name is
// derived from features and decls, the order features are given in does
// not matter. Registering the same rule again is a no-op.
func (r *Registry) RegisterStyles(features []env.Feature, decls css.Declarations, opts ...AdHocOption) (string, error) {
	cond, err := env.FromFeatures(features...)
	if err != nil {
		return "", err
	}

	var o adhocOptions
	for _, opt := range opts {
		opt(&o)
	}

	hash := contentKey(cond, decls)
	class := o.class
	if class == "" {
		class = "style-" + hashName(hash)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.adhocNames[hash]; !ok {
		r.adhocNames[hash] = class
	}
	r.queue(pending{class: class, cond: cond, decls: decls.Clone(), perTheme: o.perTheme})
	return class, nil
}

// RegisterResponsive queues a class setting property to a value per
// breakpoint. The narrowest breakpoint given becomes the base rule, every
// wider one a min-width rule.
func (r *Registry) RegisterResponsive(property string, values map[env.Breakpoint]string) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("responsive %s: no values", property)
	}
	bps := slices.Sorted(maps.Keys(values))
	if !bps[0].IsValid() {
		return "", fmt.Errorf("responsive %s: invalid breakpoint %v", property, bps[0])
	}

	key := property
	for _, bp := range bps {
		key += "\x1f" + bp.String() + "\x1e" + values[bp]
	}
	class := names.Kebab(property) + "-" + hashName(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, bp := range bps {
		var cond env.Conditions
		if i > 0 {
			cond.Breakpoint = bp
		}
		r.queue(pending{class: class, cond: cond, decls: css.Declarations{css.Decl(property, values[bp])}})
	}
	return class, nil
}

// ClassNameFor returns the class name registered for features and decls, or
// an empty string. When the same rule was registered under several class
// names the first one is returned.
func (r *Registry) ClassNameFor(features []env.Feature, decls css.Declarations) string {
	cond, err := env.FromFeatures(features...)
	if err != nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.adhocNames[contentKey(cond, decls)]
}

// HasAdHoc reports whether any ad-hoc rule is queued.
func (r *Registry) HasAdHoc() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.adhoc) > 0
}

// AdHoc renders queued ad-hoc rules in registration order. Rules which
// cannot be rendered are left out.
func (r *Registry) AdHoc(themes []theme.Theme) (*css.Stylesheet, error) {
	r.mu.Lock()
	queued := slices.Clone(r.adhoc)
	r.mu.Unlock()

	syn := synth.New(themes, r.log)
	sheet := &css.Stylesheet{}

	var err error
	for _, p := range queued {
		render := syn.Render
		if p.perTheme {
			render = syn.PerTheme
		}
		if rerr := render(sheet, p.class, p.cond, p.decls); rerr != nil {
			r.log.Warn("Ad-hoc rule skipped", zap.String("class", p.class), zap.Stringer("conditions", p.cond), zap.Error(rerr))
			err = multierr.Append(err, fmt.Errorf("class %s: %w", p.class, rerr))
		}
	}
	return sheet, err
}

// GenerateAdHocCSS renders queued ad-hoc rules as text.
func (r *Registry) GenerateAdHocCSS(themes []theme.Theme) (string, error) {
	sheet, err := r.AdHoc(themes)
	return sheet.String(), err
}

// queue must be called with mu held.
func (r *Registry) queue(p pending) {
	key := p.class + "\x1d" + contentKey(p.cond, p.decls)
	if p.perTheme {
		key += "\x1dper-theme"
	}
	if _, ok := r.adhocKeys[key]; ok {
		return
	}
	r.adhocKeys[key] = struct{}{}
	r.adhoc = append(r.adhoc, p)
}

func contentKey(cond env.Conditions, decls css.Declarations) string {
	return cond.String() + "\x1d" + decls.Key()
}

func hashName(key string) string {
	id := uuid.NewSHA1(classSpace, []byte(key))
	return hex.EncodeToString(id[:6])
}
