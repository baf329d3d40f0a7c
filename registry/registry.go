// Package registry keeps styles and ad-hoc declaration sets registered for
// a site and turns them into a stylesheet.
package registry

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stylec/css"
	"stylec/resolve"
	"stylec/style"
	"stylec/synth"
	"stylec/theme"
)

// Registry is safe for concurrent use.
type Registry struct {
	log      *zap.Logger
	analyzer *resolve.Analyzer
	workers  int

	mu      sync.Mutex
	version uint64
	styles  []entry
	byID    map[string]int
	cache   map[string]cached

	adhoc      []pending
	adhocKeys  map[string]struct{}
	adhocNames map[string]string
}

type entry struct {
	id      string
	class   string
	style   style.Style
	version uint64
}

type cached struct {
	version     uint64
	fingerprint string
	sheet       *css.Stylesheet
	err         error
}

// Option configures a Registry.
type Option func(*Registry)

// WithWorkers limits the number of styles analyzed in parallel. Values
// below one mean one worker per CPU.
func WithWorkers(n int) Option {
	return func(r *Registry) {
		r.workers = n
	}
}

// New creates an empty registry.
func New(log *zap.Logger, opts ...Option) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:        log.Named("registry"),
		byID:       make(map[string]int),
		cache:      make(map[string]cached),
		adhocKeys:  make(map[string]struct{}),
		adhocNames: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	r.analyzer = resolve.NewAnalyzer(log)
	return r
}

// RegisterStyle queues s for generation and returns its class name. A style
// with the same identity registered earlier is replaced keeping its
// position, its cached rules are dropped.
func (r *Registry) RegisterStyle(s style.Style) string {
	id, class := style.Identity(s), style.ClassName(s)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.version++
	e := entry{id: id, class: class, style: s, version: r.version}
	if i, ok := r.byID[id]; ok {
		r.styles[i] = e
		delete(r.cache, id)
		r.log.Debug("Style replaced", zap.String("style", id), zap.String("class", class))
		return class
	}

	for _, other := range r.styles {
		if other.class == class {
			r.log.Warn("Different styles share class name, rules will be merged",
				zap.String("class", class), zap.String("style", id), zap.String("other", other.id))
		}
	}
	r.byID[id] = len(r.styles)
	r.styles = append(r.styles, e)
	return class
}

// ClassName returns the class name s is rendered with.
func (r *Registry) ClassName(s style.Style) string {
	return style.ClassName(s)
}

// Classes returns class names of registered styles in registration order.
func (r *Registry) Classes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]string, 0, len(r.styles))
	for _, e := range r.styles {
		res = append(res, e.class)
	}
	return res
}

// Len returns number of registered styles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.styles)
}

// Build renders every registered style for themes in registration order.
// Styles are analyzed in parallel and their rules are cached until the
// style is replaced or themes change. Styles which cannot be generated are
// left out and their errors are returned together with the stylesheet.
// Only context cancellation results in nil stylesheet.
func (r *Registry) Build(ctx context.Context, themes []theme.Theme) (*css.Stylesheet, error) {
	syn := synth.New(themes, r.log)
	fp := theme.Fingerprint(syn.Themes())

	r.mu.Lock()
	entries := slices.Clone(r.styles)
	r.mu.Unlock()

	var (
		sheets = make([]*css.Stylesheet, len(entries))
		errs   = make([]error, len(entries))
		hits   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, e := range entries {
		if c, ok := r.lookup(e, fp); ok {
			sheets[i], errs[i] = c.sheet, c.err
			hits++
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sheets[i], errs[i] = r.generate(syn, e)
			r.store(e, fp, sheets[i], errs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		out = &css.Stylesheet{}
		err error
	)
	for i := range entries {
		if errs[i] != nil {
			err = multierr.Append(err, errs[i])
			continue
		}
		out.Append(sheets[i])
	}
	r.log.Debug("Styles generated",
		zap.Int("styles", len(entries)),
		zap.Int("cached", hits),
		zap.Int("themes", len(syn.Themes())),
		zap.Int("failed", len(multierr.Errors(err))))
	return out, err
}

// GenerateAllCSS renders every registered style for themes. See Build.
func (r *Registry) GenerateAllCSS(themes []theme.Theme) (string, error) {
	sheet, err := r.Build(context.Background(), themes)
	if sheet == nil {
		return "", err
	}
	return sheet.String(), err
}

// Stylesheet renders registered styles followed by ad-hoc rules.
func (r *Registry) Stylesheet(ctx context.Context, themes []theme.Theme) (*css.Stylesheet, error) {
	sheet, err := r.Build(ctx, themes)
	if sheet == nil {
		return nil, err
	}
	adhoc, aerr := r.AdHoc(themes)
	sheet.Append(adhoc)
	return sheet, multierr.Append(err, aerr)
}

func (r *Registry) generate(syn *synth.Synthesizer, e entry) (*css.Stylesheet, error) {
	res, err := r.analyzer.Analyze(e.style, syn.Space())
	if err != nil {
		r.log.Warn("Style skipped", zap.String("style", e.id), zap.Error(err))
		return nil, fmt.Errorf("style %s: %w", e.id, err)
	}
	sheet, err := syn.Result(e.class, res)
	if err != nil {
		return nil, fmt.Errorf("style %s: %w", e.id, err)
	}
	return sheet, nil
}

func (r *Registry) lookup(e entry, fp string) (cached, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cache[e.id]
	if !ok || c.version != e.version || c.fingerprint != fp {
		return cached{}, false
	}
	return c, true
}

func (r *Registry) store(e entry, fp string, sheet *css.Stylesheet, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// style may have been replaced while being analyzed
	if i, ok := r.byID[e.id]; !ok || r.styles[i].version != e.version {
		return
	}
	r.cache[e.id] = cached{version: e.version, fingerprint: fp, sheet: sheet, err: err}
}
