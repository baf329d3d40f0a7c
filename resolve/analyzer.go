// Package resolve finds the minimal set of environment conditions under
// which a style changes its output.
package resolve

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"stylec/css"
	"stylec/env"
	"stylec/style"
	"stylec/utils/debug"
)

// ErrNoDefault is returned when a style cannot be evaluated for the default
// environment. Such style produces no CSS at all.
var ErrNoDefault = errors.New("style is not defined for the default environment")

// Result of an analysis. Unique never holds declarations equal to Default
// and never holds the same declarations twice.
type Result struct {
	Default css.Declarations
	Unique  map[env.Conditions]css.Declarations
	// Order lists Unique keys by number of constrained axes and then in
	// condition space generation order.
	Order []env.Conditions

	Points  int // number of points analyzed
	Skipped int // points where the style could not be evaluated
}

// Analyzer evaluates styles over a condition space.
type Analyzer struct {
	log *zap.Logger
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log.Named("analyzer")}
}

type evaluation struct {
	decls css.Declarations
	err   error
}

type candidate struct {
	cond  env.Conditions
	decls css.Declarations
}

// Analyze evaluates s at every point of space and reduces every variation
// from the default output to the simplest conditions reproducing it.
//
// A variation at a point constraining more than one axis is first reduced to
// a single axis: the point's axes are tried alone in axis order and the
// first one producing the same declarations is taken. When none does the
// point itself is kept. Among all conditions producing the same
// declarations the one constraining fewer axes wins, ties go to the one
// constraining the earliest axis in axis order, so the result does not
// depend on the order points are visited in. Points where s fails are skipped.
func (a *Analyzer) Analyze(s style.Style, space *env.Space) (*Result, error) {
	id := style.Identity(s)

	def, err := style.Evaluate(s, env.Conditions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoDefault, id, err)
	}

	memo := make(map[env.Conditions]evaluation, space.Len())
	memo[env.Conditions{}] = evaluation{decls: def}
	eval := func(c env.Conditions) (css.Declarations, error) {
		if e, ok := memo[c]; ok {
			return e.decls, e.err
		}
		decls, err := style.Evaluate(s, c)
		memo[c] = evaluation{decls: decls, err: err}
		return decls, err
	}

	res := &Result{
		Default: def,
		Unique:  make(map[env.Conditions]css.Declarations),
		Points:  space.Len(),
	}

	best := make(map[string]candidate)
	record := func(cond env.Conditions, decls css.Declarations) {
		key := decls.Key()
		if cur, ok := best[key]; ok && !simpler(space, cond, cur.cond) {
			return
		}
		best[key] = candidate{cond: cond, decls: decls}
	}

	var firstErr error
	for _, point := range space.Points {
		decls, err := eval(point)
		if err != nil {
			res.Skipped++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if decls.Equal(def) {
			continue
		}

		if point.Count() <= 1 {
			record(point, decls)
			continue
		}

		if single, ok := reduce(point, decls, eval); ok {
			record(single, decls)
			continue
		}

		// complex path: point must still reproduce the variation on its own
		again, err := style.Evaluate(s, point)
		if err != nil || !again.Equal(decls) {
			a.log.Warn("Style is not deterministic, ignoring variation",
				zap.String("style", id), zap.Stringer("conditions", point), zap.Error(err))
			continue
		}
		record(point, decls)
	}

	for _, c := range best {
		res.Unique[c.cond] = c.decls
		res.Order = append(res.Order, c.cond)
	}
	space.Sort(res.Order)

	if res.Skipped > 0 {
		a.log.Debug("Style could not be evaluated everywhere",
			zap.String("style", id), zap.Int("skipped", res.Skipped), zap.Error(firstErr))
	}
	a.log.Debug("Style analyzed",
		zap.String("style", id),
		zap.Int("points", res.Points),
		zap.Int("evaluations", len(memo)),
		zap.Int("variations", len(res.Order)))
	return res, nil
}

// reduce tries every single axis of point alone.
func reduce(point env.Conditions, decls css.Declarations, eval func(env.Conditions) (css.Declarations, error)) (env.Conditions, bool) {
	for _, single := range point.Singles() {
		got, err := eval(single)
		if err == nil && got.Equal(decls) {
			return single, true
		}
	}
	return env.Conditions{}, false
}

// simpler reports whether a should be preferred over b: fewer constrained
// axes first, then axis order, then generation order.
func simpler(space *env.Space, a, b env.Conditions) bool {
	if ca, cb := a.Count(), b.Count(); ca != cb {
		return ca < cb
	}
	if c := space.CompareAxes(a, b); c != 0 {
		return c < 0
	}
	return space.Compare(a, b) < 0
}

// Len returns number of variations.
func (r *Result) Len() int {
	return len(r.Order)
}

// String dumps the result for debugging.
func (r *Result) String() string {
	tw := debug.NewTreeWriter()
	debug.Section(tw, 0, "default", r.Default)
	tw.Line(0, "variations: %d (points %d, skipped %d)", len(r.Order), r.Points, r.Skipped)
	for _, c := range r.Order {
		debug.Section(tw, 1, c.String(), r.Unique[c])
	}
	return tw.String()
}
