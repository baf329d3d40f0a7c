// Package debug has helpers producing human readable dumps of analysis
// results and stylesheets.
package debug

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

const indent = "  "

// TreeWriter accumulates indented text.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	tw.w.WriteString(strings.Repeat(indent, depth))
}

// Line writes formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Section writes label followed by every item one level deeper. Empty
// section is rendered with a placeholder so absence is visible.
func Section[T fmt.Stringer](tw *TreeWriter, depth int, label string, items []T) {
	tw.Line(depth, "%s", label)
	if len(items) == 0 {
		tw.Line(depth+1, "<none>")
		return
	}
	for _, item := range items {
		tw.Line(depth+1, "%s", item)
	}
}

// Sorted writes label and values in natural order ("col-2" before
// "col-10"). Duplicates are written once.
func (tw *TreeWriter) Sorted(depth int, label string, values []string) {
	sorted := slices.Clone(values)
	sort.Sort(natural.StringSlice(sorted))
	sorted = slices.Compact(sorted)

	tw.Line(depth, "%s: %d", label, len(sorted))
	for _, v := range sorted {
		tw.Line(depth+1, "%s", v)
	}
}
