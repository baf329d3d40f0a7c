package css

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const indentUnit = "    "

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func cssEscapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Declaration is a single property and its value. Values are opaque text.
type Declaration struct {
	Property string
	Value    string
}

// Decl is a shorthand Declaration constructor.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Declarations is an ordered declaration list. Two lists are equal only
// when they hold the same declarations in the same order.
type Declarations []Declaration

// Equal reports element-wise equality.
func (ds Declarations) Equal(other Declarations) bool {
	return slices.Equal(ds, other)
}

// Key returns text which is equal for two lists exactly when the lists are
// Equal. Suitable as a map key.
func (ds Declarations) Key() string {
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteString(d.Property)
		sb.WriteByte(0x1f)
		sb.WriteString(d.Value)
		sb.WriteByte(0x1e)
	}
	return sb.String()
}

// Get returns the value of the last declaration of property.
func (ds Declarations) Get(property string) (string, bool) {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i].Property == property {
			return ds[i].Value, true
		}
	}
	return "", false
}

// Clone returns an independent copy.
func (ds Declarations) Clone() Declarations {
	if ds == nil {
		return nil
	}
	return slices.Clone(ds)
}

// String returns declarations on a single line, the way they would appear in
// a style attribute.
func (ds Declarations) String() string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}

// MediaQuery is the condition of an @media block: an optional media type and
// a conjunction of features.
type MediaQuery struct {
	Raw      string   // Original query text when parsed, empty when built
	Type     string   // Media type (e.g., "screen"), usually empty
	Features []string // Feature conditions without parentheses
}

// NewMediaQuery builds a query from feature conditions.
func NewMediaQuery(features ...string) MediaQuery {
	return MediaQuery{Features: features}
}

func (mq MediaQuery) String() string {
	if mq.Type == "" && len(mq.Features) == 0 {
		return mq.Raw
	}
	var parts []string
	if mq.Type != "" {
		parts = append(parts, mq.Type)
	}
	for _, f := range mq.Features {
		parts = append(parts, "("+f+")")
	}
	return strings.Join(parts, " and ")
}

// AttributeSelector matches an attribute, e.g. [data-theme^="dark"].
type AttributeSelector struct {
	Name     string
	Operator string // "", "=", "^=", "$=", "*=", "~=", "|="
	Value    string
}

func (a AttributeSelector) String() string {
	if a.Operator == "" {
		return "[" + a.Name + "]"
	}
	return fmt.Sprintf(`[%s%s"%s"]`, a.Name, a.Operator, cssEscapeDoubleQuoted(a.Value))
}

// Selector represents a selector with its components.
type Selector struct {
	Raw       string             // Original selector text when it could not be decomposed
	Element   string             // Element name (e.g., "p", "h1") or empty for class-only
	Class     string             // Class name without dot (e.g., "card") or empty
	Attribute *AttributeSelector // Attribute condition if present
	Ancestor  *Selector          // Ancestor selector for descendant selectors (e.g., "[data-theme] .card" -> Ancestor is "[data-theme]")
}

// ClassSelector selects elements with class name.
func ClassSelector(name string) Selector {
	return Selector{Class: name}
}

// Within returns a copy of s scoped to descendants of ancestor.
func (s Selector) Within(ancestor Selector) Selector {
	s.Ancestor = &ancestor
	return s
}

// IsSimple returns true if this is a simple selector (element, class,
// attribute or their combination).
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != "" || s.Attribute != nil
}

// IsDescendant returns true if this is a descendant selector.
func (s Selector) IsDescendant() bool {
	return s.Ancestor != nil
}

func (s Selector) String() string {
	if !s.IsSimple() {
		return s.Raw
	}
	var sb strings.Builder
	if s.Ancestor != nil {
		sb.WriteString(s.Ancestor.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(s.Element)
	if s.Class != "" {
		sb.WriteByte('.')
		sb.WriteString(s.Class)
	}
	if s.Attribute != nil {
		sb.WriteString(s.Attribute.String())
	}
	return sb.String()
}

// Rule represents a single CSS rule (selector + declarations).
type Rule struct {
	Selector     Selector
	Declarations Declarations
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, or Comment is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule (selector + declarations)
	MediaBlock *MediaBlock // A @media block containing nested rules
	Comment    *string     // A comment, without delimiters
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// Stylesheet is an ordered list of CSS items.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for unsupported features
}

// AddRule appends a plain rule.
func (s *Stylesheet) AddRule(sel Selector, decls Declarations) {
	s.Items = append(s.Items, StylesheetItem{Rule: &Rule{Selector: sel, Declarations: decls}})
}

// AddMedia appends a @media block holding a single rule.
func (s *Stylesheet) AddMedia(query MediaQuery, sel Selector, decls Declarations) {
	s.Items = append(s.Items, StylesheetItem{MediaBlock: &MediaBlock{
		Query: query,
		Rules: []Rule{{Selector: sel, Declarations: decls}},
	}})
}

// AddComment appends a comment.
func (s *Stylesheet) AddComment(text string) {
	s.Items = append(s.Items, StylesheetItem{Comment: &text})
}

// Append appends all items and warnings of other.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Items = append(s.Items, other.Items...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Len returns number of top-level items.
func (s *Stylesheet) Len() int {
	return len(s.Items)
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector.String() == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// MediaBlocks returns all @media blocks in source order.
func (s *Stylesheet) MediaBlocks() []MediaBlock {
	var blocks []MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, *item.MediaBlock)
		}
	}
	return blocks
}

// Classes returns distinct class names of rule subjects in order of first
// appearance, rules nested in @media blocks included.
func (s *Stylesheet) Classes() []string {
	var (
		res  []string
		seen = make(map[string]struct{})
	)
	add := func(r Rule) {
		if c := r.Selector.Class; c != "" {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				res = append(res, c)
			}
		}
	}
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			add(*item.Rule)
		case item.MediaBlock != nil:
			for _, r := range item.MediaBlock.Rules {
				add(r)
			}
		}
	}
	return res
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Declarations keep their order, items are separated by a blank line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != nil:
			n, err = writeComment(w, *item.Comment)
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w, every line prefixed with indent.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s%s%s\n", indent, indentUnit, d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], indentUnit)
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeComment writes a comment, multi-line text becomes a block comment.
func writeComment(w io.Writer, text string) (int, error) {
	text = strings.ReplaceAll(text, "*/", "* /")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 {
		return fmt.Fprintf(w, "/* %s */\n", lines[0])
	}
	var total int
	n, err := fmt.Fprint(w, "/*\n")
	total += n
	if err != nil {
		return total, err
	}
	for _, l := range lines {
		n, err = fmt.Fprintf(w, "%s\n", strings.TrimRight(" * "+l, " "))
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, " */\n")
	total += n
	return total, err
}
