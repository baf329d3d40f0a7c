package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Anything outside of plain rules,
// @media blocks and comments is skipped with a warning.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.CommentGrammar:
			text := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(string(data), "/*"), "*/"))
			sheet.AddComment(uncommentLines(text))

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule == "@media" {
				mq := p.parseMediaQueryFromTokens(parser.Values(), sheet)
				rules := p.parseMediaBlockRules(parser, sheet)
				p.log.Debug("Parsed @media block", zap.Stringer("query", mq), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: mq, Rules: rules},
				})
				continue
			}
			p.skipAtRuleBlock(parser)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(parser.Values())
			decls := p.parseDeclarations(parser, sheet)
			for _, selStr := range selectors {
				sel := p.parseSelector(selStr, sheet)
				sheet.Items = append(sheet.Items, StylesheetItem{Rule: &Rule{
					Selector:     sel,
					Declarations: decls.Clone(),
				}})
			}
		}
	}
}

// ParseDeclarations parses declaration text as found in a style attribute,
// e.g. "color: red; margin: 0 auto".
func ParseDeclarations(text string) (Declarations, error) {
	input := parse.NewInput(strings.NewReader(text))
	parser := css.NewParser(input, true)

	var decls Declarations
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				return nil, fmt.Errorf("unable to parse declarations %q: %w", text, parser.Err())
			}
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unable to parse declarations %q: %w", text, err)
			}
			return decls, nil
		case css.DeclarationGrammar:
			decls = append(decls, Decl(string(data), tokensToText(parser.Values())))
		case css.CustomPropertyGrammar:
			decls = append(decls, Decl(string(data), customPropertyValue(parser.Values())))
		default:
			return nil, fmt.Errorf("unexpected %s in declarations %q", gt, text)
		}
	}
}

// parseSelectors splits the ruleset prelude into individual selectors.
func (p *Parser) parseSelectors(values []css.Token) []string {
	var sb strings.Builder
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses declarations until EndRulesetGrammar, keeping
// their order.
func (p *Parser) parseDeclarations(parser *css.Parser, sheet *Stylesheet) Declarations {
	var decls Declarations
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+parser.Err().Error())
				p.log.Debug("Declaration parse error", zap.Error(parser.Err()))
				continue
			}
			return decls

		case css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) > 0 {
				decls = append(decls, Decl(string(data), tokensToText(values)))
			}

		case css.CustomPropertyGrammar:
			decls = append(decls, Decl(string(data), customPropertyValue(parser.Values())))
		}
	}
}

// tokensToText rebuilds value text from tokens. The tokenizer drops
// whitespace after commas and before "!", both are restored as a single
// space.
func tokensToText(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			sb.WriteByte(' ')
		case css.CommaToken:
			sb.WriteString(", ")
		case css.DelimToken:
			if string(t.Data) == "!" && sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteByte(' ')
			}
			sb.Write(t.Data)
		default:
			sb.Write(t.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

func customPropertyValue(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// parseSelector parses a single selector string into a Selector.
func (p *Parser) parseSelector(selStr string, sheet *Stylesheet) Selector {
	selStr = strings.TrimSpace(selStr)
	sel := Selector{Raw: selStr}

	if strings.ContainsAny(selStr, "+~>") && !strings.Contains(selStr, "~=") {
		sheet.Warnings = append(sheet.Warnings, "unsupported combinator selector: "+selStr)
		p.log.Debug("Keeping combinator selector as is", zap.String("selector", selStr))
		return sel
	}

	parts := splitCompounds(selStr)
	if len(parts) == 0 {
		return sel
	}

	var ancestor *Selector
	for i, part := range parts {
		compound, ok := p.parseCompound(part)
		if !ok {
			sheet.Warnings = append(sheet.Warnings, "unsupported selector: "+selStr)
			p.log.Debug("Keeping selector as is", zap.String("selector", selStr))
			return sel
		}
		compound.Ancestor = ancestor
		if i == len(parts)-1 {
			return compound
		}
		ancestor = &compound
	}
	return sel
}

// splitCompounds splits a descendant selector on whitespace which is not
// inside an attribute condition.
func splitCompounds(s string) []string {
	var (
		parts []string
		cur   strings.Builder
		depth int
		quote rune
	)
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return parts
}

// parseCompound parses element, class and attribute parts of one compound
// selector, e.g. "div.card[data-theme^=\"dark\"]". Pseudo classes, several
// classes or several attributes are not supported.
func (p *Parser) parseCompound(s string) (Selector, bool) {
	var sel Selector

	rest := s
	if i := strings.Index(rest, "["); i >= 0 {
		attr, ok := parseAttribute(rest[i:])
		if !ok {
			return Selector{}, false
		}
		sel.Attribute = &attr
		rest = rest[:i]
	}
	if strings.ContainsAny(rest, ":#*") {
		return Selector{}, false
	}
	if element, class, found := strings.Cut(rest, "."); found {
		if class == "" || strings.Contains(class, ".") {
			return Selector{}, false
		}
		sel.Element = element
		sel.Class = class
	} else {
		sel.Element = rest
	}
	return sel, sel.IsSimple()
}

// parseAttribute parses a single attribute condition including brackets.
func parseAttribute(s string) (AttributeSelector, bool) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return AttributeSelector{}, false
	}
	body := s[1 : len(s)-1]
	for _, op := range []string{"^=", "$=", "*=", "~=", "|=", "="} {
		if name, value, found := strings.Cut(body, op); found {
			name = strings.TrimSpace(name)
			if name == "" {
				return AttributeSelector{}, false
			}
			return AttributeSelector{Name: name, Operator: op, Value: unescape(unquote(value))}, true
		}
	}
	if body = strings.TrimSpace(body); body == "" || strings.ContainsAny(body, "[]") {
		return AttributeSelector{}, false
	}
	return AttributeSelector{Name: body}, true
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseMediaQueryFromTokens parses a media query from CSS tokens.
// Handles queries like "(prefers-color-scheme: dark) and (min-width: 768px)",
// optionally preceded by a media type.
func (p *Parser) parseMediaQueryFromTokens(tokens []css.Token, sheet *Stylesheet) MediaQuery {
	mq := MediaQuery{Raw: tokensToText(tokens)}

	var (
		feature strings.Builder
		depth   int
	)
	for _, t := range tokens {
		switch {
		case depth == 0 && t.TokenType == css.LeftParenthesisToken:
			depth = 1
			feature.Reset()
		case depth == 0 && t.TokenType == css.IdentToken:
			switch ident := strings.ToLower(string(t.Data)); ident {
			case "and", "only":
			default:
				if mq.Type != "" || ident == "not" {
					sheet.Warnings = append(sheet.Warnings, "unsupported media query: "+mq.Raw)
					return MediaQuery{Raw: mq.Raw}
				}
				mq.Type = ident
			}
		case depth == 0 && t.TokenType == css.CommaToken:
			sheet.Warnings = append(sheet.Warnings, "unsupported media query list: "+mq.Raw)
			return MediaQuery{Raw: mq.Raw}
		case depth > 0:
			switch t.TokenType {
			case css.LeftParenthesisToken, css.FunctionToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			if depth == 0 {
				mq.Features = append(mq.Features, strings.TrimSpace(feature.String()))
				continue
			}
			switch t.TokenType {
			case css.ColonToken:
				feature.WriteString(": ")
			case css.WhitespaceToken:
				feature.WriteByte(' ')
			default:
				feature.Write(t.Data)
			}
		}
	}
	return mq
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
func (p *Parser) parseMediaBlockRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var rules []Rule

	for {
		gt, _, _ := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "nested at-rule inside @media is not supported")
			p.skipAtRuleBlock(parser)

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(parser.Values())
			decls := p.parseDeclarations(parser, sheet)
			for _, selStr := range selectors {
				rules = append(rules, Rule{
					Selector:     p.parseSelector(selStr, sheet),
					Declarations: decls.Clone(),
				})
			}
		}
	}
}

// uncommentLines strips leading " * " decoration of block comment lines.
func uncommentLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "*")
		lines[i] = strings.TrimPrefix(l, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// unescape reverts cssEscapeDoubleQuoted.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
