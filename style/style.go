// Package style defines style functions: pure mappings from an environment
// to an ordered list of CSS declarations.
package style

import (
	"fmt"
	"reflect"
	"strings"

	"stylec/css"
	"stylec/env"
	"stylec/utils/names"
)

// Style produces declarations for an environment. Implementations must be
// pure: the same content and conditions always give the same result. An
// error means the style is not defined for the environment.
type Style interface {
	Style(content Content, conditions env.Conditions) (Content, error)
}

// Named is implemented by styles which choose their own identity. Styles
// which do not implement it are identified by their type name.
type Named interface {
	Name() string
}

// Content accumulates declarations. It is immutable, every setter returns
// a new value.
type Content struct {
	decls css.Declarations
}

// NewContent creates content holding decls.
func NewContent(decls ...css.Declaration) Content {
	return Content{}.With(decls...)
}

// Set returns content with property set to value. An existing declaration
// of the property is replaced in place, otherwise one is appended.
func (c Content) Set(property, value string) Content {
	decls := c.decls.Clone()
	for i := range decls {
		if decls[i].Property == property {
			decls[i].Value = value
			return Content{decls: decls}
		}
	}
	return Content{decls: append(decls, css.Decl(property, value))}
}

// With applies Set for every declaration in order.
func (c Content) With(decls ...css.Declaration) Content {
	for _, d := range decls {
		c = c.Set(d.Property, d.Value)
	}
	return c
}

// Remove returns content without property.
func (c Content) Remove(property string) Content {
	decls := make(css.Declarations, 0, len(c.decls))
	for _, d := range c.decls {
		if d.Property != property {
			decls = append(decls, d)
		}
	}
	return Content{decls: decls}
}

// Declarations returns a copy of accumulated declarations.
func (c Content) Declarations() css.Declarations {
	return c.decls.Clone()
}

// Len returns the number of declarations.
func (c Content) Len() int {
	return len(c.decls)
}

// Func adapts a function into a named Style.
func Func(name string, fn func(Content, env.Conditions) (Content, error)) Style {
	return funcStyle{name: name, fn: fn}
}

type funcStyle struct {
	name string
	fn   func(Content, env.Conditions) (Content, error)
}

func (f funcStyle) Style(content Content, conditions env.Conditions) (Content, error) {
	return f.fn(content, conditions)
}

func (f funcStyle) Name() string {
	return f.name
}

// Evaluate runs s for conditions on empty content and returns the resulting
// declarations. A panicking style is reported as an error.
func Evaluate(s Style, conditions env.Conditions) (decls css.Declarations, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("style %s panicked for %v: %v", Identity(s), conditions, r)
		}
	}()

	content, err := s.Style(Content{}, conditions)
	if err != nil {
		return nil, err
	}
	return content.decls.Clone(), nil
}

// Identity returns the stable identity of s: its Name when implemented,
// the qualified type name otherwise.
func Identity(s Style) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// ClassName derives the CSS class name of s. Named styles use their name
// kebab-cased, other styles use their type name with a "Style" suffix
// added when missing, so HeroBanner becomes "hero-banner-style".
func ClassName(s Style) string {
	if n, ok := s.(Named); ok {
		return names.Kebab(n.Name())
	}
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	name := t.Name()
	if !strings.HasSuffix(name, "Style") {
		name += "Style"
	}
	return names.Kebab(name)
}
