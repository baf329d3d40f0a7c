// Package names converts Go identifiers into CSS friendly names.
package names

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

// Kebab converts an identifier such as "HeroBannerStyle" or "HTTPLink" into
// lower case words joined with dashes: "hero-banner-style", "http-link".
// Anything slug would not keep in an URL is dropped.
func Kebab(s string) string {
	return slug.Make(SplitCamel(s))
}

// SplitCamel separates words of a camel case identifier with spaces.
// Acronyms stay together.
func SplitCamel(s string) string {
	var sb strings.Builder
	rs := []rune(s)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
