// Package text keeps plain text transformations applied to body paragraphs.
package text

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Toggles selects typographic replacements performed by Normalize.
type Toggles struct {
	CurlyQuotes bool
	EmDashes    bool
	Ellipsis    bool
}

const (
	leftDoubleQuote  = "“"
	rightDoubleQuote = "”"
	leftSingleQuote  = "‘"
	rightSingleQuote = "’"
	emDash           = "—"
	ellipsis         = "…"
)

// Quote conversion is a single pass over "opening, content, closing" shapes
// where opening quote follows whitespace or starts the text. Nested quotes
// and apostrophes inside single quoted spans are not handled.
var (
	doubleQuoted = regexp.MustCompile(`(^|\s)"([^"]*)"`)
	singleQuoted = regexp.MustCompile(`(^|\s)'([^']*)'`)
	multiSpace   = regexp.MustCompile(` {2,}`)
)

// Normalize rewrites punctuation of a single body paragraph. Order of the
// steps is fixed: entities are decoded, then quotes, dashes and ellipses are
// replaced as requested, and finally runs of spaces are always collapsed.
func Normalize(s string, t Toggles) string {
	s = DecodeEntities(s)

	if t.CurlyQuotes {
		s = doubleQuoted.ReplaceAllString(s, "${1}"+leftDoubleQuote+"${2}"+rightDoubleQuote)
		s = singleQuoted.ReplaceAllString(s, "${1}"+leftSingleQuote+"${2}"+rightSingleQuote)
	}
	if t.EmDashes {
		s = strings.ReplaceAll(s, "--", emDash)
	}
	if t.Ellipsis {
		s = strings.ReplaceAll(s, "...", ellipsis)
	}
	return multiSpace.ReplaceAllString(s, " ")
}

// DecodeEntities resolves HTML named and numeric character references left in
// text after XML parsing (double encoded sources are common).
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}
