// Package css models stylesheets generated for manuscript preview and parses
// user supplied additions to them.
package css

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
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

// Value represents a CSS property value.
type Value struct {
	Raw     string  // CSS text of the value (e.g., "1.2em", "bold", "counter(page)")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "in", "%", "pt", etc.
	Keyword string  // Keyword or unquoted string if applicable
}

// Length returns numeric value with unit, numbers are formatted without
// trailing zeroes.
func Length(v float64, unit string) Value {
	return Value{Raw: formatNumber(v) + unit, Value: v, Unit: unit}
}

// Number returns unitless numeric value.
func Number(v float64) Value {
	return Value{Raw: formatNumber(v), Value: v}
}

// Keyword returns identifier value.
func Keyword(k string) Value {
	return Value{Raw: k, Keyword: k}
}

// String returns quoted string value.
func String(s string) Value {
	return Value{Raw: `"` + cssEscapeDoubleQuoted(s) + `"`, Keyword: s}
}

// Raw returns value as is, used for functions and lists.
func Raw(s string) Value {
	return Value{Raw: s, Keyword: s}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsNumeric returns true if the value has a numeric component.
func (v Value) IsNumeric() bool {
	return v.Unit != "" || (v.Keyword == "" && v.Raw != "")
}

// Properties maps property name to value, written in alphabetical order.
type Properties map[string]Value

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   string
	Properties Properties
}

// NewRule returns empty rule for selector.
func NewRule(selector string) *Rule {
	return &Rule{Selector: selector, Properties: make(Properties)}
}

// Set adds or replaces property, returns the rule for chaining.
func (r *Rule) Set(name string, v Value) *Rule {
	r.Properties[name] = v
	return r
}

// GetProperty returns the value for a property.
func (r *Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// MarginBox is a page margin area of @page rule, e.g. @top-center.
type MarginBox struct {
	Name       string
	Properties Properties
}

// PageRule represents @page rule with optional page selector (":left",
// ":right", ":first").
type PageRule struct {
	Selector    string
	Properties  Properties
	MarginBoxes []MarginBox
}

// NewPageRule returns empty @page rule.
func NewPageRule(selector string) *PageRule {
	return &PageRule{Selector: selector, Properties: make(Properties)}
}

// Set adds or replaces page property, returns the rule for chaining.
func (p *PageRule) Set(name string, v Value) *PageRule {
	p.Properties[name] = v
	return p
}

// AddMarginBox appends margin box to the page rule.
func (p *PageRule) AddMarginBox(name string, props Properties) *PageRule {
	p.MarginBoxes = append(p.MarginBoxes, MarginBox{Name: name, Properties: props})
	return p
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of the fields is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	Page       *PageRule
	MediaBlock *MediaBlock
	Import     *string
}

// Stylesheet represents a CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for skipped constructs
}

// AddRule appends rule to the stylesheet.
func (s *Stylesheet) AddRule(r *Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: r})
}

// AddPage appends @page rule to the stylesheet.
func (s *Stylesheet) AddPage(p *PageRule) {
	s.Items = append(s.Items, StylesheetItem{Page: p})
}

// Append adds all items of other stylesheet after existing ones. Imports
// are only valid at the beginning of stylesheet and are dropped with a
// warning.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	for _, item := range other.Items {
		if item.Import != nil {
			s.Warnings = append(s.Warnings, "@import ignored in appended stylesheet: "+*item.Import)
			continue
		}
		s.Items = append(s.Items, item)
	}
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// Pages returns all @page rules in source order.
func (s *Stylesheet) Pages() []PageRule {
	var pages []PageRule
	for _, item := range s.Items {
		if item.Page != nil {
			pages = append(pages, *item.Page)
		}
	}
	return pages
}

// countingWriter accumulates written bytes and the first error, so writers
// below do not have to check every call.
type countingWriter struct {
	w     io.Writer
	total int64
	err   error
}

func (cw *countingWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}
	n, err := fmt.Fprintf(cw.w, format, args...)
	cw.total += int64(n)
	cw.err = err
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for i, item := range s.Items {
		if i > 0 {
			cw.printf("\n")
		}
		switch {
		case item.Import != nil:
			cw.printf("@import url(\"%s\");\n", cssEscapeDoubleQuoted(*item.Import))
		case item.Page != nil:
			writePage(cw, item.Page)
		case item.MediaBlock != nil:
			cw.printf("@media %s {\n", item.MediaBlock.Query)
			for j := range item.MediaBlock.Rules {
				if j > 0 {
					cw.printf("\n")
				}
				writeBlock(cw, "  ", item.MediaBlock.Rules[j].Selector, item.MediaBlock.Rules[j].Properties)
			}
			cw.printf("}\n")
		case item.Rule != nil:
			writeBlock(cw, "", item.Rule.Selector, item.Rule.Properties)
		}
	}
	return cw.total, cw.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writePage(cw *countingWriter, p *PageRule) {
	if p.Selector != "" {
		cw.printf("@page %s {\n", p.Selector)
	} else {
		cw.printf("@page {\n")
	}
	writeProperties(cw, "  ", p.Properties)
	for _, mb := range p.MarginBoxes {
		writeBlock(cw, "  ", "@"+mb.Name, mb.Properties)
	}
	cw.printf("}\n")
}

func writeBlock(cw *countingWriter, indent, selector string, props Properties) {
	cw.printf("%s%s {\n", indent, selector)
	writeProperties(cw, indent+"  ", props)
	cw.printf("%s}\n", indent)
}

func writeProperties(cw *countingWriter, indent string, props Properties) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cw.printf("%s%s: %s;\n", indent, name, props[name].Raw)
	}
}
