package css

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

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

// Parse parses CSS text into a Stylesheet. Rules, @media, @page and @import
// are kept, everything else is skipped with a warning.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var selectors []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.AtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@import" {
				if url := extractImportURL(parser.Values()); url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
				}
				continue
			}
			p.skip(sheet, atRule)

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			switch atRule {
			case "@media":
				query := tokensText(parser.Values())
				rules := p.parseMediaRules(parser, sheet)
				sheet.Items = append(sheet.Items, StylesheetItem{MediaBlock: &MediaBlock{Query: query, Rules: rules}})
			case "@page":
				page := NewPageRule(tokensText(parser.Values()))
				p.parsePage(parser, page)
				sheet.AddPage(page)
			default:
				p.skip(sheet, atRule)
				skipBlock(parser)
			}

		case css.QualifiedRuleGrammar:
			// part of grouped selector before comma
			selectors = append(selectors, selectorText(data, parser.Values()))

		case css.BeginRulesetGrammar:
			selectors = append(selectors, selectorText(data, parser.Values()))
			sheet.AddRule(&Rule{
				Selector:   joinSelectors(selectors),
				Properties: p.parseDeclarations(parser),
			})
			selectors = nil
		}
	}
}

func (p *Parser) skip(sheet *Stylesheet, atRule string) {
	sheet.Warnings = append(sheet.Warnings, "unsupported at-rule skipped: "+atRule)
	p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
}

// parseMediaRules parses rulesets inside @media block.
func (p *Parser) parseMediaRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var (
		rules     []Rule
		selectors []string
	)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules
		case css.BeginAtRuleGrammar:
			p.skip(sheet, strings.ToLower(string(data)))
			skipBlock(parser)
		case css.QualifiedRuleGrammar:
			selectors = append(selectors, selectorText(data, parser.Values()))
		case css.BeginRulesetGrammar:
			selectors = append(selectors, selectorText(data, parser.Values()))
			rules = append(rules, Rule{
				Selector:   joinSelectors(selectors),
				Properties: p.parseDeclarations(parser),
			})
			selectors = nil
		}
	}
}

// parsePage parses @page body: declarations and margin boxes.
func (p *Parser) parsePage(parser *css.Parser, page *PageRule) {
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return
		case css.DeclarationGrammar:
			page.Properties[strings.ToLower(string(data))] = parseValue(parser.Values())
		case css.BeginAtRuleGrammar:
			name := strings.TrimPrefix(strings.ToLower(string(data)), "@")
			page.AddMarginBox(name, p.parseDeclarations(parser))
		}
	}
}

// parseDeclarations parses property declarations until the end of current
// block.
func (p *Parser) parseDeclarations(parser *css.Parser) Properties {
	props := make(Properties)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar, css.EndAtRuleGrammar:
			return props
		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				props[strings.ToLower(string(data))] = parseValue(values)
			}
		case css.CustomPropertyGrammar:
			// --name: value, case sensitive
			props[string(data)] = Raw(tokensText(parser.Values()))
		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			// nested blocks are not supported
			skipBlock(parser)
		}
	}
}

// skipBlock skips tokens until the matching end of current block.
func skipBlock(parser *css.Parser) {
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

// parseValue converts CSS tokens to a Value.
func parseValue(tokens []css.Token) Value {
	val := Value{Raw: tokensText(tokens)}

	var significant []css.Token
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			significant = append(significant, t)
		}
	}
	if len(significant) != 1 {
		val.Keyword = val.Raw
		return val
	}

	t := significant[0]
	switch t.TokenType {
	case css.DimensionToken:
		val.Value, val.Unit = parseDimension(string(t.Data))
	case css.PercentageToken:
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	default:
		val.Keyword = val.Raw
	}
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}

// tokensText joins tokens collapsing whitespace runs into single space.
func tokensText(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(t.Data)
	}
	return sb.String()
}

func selectorText(data []byte, values []css.Token) string {
	return strings.TrimSpace(string(data) + tokensText(values))
}

// joinSelectors normalizes grouped selector, parts may arrive either one by
// one or already joined.
func joinSelectors(parts []string) string {
	var out []string
	for _, part := range parts {
		for s := range strings.SplitSeq(part, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return strings.Join(out, ", ")
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for i, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			s := string(t.Data)
			s = strings.TrimPrefix(s, "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		case css.FunctionToken:
			// url( "quoted" ) is tokenized as function with string argument
			if strings.EqualFold(string(t.Data), "url(") {
				return extractImportURL(tokens[i+1:])
			}
		}
	}
	return ""
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
