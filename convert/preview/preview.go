// Package preview renders formatted manuscript as an HTML fragment with
// companion stylesheet for on-screen preview.
package preview

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"msfmt/common"
	"msfmt/config"
	"msfmt/content"
	"msfmt/css"
)

// Options controls rendering of a single preview.
type Options struct {
	// Sanitize passes resulting fragment through HTML sanitizer.
	Sanitize bool
	// UserCSS is appended to generated stylesheet, UserCSSName is used in
	// diagnostics only.
	UserCSS     []byte
	UserCSSName string
}

// OptionsFromConfig loads user stylesheet if one is configured.
func OptionsFromConfig(cfg *config.PreviewConfig) (Options, error) {
	opts := Options{Sanitize: cfg.Sanitize}
	if cfg.StylesheetPath == "" {
		return opts, nil
	}
	data, err := os.ReadFile(cfg.StylesheetPath)
	if err != nil {
		return opts, fmt.Errorf("unable to read stylesheet: %w", err)
	}
	opts.UserCSS, opts.UserCSSName = data, cfg.StylesheetPath
	return opts, nil
}

// Result is rendered preview.
type Result struct {
	HTML string
	CSS  string
	// Warnings about ignored stylesheet constructs.
	Warnings []string
}

// Render produces HTML fragment and stylesheet for prepared content.
func Render(c *content.Content, opts Options, log *zap.Logger) (*Result, error) {
	log = log.Named("preview")

	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true
	doc.SetRoot(buildMarkup(c))
	doc.Indent(2)

	html, err := doc.WriteToString()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to write markup: %w", common.ErrSerialization, err)
	}
	if opts.Sanitize {
		html = sanitizer().Sanitize(html)
	}

	sheet := Stylesheet(c)
	if len(opts.UserCSS) > 0 {
		sheet.Append(css.NewParser(log).Parse(opts.UserCSS, opts.UserCSSName))
	}
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet construct ignored", zap.String("warning", w))
	}

	log.Debug("Preview rendered", zap.Stringer("id", c.ID), zap.Int("html", len(html)), zap.Bool("sanitized", opts.Sanitize))
	return &Result{HTML: html, CSS: sheet.String(), Warnings: sheet.Warnings}, nil
}

func buildMarkup(c *content.Content) *etree.Element {
	root := etree.NewElement("div")
	root.CreateAttr("class", "manuscript")
	if c.Language != language.Und {
		root.CreateAttr("lang", c.Language.String())
	}

	if c.Format.TOC.Enable {
		nav := root.CreateElement("nav")
		nav.CreateAttr("class", "toc")
		title := nav.CreateElement("h1")
		title.CreateAttr("class", "toc-title")
		title.SetText(c.Format.TOC.Title)
		list := nav.CreateElement("ul")
		for _, entry := range c.TOC {
			li := list.CreateElement("li")
			li.CreateAttr("class", "role-"+entry.Role.String())
			a := li.CreateElement("a")
			a.CreateAttr("href", "#"+entry.AnchorID)
			a.SetText(entry.Label)
		}
		pageBreak(root)
	}

	for i := range c.Blocks {
		b := &c.Blocks[i]
		if b.BreakBefore {
			pageBreak(root)
		}
		if b.IsHeading() {
			h := root.CreateElement("h1")
			h.CreateAttr("class", "chapter-heading role-"+b.Chapter.Role.String())
			a := h.CreateElement("a")
			a.CreateAttr("id", b.Chapter.AnchorID)
			a.SetText(b.Text)
			continue
		}
		p := root.CreateElement("p")
		if !b.Indent {
			p.CreateAttr("class", "no-indent")
		}
		p.SetText(b.Text)
	}
	return root
}

func pageBreak(root *etree.Element) {
	root.CreateElement("div").CreateAttr("class", "page-break")
}
