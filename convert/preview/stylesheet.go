package preview

import (
	"strconv"

	"msfmt/common"
	"msfmt/config"
	"msfmt/content"
	"msfmt/css"
)

// Stylesheet generates preview styles. Only configuration, layout and
// expanded header/footer texts are used, paragraphs have no effect.
func Stylesheet(c *content.Content) *css.Stylesheet {
	f, l := &c.Format, c.Layout
	sheet := &css.Stylesheet{}

	root := css.NewRule(".manuscript").
		Set("font-family", css.Raw(css.String(f.Font.Family).Raw+", serif")).
		Set("font-size", css.Length(f.Font.Size, "pt")).
		Set("line-height", css.Number(l.LineHeight()))
	sheet.AddRule(root)

	align := "left"
	if f.Alignment == common.TextAlignJustify {
		align = "justify"
	}
	sheet.AddRule(css.NewRule(".manuscript p").
		Set("margin-top", css.Length(f.Spacing.Before, "pt")).
		Set("margin-bottom", css.Length(f.Spacing.After, "pt")).
		Set("text-indent", css.Length(l.FirstLineIndent, "in")).
		Set("text-align", css.Keyword(align)))
	sheet.AddRule(css.NewRule(".manuscript p.no-indent").
		Set("text-indent", css.Length(0, "")))

	sheet.AddRule(css.NewRule(".manuscript h1.chapter-heading, .manuscript h1.toc-title").
		Set("font-size", css.Length(f.Font.HeadingSize, "pt")).
		Set("font-weight", css.Keyword("bold")).
		Set("text-align", css.Keyword("center")))
	sheet.AddRule(css.NewRule(".manuscript h1.chapter-heading").
		Set("margin-top", css.Length(f.Font.HeadingTop, "pt")))
	sheet.AddRule(css.NewRule(".manuscript h1.chapter-heading a").
		Set("color", css.Keyword("inherit")).
		Set("text-decoration", css.Keyword("none")))
	sheet.AddRule(css.NewRule(".manuscript nav.toc ul").
		Set("list-style", css.Keyword("none")).
		Set("padding-left", css.Length(0, "")))

	sheet.AddRule(css.NewRule(".manuscript .page-break").
		Set("break-after", css.Keyword("page")).
		Set("page-break-after", css.Keyword("always")).
		Set("border-top", css.Raw("1px dashed #999")).
		Set("margin", css.Raw("2em 0")))

	addPageRules(sheet, c)
	return sheet
}

// addPageRules describes paged media: right pages are odd and have binding
// on the left.
func addPageRules(sheet *css.Stylesheet, c *content.Content) {
	f, l := &c.Format, c.Layout

	sheet.AddPage(css.NewPageRule("").
		Set("size", css.Raw(css.Length(l.PageWidth, "in").Raw+" "+css.Length(l.PageHeight, "in").Raw)).
		Set("margin-top", css.Length(l.Margins.Top, "in")).
		Set("margin-bottom", css.Length(l.Margins.Bottom, "in")))

	// page counter lives in the page context, element counters do not reach it
	if f.PageNumbers.Start > 1 {
		sheet.AddPage(css.NewPageRule(":first").
			Set("counter-reset", css.Raw("page "+strconv.Itoa(f.PageNumbers.Start))))
	}

	for _, side := range []struct {
		selector string
		odd      bool
	}{{":right", true}, {":left", false}} {
		page := css.NewPageRule(side.selector)
		if side.odd {
			page.Set("margin-left", css.Length(l.Margins.Inside, "in")).
				Set("margin-right", css.Length(l.Margins.Outside, "in"))
		} else {
			page.Set("margin-left", css.Length(l.Margins.Outside, "in")).
				Set("margin-right", css.Length(l.Margins.Inside, "in"))
		}
		addMarginBox(page, "top", &f.Header, c.Header, f.PageNumbers.Style, side.odd)
		addMarginBox(page, "bottom", &f.Footer, c.Footer, f.PageNumbers.Style, side.odd)
		sheet.AddPage(page)
	}
}

func addMarginBox(page *css.PageRule, edge string, hf *config.HeaderFooterConfig, text string, style common.PageNumberStyle, odd bool) {
	if !hf.Enable {
		return
	}
	side := boxSide(hf.Position, odd)

	const emSpace = "\u2003"
	var value string
	switch {
	case !hf.PageNumber:
		value = css.String(text).Raw
	case text == "":
		value = pageCounter(style)
	case side == "left":
		value = pageCounter(style) + " " + css.String(emSpace+text).Raw
	default:
		value = css.String(text+emSpace).Raw + " " + pageCounter(style)
	}

	page.AddMarginBox(edge+"-"+side, css.Properties{
		"content":    css.Raw(value),
		"text-align": css.Keyword(side),
	})
}

// boxSide maps position relative to spine to horizontal side of the page.
func boxSide(pos common.HeaderPosition, odd bool) string {
	switch pos {
	case common.HeaderPositionInside:
		if odd {
			return "left"
		}
		return "right"
	case common.HeaderPositionOutside:
		if odd {
			return "right"
		}
		return "left"
	default:
		return "center"
	}
}

func pageCounter(style common.PageNumberStyle) string {
	switch style {
	case common.PageNumberStyleLowerRoman:
		return "counter(page, lower-roman)"
	case common.PageNumberStyleUpperRoman:
		return "counter(page, upper-roman)"
	default:
		return "counter(page)"
	}
}
