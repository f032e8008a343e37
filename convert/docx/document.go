package docx

import (
	"strconv"

	"github.com/beevik/etree"

	"msfmt/common"
	"msfmt/content"
)

// sectionRefs lists header and footer relationships of the single section.
type sectionRefs struct {
	headerOdd, headerEven string
	footerOdd, footerEven string
}

func buildDocument(c *content.Content, refs sectionRefs) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	body := root.CreateElement("w:body")

	if c.Format.TOC.Enable {
		appendTOC(body, c)
	}

	bookmark := 0
	for i := range c.Blocks {
		b := &c.Blocks[i]
		if b.BreakBefore {
			appendPageBreak(body)
		}
		if b.IsHeading() {
			appendHeading(body, c, b, bookmark)
			bookmark++
			continue
		}
		appendBodyParagraph(body, c, b)
	}

	appendSectionProperties(body, c, refs)
	return doc
}

func appendTOC(body *etree.Element, c *content.Content) {
	p := body.CreateElement("w:p")
	pStyle(p, "TOCHeading")
	textRun(p, c.Format.TOC.Title)

	for _, entry := range c.TOC {
		p := body.CreateElement("w:p")
		pStyle(p, "TOC1")
		link := p.CreateElement("w:hyperlink")
		link.CreateAttr("w:anchor", entry.AnchorID)
		link.CreateAttr("w:history", "1")
		r := link.CreateElement("w:r")
		r.CreateElement("w:rPr").CreateElement("w:rStyle").CreateAttr("w:val", "Hyperlink")
		addText(r, entry.Label)
	}
	appendPageBreak(body)
}

func appendPageBreak(body *etree.Element) {
	p := body.CreateElement("w:p")
	p.CreateElement("w:r").CreateElement("w:br").CreateAttr("w:type", "page")
}

func appendHeading(body *etree.Element, c *content.Content, b *content.Block, bookmark int) {
	p := body.CreateElement("w:p")
	pPr := pStyle(p, "Heading1")
	spacing := pPr.CreateElement("w:spacing")
	spacing.CreateAttr("w:before", pointsToTwips(c.Format.Font.HeadingTop))
	pPr.CreateElement("w:jc").CreateAttr("w:val", "center")

	id := strconv.Itoa(bookmark)
	start := p.CreateElement("w:bookmarkStart")
	start.CreateAttr("w:id", id)
	start.CreateAttr("w:name", b.Chapter.AnchorID)

	r := p.CreateElement("w:r")
	rPr := r.CreateElement("w:rPr")
	rPr.CreateElement("w:b")
	rPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints(c.Format.Font.HeadingSize))
	addText(r, b.Text)

	p.CreateElement("w:bookmarkEnd").CreateAttr("w:id", id)
}

func appendBodyParagraph(body *etree.Element, c *content.Content, b *content.Block) {
	p := body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")

	spacing := pPr.CreateElement("w:spacing")
	spacing.CreateAttr("w:before", pointsToTwips(c.Format.Spacing.Before))
	spacing.CreateAttr("w:after", pointsToTwips(c.Format.Spacing.After))
	spacing.CreateAttr("w:line", strconv.Itoa(c.Layout.LineHeightUnits))
	spacing.CreateAttr("w:lineRule", "auto")

	indent := "0"
	if b.Indent {
		indent = inchesToTwips(c.Layout.FirstLineIndent)
	}
	pPr.CreateElement("w:ind").CreateAttr("w:firstLine", indent)

	jc := "left"
	if c.Format.Alignment == common.TextAlignJustify {
		jc = "both"
	}
	pPr.CreateElement("w:jc").CreateAttr("w:val", jc)

	textRun(p, b.Text)
}

func appendSectionProperties(body *etree.Element, c *content.Content, refs sectionRefs) {
	sect := body.CreateElement("w:sectPr")

	reference := func(tag, kind, id string) {
		if id == "" {
			return
		}
		ref := sect.CreateElement(tag)
		ref.CreateAttr("w:type", kind)
		ref.CreateAttr("r:id", id)
	}
	reference("w:headerReference", "default", refs.headerOdd)
	reference("w:headerReference", "even", refs.headerEven)
	reference("w:footerReference", "default", refs.footerOdd)
	reference("w:footerReference", "even", refs.footerEven)

	l := c.Layout
	size := sect.CreateElement("w:pgSz")
	size.CreateAttr("w:w", inchesToTwips(l.PageWidth))
	size.CreateAttr("w:h", inchesToTwips(l.PageHeight))

	// with mirrorMargins left and right become inside and outside
	margins := sect.CreateElement("w:pgMar")
	margins.CreateAttr("w:top", inchesToTwips(l.Margins.Top))
	margins.CreateAttr("w:right", inchesToTwips(l.Margins.Outside))
	margins.CreateAttr("w:bottom", inchesToTwips(l.Margins.Bottom))
	margins.CreateAttr("w:left", inchesToTwips(l.Margins.Inside))
	margins.CreateAttr("w:header", "720")
	margins.CreateAttr("w:footer", "720")
	margins.CreateAttr("w:gutter", "0")

	numbers := sect.CreateElement("w:pgNumType")
	numbers.CreateAttr("w:fmt", pageNumberFormat(c.Format.PageNumbers.Style))
	if c.Format.PageNumbers.Start > 0 {
		numbers.CreateAttr("w:start", strconv.Itoa(c.Format.PageNumbers.Start))
	}
}

func pageNumberFormat(style common.PageNumberStyle) string {
	switch style {
	case common.PageNumberStyleLowerRoman:
		return "lowerRoman"
	case common.PageNumberStyleUpperRoman:
		return "upperRoman"
	default:
		return "decimal"
	}
}

// pStyle creates paragraph properties with named style.
func pStyle(p *etree.Element, style string) *etree.Element {
	pPr := p.CreateElement("w:pPr")
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", style)
	return pPr
}

func textRun(p *etree.Element, s string) *etree.Element {
	r := p.CreateElement("w:r")
	addText(r, s)
	return r
}

// addText adds w:t keeping tabs as w:tab elements.
func addText(r *etree.Element, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\t' {
			continue
		}
		if i > start {
			setText(r.CreateElement("w:t"), s[start:i])
		}
		r.CreateElement("w:tab")
		start = i + 1
	}
	if start < len(s) || len(s) == 0 {
		setText(r.CreateElement("w:t"), s[start:])
	}
}

func setText(t *etree.Element, s string) {
	t.CreateAttr("xml:space", "preserve")
	t.SetText(s)
}
