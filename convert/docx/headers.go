package docx

import (
	"github.com/beevik/etree"

	"msfmt/common"
	"msfmt/config"
)

const emSpace = "\u2003"

type pageSide int

const (
	oddPage pageSide = iota
	evenPage
)

// alignment maps position relative to spine to paragraph justification.
// Odd pages have binding on the left.
func alignment(pos common.HeaderPosition, side pageSide) string {
	switch pos {
	case common.HeaderPositionInside:
		if side == oddPage {
			return "left"
		}
		return "right"
	case common.HeaderPositionOutside:
		if side == oddPage {
			return "right"
		}
		return "left"
	default:
		return "center"
	}
}

// pageFieldInstr returns PAGE field instruction for numeral style.
func pageFieldInstr(style common.PageNumberStyle) string {
	switch style {
	case common.PageNumberStyleLowerRoman:
		return ` PAGE \* roman `
	case common.PageNumberStyleUpperRoman:
		return ` PAGE \* ROMAN `
	default:
		return ` PAGE `
	}
}

func (a *assembler) addHeadersFooters() sectionRefs {
	var refs sectionRefs

	if hf := &a.c.Format.Header; hf.Enable {
		refs.headerOdd = a.addPart(&part{
			name: "word/header1.xml", mime: mimeHeader, relType: "header",
			doc: buildHeaderFooter("w:hdr", hf, a.c.Header, a.c.Format.PageNumbers.Style, oddPage),
		}).relID
		refs.headerEven = a.addPart(&part{
			name: "word/header2.xml", mime: mimeHeader, relType: "header",
			doc: buildHeaderFooter("w:hdr", hf, a.c.Header, a.c.Format.PageNumbers.Style, evenPage),
		}).relID
	}
	if hf := &a.c.Format.Footer; hf.Enable {
		refs.footerOdd = a.addPart(&part{
			name: "word/footer1.xml", mime: mimeFooter, relType: "footer",
			doc: buildHeaderFooter("w:ftr", hf, a.c.Footer, a.c.Format.PageNumbers.Style, oddPage),
		}).relID
		refs.footerEven = a.addPart(&part{
			name: "word/footer2.xml", mime: mimeFooter, relType: "footer",
			doc: buildHeaderFooter("w:ftr", hf, a.c.Footer, a.c.Format.PageNumbers.Style, evenPage),
		}).relID
	}
	return refs
}

func buildHeaderFooter(tag string, hf *config.HeaderFooterConfig, text string, style common.PageNumberStyle, side pageSide) *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement(tag)
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	jc := alignment(hf.Position, side)

	p := root.CreateElement("w:p")
	p.CreateElement("w:pPr").CreateElement("w:jc").CreateAttr("w:val", jc)

	if !hf.PageNumber {
		if text != "" {
			textRun(p, text)
		}
		return doc
	}

	// page number goes to the outer edge of the text
	switch {
	case text == "":
		pageField(p, style)
	case jc == "left":
		pageField(p, style)
		textRun(p, emSpace+text)
	default:
		textRun(p, text+emSpace)
		pageField(p, style)
	}
	return doc
}

func pageField(p *etree.Element, style common.PageNumberStyle) {
	fld := p.CreateElement("w:fldSimple")
	fld.CreateAttr("w:instr", pageFieldInstr(style))
	textRun(fld, "1")
}
