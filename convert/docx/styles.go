package docx

import (
	"strconv"

	"github.com/beevik/etree"
	"golang.org/x/text/language"

	"msfmt/content"
)

func buildStyles(c *content.Content) *etree.Document {
	doc := newXMLDocument()
	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", nsW)

	font := c.Format.Font

	rPr := styles.CreateElement("w:docDefaults").CreateElement("w:rPrDefault").CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	for _, attr := range []string{"w:ascii", "w:hAnsi", "w:cs", "w:eastAsia"} {
		fonts.CreateAttr(attr, font.Family)
	}
	rPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints(font.Size))
	rPr.CreateElement("w:szCs").CreateAttr("w:val", halfPoints(font.Size))
	if c.Language != language.Und {
		rPr.CreateElement("w:lang").CreateAttr("w:val", c.Language.String())
	}

	normal := addStyle(styles, "paragraph", "Normal", "Normal", "")
	normal.CreateAttr("w:default", "1")
	normal.CreateElement("w:qFormat")

	heading := addStyle(styles, "paragraph", "Heading1", "heading 1", "Normal")
	heading.CreateElement("w:next").CreateAttr("w:val", "Normal")
	heading.CreateElement("w:qFormat")
	hpPr := heading.CreateElement("w:pPr")
	hpPr.CreateElement("w:keepNext")
	hpPr.CreateElement("w:spacing").CreateAttr("w:after", pointsToTwips(font.Size))
	hpPr.CreateElement("w:jc").CreateAttr("w:val", "center")
	hpPr.CreateElement("w:outlineLvl").CreateAttr("w:val", "0")
	hrPr := heading.CreateElement("w:rPr")
	hrPr.CreateElement("w:b")
	hrPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints(font.HeadingSize))

	tocHeading := addStyle(styles, "paragraph", "TOCHeading", "TOC Heading", "Heading1")
	tocHeading.CreateElement("w:next").CreateAttr("w:val", "Normal")
	tocHeading.CreateElement("w:pPr").CreateElement("w:outlineLvl").CreateAttr("w:val", "9")

	toc1 := addStyle(styles, "paragraph", "TOC1", "toc 1", "Normal")
	toc1.CreateElement("w:next").CreateAttr("w:val", "Normal")
	toc1.CreateElement("w:pPr").CreateElement("w:spacing").CreateAttr("w:after", strconv.Itoa(100))

	link := addStyle(styles, "character", "Hyperlink", "Hyperlink", "")
	lrPr := link.CreateElement("w:rPr")
	lrPr.CreateElement("w:color").CreateAttr("w:val", "0563C1")
	lrPr.CreateElement("w:u").CreateAttr("w:val", "single")

	return doc
}

func addStyle(styles *etree.Element, kind, id, name, basedOn string) *etree.Element {
	st := styles.CreateElement("w:style")
	st.CreateAttr("w:type", kind)
	st.CreateAttr("w:styleId", id)
	st.CreateElement("w:name").CreateAttr("w:val", name)
	if basedOn != "" {
		st.CreateElement("w:basedOn").CreateAttr("w:val", basedOn)
	}
	return st
}
