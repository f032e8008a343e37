package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap/zaptest"

	"msfmt/archive"
	"msfmt/common"
	"msfmt/config"
	"msfmt/content"
	"msfmt/manuscript/docxtest"
)

func testFormat() *config.FormatConfig {
	return &config.FormatConfig{
		Margins:     config.MarginsConfig{Top: 1, Bottom: 1, Inside: 1, Outside: 0.75},
		Indent:      config.IndentConfig{Enable: true, Size: 0.5, SkipFirst: true},
		Spacing:     config.SpacingConfig{Line: "double", Before: 0, After: 6},
		Font:        config.FontConfig{Family: "Georgia", Size: 12, HeadingSize: 18, HeadingTop: 72},
		Typography:  config.TypographyConfig{CurlyQuotes: true, EmDashes: true, Ellipsis: true},
		TOC:         config.TOCConfig{Enable: true, Title: "Table of Contents"},
		Alignment:   common.TextAlignJustify,
		Trim:        config.TrimConfig{Width: 6, Height: 9},
		PageNumbers: config.PageNumbersConfig{Style: common.PageNumberStyleArabic, Start: 1},
		Author:      "Jane Doe",
		Title:       "A Book",
		Language:    "en-US",
	}
}

func prepare(t *testing.T, cfg *config.FormatConfig, paragraphs ...string) *content.Content {
	t.Helper()
	c, err := content.Prepare(docxtest.Build(t, paragraphs...), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return c
}

func assemble(t *testing.T, c *content.Content) *zip.Reader {
	t.Helper()
	data, err := Assemble(c, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	r, err := archive.Open(data)
	if err != nil {
		t.Fatalf("unable to open result: %v", err)
	}
	return r
}

func readPart(t *testing.T, r *zip.Reader, name string) *etree.Document {
	t.Helper()
	data, err := archive.ReadFile(r, name)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", name, err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("unable to parse %s: %v", name, err)
	}
	return doc
}

func hasPart(r *zip.Reader, name string) bool {
	_, err := archive.Find(r, name)
	return err == nil
}

func TestAssemble_Parts(t *testing.T) {
	tests := []struct {
		name        string
		header      bool
		footer      bool
		wantHeaders bool
		wantFooters bool
	}{
		{name: "no header or footer"},
		{name: "header only", header: true, wantHeaders: true},
		{name: "footer only", footer: true, wantFooters: true},
		{name: "both", header: true, footer: true, wantHeaders: true, wantFooters: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testFormat()
			cfg.Header = config.HeaderFooterConfig{Enable: tt.header, Template: "{{ .Author }}"}
			cfg.Footer = config.HeaderFooterConfig{Enable: tt.footer, PageNumber: true, Position: common.HeaderPositionCenter}
			r := assemble(t, prepare(t, cfg, "Chapter 1", "Text."))

			for _, name := range []string{
				"[Content_Types].xml", "_rels/.rels", "docProps/core.xml", "word/document.xml",
				"word/styles.xml", "word/settings.xml", "word/_rels/document.xml.rels",
			} {
				if !hasPart(r, name) {
					t.Errorf("part %s is missing", name)
				}
			}
			for _, name := range []string{"word/header1.xml", "word/header2.xml"} {
				if got := hasPart(r, name); got != tt.wantHeaders {
					t.Errorf("part %s present = %v, want %v", name, got, tt.wantHeaders)
				}
			}
			for _, name := range []string{"word/footer1.xml", "word/footer2.xml"} {
				if got := hasPart(r, name); got != tt.wantFooters {
					t.Errorf("part %s present = %v, want %v", name, got, tt.wantFooters)
				}
			}

			settings := readPart(t, r, "word/settings.xml")
			if settings.FindElement("//w:updateFields") != nil {
				t.Error("settings ask to update fields on open")
			}
			if settings.FindElement("//w:mirrorMargins") == nil {
				t.Error("mirrorMargins is missing")
			}
			evenOdd := settings.FindElement("//w:evenAndOddHeaders") != nil
			if evenOdd != (tt.header || tt.footer) {
				t.Errorf("evenAndOddHeaders = %v", evenOdd)
			}

			// every reference must resolve to relationship
			rels := readPart(t, r, "word/_rels/document.xml.rels")
			targets := map[string]string{}
			for _, rel := range rels.FindElements("//Relationship") {
				targets[rel.SelectAttrValue("Id", "")] = rel.SelectAttrValue("Target", "")
			}
			doc := readPart(t, r, "word/document.xml")
			refs := doc.FindElements("//w:sectPr/w:headerReference")
			refs = append(refs, doc.FindElements("//w:sectPr/w:footerReference")...)
			want := 0
			if tt.header {
				want += 2
			}
			if tt.footer {
				want += 2
			}
			if len(refs) != want {
				t.Fatalf("section references = %d, want %d", len(refs), want)
			}
			for _, ref := range refs {
				target, ok := targets[ref.SelectAttrValue("r:id", "")]
				if !ok || !hasPart(r, "word/"+target) {
					t.Errorf("reference %s does not resolve (%q)", ref.SelectAttrValue("r:id", ""), target)
				}
			}
		})
	}
}

func TestAssemble_HeadingsAndTOC(t *testing.T) {
	c := prepare(t, testFormat(), "Prologue", "Body text.", "Chapter 1", "More text.", "Chapter Two", "End.")
	doc := readPart(t, assemble(t, c), "word/document.xml")

	bookmarks := doc.FindElements("//w:bookmarkStart")
	if len(bookmarks) != len(c.Chapters) {
		t.Fatalf("bookmarks = %d, want %d", len(bookmarks), len(c.Chapters))
	}
	for i, bm := range bookmarks {
		if got := bm.SelectAttrValue("w:name", ""); got != c.Chapters[i].AnchorID {
			t.Errorf("bookmark %d name = %q, want %q", i, got, c.Chapters[i].AnchorID)
		}
		p := bm.Parent()
		if got := p.FindElement("w:pPr/w:jc").SelectAttrValue("w:val", ""); got != "center" {
			t.Errorf("heading %d alignment = %q", i, got)
		}
		if p.FindElement("w:r/w:rPr/w:b") == nil {
			t.Errorf("heading %d is not bold", i)
		}
		if got := p.FindElement("w:pPr/w:spacing").SelectAttrValue("w:before", ""); got != "1440" {
			t.Errorf("heading %d spacing before = %q, want 1440", i, got)
		}
	}
	if got := len(doc.FindElements("//w:bookmarkEnd")); got != len(bookmarks) {
		t.Errorf("bookmarkEnd = %d, want %d", got, len(bookmarks))
	}

	title := doc.FindElement("//w:body/w:p[1]")
	if got := title.FindElement("w:pPr/w:pStyle").SelectAttrValue("w:val", ""); got != "TOCHeading" {
		t.Errorf("first paragraph style = %q, want TOCHeading", got)
	}
	if got := title.FindElement("w:r/w:t").Text(); got != "Table of Contents" {
		t.Errorf("TOC title = %q", got)
	}

	links := doc.FindElements("//w:hyperlink")
	want := []struct{ anchor, label string }{
		{"chapter_1", "Prologue"},
		{"chapter_2", "Chapter 1"},
		{"chapter_3", "Chapter 2"},
	}
	if len(links) != len(want) {
		t.Fatalf("links = %d, want %d", len(links), len(want))
	}
	for i, l := range links {
		if got := l.SelectAttrValue("w:anchor", ""); got != want[i].anchor {
			t.Errorf("link %d anchor = %q, want %q", i, got, want[i].anchor)
		}
		if got := l.FindElement("w:r/w:t").Text(); got != want[i].label {
			t.Errorf("link %d label = %q, want %q", i, got, want[i].label)
		}
	}

	// one after TOC and one before every non-first heading
	if got := len(doc.FindElements("//w:br[@w:type='page']")); got != 3 {
		t.Errorf("page breaks = %d, want 3", got)
	}
}

func TestAssemble_NoTOC(t *testing.T) {
	cfg := testFormat()
	cfg.TOC.Enable = false
	doc := readPart(t, assemble(t, prepare(t, cfg, "Chapter 1", "Text.")), "word/document.xml")

	if doc.FindElement("//w:hyperlink") != nil {
		t.Error("hyperlink found with TOC disabled")
	}
	if got := len(doc.FindElements("//w:br[@w:type='page']")); got != 0 {
		t.Errorf("page breaks = %d, want 0", got)
	}
}

func TestAssemble_BodyParagraphs(t *testing.T) {
	tests := []struct {
		name      string
		alignment common.TextAlign
		skipFirst bool
		wantJc    string
		wantInd   []string
	}{
		{name: "justify skip first", alignment: common.TextAlignJustify, skipFirst: true, wantJc: "both", wantInd: []string{"0", "720"}},
		{name: "left indent all", alignment: common.TextAlignLeft, wantJc: "left", wantInd: []string{"720", "720"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testFormat()
			cfg.TOC.Enable = false
			cfg.Alignment = tt.alignment
			cfg.Indent.SkipFirst = tt.skipFirst
			doc := readPart(t, assemble(t, prepare(t, cfg, "Chapter 1", "First.", "Second.")), "word/document.xml")

			var body []*etree.Element
			for _, p := range doc.FindElements("//w:body/w:p") {
				if p.FindElement("w:pPr/w:ind") != nil {
					body = append(body, p)
				}
			}
			if len(body) != len(tt.wantInd) {
				t.Fatalf("body paragraphs = %d, want %d", len(body), len(tt.wantInd))
			}
			for i, p := range body {
				if got := p.FindElement("w:pPr/w:ind").SelectAttrValue("w:firstLine", ""); got != tt.wantInd[i] {
					t.Errorf("paragraph %d firstLine = %q, want %q", i, got, tt.wantInd[i])
				}
				if got := p.FindElement("w:pPr/w:jc").SelectAttrValue("w:val", ""); got != tt.wantJc {
					t.Errorf("paragraph %d jc = %q, want %q", i, got, tt.wantJc)
				}
				spacing := p.FindElement("w:pPr/w:spacing")
				if got := spacing.SelectAttrValue("w:line", ""); got != "480" {
					t.Errorf("paragraph %d line = %q, want 480", i, got)
				}
				if got := spacing.SelectAttrValue("w:after", ""); got != "120" {
					t.Errorf("paragraph %d after = %q, want 120", i, got)
				}
				if got := spacing.SelectAttrValue("w:lineRule", ""); got != "auto" {
					t.Errorf("paragraph %d lineRule = %q", i, got)
				}
			}
		})
	}
}

func TestAssemble_SectionProperties(t *testing.T) {
	cfg := testFormat()
	cfg.PageNumbers = config.PageNumbersConfig{Style: common.PageNumberStyleLowerRoman, Start: 3}
	doc := readPart(t, assemble(t, prepare(t, cfg, "Text.")), "word/document.xml")

	sect := doc.FindElement("//w:body/w:sectPr")
	if sect == nil {
		t.Fatal("sectPr is missing")
	}
	attrs := func(el *etree.Element, names ...string) []string {
		var vals []string
		for _, n := range names {
			vals = append(vals, el.SelectAttrValue(n, ""))
		}
		return vals
	}
	check := func(what string, got, want []string) {
		t.Helper()
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s = %v, want %v", what, got, want)
				return
			}
		}
	}
	check("pgSz", attrs(sect.FindElement("w:pgSz"), "w:w", "w:h"), []string{"8640", "12960"})
	check("pgMar", attrs(sect.FindElement("w:pgMar"), "w:top", "w:bottom", "w:left", "w:right"),
		[]string{"1440", "1440", "1440", "1080"})
	check("pgNumType", attrs(sect.FindElement("w:pgNumType"), "w:fmt", "w:start"), []string{"lowerRoman", "3"})
}

func TestAssemble_AutoMargins(t *testing.T) {
	cfg := testFormat()
	cfg.Margins.Auto = true
	cfg.Spacing.Line = "single"

	paragraphs := make([]string, 300)
	for i := range paragraphs {
		paragraphs[i] = "Text."
	}
	doc := readPart(t, assemble(t, prepare(t, cfg, paragraphs...)), "word/document.xml")
	mar := doc.FindElement("//w:sectPr/w:pgMar")
	// 100 pages estimated
	if got := mar.SelectAttrValue("w:left", ""); got != "540" {
		t.Errorf("inside margin = %q, want 540", got)
	}
	if got := mar.SelectAttrValue("w:right", ""); got != "1080" {
		t.Errorf("outside margin = %q, want 1080", got)
	}
}

func TestAssemble_HeaderFooter(t *testing.T) {
	tests := []struct {
		name     string
		position common.HeaderPosition
		style    common.PageNumberStyle
		wantOdd  string
		wantEven string
		wantInst string
	}{
		{"inside arabic", common.HeaderPositionInside, common.PageNumberStyleArabic, "left", "right", " PAGE "},
		{"outside lower roman", common.HeaderPositionOutside, common.PageNumberStyleLowerRoman, "right", "left", ` PAGE \* roman `},
		{"center upper roman", common.HeaderPositionCenter, common.PageNumberStyleUpperRoman, "center", "center", ` PAGE \* ROMAN `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testFormat()
			cfg.Header = config.HeaderFooterConfig{Enable: true, Template: "{{ .Author }} / {{ .Title }}", Position: tt.position, PageNumber: true}
			cfg.PageNumbers.Style = tt.style
			r := assemble(t, prepare(t, cfg, "Text."))

			for name, want := range map[string]string{"word/header1.xml": tt.wantOdd, "word/header2.xml": tt.wantEven} {
				doc := readPart(t, r, name)
				if got := doc.FindElement("//w:p/w:pPr/w:jc").SelectAttrValue("w:val", ""); got != want {
					t.Errorf("%s alignment = %q, want %q", name, got, want)
				}
				fld := doc.FindElement("//w:fldSimple")
				if fld == nil {
					t.Fatalf("%s has no page field", name)
				}
				if got := fld.SelectAttrValue("w:instr", ""); got != tt.wantInst {
					t.Errorf("%s instr = %q, want %q", name, got, tt.wantInst)
				}
				var text string
				for _, wt := range doc.FindElements("//w:p/w:r/w:t") {
					text += wt.Text()
				}
				if want := "Jane Doe / A Book"; text != want+"\u2003" && text != "\u2003"+want {
					t.Errorf("%s text = %q", name, text)
				}
			}
		})
	}
}

func TestAssemble_HeaderWithoutPageNumber(t *testing.T) {
	cfg := testFormat()
	cfg.Footer = config.HeaderFooterConfig{Enable: true, Template: "{{ .Title | upper }}"}
	doc := readPart(t, assemble(t, prepare(t, cfg, "Text.")), "word/footer1.xml")

	if doc.FindElement("//w:fldSimple") != nil {
		t.Error("page field present")
	}
	if got := doc.FindElement("//w:r/w:t").Text(); got != "A BOOK" {
		t.Errorf("footer text = %q", got)
	}
	if doc.Root().Tag != "ftr" {
		t.Errorf("root = %q, want ftr", doc.Root().Tag)
	}
}

func TestAssemble_Metadata(t *testing.T) {
	c := prepare(t, testFormat(), "Text.")
	r := assemble(t, c)

	core := readPart(t, r, "docProps/core.xml")
	for path, want := range map[string]string{
		"//dc:title":      "A Book",
		"//dc:creator":    "Jane Doe",
		"//dc:identifier": "urn:uuid:" + c.ID.String(),
		"//dc:language":   "en-US",
	} {
		el := core.FindElement(path)
		if el == nil || el.Text() != want {
			t.Errorf("%s = %v, want %q", path, el, want)
		}
	}

	styles := readPart(t, r, "word/styles.xml")
	ids := map[string]bool{}
	for _, st := range styles.FindElements("//w:style") {
		ids[st.SelectAttrValue("w:styleId", "")] = true
	}
	for _, id := range []string{"Normal", "Heading1", "TOCHeading", "TOC1", "Hyperlink"} {
		if !ids[id] {
			t.Errorf("style %s is missing", id)
		}
	}
	if got := styles.FindElement("//w:docDefaults//w:lang").SelectAttrValue("w:val", ""); got != "en-US" {
		t.Errorf("w:lang = %q", got)
	}
	if got := styles.FindElement("//w:docDefaults//w:rFonts").SelectAttrValue("w:ascii", ""); got != "Georgia" {
		t.Errorf("font = %q", got)
	}
}

func TestAssemble_ReadableByManuscriptReader(t *testing.T) {
	c := prepare(t, testFormat(), "Chapter 1", "a\tb", `"Quoted"`)
	data, err := Assemble(c, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	again, err := content.Prepare(data, testFormat(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Prepare(result) error = %v", err)
	}
	// TOC title and labels come first
	var texts []string
	for _, r := range again.Records {
		texts = append(texts, r.RawText)
	}
	want := []string{"Table of Contents", "Chapter 1", "Chapter 1", "a\tb", "“Quoted”"}
	if len(texts) != len(want) {
		t.Fatalf("paragraphs = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestRepackWithoutDataDescriptors(t *testing.T) {
	data, err := Assemble(prepare(t, testFormat(), "Text."), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	fixed, err := RepackWithoutDataDescriptors(data)
	if err != nil {
		t.Fatalf("RepackWithoutDataDescriptors() error = %v", err)
	}

	r, err := fixzip.NewReader(bytes.NewReader(fixed), int64(len(fixed)))
	if err != nil {
		t.Fatalf("unable to read repacked archive: %v", err)
	}
	orig, _ := archive.Open(data)
	if len(r.File) != len(orig.File) {
		t.Fatalf("entries = %d, want %d", len(r.File), len(orig.File))
	}
	for _, f := range r.File {
		if f.Flags&fixzip.FlagDataDescriptor != 0 {
			t.Errorf("%s still has data descriptor", f.Name)
		}
	}

	if _, err := RepackWithoutDataDescriptors([]byte("not a zip")); !errors.Is(err, common.ErrSerialization) {
		t.Errorf("error = %v, want ErrSerialization", err)
	}
}
