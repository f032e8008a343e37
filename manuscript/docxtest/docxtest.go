// Package docxtest builds small in-memory DOCX containers for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/beevik/etree"
)

const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Doc describes generated container.
type Doc struct {
	Paragraphs []string
	// BodyXML replaces generated w:body content when not empty.
	BodyXML string
	Title   string
	Creator string
}

// Build returns DOCX container with one single-run paragraph per argument.
func Build(t testing.TB, paragraphs ...string) []byte {
	t.Helper()
	return BuildDoc(t, Doc{Paragraphs: paragraphs})
}

// BuildDoc returns DOCX container described by d.
func BuildDoc(t testing.TB, d Doc) []byte {
	t.Helper()

	files := map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rootRels,
		"word/document.xml":   documentXML(t, d),
	}
	if d.Title != "" || d.Creator != "" {
		files["docProps/core.xml"] = coreXML(t, d)
	}
	return Zip(t, files)
}

// Zip packs files as is.
func Zip(t testing.TB, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "docProps/core.xml"} {
		if data, ok := files[name]; ok {
			writeFile(t, w, name, data)
		}
	}
	for name, data := range files {
		switch name {
		case "[Content_Types].xml", "_rels/.rels", "word/document.xml", "docProps/core.xml":
			continue
		}
		writeFile(t, w, name, data)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func writeFile(t testing.TB, w *zip.Writer, name, data string) {
	t.Helper()
	f, err := w.Create(name)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	if _, err := f.Write([]byte(data)); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func documentXML(t testing.TB, d Doc) string {
	t.Helper()

	if d.BodyXML != "" {
		return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="` + nsW + `" xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"><w:body>` +
			d.BodyXML + `</w:body></w:document>`
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	body := root.CreateElement("w:body")
	for _, p := range d.Paragraphs {
		wt := body.CreateElement("w:p").CreateElement("w:r").CreateElement("w:t")
		wt.CreateAttr("xml:space", "preserve")
		wt.SetText(p)
	}
	body.CreateElement("w:sectPr")

	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("serialize document: %v", err)
	}
	return out
}

func coreXML(t testing.TB, d Doc) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	root.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	if d.Title != "" {
		root.CreateElement("dc:title").SetText(d.Title)
	}
	if d.Creator != "" {
		root.CreateElement("dc:creator").SetText(d.Creator)
	}

	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("serialize core properties: %v", err)
	}
	return out
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
