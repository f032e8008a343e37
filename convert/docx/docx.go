// Package docx assembles formatted manuscript into a WordprocessingML
// container.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"msfmt/common"
	"msfmt/content"
	"msfmt/misc"
)

const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes    = "http://schemas.openxmlformats.org/package/2006/content-types"
	relsPrefix = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"

	mimeMain     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	mimeStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	mimeSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	mimeHeader   = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	mimeFooter   = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	mimeCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	mimeRels     = "application/vnd.openxmlformats-package.relationships+xml"
)

// part is a single entry of resulting package, related to the main document
// when relType is not empty.
type part struct {
	name    string // path inside container
	mime    string
	relType string
	relID   string
	doc     *etree.Document
}

// assembler carries state of a single Assemble call.
type assembler struct {
	c     *content.Content
	log   *zap.Logger
	parts []*part
}

// Assemble produces DOCX container for prepared content.
func Assemble(c *content.Content, log *zap.Logger) ([]byte, error) {
	a := &assembler{c: c, log: log.Named("docx")}

	data, err := a.assemble()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSerialization, err)
	}
	a.log.Debug("DOCX assembled", zap.Stringer("id", c.ID), zap.Int("parts", len(a.parts)+3), zap.Int("bytes", len(data)))
	return data, nil
}

func (a *assembler) addPart(p *part) *part {
	if p.relType != "" {
		p.relID = fmt.Sprintf("rId%d", len(a.relatedParts())+1)
	}
	a.parts = append(a.parts, p)
	return p
}

func (a *assembler) relatedParts() []*part {
	var related []*part
	for _, p := range a.parts {
		if p.relType != "" {
			related = append(related, p)
		}
	}
	return related
}

func (a *assembler) assemble() ([]byte, error) {
	a.addPart(&part{name: "word/styles.xml", mime: mimeStyles, relType: "styles", doc: buildStyles(a.c)})
	a.addPart(&part{name: "word/settings.xml", mime: mimeSettings, relType: "settings", doc: buildSettings(a.c)})

	refs := a.addHeadersFooters()

	a.addPart(&part{name: "docProps/core.xml", mime: mimeCore, doc: buildCoreProperties(a.c)})

	main := &part{name: "word/document.xml", mime: mimeMain, doc: buildDocument(a.c, refs)}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := writeXMLToZip(zw, "[Content_Types].xml", a.buildContentTypes(main)); err != nil {
		return nil, fmt.Errorf("unable to write content types: %w", err)
	}
	if err := writeXMLToZip(zw, "_rels/.rels", buildPackageRels()); err != nil {
		return nil, fmt.Errorf("unable to write package relationships: %w", err)
	}
	if err := writeXMLToZip(zw, main.name, main.doc); err != nil {
		return nil, fmt.Errorf("unable to write %s: %w", main.name, err)
	}
	if err := writeXMLToZip(zw, "word/_rels/document.xml.rels", a.buildDocumentRels()); err != nil {
		return nil, fmt.Errorf("unable to write document relationships: %w", err)
	}
	for _, p := range a.parts {
		if err := writeXMLToZip(zw, p.name, p.doc); err != nil {
			return nil, fmt.Errorf("unable to write %s: %w", p.name, err)
		}
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("unable to close output archive: %w", err)
	}
	return buf.Bytes(), nil
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func (a *assembler) buildContentTypes(main *part) *etree.Document {
	doc := newXMLDocument()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsTypes)

	def := types.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", mimeRels)
	def = types.CreateElement("Default")
	def.CreateAttr("Extension", "xml")
	def.CreateAttr("ContentType", "application/xml")

	for _, p := range append([]*part{main}, a.parts...) {
		o := types.CreateElement("Override")
		o.CreateAttr("PartName", "/"+p.name)
		o.CreateAttr("ContentType", p.mime)
	}
	return doc
}

func buildPackageRels() *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPkgRels)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", relsPrefix+"officeDocument")
	rel.CreateAttr("Target", "word/document.xml")

	rel = rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId2")
	rel.CreateAttr("Type", "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties")
	rel.CreateAttr("Target", "docProps/core.xml")
	return doc
}

func (a *assembler) buildDocumentRels() *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPkgRels)

	for _, p := range a.relatedParts() {
		rel := rels.CreateElement("Relationship")
		rel.CreateAttr("Id", p.relID)
		rel.CreateAttr("Type", relsPrefix+p.relType)
		// relative to word/
		rel.CreateAttr("Target", p.name[len("word/"):])
	}
	return doc
}

func buildCoreProperties(c *content.Content) *etree.Document {
	doc := newXMLDocument()
	core := doc.CreateElement("cp:coreProperties")
	core.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	core.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	core.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	core.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	if c.Format.Title != "" {
		core.CreateElement("dc:title").SetText(c.Format.Title)
	}
	if c.Format.Author != "" {
		core.CreateElement("dc:creator").SetText(c.Format.Author)
	}
	core.CreateElement("dc:identifier").SetText("urn:uuid:" + c.ID.String())
	if c.Format.Language != "" {
		core.CreateElement("dc:language").SetText(c.Language.String())
	}
	core.CreateElement("cp:lastModifiedBy").SetText(misc.GetAppName() + " " + misc.GetVersion())

	created := core.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(time.Unix(c.ID.Time().UnixTime()).UTC().Format(time.RFC3339))
	return doc
}

func buildSettings(c *content.Content) *etree.Document {
	doc := newXMLDocument()
	settings := doc.CreateElement("w:settings")
	settings.CreateAttr("xmlns:w", nsW)

	settings.CreateElement("w:mirrorMargins")
	if c.Format.Header.Enable || c.Format.Footer.Enable {
		settings.CreateElement("w:evenAndOddHeaders")
	}
	settings.CreateElement("w:defaultTabStop").CreateAttr("w:val", "720")
	settings.CreateElement("w:characterSpacingControl").CreateAttr("w:val", "doNotCompress")
	return doc
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return writeDataToZip(zw, name, buf.Bytes())
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: time.Now()})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// RepackWithoutDataDescriptors copies zip archive clearing data descriptor
// flag of every entry. Some older readers cannot handle streamed entries.
func RepackWithoutDataDescriptors(data []byte) ([]byte, error) {
	r, err := fixzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read archive: %w", common.ErrSerialization, err)
	}

	var buf bytes.Buffer
	w := fixzip.NewWriter(&buf)
	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return nil, fmt.Errorf("%w: unable to copy %s: %w", common.ErrSerialization, file.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: unable to close archive: %w", common.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}
