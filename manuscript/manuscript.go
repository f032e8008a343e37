// Package manuscript extracts plain text paragraphs from DOCX containers.
package manuscript

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"msfmt/archive"
	"msfmt/common"
)

const (
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"
)

// Properties are document level metadata from docProps/core.xml.
type Properties struct {
	Title    string
	Creator  string
	Language string
}

// Manuscript is the source document reduced to what formatter needs: ordered
// non-empty paragraphs of plain text.
type Manuscript struct {
	Paragraphs []string
	Props      Properties
}

// Extract returns ordered plain text paragraphs of DOCX container.
func Extract(data []byte) ([]string, error) {
	m, err := Read(data)
	if err != nil {
		return nil, err
	}
	return m.Paragraphs, nil
}

// Read opens DOCX container and extracts paragraphs and document properties.
func Read(data []byte) (*Manuscript, error) {
	r, err := archive.Open(data)
	if err != nil {
		return nil, fmt.Errorf("unable to open container: %w: %w", common.ErrCorruptContainer, err)
	}

	doc, err := readPart(r, documentPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCorruptContainer, err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, fmt.Errorf("%w: %s has no document body", common.ErrCorruptContainer, documentPart)
	}

	m := &Manuscript{}
	walkParagraphs(body, func(text string) {
		if text = strings.TrimSpace(html.UnescapeString(text)); text != "" {
			m.Paragraphs = append(m.Paragraphs, text)
		}
	})
	if len(m.Paragraphs) == 0 {
		return nil, common.ErrEmptyDocument
	}

	// core properties are optional, broken ones are ignored
	if core, err := readPart(r, corePart); err == nil {
		m.Props = parseProperties(core)
	}
	return m, nil
}

func readPart(r *zip.Reader, name string) (*etree.Document, error) {
	data, err := archive.ReadFile(r, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("missing %s", name)
		}
		return nil, err
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%s has no root element", name)
	}
	return doc, nil
}

func findBody(doc *etree.Document) *etree.Element {
	root := doc.Root()
	if !isW(root, "document") {
		return nil
	}
	for _, child := range root.ChildElements() {
		if isW(child, "body") {
			return child
		}
	}
	return nil
}

func isW(el *etree.Element, tag string) bool {
	return el != nil && el.Space == "w" && el.Tag == tag
}

// walkParagraphs calls fn for every w:p in document order. Paragraphs nested
// in text boxes are reported separately right after their host paragraph.
func walkParagraphs(el *etree.Element, fn func(string)) {
	for _, child := range el.ChildElements() {
		switch {
		case child.Space == "mc" && child.Tag == "Fallback":
			// duplicate of mc:Choice content for older readers
		case isW(child, "p"):
			visitParagraph(child, fn)
		default:
			walkParagraphs(child, fn)
		}
	}
}

func visitParagraph(p *etree.Element, fn func(string)) {
	var (
		buf    strings.Builder
		nested []*etree.Element
	)
	collectText(p, &buf, &nested)
	fn(buf.String())
	for _, n := range nested {
		visitParagraph(n, fn)
	}
}

func collectText(el *etree.Element, buf *strings.Builder, nested *[]*etree.Element) {
	for _, child := range el.ChildElements() {
		switch {
		case child.Space == "mc" && child.Tag == "Fallback":
		case isW(child, "p"):
			*nested = append(*nested, child)
		case isW(child, "t"):
			buf.WriteString(child.Text())
		case isW(child, "tab"):
			buf.WriteByte('\t')
		case isW(child, "br"), isW(child, "cr"):
			buf.WriteByte(' ')
		case isW(child, "delText"), isW(child, "instrText"):
			// deleted revisions and field codes are not visible text
		default:
			collectText(child, buf, nested)
		}
	}
}

func parseProperties(doc *etree.Document) Properties {
	var props Properties
	for _, child := range doc.Root().ChildElements() {
		text := strings.TrimSpace(child.Text())
		switch child.Tag {
		case "title":
			props.Title = text
		case "creator":
			props.Creator = text
		case "language":
			props.Language = text
		}
	}
	return props
}
