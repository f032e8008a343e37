package content

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"msfmt/common"
	"msfmt/config"
	"msfmt/manuscript"
	"msfmt/manuscript/docxtest"
)

func testFormat() *config.FormatConfig {
	return &config.FormatConfig{
		Margins:    config.MarginsConfig{Top: 1, Bottom: 1, Inside: 1, Outside: 0.75, Auto: true},
		Indent:     config.IndentConfig{Enable: true, Size: 0.5, SkipFirst: true},
		Spacing:    config.SpacingConfig{Line: "single"},
		Font:       config.FontConfig{Family: "Georgia", Size: 12, HeadingSize: 18},
		Typography: config.TypographyConfig{CurlyQuotes: true, EmDashes: true, Ellipsis: true},
		TOC:        config.TOCConfig{Enable: true, Title: "Contents"},
	}
}

func TestPrepare(t *testing.T) {
	data := docxtest.BuildDoc(t, docxtest.Doc{
		Paragraphs: []string{"Prologue", "Body text.", "Chapter 1", `He said, "hi--there..."`},
		Title:      "Source Title",
		Creator:    "Source Author",
	})

	c, err := Prepare(data, testFormat(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(c.Records) != 4 || len(c.Blocks) != 4 {
		t.Fatalf("records = %d, blocks = %d, want 4", len(c.Records), len(c.Blocks))
	}
	if len(c.Chapters) != 2 || len(c.TOC) != 2 {
		t.Fatalf("chapters = %d, toc = %d, want 2", len(c.Chapters), len(c.TOC))
	}
	if c.TOC[0].Label != "Prologue" || c.TOC[1].Label != "Chapter 1" {
		t.Errorf("TOC = %+v", c.TOC)
	}
	if c.Blocks[3].Text != "He said, \u201chi\u2014there\u2026\u201d" {
		t.Errorf("normalized text = %q", c.Blocks[3].Text)
	}
	if c.Format.Title != "Source Title" || c.Format.Author != "Source Author" {
		t.Errorf("fallback title/author = %q/%q", c.Format.Title, c.Format.Author)
	}
	if c.Layout == nil || c.Layout.EstimatedPageCount != 2 {
		t.Errorf("layout = %+v", c.Layout)
	}
	if c.ID.Version() != 7 {
		t.Errorf("document ID version = %d, want 7", c.ID.Version())
	}
}

func TestPrepare_ConfiguredValuesWin(t *testing.T) {
	cfg := testFormat()
	cfg.Title = "Configured"
	cfg.Author = "Me"
	cfg.Language = "en-GB"

	m := &manuscript.Manuscript{
		Paragraphs: []string{"text"},
		Props:      manuscript.Properties{Title: "Source", Creator: "Someone", Language: "fr"},
	}
	c, err := FromManuscript(m, cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("FromManuscript() error = %v", err)
	}
	if c.Format.Title != "Configured" || c.Format.Author != "Me" {
		t.Errorf("title/author = %q/%q", c.Format.Title, c.Format.Author)
	}
	if c.Language.String() != "en-GB" {
		t.Errorf("language = %s", c.Language)
	}
	if cfg.Title != "Configured" {
		t.Error("configuration was modified")
	}
}

func TestPrepare_DoesNotModifyConfiguration(t *testing.T) {
	cfg := testFormat()
	m := &manuscript.Manuscript{
		Paragraphs: []string{"text"},
		Props:      manuscript.Properties{Title: "Source", Creator: "Someone"},
	}
	if _, err := FromManuscript(m, cfg, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("FromManuscript() error = %v", err)
	}
	if cfg.Title != "" || cfg.Author != "" {
		t.Errorf("configuration was modified: %q/%q", cfg.Title, cfg.Author)
	}
}

func TestPrepare_Errors(t *testing.T) {
	log := zaptest.NewLogger(t)

	if _, err := Prepare(docxtest.Build(t), testFormat(), log); !errors.Is(err, common.ErrEmptyDocument) {
		t.Errorf("empty document error = %v", err)
	}
	if _, err := Prepare([]byte("garbage"), testFormat(), log); !errors.Is(err, common.ErrCorruptContainer) {
		t.Errorf("corrupt container error = %v", err)
	}
	if _, err := FromManuscript(&manuscript.Manuscript{}, testFormat(), log); !errors.Is(err, common.ErrEmptyDocument) {
		t.Errorf("empty manuscript error = %v", err)
	}
}

func TestContent_String(t *testing.T) {
	m := &manuscript.Manuscript{Paragraphs: []string{"Chapter 1", "Text", "Chapter 2", "Text"}}
	c, err := FromManuscript(m, testFormat(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("FromManuscript() error = %v", err)
	}

	out := c.String()
	for _, want := range []string{"Anchors (2 entries)", "chapter_2: \"Chapter 2\"", "TOC (2 entries)", "Blocks (4)", "break[true]"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}

	var nilContent *Content
	if nilContent.String() != "<nil Content>" {
		t.Error("nil Content String()")
	}
}

func TestPrepare_HeaderFooterTemplates(t *testing.T) {
	cfg := testFormat()
	cfg.Header = config.HeaderFooterConfig{Enable: true, Template: "{{ .Author | upper }} / {{ .Title }}"}
	cfg.Footer = config.HeaderFooterConfig{Enable: false, Template: "{{ .Title }}"}

	m := &manuscript.Manuscript{
		Paragraphs: []string{"text"},
		Props:      manuscript.Properties{Title: "Dune", Creator: "Frank Herbert"},
	}
	c, err := FromManuscript(m, cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("FromManuscript() error = %v", err)
	}
	if c.Header != "FRANK HERBERT / Dune" {
		t.Errorf("Header = %q", c.Header)
	}
	if c.Footer != "" {
		t.Errorf("disabled Footer = %q", c.Footer)
	}

	cfg.Header.Template = "{{ .Author "
	if _, err := FromManuscript(m, cfg, zaptest.NewLogger(t)); !errors.Is(err, common.ErrSerialization) {
		t.Errorf("broken header template error = %v", err)
	}

	cfg.Header.Enable = false
	cfg.Footer = config.HeaderFooterConfig{Enable: true, Template: "{{ .Publisher }}"}
	if _, err := FromManuscript(m, cfg, zaptest.NewLogger(t)); !errors.Is(err, common.ErrSerialization) {
		t.Errorf("unknown footer field error = %v", err)
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"{{ .Title }} by {{ .Author }}", "T by A"},
		{"{{ .Title | lower }}-{{ .Format }}", "t-docx"},
		{`{{ .SourceFile | trunc 3 }}`, "src"},
	}
	values := Values{Title: "T", Author: "A", Format: "docx", SourceFile: "source"}
	for _, tt := range tests {
		got, err := ExpandTemplate("test", tt.field, values)
		if err != nil {
			t.Errorf("ExpandTemplate(%q) error = %v", tt.field, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExpandTemplate(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}

	if _, err := ExpandTemplate("test", "{{ .Missing }}", values); err == nil {
		t.Error("unknown field accepted")
	}
}
