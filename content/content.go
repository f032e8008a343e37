package content

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"msfmt/common"
	"msfmt/config"
	"msfmt/content/text"
	"msfmt/layout"
	"msfmt/manuscript"
)

// Content is the single model both renderers consume. It is built once by
// Prepare and is never modified afterwards.
type Content struct {
	ID    uuid.UUID
	Props manuscript.Properties
	// Format is resolved configuration with author and title fallbacks
	// applied.
	Format   config.FormatConfig
	Language language.Tag

	Records  []ParagraphRecord
	Chapters []ChapterEntry
	Blocks   []Block
	TOC      []TOCEntry
	Layout   *layout.Derived

	// Header and Footer are expanded running texts, empty when disabled.
	Header string
	Footer string
}

// Prepare reads DOCX data and builds formatting model for it.
func Prepare(data []byte, cfg *config.FormatConfig, log *zap.Logger) (*Content, error) {
	m, err := manuscript.Read(data)
	if err != nil {
		return nil, err
	}
	return FromManuscript(m, cfg, log)
}

// FromManuscript builds formatting model for already extracted manuscript.
func FromManuscript(m *manuscript.Manuscript, cfg *config.FormatConfig, log *zap.Logger) (*Content, error) {
	if len(m.Paragraphs) == 0 {
		return nil, common.ErrEmptyDocument
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate document UUID: %w", err)
	}

	c := &Content{
		ID:     id,
		Props:  m.Props,
		Format: *cfg,
	}
	if c.Format.Author == "" {
		c.Format.Author = m.Props.Creator
	}
	if c.Format.Title == "" {
		c.Format.Title = m.Props.Title
	}
	if c.Format.Language == "" {
		c.Format.Language = m.Props.Language
	}
	c.Language = c.Format.LanguageTag()

	c.Records = Classify(m.Paragraphs)
	c.Chapters = BuildChapterIndex(c.Records)
	c.Blocks = Annotate(c.Records, c.Chapters, AnnotateOptions{
		Typography: text.Toggles{
			CurlyQuotes: c.Format.Typography.CurlyQuotes,
			EmDashes:    c.Format.Typography.EmDashes,
			Ellipsis:    c.Format.Typography.Ellipsis,
		},
		Indent:          c.Format.Indent.Enable,
		SkipFirstIndent: c.Format.Indent.SkipFirst,
	})
	c.TOC = BuildTOC(c.Chapters)
	c.Layout = layout.Compute(&c.Format, len(c.Records))

	if c.Format.Header.Enable {
		if c.Header, err = ExpandTemplate(config.HeaderFooterTemplateFieldName, c.Format.Header.Template, c.TemplateValues("header")); err != nil {
			return nil, fmt.Errorf("%w: header: %w", common.ErrSerialization, err)
		}
	}
	if c.Format.Footer.Enable {
		if c.Footer, err = ExpandTemplate(config.HeaderFooterTemplateFieldName, c.Format.Footer.Template, c.TemplateValues("footer")); err != nil {
			return nil, fmt.Errorf("%w: footer: %w", common.ErrSerialization, err)
		}
	}

	log.Debug("Manuscript prepared",
		zap.Stringer("id", c.ID),
		zap.Int("paragraphs", len(c.Records)),
		zap.Int("headings", len(c.Chapters)),
		zap.Int("estimated_pages", c.Layout.EstimatedPageCount),
		zap.Float64("inside_margin", c.Layout.Margins.Inside),
		zap.Stringer("language", c.Language))
	return c, nil
}
