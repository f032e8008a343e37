package content

import (
	"msfmt/content/text"
)

// Block is an annotated paragraph ready for rendering.
type Block struct {
	Record ParagraphRecord
	// Text is normalized body text or heading title.
	Text string
	// Chapter is set for headings.
	Chapter *ChapterEntry
	// BreakBefore requests new page before the block.
	BreakBefore bool
	// FirstAfterHeading marks body paragraph immediately following a
	// heading.
	FirstAfterHeading bool
	// Indent requests first line indent.
	Indent bool
}

// IsHeading reports whether block starts a new part of the book.
func (b *Block) IsHeading() bool {
	return b.Chapter != nil
}

// AnnotateOptions controls decisions made while walking paragraphs.
type AnnotateOptions struct {
	Typography      text.Toggles
	Indent          bool
	SkipFirstIndent bool
}

// Annotate walks records once carrying heading state forward and decides
// page breaks and indentation for every block. Body text is normalized here
// as well, headings keep their verbatim title.
func Annotate(records []ParagraphRecord, chapters []ChapterEntry, opts AnnotateOptions) []Block {
	byIndex := make(map[int]*ChapterEntry, len(chapters))
	for i := range chapters {
		byIndex[chapters[i].ParagraphIndex] = &chapters[i]
	}

	var (
		blocks       = make([]Block, 0, len(records))
		seenHeading  bool
		afterHeading bool
	)
	for _, r := range records {
		b := Block{Record: r}
		if ch, ok := byIndex[r.Index]; ok {
			b.Chapter = ch
			b.Text = r.HeadingTitle
			b.BreakBefore = seenHeading
			seenHeading, afterHeading = true, true
		} else {
			b.Text = text.Normalize(r.RawText, opts.Typography)
			b.FirstAfterHeading = afterHeading
			b.Indent = opts.Indent && !(opts.SkipFirstIndent && afterHeading)
			afterHeading = false
		}
		blocks = append(blocks, b)
	}
	return blocks
}
