package content

import (
	"msfmt/utils/debug"
)

// String returns a readable tree of the prepared model. It exists solely for
// manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Content ID: %s", c.ID)
	tw.TextBlock(1, "Title", c.Format.Title)
	tw.TextBlock(1, "Author", c.Format.Author)
	tw.Line(1, "Language: %s", c.Language)

	if c.Layout != nil {
		l := c.Layout
		tw.Line(0, "Layout")
		tw.Line(1, "Page: %.3gx%.3g in", l.PageWidth, l.PageHeight)
		tw.Line(1, "Margins: top[%g] bottom[%g] inside[%g] outside[%g]", l.Margins.Top, l.Margins.Bottom, l.Margins.Inside, l.Margins.Outside)
		tw.Line(1, "Line height: %d (x%.3g)", l.LineHeightUnits, l.LineHeight())
		tw.Line(1, "First line indent: %g in", l.FirstLineIndent)
		tw.Line(1, "Estimated pages: %d", l.EstimatedPageCount)
	}

	anchors := make(map[string]string, len(c.Chapters))
	for _, ch := range c.Chapters {
		anchors[ch.AnchorID] = ch.Title
	}
	tw.Map(0, "Anchors", anchors)

	tw.Line(0, "TOC (%d entries)", len(c.TOC))
	for _, e := range c.TOC {
		tw.Line(1, "%s role[%s] label[%q]", e.AnchorID, e.Role, e.Label)
	}

	tw.Line(0, "Blocks (%d)", len(c.Blocks))
	for _, b := range c.Blocks {
		switch {
		case b.IsHeading():
			tw.Line(1, "[%d] %s ordinal[%d] number[%d] anchor[%s] break[%t]",
				b.Record.Index, b.Record.Role, b.Chapter.Ordinal, b.Chapter.DisplayNumber, b.Chapter.AnchorID, b.BreakBefore)
		default:
			tw.Line(1, "[%d] %s first[%t] indent[%t]", b.Record.Index, b.Record.Role, b.FirstAfterHeading, b.Indent)
		}
		tw.TextBlock(2, "text", b.Text)
	}
	return tw.String()
}
