package content

import (
	"strconv"

	"msfmt/common"
)

// ChapterEntry describes one heading of the manuscript.
type ChapterEntry struct {
	// Ordinal is 1-based position among all headings.
	Ordinal int
	// DisplayNumber is 1-based position among chapters, 0 for other roles.
	DisplayNumber  int
	AnchorID       string
	Role           common.Role
	Title          string
	ParagraphIndex int
}

// AnchorID is the only source of bookmark names and link targets.
func AnchorID(ordinal int) string {
	return "chapter_" + strconv.Itoa(ordinal)
}

// BuildChapterIndex lists headings in source order.
func BuildChapterIndex(records []ParagraphRecord) []ChapterEntry {
	var (
		chapters []ChapterEntry
		numbered int
	)
	for _, r := range records {
		if !r.Role.IsHeading() {
			continue
		}
		entry := ChapterEntry{
			Ordinal:        len(chapters) + 1,
			Role:           r.Role,
			Title:          r.HeadingTitle,
			ParagraphIndex: r.Index,
		}
		entry.AnchorID = AnchorID(entry.Ordinal)
		if r.Role == common.RoleChapter {
			numbered++
			entry.DisplayNumber = numbered
		}
		chapters = append(chapters, entry)
	}
	return chapters
}

// Label is text of the table of contents entry.
func (e *ChapterEntry) Label() string {
	if e.Role == common.RoleChapter {
		return "Chapter " + strconv.Itoa(e.DisplayNumber)
	}
	return e.Title
}
