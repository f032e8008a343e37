package content

import "msfmt/common"

// TOCEntry is a single line of table of contents. Both renderers iterate the
// same slice.
type TOCEntry struct {
	Role     common.Role
	AnchorID string
	Label    string
}

// BuildTOC returns table of contents entries for chapter index.
func BuildTOC(chapters []ChapterEntry) []TOCEntry {
	toc := make([]TOCEntry, 0, len(chapters))
	for i := range chapters {
		toc = append(toc, TOCEntry{
			Role:     chapters[i].Role,
			AnchorID: chapters[i].AnchorID,
			Label:    chapters[i].Label(),
		})
	}
	return toc
}
