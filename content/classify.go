package content

import (
	"regexp"
	"strings"

	"msfmt/common"
)

// ParagraphRecord is a single source paragraph with its structural role.
type ParagraphRecord struct {
	Index   int
	RawText string
	Role    common.Role
	// HeadingTitle is set for headings only.
	HeadingTitle string
}

type rolePattern struct {
	role common.Role
	re   *regexp.Regexp
}

// Order matters: first match wins, special roles are checked before chapters.
var rolePatterns = []rolePattern{
	{common.RolePrologue, regexp.MustCompile(`(?i)^prologue`)},
	{common.RoleEpilogue, regexp.MustCompile(`(?i)^epilogue`)},
	{common.RoleFrontMatter, regexp.MustCompile(`(?i)^(foreword|preface|introduction|dedication|acknowledgments?)`)},
	{common.RoleChapter, regexp.MustCompile(`(?i)^chapter(\s*\d|\s+(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\b)`)},
	{common.RoleChapter, regexp.MustCompile(`(?i)^ch\.?\s*\d`)},
	{common.RoleChapter, regexp.MustCompile(`^\d+\.\s`)},
}

// ClassifyParagraph returns role and heading title of a paragraph text.
// Title is empty for body paragraphs.
func ClassifyParagraph(text string) (common.Role, string) {
	trimmed := strings.TrimSpace(text)
	for _, p := range rolePatterns {
		if p.re.MatchString(trimmed) {
			return p.role, trimmed
		}
	}
	return common.RoleBody, ""
}

// Classify produces records for paragraphs in source order.
func Classify(paragraphs []string) []ParagraphRecord {
	records := make([]ParagraphRecord, 0, len(paragraphs))
	for i, p := range paragraphs {
		role, title := ClassifyParagraph(p)
		records = append(records, ParagraphRecord{
			Index:        i,
			RawText:      p,
			Role:         role,
			HeadingTitle: title,
		})
	}
	return records
}
