// Package common keeps enumerations and errors shared between the
// configuration, the prepared content and both renderers. It must not import
// any other package of the program.
package common

//go:generate go tool go-enum --marshal --names --values

// Structural role of a manuscript paragraph.
// ENUM(body, chapter, prologue, epilogue, front-matter)
type Role int

// IsHeading reports whether paragraphs of this role start a new part of the
// book and are listed in the table of contents.
func (r Role) IsHeading() bool {
	return r != RoleBody
}

// Numeral style of page number fields.
// ENUM(arabic, lower-roman, upper-roman)
type PageNumberStyle int

// Placement of header or footer text relative to the spine.
// ENUM(inside, outside, center)
type HeaderPosition int

// Body paragraph alignment.
// ENUM(left, justify)
type TextAlign int

// Specification of requested output type.
// ENUM(docx, html)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtDocx:
		return ".docx"
	case OutputFmtHtml:
		return ".html"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
