// Package layout derives concrete page geometry and spacing numbers from
// format configuration and manuscript size.
package layout

import (
	"math"

	"msfmt/config"
)

const (
	// LineUnit is the line height of single spacing expressed in 240ths of a
	// line, as used by DOCX "auto" line rule.
	LineUnit = 240

	defaultPageWidth  = 8.5
	defaultPageHeight = 11.0
)

type spacingClass struct {
	units             int
	paragraphsPerPage float64
}

var spacingClasses = map[string]spacingClass{
	"single": {units: 240, paragraphsPerPage: 3},
	"1.15":   {units: 276, paragraphsPerPage: 2.5},
	"1.5":    {units: 360, paragraphsPerPage: 2},
	"double": {units: 480, paragraphsPerPage: 1.5},
}

// gutterBands are checked in order, first band with pages >= MinPages wins.
var gutterBands = []struct {
	MinPages int
	Inside   float64
}{
	{MinPages: 501, Inside: 0.75},
	{MinPages: 301, Inside: 0.625},
	{MinPages: 151, Inside: 0.5},
	{MinPages: 24, Inside: 0.375},
}

// Margins in inches. Inside is the binding edge: left on odd pages.
type Margins struct {
	Top, Bottom, Inside, Outside float64
}

// Derived holds layout numbers computed once per document and shared by all
// renderers.
type Derived struct {
	LineHeightUnits int
	// EstimatedPageCount is advisory, it only drives auto margins.
	EstimatedPageCount int
	Margins            Margins
	// FirstLineIndent in inches, 0 when indentation is disabled.
	FirstLineIndent       float64
	PageWidth, PageHeight float64
}

// LineHeight returns line height as a multiplier of font size.
func (d *Derived) LineHeight() float64 {
	return float64(d.LineHeightUnits) / LineUnit
}

// Compute derives layout from configuration and number of paragraphs.
// Unknown spacing names are treated as single spacing.
func Compute(cfg *config.FormatConfig, paragraphs int) *Derived {
	class, ok := spacingClasses[cfg.Spacing.Line]
	if !ok {
		class = spacingClasses["single"]
	}

	d := &Derived{
		LineHeightUnits:    class.units,
		EstimatedPageCount: EstimatePages(paragraphs, class.paragraphsPerPage),
		Margins: Margins{
			Top:     cfg.Margins.Top,
			Bottom:  cfg.Margins.Bottom,
			Inside:  cfg.Margins.Inside,
			Outside: cfg.Margins.Outside,
		},
		PageWidth:  cfg.Trim.Width,
		PageHeight: cfg.Trim.Height,
	}
	if cfg.Margins.Auto {
		d.Margins.Inside = InsideMargin(d.EstimatedPageCount, cfg.Margins.Inside)
	}
	if cfg.Indent.Enable {
		d.FirstLineIndent = cfg.Indent.Size
	}
	if d.PageWidth <= 0 || d.PageHeight <= 0 {
		d.PageWidth, d.PageHeight = defaultPageWidth, defaultPageHeight
	}
	return d
}

// EstimatePages returns ceil(paragraphs / perPage).
func EstimatePages(paragraphs int, perPage float64) int {
	if paragraphs <= 0 || perPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(paragraphs) / perPage))
}

// InsideMargin returns gutter width for the page count, configured value is
// used for books too thin for any band.
func InsideMargin(pages int, configured float64) float64 {
	for _, b := range gutterBands {
		if pages >= b.MinPages {
			return b.Inside
		}
	}
	return configured
}
