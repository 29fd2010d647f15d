// Package pdfgen renders a submitted occurrence report as a PDF document.
// The layout is a cursor-based sequence of boxed blocks (header, section
// banners, field boxes); every block computes its height from the wrapped
// text before drawing, and a block is never split across a page boundary.
package pdfgen

// A4 portrait in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// Preset holds the numeric layout constants. The layout algorithm is
// identical for every preset; only the constants differ.
type Preset struct {
	Margin        float64 // left/right page margin
	InitialOffset float64 // cursor position at the top of a content page
	BottomMargin  float64 // reserved space at the bottom of every page
	BreakBuffer   float64 // extra slack required before the bottom margin

	HeaderHeight  float64
	SectionHeight float64
	FooterOffset  float64 // distance of the footer baseline from the page bottom

	TitleFontSize   float64
	SectionFontSize float64
	LabelFontSize   float64
	ValueFontSize   float64
	FooterFontSize  float64

	LineHeight   float64 // per wrapped text line
	BoxPadding   float64 // inside each field box
	BlockSpacing float64 // between consecutive blocks
	Gutter       float64 // between the two boxes of a field pair
	LabelWidth   float64 // label column width for normal (non-full-width) fields
}

// Standard is the preset for the multi-page accident report.
var Standard = Preset{
	Margin:        40,
	InitialOffset: 90,
	BottomMargin:  50,
	BreakBuffer:   10,

	HeaderHeight:  56,
	SectionHeight: 24,
	FooterOffset:  32,

	TitleFontSize:   16,
	SectionFontSize: 11,
	LabelFontSize:   9,
	ValueFontSize:   10,
	FooterFontSize:  8,

	LineHeight:   13,
	BoxPadding:   7,
	BlockSpacing: 6,
	Gutter:       10,
	LabelWidth:   150,
}

// Compact is the preset for the shorter single-type reports.
var Compact = Preset{
	Margin:        36,
	InitialOffset: 80,
	BottomMargin:  44,
	BreakBuffer:   8,

	HeaderHeight:  48,
	SectionHeight: 20,
	FooterOffset:  28,

	TitleFontSize:   14,
	SectionFontSize: 10,
	LabelFontSize:   8,
	ValueFontSize:   9,
	FooterFontSize:  7,

	LineHeight:   11,
	BoxPadding:   5,
	BlockSpacing: 4,
	Gutter:       8,
	LabelWidth:   130,
}

// contentWidth is the usable width between the margins.
func (p Preset) contentWidth() float64 {
	return pageWidth - 2*p.Margin
}

// usableBottom is the lowest y a block may extend to.
func (p Preset) usableBottom() float64 {
	return pageHeight - p.BottomMargin - p.BreakBuffer
}
