package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Palette shared by both presets.
var (
	bannerColor = [3]int{27, 54, 93}    // dark navy
	accentColor = [3]int{242, 169, 0}   // amber accent
	boxFill     = [3]int{245, 246, 248} // field box background
	boxBorder   = [3]int{210, 214, 220}
	labelColor  = [3]int{95, 99, 104}
	valueColor  = [3]int{33, 37, 41}
	footerColor = [3]int{120, 124, 130}
)

const fontFamily = "Helvetica"

// Builder writes one report document block by block. It keeps a vertical
// cursor on the current page and inserts a page break before any block that
// would not fit in the remaining space.
type Builder struct {
	doc       *fpdf.Fpdf
	p         Preset
	title     string
	submitted time.Time

	y         float64
	finalized bool
	rendered  []byte
}

// NewBuilder starts a document with the header banner already drawn and the
// cursor at the preset's initial content offset.
func NewBuilder(preset Preset, title string, submitted time.Time) *Builder {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(preset.Margin, preset.Margin, preset.Margin)

	b := &Builder{
		doc:       doc,
		p:         preset,
		title:     title,
		submitted: submitted,
	}
	b.doc.AddPage()
	b.drawHeader()
	b.y = preset.InitialOffset
	return b
}

// drawHeader paints the fixed-height banner across the top of the first page
// with the centered document title and the right-aligned submission stamp.
func (b *Builder) drawHeader() {
	b.doc.SetFillColor(bannerColor[0], bannerColor[1], bannerColor[2])
	b.doc.Rect(0, 0, pageWidth, b.p.HeaderHeight, "F")

	b.doc.SetFillColor(accentColor[0], accentColor[1], accentColor[2])
	b.doc.Rect(0, b.p.HeaderHeight-3, pageWidth, 3, "F")

	b.doc.SetTextColor(255, 255, 255)
	b.doc.SetFont(fontFamily, "B", b.p.TitleFontSize)
	titleWidth := b.doc.GetStringWidth(b.title)
	b.doc.Text((pageWidth-titleWidth)/2, b.p.HeaderHeight/2+b.p.TitleFontSize/3, b.title)

	if !b.submitted.IsZero() {
		stamp := "Submitted: " + b.submitted.Format("2 Jan 2006 15:04")
		b.doc.SetFont(fontFamily, "", b.p.FooterFontSize)
		b.doc.Text(pageWidth-b.p.Margin-b.doc.GetStringWidth(stamp), b.p.HeaderHeight-10, stamp)
	}
}

// ensureSpace starts a new page when the remaining space below the cursor is
// smaller than the block about to be drawn. This runs before drawing, so no
// block is ever split across a page boundary.
func (b *Builder) ensureSpace(blockHeight float64) {
	if b.y+blockHeight > b.p.usableBottom() {
		b.doc.AddPage()
		b.y = b.p.InitialOffset
	}
}

// Section draws a banner delimiting a logical group of fields.
func (b *Builder) Section(title string) {
	h := b.p.SectionHeight
	b.ensureSpace(h)

	x := b.p.Margin
	w := b.p.contentWidth()

	b.doc.SetFillColor(bannerColor[0], bannerColor[1], bannerColor[2])
	b.doc.Rect(x, b.y, w, h, "F")

	// Accent bars on both ends of the banner.
	b.doc.SetFillColor(accentColor[0], accentColor[1], accentColor[2])
	b.doc.Rect(x, b.y, 4, h, "F")
	b.doc.Rect(x+w-4, b.y, 4, h, "F")

	b.doc.SetTextColor(255, 255, 255)
	b.doc.SetFont(fontFamily, "B", b.p.SectionFontSize)
	b.doc.Text(x+12, b.y+h/2+b.p.SectionFontSize/3, title)

	b.y += h + b.p.BlockSpacing
}

// Field draws a label/value box with the label column on the left. A value
// taller than one page flows into continuation boxes repeating the label.
func (b *Builder) Field(label string, value any) {
	w := b.p.contentWidth()
	labelLines, valueLines := b.wrapField(label, value, w)

	for _, chunk := range b.splitToPage(valueLines, 0) {
		h := b.fieldHeight(labelLines, chunk)
		b.ensureSpace(h)
		b.drawFieldBox(b.p.Margin, b.y, w, h, labelLines, chunk)
		b.y += h + b.p.BlockSpacing
	}
}

// FullWidthField draws the label above a wrapped value spanning the content
// width, for long free-text answers. A value taller than one page flows into
// continuation boxes.
func (b *Builder) FullWidthField(label string, value any) {
	w := b.p.contentWidth()
	innerWidth := w - 2*b.p.BoxPadding

	valueLines := b.wrapText(FormatValue(value, "N/A"), innerWidth, b.p.ValueFontSize, "")

	// One line row is reserved for the label above the value.
	for i, chunk := range b.splitToPage(valueLines, 1) {
		caption := label
		if i > 0 {
			caption = label + " (continued)"
		}
		b.drawFullWidthBox(caption, chunk, w)
	}
}

func (b *Builder) drawFullWidthBox(label string, valueLines []string, w float64) {
	h := float64(len(valueLines)+1)*b.p.LineHeight + 2*b.p.BoxPadding
	b.ensureSpace(h)

	x := b.p.Margin
	b.paintBox(x, b.y, w, h)

	b.doc.SetTextColor(labelColor[0], labelColor[1], labelColor[2])
	b.doc.SetFont(fontFamily, "B", b.p.LabelFontSize)
	b.doc.Text(x+b.p.BoxPadding, b.baseline(b.y, 0), label)

	b.doc.SetTextColor(valueColor[0], valueColor[1], valueColor[2])
	b.doc.SetFont(fontFamily, "", b.p.ValueFontSize)
	for i, line := range valueLines {
		b.doc.Text(x+b.p.BoxPadding, b.baseline(b.y, i+1), line)
	}

	b.y += h + b.p.BlockSpacing
}

// FieldPair draws two field boxes side by side. The row takes the height of
// the taller box and the shorter box is stretched to match, keeping the two
// columns visually aligned. Overlong values flow into continuation rows; a
// side with no lines left fills with an empty box.
func (b *Builder) FieldPair(label1 string, value1 any, label2 string, value2 any) {
	boxWidth := (b.p.contentWidth() - b.p.Gutter) / 2

	labelLines1, valueLines1 := b.wrapField(label1, value1, boxWidth)
	labelLines2, valueLines2 := b.wrapField(label2, value2, boxWidth)

	chunks1 := b.splitToPage(valueLines1, 0)
	chunks2 := b.splitToPage(valueLines2, 0)

	rows := len(chunks1)
	if len(chunks2) > rows {
		rows = len(chunks2)
	}
	for i := 0; i < rows; i++ {
		part1 := chunkAt(chunks1, i)
		part2 := chunkAt(chunks2, i)

		h := b.fieldHeight(labelLines1, part1)
		if h2 := b.fieldHeight(labelLines2, part2); h2 > h {
			h = h2
		}

		b.ensureSpace(h)
		b.drawFieldBox(b.p.Margin, b.y, boxWidth, h, labelLines1, part1)
		b.drawFieldBox(b.p.Margin+boxWidth+b.p.Gutter, b.y, boxWidth, h, labelLines2, part2)
		b.y += h + b.p.BlockSpacing
	}
}

// splitToPage splits wrapped value lines into chunks that each fit inside a
// single box on an otherwise empty page, so every drawn block satisfies the
// no-split invariant. reservedLines counts line rows the box spends on
// things other than the value (the full-width label row).
func (b *Builder) splitToPage(lines []string, reservedLines int) [][]string {
	capacity := b.p.usableBottom() - b.p.InitialOffset - 2*b.p.BoxPadding
	maxLines := int(capacity/b.p.LineHeight) - reservedLines
	if maxLines < 1 {
		maxLines = 1
	}

	var chunks [][]string
	for len(lines) > maxLines {
		chunks = append(chunks, lines[:maxLines])
		lines = lines[maxLines:]
	}
	return append(chunks, lines)
}

func chunkAt(chunks [][]string, i int) []string {
	if i < len(chunks) {
		return chunks[i]
	}
	return []string{""}
}

// wrapField wraps a field's label and value within a box of the given width.
func (b *Builder) wrapField(label string, value any, boxWidth float64) (labelLines, valueLines []string) {
	labelWidth := b.p.LabelWidth - 2*b.p.BoxPadding
	valueWidth := boxWidth - b.p.LabelWidth - 2*b.p.BoxPadding
	if valueWidth < 40 {
		// Narrow boxes (pair columns) give the label a third of the width.
		labelWidth = boxWidth/3 - b.p.BoxPadding
		valueWidth = boxWidth - boxWidth/3 - 2*b.p.BoxPadding
	}

	labelLines = b.wrapText(label, labelWidth, b.p.LabelFontSize, "B")
	valueLines = b.wrapText(FormatValue(value, "-"), valueWidth, b.p.ValueFontSize, "")
	return labelLines, valueLines
}

// fieldHeight computes a field box's height from its wrapped line counts.
func (b *Builder) fieldHeight(labelLines, valueLines []string) float64 {
	lines := len(labelLines)
	if len(valueLines) > lines {
		lines = len(valueLines)
	}
	return float64(lines)*b.p.LineHeight + 2*b.p.BoxPadding
}

// drawFieldBox paints one label/value box at the given position.
func (b *Builder) drawFieldBox(x, y, w, h float64, labelLines, valueLines []string) {
	b.paintBox(x, y, w, h)

	labelColumn := b.p.LabelWidth
	if w-b.p.LabelWidth-2*b.p.BoxPadding < 40 {
		labelColumn = w / 3
	}

	b.doc.SetTextColor(labelColor[0], labelColor[1], labelColor[2])
	b.doc.SetFont(fontFamily, "B", b.p.LabelFontSize)
	for i, line := range labelLines {
		b.doc.Text(x+b.p.BoxPadding, b.baseline(y, i), line)
	}

	b.doc.SetTextColor(valueColor[0], valueColor[1], valueColor[2])
	b.doc.SetFont(fontFamily, "", b.p.ValueFontSize)
	for i, line := range valueLines {
		b.doc.Text(x+labelColumn, b.baseline(y, i), line)
	}
}

// paintBox fills the box background with its accent border.
func (b *Builder) paintBox(x, y, w, h float64) {
	b.doc.SetFillColor(boxFill[0], boxFill[1], boxFill[2])
	b.doc.SetDrawColor(boxBorder[0], boxBorder[1], boxBorder[2])
	b.doc.SetLineWidth(0.5)
	b.doc.Rect(x, y, w, h, "FD")

	b.doc.SetFillColor(accentColor[0], accentColor[1], accentColor[2])
	b.doc.Rect(x, y, 2.5, h, "F")
}

// baseline converts a box-relative line index into a text baseline position.
func (b *Builder) baseline(boxTop float64, lineIndex int) float64 {
	return boxTop + b.p.BoxPadding + b.p.ValueFontSize*0.8 + float64(lineIndex)*b.p.LineHeight
}

// wrapText word-wraps text for the given width and font, always returning at
// least one line so empty values still reserve a row.
func (b *Builder) wrapText(text string, width float64, fontSize float64, style string) []string {
	b.doc.SetFont(fontFamily, style, fontSize)
	lines := b.doc.SplitText(text, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// PageCount returns the number of pages created so far.
func (b *Builder) PageCount() int {
	return b.doc.PageCount()
}

// Finalize stamps the footer onto every page and returns the document bytes.
// The footer is applied here, after all content is written, because it needs
// the final page count for the "Page X of N" stamp. Calling Finalize again
// returns the same bytes.
func (b *Builder) Finalize(occurrenceID string) ([]byte, error) {
	if b.finalized {
		return b.rendered, nil
	}

	total := b.doc.PageCount()
	for page := 1; page <= total; page++ {
		b.doc.SetPage(page)
		b.drawFooter(page, total, occurrenceID)
	}

	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	b.finalized = true
	b.rendered = buf.Bytes()
	return b.rendered, nil
}

func (b *Builder) drawFooter(page, total int, occurrenceID string) {
	lineY := pageHeight - b.p.FooterOffset
	b.doc.SetDrawColor(boxBorder[0], boxBorder[1], boxBorder[2])
	b.doc.SetLineWidth(0.5)
	b.doc.Line(b.p.Margin, lineY, pageWidth-b.p.Margin, lineY)

	b.doc.SetTextColor(footerColor[0], footerColor[1], footerColor[2])
	b.doc.SetFont(fontFamily, "", b.p.FooterFontSize)
	textY := lineY + 12

	b.doc.Text(b.p.Margin, textY, b.title)

	id := occurrenceID
	if id == "" {
		id = "Pending"
	}
	right := fmt.Sprintf("ID: %s | Submitted: %s", id, b.submitted.Format("2 Jan 2006"))
	b.doc.Text(pageWidth-b.p.Margin-b.doc.GetStringWidth(right), textY, right)

	center := fmt.Sprintf("Page %d of %d", page, total)
	b.doc.Text((pageWidth-b.doc.GetStringWidth(center))/2, textY, center)
}
