package pdfgen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStamp = time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

// assertCursorValid checks the layout invariant after a block write: the
// bottom edge of the block just drawn never passes the usable page bottom.
func assertCursorValid(t *testing.T, b *Builder) {
	t.Helper()
	bottom := b.y - b.p.BlockSpacing
	if bottom > b.p.usableBottom() {
		t.Fatalf("block bottom %.1f exceeds usable bottom %.1f", bottom, b.p.usableBottom())
	}
}

func validatePDF(t *testing.T, data []byte) int {
	t.Helper()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	require.NoError(t, err, "generated document must parse")
	require.NoError(t, api.ValidateContext(ctx), "generated document must validate")
	return ctx.PageCount
}

func TestSingleBlockDocument(t *testing.T) {
	b := NewBuilder(Compact, "Hazard Report", testStamp)
	b.Section("Reporter Details")
	b.Field("First name", "Jane")

	data, err := b.Finalize("OCC-00001")
	require.NoError(t, err)

	pages := validatePDF(t, data)
	assert.Equal(t, 1, pages)
}

func TestPageBreakInsertedBeforeOverflowingBlock(t *testing.T) {
	b := NewBuilder(Standard, "Accident Report", testStamp)

	long := strings.Repeat("The aircraft bounced twice on touchdown before the nosewheel collapsed. ", 6)
	for i := 0; i < 30; i++ {
		b.Section("Section")
		b.FullWidthField("Details", long)
		assertCursorValid(t, b)
	}

	require.Greater(t, b.PageCount(), 1, "content must overflow onto further pages")

	data, err := b.Finalize("OCC-00002")
	require.NoError(t, err)
	assert.Equal(t, b.PageCount(), validatePDF(t, data))
}

func TestBlockNeverSplitAcrossPages(t *testing.T) {
	b := NewBuilder(Compact, "Defect Report", testStamp)

	value := strings.Repeat("cracked weld on the engine mount upper tube ", 4)
	for i := 0; i < 120; i++ {
		before := b.PageCount()
		b.Field("Observation", value)
		assertCursorValid(t, b)

		if b.PageCount() > before {
			// A break happened: the block must have been drawn from the
			// top offset of the fresh page, not straddling the old one.
			assert.GreaterOrEqual(t, b.y, b.p.InitialOffset)
		}
	}

	_, err := b.Finalize("OCC-00003")
	require.NoError(t, err)
}

func TestOversizedFullWidthValueFlowsAcrossPages(t *testing.T) {
	b := NewBuilder(Standard, "Accident Report", testStamp)

	narrative := strings.Repeat("The aircraft bounced twice on touchdown before the nosewheel collapsed. ", 200) + "Endnote."
	b.FullWidthField("Details of incident", narrative)
	assertCursorValid(t, b)

	require.Greater(t, b.PageCount(), 1, "an oversized value must spill onto further pages")

	data, err := b.Finalize("OCC-00006")
	require.NoError(t, err)
	assert.Equal(t, b.PageCount(), validatePDF(t, data))

	// The tail of the value must land on the last page, not off the edge
	// of an earlier one.
	reader, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	text, err := reader.Page(reader.NumPage()).GetPlainText(nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Endnote")
}

func TestOversizedFieldValueFlowsAcrossPages(t *testing.T) {
	b := NewBuilder(Compact, "Defect Report", testStamp)

	value := strings.Repeat("crack propagating from the third rivet aft of the wing root fairing ", 180)
	b.Field("Observation", value)
	assertCursorValid(t, b)

	require.Greater(t, b.PageCount(), 1)

	data, err := b.Finalize("OCC-00007")
	require.NoError(t, err)
	assert.Equal(t, b.PageCount(), validatePDF(t, data))
}

func TestFieldPairRowUsesTallerBoxHeight(t *testing.T) {
	b := NewBuilder(Standard, "Accident Report", testStamp)

	yBefore := b.y
	short := "VH-ABC"
	tall := strings.Repeat("a long value that wraps over several lines in a narrow pair box ", 3)
	b.FieldPair("Registration", short, "Details", tall)
	pairHeight := b.y - yBefore - b.p.BlockSpacing

	b2 := NewBuilder(Standard, "Accident Report", testStamp)
	yBefore = b2.y
	b2.FieldPair("Registration", short, "Other", "short")
	shortHeight := b2.y - yBefore - b2.p.BlockSpacing

	assert.Greater(t, pairHeight, shortHeight, "row height must follow the taller box")
}

func TestFinalizeIsIdempotent(t *testing.T) {
	b := NewBuilder(Compact, "Complaint Report", testStamp)
	b.Section("Details")
	b.Field("Complaint about", "Low flying")

	first, err := b.Finalize("OCC-00004")
	require.NoError(t, err)
	second, err := b.Finalize("OCC-00004")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "repeated Finalize must return the same bytes")
	validatePDF(t, first)
}

func TestPresetsShareTheAlgorithm(t *testing.T) {
	for _, preset := range []Preset{Standard, Compact} {
		b := NewBuilder(preset, "Occurrence Report", testStamp)
		b.Section("Section")
		b.FieldPair("Left", "value", "Right", "value")
		b.FullWidthField("Details", "A short note.")

		data, err := b.Finalize("OCC-00005")
		require.NoError(t, err)
		validatePDF(t, data)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "N/A"},
		{"empty string", "", "N/A"},
		{"blank string", "   ", "N/A"},
		{"true", true, "Yes"},
		{"false", false, "No"},
		{"time", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "15 January 2024"},
		{"float", 3500.0, "3500"},
		{"decimal", 12.5, "12.5"},
		{"string", "  Gympie  ", "Gympie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.input, "N/A"); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
