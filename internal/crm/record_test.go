package crm

import (
	"math"
	"strings"
	"testing"
)

func TestCleanupDropsEmpties(t *testing.T) {
	record := Record{
		"Keep_Text":    "value",
		"Empty":        "",
		"Whitespace":   "   ",
		"Nil":          nil,
		"Placeholder1": "-None-",
		"Placeholder2": "- Please Select -",
		"NotAnswered":  "Not Answered",
		"Keep_Bool":    false,
		"Keep_Number":  42.5,
		"NaN":          math.NaN(),
		"Inf":          math.Inf(1),
	}

	cleaned := Cleanup(record)

	if len(cleaned) != 3 {
		t.Errorf("expected 3 surviving keys, got %d: %v", len(cleaned), cleaned)
	}
	if cleaned["Keep_Text"] != "value" {
		t.Errorf("Keep_Text = %v", cleaned["Keep_Text"])
	}
	if cleaned["Keep_Bool"] != false {
		t.Error("false boolean must survive cleanup")
	}
	if cleaned["Keep_Number"] != 42.5 {
		t.Errorf("Keep_Number = %v", cleaned["Keep_Number"])
	}
}

func TestCleanupTrimsAndTruncates(t *testing.T) {
	long := strings.Repeat("x", 300)
	cleaned := Cleanup(Record{
		"Padded": "  trimmed  ",
		"Long":   long,
	})

	if cleaned["Padded"] != "trimmed" {
		t.Errorf("Padded = %q", cleaned["Padded"])
	}
	got, ok := cleaned["Long"].(string)
	if !ok || len(got) != 255 {
		t.Fatalf("Long length = %d, want 255", len(got))
	}
	if got != long[:255] {
		t.Error("truncation must keep the first 255 characters")
	}
}

func TestCleanupFiltersArrays(t *testing.T) {
	cleaned := Cleanup(Record{
		"Tags":     []string{"one", "", "-None-", " two "},
		"AllEmpty": []string{"", "Not Answered"},
	})

	tags, ok := cleaned["Tags"].([]string)
	if !ok {
		t.Fatalf("Tags missing: %v", cleaned)
	}
	if len(tags) != 2 || tags[0] != "one" || tags[1] != "two" {
		t.Errorf("Tags = %v", tags)
	}
	if _, present := cleaned["AllEmpty"]; present {
		t.Error("array with no surviving entries must be dropped")
	}
}

func TestCleanupDoesNotMutateInput(t *testing.T) {
	record := Record{"Empty": "", "Keep": "v"}
	Cleanup(record)
	if len(record) != 2 {
		t.Error("Cleanup must not mutate its input")
	}
}
