package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchFake answers SearchRecords per module/criteria and records the order
// of criteria tried.
type searchFake struct {
	results map[string][]crm.Record // key: module + "|" + criteria
	errs    map[string]error
	calls   []string
}

func (f *searchFake) CreateRecord(context.Context, string, crm.Record) (string, error) {
	return "", errors.New("not implemented")
}
func (f *searchFake) UpdateRecord(context.Context, string, string, crm.Record) error {
	return errors.New("not implemented")
}
func (f *searchFake) GetRecord(context.Context, string, string) (crm.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *searchFake) SearchRecords(_ context.Context, module, criteria string) ([]crm.Record, error) {
	key := module + "|" + criteria
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return f.results[key], nil
}

func key(module, field, value string) string {
	return fmt.Sprintf("%s|(%s:equals:%s)", module, field, value)
}

func TestAircraftByRegistrationFull(t *testing.T) {
	fake := &searchFake{results: map[string][]crm.Record{
		key("Aircrafts", "Aircraft_Concat", "24-1234"): {{
			"id":                "a-1",
			"Name":              "Jabiru J230",
			"Serial_Number1":    "J230-042",
			"Manufacturer":      "Jabiru",
			"Model":             "J230",
			"Registration_Type": "Full",
			"Type":              "3-axis",
			"Year_Built1":       "2012",
		}},
		key("Engines", "Aircraft", "a-1"): {{
			"Manufacturer":  "Jabiru",
			"Model":         "3300",
			"Serial_Number": "33A-1987",
		}},
		key("Propellers", "Aircraft_Concat", "24-1234"): {{
			"Manufacturer":   "Sweetapple",
			"Model":          "60x42",
			"Serial_Number1": "SW-7741",
		}},
	}}

	details, err := NewService(fake).AircraftByRegistration(context.Background(), "24-1234")
	require.NoError(t, err)

	assert.Equal(t, "Jabiru", details.Manufacturer)
	assert.Equal(t, "J230", details.Model)
	assert.Equal(t, "2012", details.YearBuilt)
	assert.True(t, details.EngineFound)
	assert.Equal(t, "3300", details.EngineModel)
	assert.True(t, details.PropellerFound)
	assert.Equal(t, "Sweetapple", details.PropellerManufacturer)
}

func TestAircraftNotFound(t *testing.T) {
	fake := &searchFake{}
	_, err := NewService(fake).AircraftByRegistration(context.Background(), "24-9999")
	require.ErrorIs(t, err, ErrAircraftNotFound)
}

func TestPropellerFallbackOrder(t *testing.T) {
	// Engine search misses; propeller matches only on the third candidate
	// criterion (Aircraft_Name).
	fake := &searchFake{results: map[string][]crm.Record{
		key("Aircrafts", "Aircraft_Concat", "24-1234"): {{
			"id":   "a-1",
			"Name": "Jabiru J230",
		}},
		key("Propellers", "Aircraft_Name", "Jabiru J230"): {{
			"Manufacturer":   "Bolly",
			"Model":          "BOS3",
			"Serial_Number1": "B-1001",
		}},
	}}

	details, err := NewService(fake).AircraftByRegistration(context.Background(), "24-1234")
	require.NoError(t, err)

	assert.False(t, details.EngineFound)
	assert.Empty(t, details.EngineModel)
	assert.True(t, details.PropellerFound)
	assert.Equal(t, "Bolly", details.PropellerManufacturer)

	// The fallback sequence must have tried Aircraft_Concat and Aircraft
	// before matching on Aircraft_Name, and stopped there.
	var propellerCalls []string
	for _, call := range fake.calls {
		if strings.HasPrefix(call, "Propellers|") {
			propellerCalls = append(propellerCalls, call)
		}
	}
	require.Len(t, propellerCalls, 3)
	assert.Contains(t, propellerCalls[0], "Aircraft_Concat")
	assert.Contains(t, propellerCalls[1], "(Aircraft:")
	assert.Contains(t, propellerCalls[2], "Aircraft_Name")
}

func TestPropellerSearchErrorFallsThrough(t *testing.T) {
	fake := &searchFake{
		results: map[string][]crm.Record{
			key("Aircrafts", "Aircraft_Concat", "24-1234"): {{"id": "a-1"}},
			key("Propellers", "Registration", "24-1234"):   {{"Model": "GSC"}},
		},
		errs: map[string]error{
			key("Propellers", "Aircraft_Concat", "24-1234"): errors.New("search unavailable"),
		},
	}

	details, err := NewService(fake).AircraftByRegistration(context.Background(), "24-1234")
	require.NoError(t, err)
	assert.True(t, details.PropellerFound)
	assert.Equal(t, "GSC", details.PropellerModel)
}

func TestEmptyRegistration(t *testing.T) {
	_, err := NewService(&searchFake{}).AircraftByRegistration(context.Background(), "  ")
	require.Error(t, err)
}
