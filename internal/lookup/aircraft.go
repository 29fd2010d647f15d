// Package lookup shapes requests and responses around the CRM search API so
// the form UI can auto-populate aircraft, engine, and propeller details from
// a registration number.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"github.com/avsafe/occurrence-portal/internal/crm"
)

// CRM module names the lookups search against.
const (
	aircraftModule  = "Aircrafts"
	engineModule    = "Engines"
	propellerModule = "Propellers"
)

// ErrAircraftNotFound is returned when no aircraft matches the registration.
var ErrAircraftNotFound = errors.New("no aircraft found for registration")

// AircraftDetails is the auto-fill payload returned to the form UI. Engine
// and propeller sections are best-effort: a missing match leaves its section
// empty and the corresponding found flag false.
type AircraftDetails struct {
	SerialNumber     string `json:"Serial_Number1"`
	Manufacturer     string `json:"Manufacturer"`
	Model            string `json:"Model"`
	RegistrationType string `json:"Registration_Type"`
	Type             string `json:"Type"`
	YearBuilt        string `json:"Year_Built1"`

	EngineManufacturer string `json:"Engine_Manufacturer"`
	EngineModel        string `json:"Engine_Model"`
	EngineSerialNumber string `json:"Engine_Serial_Number"`
	EngineFound        bool   `json:"engine_found"`

	PropellerManufacturer string `json:"Propeller_Manufacturer"`
	PropellerModel        string `json:"Propeller_Model"`
	PropellerSerialNumber string `json:"Propeller_Serial_Number1"`
	PropellerFound        bool   `json:"propeller_found"`
}

// Service runs the three-stage lookup against the CRM search API.
type Service struct {
	CRM crm.API
}

// NewService creates a lookup service over the given CRM client.
func NewService(api crm.API) *Service {
	return &Service{CRM: api}
}

// AircraftByRegistration looks up an aircraft by its concatenated
// registration ("<prefix>-<suffix>"), then its engine by aircraft ID, then
// its propeller through an ordered list of fallback criteria. Engine and
// propeller misses are not errors.
func (s *Service) AircraftByRegistration(ctx context.Context, registration string) (*AircraftDetails, error) {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return nil, fmt.Errorf("registration is required")
	}

	aircraft, err := s.findAircraft(ctx, registration)
	if err != nil {
		return nil, err
	}

	details := &AircraftDetails{
		SerialNumber:     text(aircraft, "Serial_Number1"),
		Manufacturer:     text(aircraft, "Manufacturer"),
		Model:            text(aircraft, "Model"),
		RegistrationType: text(aircraft, "Registration_Type"),
		Type:             text(aircraft, "Type"),
		YearBuilt:        text(aircraft, "Year_Built1"),
	}

	aircraftID := text(aircraft, "id")
	aircraftName := text(aircraft, "Name")

	if engine := s.findEngine(ctx, aircraftID); engine != nil {
		details.EngineFound = true
		details.EngineManufacturer = text(engine, "Manufacturer")
		details.EngineModel = text(engine, "Model")
		details.EngineSerialNumber = text(engine, "Serial_Number")
	}

	if prop := s.findPropeller(ctx, registration, aircraftID, aircraftName); prop != nil {
		details.PropellerFound = true
		details.PropellerManufacturer = text(prop, "Manufacturer")
		details.PropellerModel = text(prop, "Model")
		details.PropellerSerialNumber = text(prop, "Serial_Number1")
	}

	return details, nil
}

func (s *Service) findAircraft(ctx context.Context, registration string) (crm.Record, error) {
	records, err := s.CRM.SearchRecords(ctx, aircraftModule, criteria("Aircraft_Concat", registration))
	if err != nil {
		return nil, fmt.Errorf("aircraft search failed: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrAircraftNotFound
	}
	return records[0], nil
}

func (s *Service) findEngine(ctx context.Context, aircraftID string) crm.Record {
	if aircraftID == "" {
		return nil
	}
	records, err := s.CRM.SearchRecords(ctx, engineModule, criteria("Aircraft", aircraftID))
	if err != nil {
		log.Warn(fmt.Sprintf("Engine search failed for aircraft %s: %v", aircraftID, err))
		return nil
	}
	if len(records) == 0 {
		return nil
	}
	return records[0]
}

// findPropeller tries an ordered list of candidate criteria and stops at the
// first match. Propeller records were linked inconsistently over the years,
// so no single field reliably finds them.
func (s *Service) findPropeller(ctx context.Context, registration, aircraftID, aircraftName string) crm.Record {
	candidates := []struct {
		field string
		value string
	}{
		{"Aircraft_Concat", registration},
		{"Aircraft", aircraftID},
		{"Aircraft_Name", aircraftName},
		{"Registration", registration},
	}

	for _, candidate := range candidates {
		if candidate.value == "" {
			continue
		}
		records, err := s.CRM.SearchRecords(ctx, propellerModule, criteria(candidate.field, candidate.value))
		if err != nil {
			log.Warn(fmt.Sprintf("Propeller search on %s failed: %v", candidate.field, err))
			continue
		}
		if len(records) > 0 {
			return records[0]
		}
	}
	return nil
}

func criteria(field, value string) string {
	return fmt.Sprintf("(%s:equals:%s)", field, value)
}

func text(r crm.Record, key string) string {
	if v, ok := r[key]; ok && v != nil {
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return ""
}
