package mapping

import (
	"fmt"

	"github.com/avsafe/occurrence-portal/internal/coerce"
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/forms"
)

// buildAccident assembles the accident report record, the widest of the four
// mappings. Reporter identity is a hard precondition here: the CRM accident
// layout rejects records without it, so a blank identity fails the build
// rather than producing a record the remote side will bounce.
func buildAccident(sub *forms.Submission) (crm.Record, error) {
	for _, required := range []struct {
		label string
		chain []string
	}{
		{"first name", reporterAliases["First_Name"]},
		{"last name", reporterAliases["Last_Name"]},
		{"contact phone", reporterAliases["Contact_Phone"]},
		{"email address", reporterAliases["Email"]},
	} {
		if sub.Text(required.chain...) == "" {
			return nil, fmt.Errorf("accident report requires reporter %s", required.label)
		}
	}

	r := crm.Record{
		"Accident": true,
		"Form_ID":  sub.Type.FormID(),
	}

	putReporter(r, sub)
	putOccurrenceDates(r, sub)
	putAircraft(r, sub)
	putNumbers(r, sub, numericAliases)
	putBooleans(r, sub, booleanAliases)
	putUnknownPicklists(r, sub, unknownPicklistAliases)
	putOtherEscapes(r, sub)

	// The beacon-carried question is the one boolean-semantic field the
	// schema stores as Yes/No text.
	if v := sub.Field("Personal_Locator_Beacon_carried", "plbCarried"); v != nil {
		r["Personal_Locator_Beacon_carried"] = coerce.ToYesNo(v)
	}

	putText(r, sub, map[string][]string{
		"Details_of_incident":   {"Details_of_incident", "detailsOfIncident"},
		"Location_of_incident":  {"Location_of_incident", "locationOfIncident", "location"},
		"State":                 {"State", "state"},
		"Wind_direction":        {"Wind_direction", "windDirection"},
		"Description_of_damage": {"Description_of_damage", "descriptionOfDamage"},
		"Details_of_injuries":   {"Details_of_injuries", "detailsOfInjuries"},
		"Other_aircraft_detail": {"Other_aircraft_detail", "otherAircraftDetail"},
	})

	putPicklist(r, "Damage_to_aircraft", sub, "Damage_to_aircraft", "damageToAircraft")
	putPicklist(r, "Injuries", sub, "Injuries", "injuries")
	putPicklist(r, "Type_of_operation", sub, "Type_of_operation", "typeOfOperation")
	putPicklist(r, "Weather_conditions", sub, "Weather_conditions", "weatherConditions")

	return crm.Cleanup(r), nil
}
