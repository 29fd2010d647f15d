package mapping

import (
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/forms"
)

// buildHazard assembles the hazard report record.
func buildHazard(sub *forms.Submission) (crm.Record, error) {
	r := crm.Record{
		"Form_ID": sub.Type.FormID(),
	}

	putReporter(r, sub)
	putOccurrenceDates(r, sub)
	putNumbers(r, sub, numericAliases)
	putUnknownPicklists(r, sub, unknownPicklistAliases)
	putOtherEscapes(r, sub)

	putText(r, sub, map[string][]string{
		"Details_of_incident":  {"Details_of_incident", "detailsOfHazard", "detailsOfIncident"},
		"Location_of_incident": {"Location_of_incident", "locationOfIncident", "location"},
		"State":                {"State", "state"},
		"Suggested_mitigation": {"Suggested_mitigation", "suggestedMitigation"},
	})

	putPicklist(r, "Hazard_type", sub, "Hazard_type", "hazardType")
	putPicklist(r, "Likelihood", sub, "Likelihood", "likelihood")
	putPicklist(r, "Severity", sub, "Severity", "severity")

	return crm.Cleanup(r), nil
}
