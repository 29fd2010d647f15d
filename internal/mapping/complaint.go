package mapping

import (
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/forms"
)

// buildComplaint assembles the complaint report record, the narrowest of the
// four mappings.
func buildComplaint(sub *forms.Submission) (crm.Record, error) {
	r := crm.Record{
		"Form_ID": sub.Type.FormID(),
	}

	putReporter(r, sub)
	putOccurrenceDates(r, sub)
	putOtherEscapes(r, sub)

	putText(r, sub, map[string][]string{
		"Details_of_incident":  {"Details_of_incident", "detailsOfComplaint", "detailsOfIncident"},
		"Location_of_incident": {"Location_of_incident", "locationOfIncident", "location"},
		"State":                {"State", "state"},
		"Person_involved":      {"Person_involved", "personInvolved"},
	})

	putPicklist(r, "Complaint_about", sub, "Complaint_about", "complaintAbout")

	return crm.Cleanup(r), nil
}
