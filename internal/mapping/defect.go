package mapping

import (
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/forms"
)

// buildDefect assembles the airworthiness defect report record.
func buildDefect(sub *forms.Submission) (crm.Record, error) {
	r := crm.Record{
		"Form_ID": sub.Type.FormID(),
	}

	putReporter(r, sub)
	putOccurrenceDates(r, sub)
	putAircraft(r, sub)
	putOtherEscapes(r, sub)

	putText(r, sub, map[string][]string{
		"Details_of_incident":   {"Details_of_incident", "detailsOfDefect", "detailsOfIncident"},
		"Part_Name":             {"Part_Name", "partName"},
		"Part_Number":           {"Part_Number", "partNumber"},
		"Part_Manufacturer":     {"Part_Manufacturer", "partManufacturer"},
		"Serial_Number_of_Part": {"Serial_Number_of_Part", "partSerialNumber"},
		"Maintenance_performed": {"Maintenance_performed", "maintenancePerformed"},
	})

	putPicklist(r, "Defect_found_during", sub, "Defect_found_during", "defectFoundDuring")
	putPicklist(r, "Part_condition", sub, "Part_condition", "partCondition")

	return crm.Cleanup(r), nil
}
