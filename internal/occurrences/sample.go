package occurrences

import "github.com/avsafe/occurrence-portal/internal/crm"

// sampleRecords is the fixed dataset served when the remote CRM is
// unreachable, so the browsing page degrades to static content instead of an
// error state.
func sampleRecords() []crm.Record {
	return []crm.Record{
		{
			"Occurrence_ID":         "OCC-00101",
			"Type_of_occurrence":    "Accident",
			"Occurrence_Date2":      "2023-08-14",
			"Location_of_incident":  "Gympie, QLD",
			"Aircraft_Registration": "24-8812",
			"Details_of_incident":   "Loss of directional control during crosswind landing; aircraft departed the sealed runway and came to rest in grass. No injuries.",
			"Publicly_displayable":  true,
		},
		{
			"Occurrence_ID":         "OCC-00115",
			"Type_of_occurrence":    "Defect",
			"Occurrence_Date2":      "2023-09-02",
			"Location_of_incident":  "Temora, NSW",
			"Aircraft_Registration": "19-4420",
			"Details_of_incident":   "Cracked exhaust mount found during pre-flight inspection. Aircraft withdrawn from service pending repair.",
			"Publicly_displayable":  true,
		},
		{
			"Occurrence_ID":         "OCC-00122",
			"Type_of_occurrence":    "Hazard",
			"Occurrence_Date2":      "2023-09-20",
			"Location_of_incident":  "Serpentine, WA",
			"Aircraft_Registration": "",
			"Details_of_incident":   "Large flocks of galahs congregating near the threshold of runway 23 at dusk.",
			"Publicly_displayable":  true,
		},
		{
			"Occurrence_ID":         "OCC-00130",
			"Type_of_occurrence":    "Accident",
			"Occurrence_Date2":      "2023-10-05",
			"Location_of_incident":  "Boonah, QLD",
			"Aircraft_Registration": "23-0991",
			"Details_of_incident":   "Engine failure after takeoff; successful forced landing in adjacent paddock. Minor damage to nosewheel.",
			"Publicly_displayable":  true,
		},
		{
			"Occurrence_ID":         "OCC-00134",
			"Type_of_occurrence":    "Defect",
			"Occurrence_Date2":      "2023-10-18",
			"Location_of_incident":  "Bindoon, WA",
			"Aircraft_Registration": "24-5150",
			"Details_of_incident":   "Fuel weep from gascolator bowl seal detected on daily inspection.",
			"Publicly_displayable":  true,
		},
	}
}
