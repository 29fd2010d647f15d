package pdfgen

import (
	"fmt"
	"time"

	"github.com/avsafe/occurrence-portal/internal/forms"
)

// Metadata accompanies a report rendering request.
type Metadata struct {
	OccurrenceID string
	RecordID     string
	Submitted    time.Time
}

// BuildReport renders the submitted form data as a downloadable PDF. The
// accident report uses the Standard preset; the shorter report types use
// Compact.
func BuildReport(sub *forms.Submission, meta Metadata) ([]byte, error) {
	preset := Compact
	if sub.Type == forms.FormTypeAccident {
		preset = Standard
	}
	if meta.Submitted.IsZero() {
		meta.Submitted = time.Now()
	}

	b := NewBuilder(preset, sub.Type.Title(), meta.Submitted)

	writeReporterSection(b, sub)

	switch sub.Type {
	case forms.FormTypeAccident:
		writeAccidentSections(b, sub)
	case forms.FormTypeDefect:
		writeDefectSections(b, sub)
	case forms.FormTypeComplaint:
		writeComplaintSections(b, sub)
	case forms.FormTypeHazard:
		writeHazardSections(b, sub)
	default:
		return nil, fmt.Errorf("no report layout for form type %q", sub.Type)
	}

	return b.Finalize(meta.OccurrenceID)
}

// ReportFilename builds the download filename for a rendered report.
func ReportFilename(formType forms.FormType, occurrenceID string) string {
	id := occurrenceID
	if id == "" {
		id = "Pending"
	}
	switch formType {
	case forms.FormTypeAccident:
		return fmt.Sprintf("Accident_Report_%s.pdf", id)
	case forms.FormTypeDefect:
		return fmt.Sprintf("Defect_Report_%s.pdf", id)
	case forms.FormTypeComplaint:
		return fmt.Sprintf("Complaint_Report_%s.pdf", id)
	case forms.FormTypeHazard:
		return fmt.Sprintf("Hazard_Report_%s.pdf", id)
	}
	return fmt.Sprintf("Occurrence_Report_%s.pdf", id)
}

func writeReporterSection(b *Builder, sub *forms.Submission) {
	b.Section("Reporter Details")
	b.FieldPair(
		"First name", sub.Text("First_Name", "firstName"),
		"Last name", sub.Text("Last_Name", "lastName"),
	)
	b.FieldPair(
		"Contact phone", sub.Text("Contact_Phone", "contactPhone"),
		"Email", sub.Text("Email", "emailAddress"),
	)
	b.FieldPair(
		"Member number", sub.Text("Member_Number", "memberNumber"),
		"Role", sub.Text("Custom_Role", "customRole", "Role", "role"),
	)
}

func writeOccurrenceSection(b *Builder, sub *forms.Submission, detailsLabel string, detailsAliases ...string) {
	b.Section("Occurrence Details")
	b.FieldPair(
		"Date", sub.Text("Occurrence_Date1", "occurrenceDate"),
		"Time", sub.Text("Occurrence_Time", "occurrenceTime"),
	)
	b.FieldPair(
		"Location", sub.Text("Location_of_incident", "locationOfIncident", "location"),
		"State", sub.Text("State", "state"),
	)
	b.FullWidthField(detailsLabel, sub.Text(detailsAliases...))
}

func writeAircraftSection(b *Builder, sub *forms.Submission) {
	b.Section("Aircraft Details")
	b.FieldPair(
		"Registration", sub.Text("Aircraft_Registration", "aircraftConcat"),
		"Serial number", sub.Text("Serial_Number1", "serialNumber"),
	)
	b.FieldPair(
		"Manufacturer", sub.Text("Manufacturer", "aircraftManufacturer", "manufacturer"),
		"Model", sub.Text("Model", "aircraftModel", "model"),
	)
	b.FieldPair(
		"Type", sub.Text("Type", "aircraftType"),
		"Year built", sub.Text("Year_Built1", "yearBuilt"),
	)
	b.FieldPair(
		"Engine", sub.Text("Engine_Manufacturer", "engineManufacturer"),
		"Engine model", sub.Text("Engine_Model", "engineModel"),
	)
	b.FieldPair(
		"Propeller", sub.Text("Propeller_Manufacturer", "propellerManufacturer"),
		"Propeller model", sub.Text("Propeller_Model", "propellerModel"),
	)
}

func writeAccidentSections(b *Builder, sub *forms.Submission) {
	writeOccurrenceSection(b, sub, "Details of incident", "Details_of_incident", "detailsOfIncident")
	writeAircraftSection(b, sub)

	b.Section("Flight Details")
	b.FieldPair(
		"Phase of flight", sub.Text("Phase_of_flight", "phaseOfFlight"),
		"Flight rules", sub.Text("Flight_Rules", "flightRules"),
	)
	b.FieldPair(
		"Airspace class", sub.Text("Airspace_class", "airspaceClass"),
		"Airspace type", sub.Text("Airspace_type", "airspaceType"),
	)
	b.FieldPair(
		"Altitude", sub.Field("Altitude", "altitude"),
		"Altitude type", sub.Text("Altitude_type", "altitudeType"),
	)
	b.FieldPair(
		"Total flying hours", sub.Text("Total_flying_hours", "totalFlyingHours"),
		"Hours on type", sub.Text("Hours_on_type", "hoursOnType"),
	)

	b.Section("Conditions")
	b.FieldPair(
		"Visibility", sub.Field("Visibility", "visibility"),
		"Light conditions", sub.Text("Light_conditions", "lightConditions"),
	)
	b.FieldPair(
		"Wind speed", sub.Field("Wind_speed", "windSpeed"),
		"Wind direction", sub.Text("Wind_direction", "windDirection"),
	)
	b.Field("Temperature", sub.Field("Temperature", "temperature"))

	b.Section("Damage and Injuries")
	b.FieldPair(
		"Damage to aircraft", sub.Text("Damage_to_aircraft", "damageToAircraft"),
		"Injuries", sub.Text("Injuries", "injuries"),
	)
	b.FullWidthField("Description of damage", sub.Text("Description_of_damage", "descriptionOfDamage"))
	b.FullWidthField("Details of injuries", sub.Text("Details_of_injuries", "detailsOfInjuries"))

	b.Section("Safety Equipment")
	b.FieldPair(
		"PLB carried", sub.Text("Personal_Locator_Beacon_carried", "plbCarried"),
		"PLB activated", sub.Field("PLB_activated", "plbActivated"),
	)
	b.FieldPair(
		"Alert received", sub.Text("Custom_Alert_received", "customAlertReceived", "Alert_received", "alertReceived"),
		"Near miss", sub.Field("Involve_near_miss_with_another_aircraft", "nearMiss"),
	)
}

func writeDefectSections(b *Builder, sub *forms.Submission) {
	writeOccurrenceSection(b, sub, "Details of defect", "Details_of_incident", "detailsOfDefect", "detailsOfIncident")
	writeAircraftSection(b, sub)

	b.Section("Part Details")
	b.FieldPair(
		"Part name", sub.Text("Part_Name", "partName"),
		"Part number", sub.Text("Part_Number", "partNumber"),
	)
	b.FieldPair(
		"Part manufacturer", sub.Text("Part_Manufacturer", "partManufacturer"),
		"Part serial number", sub.Text("Serial_Number_of_Part", "partSerialNumber"),
	)
	b.FieldPair(
		"Hours since new", sub.Text("Hours_since_new", "hoursSinceNew"),
		"Hours since overhaul", sub.Text("Hours_since_last_overhaul", "hoursSinceOverhaul"),
	)
	b.Field("Defect found during", sub.Text("Defect_found_during", "defectFoundDuring"))
}

func writeComplaintSections(b *Builder, sub *forms.Submission) {
	writeOccurrenceSection(b, sub, "Details of complaint", "Details_of_incident", "detailsOfComplaint", "detailsOfIncident")

	b.Section("Complaint Details")
	b.Field("Complaint about", sub.Text("Complaint_about", "complaintAbout"))
	b.Field("Person involved", sub.Text("Person_involved", "personInvolved"))
}

func writeHazardSections(b *Builder, sub *forms.Submission) {
	writeOccurrenceSection(b, sub, "Details of hazard", "Details_of_incident", "detailsOfHazard", "detailsOfIncident")

	b.Section("Hazard Assessment")
	b.FieldPair(
		"Hazard type", sub.Text("Hazard_type", "hazardType"),
		"Severity", sub.Text("Severity", "severity"),
	)
	b.Field("Likelihood", sub.Text("Likelihood", "likelihood"))
	b.FullWidthField("Suggested mitigation", sub.Text("Suggested_mitigation", "suggestedMitigation"))
}
