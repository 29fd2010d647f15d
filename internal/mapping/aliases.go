package mapping

// The form UI renamed most fields at least once, so every CRM field is read
// through a short alias chain: the canonical CRM name first, then the legacy
// client names. Keeping the chains in one table per concern makes the mapping
// auditable instead of scattering fallbacks through the builders.

var reporterAliases = map[string][]string{
	"First_Name":    {"First_Name", "firstName"},
	"Last_Name":     {"Last_Name", "lastName"},
	"Contact_Phone": {"Contact_Phone", "contactPhone", "phoneNumber"},
	"Email":         {"Email", "emailAddress", "email"},
	"Member_Number": {"Member_Number", "memberNumber"},
}

var aircraftAliases = map[string][]string{
	"Serial_Number1":           {"Serial_Number1", "serialNumber"},
	"Manufacturer":             {"Manufacturer", "aircraftManufacturer", "manufacturer"},
	"Model":                    {"Model", "aircraftModel", "model"},
	"Type":                     {"Type", "aircraftType"},
	"Registration_Type":        {"Registration_Type", "registrationType"},
	"Year_Built1":              {"Year_Built1", "yearBuilt"},
	"Engine_Manufacturer":      {"Engine_Manufacturer", "engineManufacturer"},
	"Engine_Model":             {"Engine_Model", "engineModel"},
	"Engine_Serial_Number":     {"Engine_Serial_Number", "engineSerialNumber"},
	"Propeller_Manufacturer":   {"Propeller_Manufacturer", "propellerManufacturer"},
	"Propeller_Model":          {"Propeller_Model", "propellerModel"},
	"Propeller_Serial_Number1": {"Propeller_Serial_Number1", "propellerSerialNumber"},
}

// Hours fields are numeric on the form but the remote schema stores them as
// single-line text, so they map through text coercion, not number coercion.
var hoursAliases = map[string][]string{
	"Engine_Hours":              {"Engine_Hours", "engineHours"},
	"Propeller_Hours":           {"Propeller_Hours", "propellerHours"},
	"Total_flying_hours":        {"Total_flying_hours", "totalFlyingHours"},
	"Hours_on_type":             {"Hours_on_type", "hoursOnType"},
	"Hours_flown_last_90_days":  {"Hours_flown_last_90_days", "hoursLast90Days"},
	"Airframe_hours":            {"Airframe_hours", "airframeHours"},
	"Hours_since_new":           {"Hours_since_new", "hoursSinceNew"},
	"Hours_since_last_overhaul": {"Hours_since_last_overhaul", "hoursSinceOverhaul"},
}

// Picklists whose remote schema defines an explicit "Unknown" member; a
// "Not Answered" selection maps to "Unknown" instead of being dropped.
var unknownPicklistAliases = map[string][]string{
	"Phase_of_flight":  {"Phase_of_flight", "phaseOfFlight"},
	"Flight_Rules":     {"Flight_Rules", "flightRules"},
	"Airspace_class":   {"Airspace_class", "airspaceClass"},
	"Airspace_type":    {"Airspace_type", "airspaceType"},
	"Altitude_type":    {"Altitude_type", "altitudeType"},
	"Light_conditions": {"Light_conditions", "lightConditions"},
}

// Environment readings stored as numbers.
var numericAliases = map[string][]string{
	"Altitude":        {"Altitude", "altitude"},
	"Visibility":      {"Visibility", "visibility"},
	"Wind_speed":      {"Wind_speed", "windSpeed"},
	"Temperature":     {"Temperature", "temperature"},
	"Location_Lat":    {"Location_Lat", "latitude"},
	"Location_Long":   {"Location_Long", "longitude"},
	"Persons_Onboard": {"Persons_Onboard", "personsOnboard"},
}

// Boolean-semantic fields. The CRM schema types these as actual booleans;
// "Yes"/"No" strings are rejected with an INVALID_DATA error.
var booleanAliases = map[string][]string{
	"Involve_near_miss_with_another_aircraft": {"Involve_near_miss_with_another_aircraft", "nearMiss"},
	"Bird_or_animal_strike":                   {"Bird_or_animal_strike", "birdStrike"},
	"IFR_operations":                          {"IFR_operations", "ifrOperations"},
	"Controlled_airspace":                     {"Controlled_airspace", "controlledAirspace"},
	"Vicinity_of_aerodrome":                   {"Vicinity_of_aerodrome", "vicinityOfAerodrome"},
	"PLB_activated":                           {"PLB_activated", "plbActivated"},
}

// otherEscape pairs a picklist with the free-text field that replaces its
// value when "Other" is selected.
type otherEscape struct {
	picklist []string
	custom   []string
}

var otherEscapes = map[string]otherEscape{
	"Role": {
		picklist: []string{"Role", "role"},
		custom:   []string{"Custom_Role", "customRole"},
	},
	"Flight_training_school": {
		picklist: []string{"Flight_training_school", "flightTrainingSchool"},
		custom:   []string{"Custom_Flight_training_school", "customFlightTrainingSchool"},
	},
	"Relative_track": {
		picklist: []string{"Relative_track", "relativeTrack"},
		custom:   []string{"Custom_Relative_track", "customRelativeTrack"},
	},
	"Alert_received": {
		picklist: []string{"Alert_received", "alertReceived"},
		custom:   []string{"Custom_Alert_received", "customAlertReceived"},
	},
}
