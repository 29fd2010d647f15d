// Package mapping assembles flat CRM records from typed form submissions.
// One builder per report type applies the field-specific coercions, picklist
// sanitization, "Other"-escape substitution, and the final cleanup pass.
package mapping

import (
	"fmt"
	"strings"
	"time"

	"github.com/avsafe/occurrence-portal/internal/coerce"
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/forms"
)

// Build assembles the CRM record for a submission. The returned record has
// already been through the cleanup pass: no empty, placeholder, or non-finite
// values survive.
func Build(sub *forms.Submission) (crm.Record, error) {
	switch sub.Type {
	case forms.FormTypeAccident:
		return buildAccident(sub)
	case forms.FormTypeDefect:
		return buildDefect(sub)
	case forms.FormTypeComplaint:
		return buildComplaint(sub)
	case forms.FormTypeHazard:
		return buildHazard(sub)
	}
	return nil, fmt.Errorf("no record builder for form type %q", sub.Type)
}

// putText stores the stringified field value when present.
func putText(r crm.Record, sub *forms.Submission, aliases map[string][]string) {
	for field, chain := range aliases {
		if s, ok := coerce.ToText(sub.Field(chain...)); ok {
			r[field] = strings.TrimSpace(s)
		}
	}
}

// putNumbers stores fields that the remote schema types as numbers.
func putNumbers(r crm.Record, sub *forms.Submission, aliases map[string][]string) {
	for field, chain := range aliases {
		if n, ok := coerce.ToNumber(sub.Field(chain...)); ok {
			r[field] = n
		}
	}
}

// putBooleans coerces boolean-semantic fields into actual booleans.
func putBooleans(r crm.Record, sub *forms.Submission, aliases map[string][]string) {
	for field, chain := range aliases {
		if v := sub.Field(chain...); v != nil {
			r[field] = coerce.ToBoolean(v)
		}
	}
}

// putPicklist stores a sanitized picklist selection, omitting placeholders.
func putPicklist(r crm.Record, field string, sub *forms.Submission, chain ...string) {
	if s, ok := coerce.SanitizePicklist(sub.Field(chain...)); ok {
		r[field] = s
	}
}

// putUnknownPicklists stores picklists whose schema has an Unknown member.
func putUnknownPicklists(r crm.Record, sub *forms.Submission, aliases map[string][]string) {
	for field, chain := range aliases {
		if s, ok := coerce.SanitizePicklistUnknown(sub.Field(chain...)); ok {
			r[field] = s
		}
	}
}

// putOtherEscapes resolves picklists with an "Other" free-text escape: when
// the selection is literally "Other" and the paired free-text field is not
// blank, the free text replaces the picklist value.
func putOtherEscapes(r crm.Record, sub *forms.Submission) {
	for field, esc := range otherEscapes {
		selected, ok := coerce.SanitizePicklist(sub.Field(esc.picklist...))
		if !ok {
			continue
		}
		if selected == "Other" {
			if custom := sub.Text(esc.custom...); custom != "" {
				r[field] = custom
				continue
			}
		}
		r[field] = selected
	}
}

// putReporter stores the reporter identity fields common to all report types.
func putReporter(r crm.Record, sub *forms.Submission) {
	putText(r, sub, reporterAliases)
}

// putOccurrenceDates populates the full datetime field and derives the
// parallel date-only field when it was not independently supplied.
func putOccurrenceDates(r crm.Record, sub *forms.Submission) {
	date := sub.Text("Occurrence_Date1", "occurrenceDate")
	if date == "" {
		return
	}

	r["Occurrence_Date1"] = occurrenceDateTime(date, sub.Text("Occurrence_Time", "occurrenceTime"))

	if explicit := sub.Text("Occurrence_Date2", "occurrenceDate2"); explicit != "" {
		r["Occurrence_Date2"] = dateOnly(explicit)
	} else {
		r["Occurrence_Date2"] = dateOnly(date)
	}
}

// occurrenceDateTime combines a date and an optional time-of-day into the
// ISO form the CRM datetime field expects.
func occurrenceDateTime(date, timeOfDay string) string {
	date = dateOnly(date)
	if timeOfDay == "" {
		return date + "T00:00:00"
	}
	if len(timeOfDay) == 5 { // HH:mm
		timeOfDay += ":00"
	}
	return date + "T" + timeOfDay
}

// dateOnly strips any time component from an ISO date or datetime string.
func dateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}

// putRegistration stores the composite aircraft registration: both halves
// present concatenate as "<prefix>-<suffix>", otherwise just the prefix.
func putRegistration(r crm.Record, sub *forms.Submission) {
	prefix := sub.Text("Registration_Prefix", "registrationPrefix")
	suffix := sub.Text("Registration_Suffix", "registrationSuffix")

	switch {
	case prefix != "" && suffix != "":
		r["Aircraft_Registration"] = prefix + "-" + suffix
	case prefix != "":
		r["Aircraft_Registration"] = prefix
	default:
		if concat := sub.Text("Aircraft_Registration", "aircraftConcat"); concat != "" {
			r["Aircraft_Registration"] = concat
		}
	}
}

// putAircraft stores the aircraft, engine, and propeller detail fields.
func putAircraft(r crm.Record, sub *forms.Submission) {
	putRegistration(r, sub)
	putText(r, sub, aircraftAliases)
	putText(r, sub, hoursAliases)
}
