package mappers

import "strings"

// FHIRHumanName represents a FHIR HumanName data type.
type FHIRHumanName struct {
	Use    string   `json:"use,omitempty"` // usual | official | temp | nickname | anonymous | old | maiden
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
}

// FHIRContactPoint represents a FHIR ContactPoint (telecom) data type.
type FHIRContactPoint struct {
	System string `json:"system,omitempty"` // phone | fax | email | pager | url | sms | other
	Value  string `json:"value,omitempty"`
	Use    string `json:"use,omitempty"`
}

type FHIRCodeableConcept struct {
	Text string `json:"text,omitempty"`
}

type FHIRReference struct {
	Reference string `json:"reference,omitempty"`
	Display   string `json:"display,omitempty"`
}

type FHIRAddress struct {
	Text string `json:"text,omitempty"`
}

type FHIRPeriod struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

var namePrefixes = map[string]bool{"dr.": true, "dr": true, "prof.": true, "mr.": true, "mrs.": true, "ms.": true}

// parseHumanName splits "Dr. Sarah Ahmed" into prefix, given and family
// parts. A single word becomes the family name.
func parseHumanName(full string) FHIRHumanName {
	name := FHIRHumanName{Use: "official", Text: full}
	parts := strings.Fields(full)
	for len(parts) > 0 && namePrefixes[strings.ToLower(parts[0])] {
		name.Prefix = append(name.Prefix, parts[0])
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return name
	}
	name.Family = parts[len(parts)-1]
	if len(parts) > 1 {
		name.Given = parts[:len(parts)-1]
	}
	return name
}
