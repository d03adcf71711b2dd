package mappers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"medical-appointment-service/internal/domain/entities"
)

type FHIRPractitionerQualification struct {
	Code   FHIRCodeableConcept `json:"code"`
	Issuer *FHIRReference      `json:"issuer,omitempty"`
}

// FHIRPractitionerResource is a simplified R4 Practitioner.
type FHIRPractitionerResource struct {
	ResourceType  string                          `json:"resourceType"`
	ID            string                          `json:"id"`
	Active        bool                            `json:"active"`
	Name          []FHIRHumanName                 `json:"name"`
	Telecom       []FHIRContactPoint              `json:"telecom,omitempty"`
	Address       []FHIRAddress                   `json:"address,omitempty"`
	Qualification []FHIRPractitionerQualification `json:"qualification,omitempty"`
	Communication []FHIRCodeableConcept           `json:"communication,omitempty"`
}

// MapDoctorToPractitioner converts a catalogue doctor to a FHIR Practitioner.
// Offline doctors are reported as inactive.
func MapDoctorToPractitioner(doctor entities.Doctor) (json.RawMessage, error) {
	if doctor.ID <= 0 || doctor.Name == "" {
		return nil, fmt.Errorf("doctor id and name are required for FHIR mapping")
	}

	practitioner := FHIRPractitionerResource{
		ResourceType: "Practitioner",
		ID:           strconv.Itoa(doctor.ID),
		Active:       doctor.Availability != entities.AvailabilityOffline,
		Name:         []FHIRHumanName{parseHumanName(doctor.Name)},
	}
	if doctor.Email != "" {
		practitioner.Telecom = []FHIRContactPoint{{System: "email", Value: doctor.Email, Use: "work"}}
	}
	if doctor.Location != "" {
		practitioner.Address = []FHIRAddress{{Text: doctor.Location}}
	}
	if doctor.Specialty != "" {
		q := FHIRPractitionerQualification{Code: FHIRCodeableConcept{Text: doctor.Specialty}}
		if doctor.Hospital != "" {
			q.Issuer = &FHIRReference{Display: doctor.Hospital}
		}
		practitioner.Qualification = []FHIRPractitionerQualification{q}
	}
	for _, lang := range doctor.Languages {
		practitioner.Communication = append(practitioner.Communication, FHIRCodeableConcept{Text: lang})
	}

	rawJSON, err := json.MarshalIndent(practitioner, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR practitioner resource to JSON: %w", err)
	}
	return rawJSON, nil
}
