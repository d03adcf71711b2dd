package mappers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"medical-appointment-service/internal/domain/entities"
)

// SlotDuration is the length of every clinic slot.
const SlotDuration = time.Hour

type FHIRAppointmentParticipant struct {
	Actor    FHIRReference `json:"actor"`
	Required string        `json:"required,omitempty"` // required | optional | information-only
	Status   string        `json:"status"`             // accepted | declined | tentative | needs-action
}

// FHIRAppointmentResource is a simplified R4 Appointment.
type FHIRAppointmentResource struct {
	ResourceType    string                       `json:"resourceType"`
	Status          string                       `json:"status"`
	ServiceType     []FHIRCodeableConcept        `json:"serviceType,omitempty"`
	Description     string                       `json:"description,omitempty"`
	Start           string                       `json:"start,omitempty"`
	End             string                       `json:"end,omitempty"`
	MinutesDuration int                          `json:"minutesDuration,omitempty"`
	RequestedPeriod []FHIRPeriod                 `json:"requestedPeriod,omitempty"`
	Created         string                       `json:"created,omitempty"`
	Participant     []FHIRAppointmentParticipant `json:"participant"`
}

// MapAppointmentToFHIR converts a booking to a FHIR Appointment with status
// "booked". Slot times are taken as UTC. Without a slot only the requested
// day is given.
func MapAppointmentToFHIR(appt entities.Appointment) (json.RawMessage, error) {
	day, ok := appt.Date()
	if !ok {
		return nil, fmt.Errorf("appointment date %q is not a calendar date", appt.AppointmentDate)
	}

	resource := FHIRAppointmentResource{
		ResourceType: "Appointment",
		Status:       "booked",
		Description:  fmt.Sprintf("%s consultation at %s", appt.Specialty, appt.Hospital),
		Participant: []FHIRAppointmentParticipant{
			{
				Actor:    FHIRReference{Reference: "Practitioner/" + strconv.Itoa(appt.DoctorID), Display: appt.DoctorName},
				Required: "required",
				Status:   "accepted",
			},
			{
				Actor:    FHIRReference{Display: fmt.Sprintf("%s <%s>", appt.PatientName, appt.PatientEmail)},
				Required: "required",
				Status:   "accepted",
			},
		},
	}
	if appt.Specialty != "" {
		resource.ServiceType = []FHIRCodeableConcept{{Text: appt.Specialty}}
	}
	if appt.Hospital != "" {
		resource.Participant = append(resource.Participant, FHIRAppointmentParticipant{
			Actor:    FHIRReference{Display: appt.Hospital},
			Required: "information-only",
			Status:   "accepted",
		})
	}
	if created, err := time.Parse(time.RFC3339Nano, appt.BookedAt); err == nil {
		resource.Created = created.UTC().Format(time.RFC3339)
	}

	if appt.AppointmentTime == "" {
		resource.RequestedPeriod = []FHIRPeriod{{Start: appt.AppointmentDate, End: appt.AppointmentDate}}
	} else {
		slot, err := time.Parse("15:04", appt.AppointmentTime)
		if err != nil {
			return nil, fmt.Errorf("appointment time %q is not HH:MM", appt.AppointmentTime)
		}
		start := day.Add(time.Duration(slot.Hour())*time.Hour + time.Duration(slot.Minute())*time.Minute)
		resource.Start = start.Format(time.RFC3339)
		resource.End = start.Add(SlotDuration).Format(time.RFC3339)
		resource.MinutesDuration = int(SlotDuration / time.Minute)
	}

	rawJSON, err := json.MarshalIndent(resource, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR appointment resource to JSON: %w", err)
	}
	return rawJSON, nil
}
