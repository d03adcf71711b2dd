package dtos

import "medical-appointment-service/internal/domain/entities"

// BookAppointmentRequest defines the payload for booking a doctor.
// AppointmentTime may be empty; when set it must be one of the date's slots.
type BookAppointmentRequest struct {
	DoctorID        int    `json:"doctorId" validate:"required,gt=0"`
	PatientName     string `json:"patientName" validate:"required"`
	PatientEmail    string `json:"patientEmail" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
}

// AppointmentRefRequest identifies a booking by patient and booking time.
type AppointmentRefRequest struct {
	PatientEmail string `json:"patientEmail" validate:"required"`
	BookedAt     string `json:"bookedAt" validate:"required"`
}

// AppointmentListResponse splits bookings the way the "my appointments" view does.
type AppointmentListResponse struct {
	Upcoming  []entities.Appointment `json:"upcoming"`
	Completed []entities.Appointment `json:"completed"`
}
