package entities

import "time"

// DateLayout is the calendar date format used for appointmentDate.
const DateLayout = "2006-01-02"

// Appointment is a booked visit. Doctor fields are a snapshot taken at
// booking time; DoctorID is not checked against the catalogue afterwards.
type Appointment struct {
	DoctorID        int    `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	Specialty       string `json:"specialty"`
	Hospital        string `json:"hospital"`
	PatientName     string `json:"patientName"`
	PatientEmail    string `json:"patientEmail"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	BookedAt        string `json:"bookedAt"`
}

// NewAppointment snapshots the doctor into a new appointment booked at bookedAt.
func NewAppointment(doctor Doctor, patientName, patientEmail, date, slot string, bookedAt time.Time) Appointment {
	return Appointment{
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		Specialty:       doctor.Specialty,
		Hospital:        doctor.Hospital,
		PatientName:     patientName,
		PatientEmail:    patientEmail,
		AppointmentDate: date,
		AppointmentTime: slot,
		BookedAt:        bookedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Date parses AppointmentDate. ok is false when the stored value is not a
// calendar date.
func (a Appointment) Date() (time.Time, bool) {
	d, err := time.Parse(DateLayout, a.AppointmentDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
