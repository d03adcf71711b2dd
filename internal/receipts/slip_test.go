package receipts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-appointment-service/internal/domain/entities"
)

func TestRenderAppointmentSlip(t *testing.T) {
	appt := entities.Appointment{
		DoctorID:        3,
		DoctorName:      "Dr. Ayesha Khan",
		Specialty:       "Neurologist",
		Hospital:        "NeuroCare Hospital",
		PatientName:     "Jane",
		PatientEmail:    "jane@x.com",
		AppointmentDate: "2026-03-02",
		AppointmentTime: "10:00",
		BookedAt:        "2026-03-01T09:15:00Z",
	}
	doctor := &entities.Doctor{ID: 3, Location: "Chicago, USA", ConsultationFee: 150}

	withDoctor, err := RenderAppointmentSlip(appt, doctor)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withDoctor, []byte("%PDF-")))
	assert.Contains(t, string(withDoctor), "%%EOF")

	appt.AppointmentTime = ""
	withoutDoctor, err := RenderAppointmentSlip(appt, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withoutDoctor, []byte("%PDF-")))
}
