// Package receipts renders printable appointment slips.
package receipts

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"medical-appointment-service/internal/domain/entities"
)

// ClinicTitle heads every slip.
const ClinicTitle = "Medical Appointment Booking"

// RenderAppointmentSlip returns a one-page A4 PDF summarising appt. doctor is
// optional and adds the consultation fee and location when given.
func RenderAppointmentSlip(appt entities.Appointment, doctor *entities.Doctor) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetTitle("Appointment slip", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 70, 140)
	pdf.CellFormat(0, 10, ClinicTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Slip", "1", 1, "C", false, 0, "")

	addDetail(pdf, "Patient", appt.PatientName)
	addDetail(pdf, "Email", appt.PatientEmail)
	addDetail(pdf, "Doctor", appt.DoctorName)
	addDetail(pdf, "Specialty", appt.Specialty)
	addDetail(pdf, "Hospital", appt.Hospital)
	addDetail(pdf, "Date", appt.AppointmentDate)
	when := appt.AppointmentTime
	if when == "" {
		when = "Any available slot"
	}
	addDetail(pdf, "Time", when)
	if doctor != nil {
		addDetail(pdf, "Location", doctor.Location)
		addDetail(pdf, "Consultation fee", fmt.Sprintf("$%.2f", doctor.ConsultationFee))
	}
	addDetail(pdf, "Booked at", appt.BookedAt)

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "Please arrive 15 minutes before your appointment and bring a valid ID.", "", "L", false)
	pdf.SetY(pdf.GetY() + 8)
	pdf.CellFormat(0, 10, "This is a computer generated slip", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render appointment slip: %w", err)
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 9, label, "1", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 9, value, "1", 1, "", false, 0, "")
}
