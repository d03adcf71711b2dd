package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"medical-appointment-service/internal/adapters"
	"medical-appointment-service/internal/domain"
	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
	"medical-appointment-service/internal/scheduling"
)

// BookingServiceImpl implements BookingServiceContract.
type BookingServiceImpl struct {
	appointmentRepo repositories.AppointmentRepositoryContract
	doctorRepo      repositories.DoctorRepositoryContract
	queueAdapter    adapters.QueueAdapter
	logger          *log.Logger
	now             func() time.Time
}

// NewBookingService wires booking. queueAdapter may be nil.
func NewBookingService(
	appointmentRepo repositories.AppointmentRepositoryContract,
	doctorRepo repositories.DoctorRepositoryContract,
	queueAdapter adapters.QueueAdapter,
	logger *log.Logger,
) BookingServiceContract {
	return &BookingServiceImpl{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		queueAdapter:    queueAdapter,
		logger:          logger,
		now:             time.Now,
	}
}

// Book checks the request, the doctor and the slot, in that order, and
// appends the appointment.
func (s *BookingServiceImpl) Book(ctx context.Context, req dtos.BookAppointmentRequest) (*entities.Appointment, error) {
	if err := dtos.Validate(req); err != nil {
		return nil, err
	}
	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	if !doctor.Bookable() {
		return nil, domain.ErrDoctorUnavailable
	}
	if !scheduling.IsBookable(req.AppointmentDate, req.AppointmentTime) {
		s.logger.Printf("Rejected booking with doctor %d on %q at %q: slot not available",
			doctor.ID, req.AppointmentDate, req.AppointmentTime)
		return nil, domain.ErrSlotUnavailable
	}

	appt := entities.NewAppointment(*doctor, req.PatientName, req.PatientEmail,
		req.AppointmentDate, req.AppointmentTime, s.now())
	if err := s.appointmentRepo.Append(ctx, appt); err != nil {
		s.logger.Printf("Error storing appointment for %s: %v", req.PatientEmail, err)
		return nil, err
	}
	s.logger.Printf("Appointment booked: %s with %s on %s %s",
		appt.PatientEmail, appt.DoctorName, appt.AppointmentDate, appt.AppointmentTime)

	publishNotification(ctx, s.queueAdapter, s.logger, Notification{
		Kind:      NotificationAppointmentBooked,
		Recipient: appt.PatientEmail,
		Message:   describeAppointment("Your appointment", appt, "is confirmed"),
	})
	return &appt, nil
}

func (s *BookingServiceImpl) List(ctx context.Context) ([]entities.Appointment, error) {
	return s.appointmentRepo.ListAll(ctx)
}

func (s *BookingServiceImpl) ListForPatient(ctx context.Context, email string) ([]entities.Appointment, error) {
	all, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []entities.Appointment{}
	for _, a := range all {
		if a.PatientEmail == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *BookingServiceImpl) Find(ctx context.Context, ref dtos.AppointmentRefRequest) (*entities.Appointment, error) {
	if err := dtos.Validate(ref); err != nil {
		return nil, err
	}
	all, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if matchesRef(all[i], ref) {
			return &all[i], nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func matchesRef(a entities.Appointment, ref dtos.AppointmentRefRequest) bool {
	return a.PatientEmail == ref.PatientEmail && a.BookedAt == ref.BookedAt
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, req dtos.AppointmentRefRequest) error {
	if err := dtos.Validate(req); err != nil {
		return err
	}
	all, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.Appointment, 0, len(all))
	var removed *entities.Appointment
	for i, a := range all {
		if removed == nil && matchesRef(a, req) {
			removed = &all[i]
			continue
		}
		kept = append(kept, a)
	}
	if removed == nil {
		return domain.ErrAppointmentNotFound
	}
	if err := s.appointmentRepo.ReplaceAll(ctx, kept); err != nil {
		s.logger.Printf("Error removing appointment for %s: %v", req.PatientEmail, err)
		return err
	}
	s.logger.Printf("Appointment cancelled: %s with %s on %s", removed.PatientEmail, removed.DoctorName, removed.AppointmentDate)

	publishNotification(ctx, s.queueAdapter, s.logger, Notification{
		Kind:      NotificationAppointmentCancelled,
		Recipient: removed.PatientEmail,
		Message:   describeAppointment("Your appointment", *removed, "was cancelled"),
	})
	return nil
}

// SplitByDate separates appointments dated today or later from earlier ones.
// Appointments whose date does not parse count as completed. Order is kept.
func SplitByDate(appointments []entities.Appointment, today time.Time) dtos.AppointmentListResponse {
	y, m, d := today.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	resp := dtos.AppointmentListResponse{
		Upcoming:  []entities.Appointment{},
		Completed: []entities.Appointment{},
	}
	for _, a := range appointments {
		if date, ok := a.Date(); ok && !date.Before(cutoff) {
			resp.Upcoming = append(resp.Upcoming, a)
		} else {
			resp.Completed = append(resp.Completed, a)
		}
	}
	return resp
}

func describeAppointment(prefix string, a entities.Appointment, suffix string) string {
	when := a.AppointmentDate
	if a.AppointmentTime != "" {
		when += " at " + a.AppointmentTime
	}
	return fmt.Sprintf("%s with %s (%s, %s) on %s %s", prefix, a.DoctorName, a.Specialty, a.Hospital, when, suffix)
}
