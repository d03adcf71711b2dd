package services

import (
	"context"
	"log"
	"strings"

	"medical-appointment-service/internal/domain"
	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
	"medical-appointment-service/internal/scheduling"
)

// DoctorServiceImpl implements DoctorServiceContract.
type DoctorServiceImpl struct {
	doctorRepo repositories.DoctorRepositoryContract
	logger     *log.Logger
}

func NewDoctorService(doctorRepo repositories.DoctorRepositoryContract, logger *log.Logger) DoctorServiceContract {
	return &DoctorServiceImpl{doctorRepo: doctorRepo, logger: logger}
}

func (s *DoctorServiceImpl) List(ctx context.Context) ([]entities.Doctor, error) {
	return s.doctorRepo.ListAll(ctx)
}

func (s *DoctorServiceImpl) Get(ctx context.Context, id int) (*entities.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrDoctorNotFound
	}
	return doctor, nil
}

// Search keeps doctors whose name or specialty contains Query, ignoring case,
// and then those whose specialty equals Specialty. Empty filters match all.
func (s *DoctorServiceImpl) Search(ctx context.Context, req dtos.DoctorSearchRequest) ([]entities.Doctor, error) {
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(req.Query)
	out := []entities.Doctor{}
	for _, d := range doctors {
		if query != "" &&
			!strings.Contains(strings.ToLower(d.Name), query) &&
			!strings.Contains(strings.ToLower(d.Specialty), query) {
			continue
		}
		if req.Specialty != "" && d.Specialty != req.Specialty {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *DoctorServiceImpl) Specialties(ctx context.Context) ([]string, error) {
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(doctors))
	out := []string{}
	for _, d := range doctors {
		if _, ok := seen[d.Specialty]; ok {
			continue
		}
		seen[d.Specialty] = struct{}{}
		out = append(out, d.Specialty)
	}
	return out, nil
}

// Slots reports the date's clinic slots together with the doctor's
// availability. The slots are listed even when the doctor cannot be booked.
func (s *DoctorServiceImpl) Slots(ctx context.Context, id int, date string) (dtos.SlotsResponse, error) {
	doctor, err := s.Get(ctx, id)
	if err != nil {
		return dtos.SlotsResponse{}, err
	}
	return dtos.SlotsResponse{
		DoctorID:     doctor.ID,
		Date:         date,
		Availability: string(doctor.Availability),
		Slots:        scheduling.AvailableSlots(date),
	}, nil
}
