package persistence

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

//go:embed doctors.json
var builtinDoctors []byte

var _ repositories.DoctorRepositoryContract = (*DoctorRepository)(nil)

// DoctorRepository serves a doctor catalogue loaded once at construction.
type DoctorRepository struct {
	doctors []entities.Doctor
	byID    map[int]int
}

// NewBuiltinDoctorRepository serves the catalogue compiled into the binary.
func NewBuiltinDoctorRepository() (*DoctorRepository, error) {
	return ParseDoctorCatalogue(builtinDoctors)
}

// NewFileDoctorRepository loads a JSON array of doctors from path.
func NewFileDoctorRepository(path string) (*DoctorRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read doctor catalogue: %w", err)
	}
	return ParseDoctorCatalogue(raw)
}

// ParseDoctorCatalogue decodes and checks a catalogue: ids must be positive
// and unique, ratings within 0..5, fees and experience non-negative, and
// availability one of the known values.
func ParseDoctorCatalogue(raw []byte) (*DoctorRepository, error) {
	var doctors []entities.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctor catalogue: %w", err)
	}
	byID := make(map[int]int, len(doctors))
	for i, d := range doctors {
		switch {
		case d.ID <= 0:
			return nil, fmt.Errorf("doctor %q: id must be positive", d.Name)
		case d.Rating < 0 || d.Rating > 5:
			return nil, fmt.Errorf("doctor %d: rating %.1f out of range", d.ID, d.Rating)
		case d.Experience < 0 || d.ConsultationFee < 0:
			return nil, fmt.Errorf("doctor %d: negative experience or fee", d.ID)
		case !d.Availability.Valid():
			return nil, fmt.Errorf("doctor %d: unknown availability %q", d.ID, d.Availability)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("doctor id %d listed twice", d.ID)
		}
		byID[d.ID] = i
	}
	return &DoctorRepository{doctors: doctors, byID: byID}, nil
}

func (r *DoctorRepository) ListAll(ctx context.Context) ([]entities.Doctor, error) {
	out := make([]entities.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	d := r.doctors[i]
	return &d, nil
}
