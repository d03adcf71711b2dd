package entities

// DoctorAvailability is the booking state advertised for a doctor.
type DoctorAvailability string

const (
	AvailabilityAvailable DoctorAvailability = "Available"
	AvailabilityBusy      DoctorAvailability = "Busy"
	AvailabilityOffline   DoctorAvailability = "Offline"
)

// Valid reports whether a is one of the known availability values.
func (a DoctorAvailability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline:
		return true
	}
	return false
}

// Doctor is read-only reference data. It is never mutated at runtime.
type Doctor struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email,omitempty"`
	Specialty       string             `json:"specialty"`
	Hospital        string             `json:"hospital"`
	Experience      int                `json:"experience"`
	Rating          float64            `json:"rating"`
	ConsultationFee float64            `json:"consultationFee"`
	Location        string             `json:"location"`
	Languages       []string           `json:"languages"`
	Availability    DoctorAvailability `json:"availability"`
	Image           string             `json:"image,omitempty"`
	Bio             string             `json:"bio"`
}

// Bookable reports whether new appointments may be made with the doctor.
func (d Doctor) Bookable() bool {
	return d.Availability == AvailabilityAvailable
}
