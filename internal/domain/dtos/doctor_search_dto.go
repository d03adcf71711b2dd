package dtos

// DoctorSearchRequest filters the doctor directory. Query matches name or
// specialty case-insensitively; Specialty must match exactly.
type DoctorSearchRequest struct {
	Query     string `json:"q,omitempty" query:"q"`
	Specialty string `json:"specialty,omitempty" query:"specialty"`
}

// SlotsResponse lists the bookable slots of a doctor on a date.
type SlotsResponse struct {
	DoctorID     int      `json:"doctorId"`
	Date         string   `json:"date"`
	Availability string   `json:"availability"`
	Slots        []string `json:"slots"`
}
