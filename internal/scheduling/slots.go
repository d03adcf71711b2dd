// Package scheduling holds the weekly clinic calendar and the OTP resend
// cooldown.
package scheduling

import (
	"time"

	"medical-appointment-service/internal/domain/entities"
)

var weeklySlots = map[time.Weekday][]string{
	time.Monday:    {"09:00", "10:00", "11:00", "12:00", "13:00"},
	time.Tuesday:   {"09:00", "10:00", "11:00", "12:00", "13:00"},
	time.Wednesday: {"09:00", "10:00", "11:00", "12:00", "13:00"},
	time.Thursday:  {"14:00", "15:00", "16:00", "17:00", "18:00"},
	time.Friday:    {"14:00", "15:00", "16:00", "17:00", "18:00"},
	time.Saturday:  {"09:00", "11:00", "13:00", "15:00", "17:00"},
}

// AvailableSlots returns the bookable slots for a YYYY-MM-DD date in clinic
// order. Sundays and dates that do not parse yield an empty slice.
func AvailableSlots(date string) []string {
	d, err := time.Parse(entities.DateLayout, date)
	if err != nil {
		return []string{}
	}
	return SlotsForWeekday(d.Weekday())
}

// SlotsForWeekday returns a copy of the slots the clinic opens on day.
func SlotsForWeekday(day time.Weekday) []string {
	slots := weeklySlots[day]
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// IsBookable reports whether slot may be booked on date. An empty slot only
// requires the date to have at least one opening.
func IsBookable(date, slot string) bool {
	slots := AvailableSlots(date)
	if len(slots) == 0 {
		return false
	}
	if slot == "" {
		return true
	}
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
