package entity

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is a booking of a patient with a doctor at a date and time.
// The JSON shape is the persisted format of the storage slot.
type Appointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	Doctor      Doctor `json:"doctor"`
	Date        string `json:"date"` // Format: YYYY-MM-DD
	Time        string `json:"time"` // Format: HH:MM
}

// ScheduledAt parses date and time as a local wall-clock instant.
func (a *Appointment) ScheduledAt() (time.Time, error) {
	return ParseDateTime(a.Date, a.Time)
}

// ScheduledAtOrZero is ScheduledAt with unparseable values mapped to the zero time.
func (a *Appointment) ScheduledAtOrZero() time.Time {
	t, err := a.ScheduledAt()
	if err != nil {
		return time.Time{}
	}
	return t
}

// MatchesPatient reports whether the lower-cased patient name contains the
// lower-cased search term. Appointments without a patient name never match.
func (a *Appointment) MatchesPatient(term string) bool {
	if a.PatientName == "" {
		return false
	}
	return strings.Contains(strings.ToLower(a.PatientName), strings.ToLower(term))
}

// ParseDateTime combines a YYYY-MM-DD date and an HH:MM time in local time.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+"T"+TimeLayout, date+"T"+clock, time.Local)
}
