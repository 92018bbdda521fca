package examiner

import (
	"errors"
	"time"

	"github.com/ishehara/autosched-admin/internal/forms"
)

var Departments = []string{"IT", "Engineering", "Business", "Science", "Humanities"}

var Positions = []string{"Professor", "Senior Lecturer", "Lecturer", "Assistant Lecturer", "Instructor"}

var ExpertiseAreas = []string{
	"Web Development",
	"Machine Learning",
	"Data Science",
	"Networking",
	"Cyber Security",
	"Software Engineering",
	"Databases",
}

// Slot is one availability window offered by an examiner. Date is YYYY-MM-DD,
// times are HH:mm.
type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Validate enforces the append guard for availability slots: the date must not
// be in the past (day granularity, relative to today) and the start must
// precede the end. The rules are the schema validators, applied piecemeal
// because slots live outside the form store.
func (s Slot) Validate(today time.Time) error {
	date := forms.FutureDate("date", func() time.Time { return today })
	if msg := date([]string{s.Date}); msg != "" {
		return errors.New(msg)
	}
	if msg := forms.TimeOrder(s.StartTime, s.EndTime); msg != "" {
		return errors.New(msg)
	}
	return nil
}

type Examiner struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Department   string   `json:"department"`
	Position     string   `json:"position"`
	Expertise    []string `json:"expertise"`
	Availability []Slot   `json:"availability"`
}
