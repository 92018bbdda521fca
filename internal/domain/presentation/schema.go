package presentation

import (
	"strconv"
	"strings"
	"time"

	"github.com/ishehara/autosched-admin/internal/forms"
)

// IntakeSchema is the presentation form; the date is bound to the injected
// clock so it can never be scheduled in the past.
func IntakeSchema(now func() time.Time) forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "title", Label: "Title", Required: true, Validate: forms.Text("title", 3)},
		{Name: "students", Label: "Students", Required: true, Validate: forms.AtLeastOne("student")},
		{Name: "examiners", Label: "Examiners", Required: true, Validate: forms.AtLeastOne("examiner")},
		{Name: "venue", Label: "Venue", Required: true, Validate: forms.Choice("venue")},
		{Name: "date", Label: "Date", Required: true, Validate: forms.FutureDate("date", now)},
		{Name: "time", Label: "Time", Required: true, Validate: forms.Choice("time")},
		{Name: "duration", Label: "Duration", Required: true, Validate: forms.PositiveInt("duration")},
		{Name: "description", Label: "Description", Required: false, Validate: forms.Optional()},
	}}
}

// splitLines turns the students textarea into a list, dropping blank lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func FromStore(s *forms.Store) Presentation {
	duration, _ := strconv.Atoi(strings.TrimSpace(s.Value("duration")))
	return Presentation{
		Title:       strings.TrimSpace(s.Value("title")),
		Students:    splitLines(s.Value("students")),
		Examiners:   s.Values("examiners"),
		Venue:       s.Value("venue"),
		Date:        s.Value("date"),
		Time:        s.Value("time"),
		Duration:    duration,
		Description: strings.TrimSpace(s.Value("description")),
	}
}

func FillStore(s *forms.Store, p Presentation) {
	s.SetField("title", p.Title)
	s.SetField("students", strings.Join(p.Students, "\n"))
	s.SetField("examiners", p.Examiners...)
	s.SetField("venue", p.Venue)
	s.SetField("date", p.Date)
	s.SetField("time", p.Time)
	s.SetField("duration", strconv.Itoa(p.Duration))
	s.SetField("description", p.Description)
}
