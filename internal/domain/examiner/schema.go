package examiner

import (
	"strings"

	"github.com/ishehara/autosched-admin/internal/forms"
)

// IntakeSchema is the examiner form. Availability slots are not part of the
// schema; they are appended one at a time behind Slot.Validate.
func IntakeSchema() forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "name", Label: "Full name", Required: true, Validate: forms.Text("name", 3)},
		{Name: "email", Label: "Email", Required: true, Validate: forms.Email("email")},
		{Name: "phone", Label: "Phone", Required: true, Validate: forms.Phone("phone")},
		{Name: "department", Label: "Department", Required: true, Validate: forms.Choice("department")},
		{Name: "position", Label: "Position", Required: true, Validate: forms.Choice("position")},
		{Name: "expertise", Label: "Expertise", Required: true, Validate: forms.AtLeastOne("expertise area")},
	}}
}

func FromStore(s *forms.Store, availability []Slot) Examiner {
	return Examiner{
		Name:         strings.TrimSpace(s.Value("name")),
		Email:        strings.TrimSpace(s.Value("email")),
		Phone:        strings.TrimSpace(s.Value("phone")),
		Department:   s.Value("department"),
		Position:     s.Value("position"),
		Expertise:    s.Values("expertise"),
		Availability: availability,
	}
}

func FillStore(s *forms.Store, e Examiner) {
	s.SetField("name", e.Name)
	s.SetField("email", e.Email)
	s.SetField("phone", e.Phone)
	s.SetField("department", e.Department)
	s.SetField("position", e.Position)
	s.SetField("expertise", e.Expertise...)
}
