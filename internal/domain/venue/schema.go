package venue

import (
	"strconv"
	"strings"

	"github.com/ishehara/autosched-admin/internal/forms"
)

// IntakeSchema is the venue form: all fields required except facilities.
func IntakeSchema() forms.Schema {
	return forms.Schema{Fields: []forms.Field{
		{Name: "name", Label: "Venue name", Required: true, Validate: forms.Text("venue name", 3)},
		{Name: "roomType", Label: "Room type", Required: true, Validate: forms.Choice("room type")},
		{Name: "location", Label: "Location", Required: true, Validate: forms.Text("location", 5)},
		{Name: "capacity", Label: "Capacity", Required: true, Validate: forms.PositiveInt("capacity")},
		{Name: "organizerEmail", Label: "Organizer email", Required: true, Validate: forms.Email("organizer email")},
		{Name: "availabilityStatus", Label: "Availability", Required: true, Validate: forms.Choice("availability")},
		{Name: "facilities", Label: "Facilities", Required: false, Validate: forms.Optional()},
	}}
}

// FromStore assembles a Venue from a validated store. Capacity has already
// passed PositiveInt, so the parse cannot fail here. Facilities may be empty
// but must serialize as an array, never null.
func FromStore(s *forms.Store) Venue {
	capacity, _ := strconv.Atoi(strings.TrimSpace(s.Value("capacity")))
	facilities := s.Values("facilities")
	if facilities == nil {
		facilities = []string{}
	}
	return Venue{
		Name:               strings.TrimSpace(s.Value("name")),
		RoomType:           RoomType(s.Value("roomType")),
		Location:           strings.TrimSpace(s.Value("location")),
		Capacity:           capacity,
		OrganizerEmail:     strings.TrimSpace(s.Value("organizerEmail")),
		AvailabilityStatus: Availability(s.Value("availabilityStatus")),
		Facilities:         facilities,
	}
}

// FillStore seeds a store from an existing record for the edit form.
func FillStore(s *forms.Store, v Venue) {
	s.SetField("name", v.Name)
	s.SetField("roomType", string(v.RoomType))
	s.SetField("location", v.Location)
	s.SetField("capacity", strconv.Itoa(v.Capacity))
	s.SetField("organizerEmail", v.OrganizerEmail)
	s.SetField("availabilityStatus", string(v.AvailabilityStatus))
	s.SetField("facilities", v.Facilities...)
}
