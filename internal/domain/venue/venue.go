package venue

type RoomType string

const (
	RoomTypeClassroom      RoomType = "Classroom"
	RoomTypeMeetingRoom    RoomType = "MeetingRoom"
	RoomTypeAuditorium     RoomType = "Auditorium"
	RoomTypeConferenceHall RoomType = "ConferenceHall"
)

type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityMaintenance  Availability = "Maintenance"
	AvailabilityNotAvailable Availability = "NotAvailable"
)

// RoomTypes and Facilities are the fixed catalogs offered by the intake forms.
var RoomTypes = []RoomType{
	RoomTypeClassroom,
	RoomTypeMeetingRoom,
	RoomTypeAuditorium,
	RoomTypeConferenceHall,
}

var Availabilities = []Availability{
	AvailabilityAvailable,
	AvailabilityMaintenance,
	AvailabilityNotAvailable,
}

var Facilities = []string{"Projector", "Whiteboard", "AC", "SoundSystem", "Mic", "WiFi"}

// Venue is both the draft under construction in the intake wizard and the
// record shape returned by the backend.
type Venue struct {
	ID                 string       `json:"id,omitempty"`
	Name               string       `json:"name"`
	RoomType           RoomType     `json:"roomType"`
	Location           string       `json:"location"`
	Capacity           int          `json:"capacity"`
	OrganizerEmail     string       `json:"organizerEmail"`
	AvailabilityStatus Availability `json:"availabilityStatus"`
	Facilities         []string     `json:"facilities"`
}
