package presentation

type Presentation struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Students    []string `json:"students"`
	Examiners   []string `json:"examiners"`
	Venue       string   `json:"venue"`
	Date        string   `json:"date"`      // YYYY-MM-DD
	Time        string   `json:"time"`      // HH:mm
	Duration    int      `json:"duration"`  // minutes
	Description string   `json:"description,omitempty"`
}
