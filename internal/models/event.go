// internal/models/event.go
package models

type EventLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Event is a listing on the events board. Date and time are stored as the
// independent strings the user entered (YYYY-MM-DD and HH:MM), not combined
// into a single instant.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Links       []EventLink `json:"links,omitempty"`
	CreatedAt   int64       `json:"createdAt"`
}
