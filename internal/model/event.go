package model

import "time"

// CalendarEvent is an event fetched from an external calendar feed.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	AllDay      bool      `json:"all_day"`
}
