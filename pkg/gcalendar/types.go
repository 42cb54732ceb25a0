package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
