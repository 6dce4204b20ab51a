package gcalendar

import "time"

// EventRequest describes a single event to insert.
type EventRequest struct {
	CalendarID  string // empty means "primary"
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string // IANA timezone for both start and end
}
