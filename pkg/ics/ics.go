// Package ics serializes task lists to iCalendar files.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"syllabus-sync/internal/model"
)

// DefaultFilename is the attachment name used by the export route.
const DefaultFilename = "syllabus-calendar.ics"

// Encode renders tasks as a VCALENDAR document. Each task becomes one
// event: summary is the title with the type in brackets, details map to
// the description.
func Encode(tasks []model.Task) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	now := time.Now()
	for _, t := range tasks {
		event := cal.AddEvent(t.ID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(t.Start)
		event.SetEndAt(t.End)
		event.SetSummary(summary(t))
		if t.Details != "" {
			event.SetDescription(t.Details)
		}
	}

	return cal.Serialize()
}

func summary(t model.Task) string {
	if t.Type == "" {
		return t.Title
	}
	return fmt.Sprintf("%s [%s]", t.Title, t.Type)
}
