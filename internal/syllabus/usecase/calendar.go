package usecase

import (
	"context"
	"fmt"

	"syllabus-sync/internal/syllabus"
	"syllabus-sync/pkg/gcalendar"
)

func (uc *implUseCase) PushCalendar(ctx context.Context, input syllabus.PushInput) (syllabus.PushOutput, error) {
	if uc.calendar == nil {
		return syllabus.PushOutput{}, syllabus.ErrCalendarDisabled
	}
	if len(input.Tasks) == 0 {
		return syllabus.PushOutput{}, syllabus.ErrNoTasks
	}

	// One event per task. A failed insert is logged and skipped so a
	// single bad row does not abort the rest of the batch.
	links := make([]string, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		link, err := uc.calendar.CreateEvent(ctx, gcalendar.EventRequest{
			CalendarID:  uc.calendarID,
			Summary:     fmt.Sprintf("%s [%s]", t.Title, t.Type),
			Description: t.Details,
			Start:       t.Start,
			End:         t.End,
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "syllabus.usecase.PushCalendar.CreateEvent: task=%s: %v", t.ID, err)
			continue
		}
		links = append(links, link)
	}

	uc.l.Infof(ctx, "syllabus.usecase.PushCalendar: requested=%d created=%d", len(input.Tasks), len(links))
	return syllabus.PushOutput{Links: links, Count: len(links)}, nil
}
