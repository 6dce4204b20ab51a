package usecase

import (
	"context"

	"syllabus-sync/internal/extract"
	"syllabus-sync/internal/store"
	"syllabus-sync/pkg/gcalendar"
	pkgLog "syllabus-sync/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar the usecase needs;
// narrowed to an interface so tests can stub it.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (string, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	engine     *extract.Engine
	sessions   *store.SessionStore
	calendar   CalendarClient // nil when the integration is disabled
	calendarID string
	timezone   string
}

// New creates a new syllabus UseCase instance.
func New(
	l pkgLog.Logger,
	engine *extract.Engine,
	sessions *store.SessionStore,
	calendar CalendarClient,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		engine:     engine,
		sessions:   sessions,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
