package syllabus

import "context"

// UseCase is the domain surface exposed to delivery layers.
type UseCase interface {
	// Parse extracts tasks from an uploaded document and caches them
	// under a fresh session ID.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Session returns a previously parsed task list.
	Session(ctx context.Context, id string) (ParseOutput, error)

	// ExportICS serializes a task list to an iCalendar file.
	ExportICS(ctx context.Context, input ExportInput) (ExportOutput, error)

	// PushCalendar inserts a task list into Google Calendar.
	PushCalendar(ctx context.Context, input PushInput) (PushOutput, error)
}
