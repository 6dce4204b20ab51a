package syllabus

import "syllabus-sync/internal/model"

// ParseInput is an uploaded syllabus document.
type ParseInput struct {
	Filename    string
	ContentType string
	Data        []byte
	Timezone    string // optional IANA zone override; empty means the configured default
}

// ParseOutput is the result of one extraction run. Tasks may be empty:
// a document with no recognizable dates is a valid (if unhelpful) input.
type ParseOutput struct {
	SessionID string
	Tasks     []model.Task
}

// ExportInput is a task list to serialize as an ICS file. Tasks may have
// been edited client-side since extraction, so they arrive inline rather
// than by session ID.
type ExportInput struct {
	Tasks []model.Task
}

// ExportOutput carries the rendered calendar file.
type ExportOutput struct {
	ICS      string
	Filename string
}

// PushInput is a task list to insert into Google Calendar.
type PushInput struct {
	Tasks []model.Task
}

// PushOutput reports the created events.
type PushOutput struct {
	Links []string
	Count int
}
