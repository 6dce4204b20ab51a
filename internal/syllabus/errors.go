package syllabus

import "errors"

var (
	// ErrNoFile is returned when the upload carries no usable payload.
	ErrNoFile = errors.New("no file uploaded")

	// ErrPDFUnsupported rejects PDF uploads before extraction starts.
	ErrPDFUnsupported = errors.New("pdf parsing is not supported in this deployment, upload a .docx or .txt file")

	// ErrLegacyDocUnsupported rejects binary .doc files.
	ErrLegacyDocUnsupported = errors.New("legacy .doc files are not supported, re-save the document as .docx")

	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("parse session not found or expired")

	// ErrBadTimezone rejects a timezone override that is not a valid
	// IANA zone name.
	ErrBadTimezone = errors.New("unknown timezone")

	// ErrNoTasks is returned when an export or push carries no tasks.
	ErrNoTasks = errors.New("no tasks provided")

	// ErrCalendarDisabled is returned when Google Calendar is not configured.
	ErrCalendarDisabled = errors.New("google calendar integration is not configured")
)
