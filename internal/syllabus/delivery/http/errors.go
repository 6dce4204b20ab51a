package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"syllabus-sync/internal/syllabus"
	"syllabus-sync/pkg/response"
)

var (
	errBadRequestBody = errors.New("invalid request body")
	errFileTooLarge   = errors.New("uploaded file exceeds the size limit")
	errBadTaskTime    = errors.New("task start/end must be RFC 3339 timestamps")
	errBadTaskType    = errors.New("task type must be one of Reading, Assignment, Exam, Other")
)

// respondError translates domain errors into the response envelope.
// Unknown errors become an opaque 500 so internals never leak.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, syllabus.ErrPDFUnsupported),
		errors.Is(err, syllabus.ErrLegacyDocUnsupported):
		response.ErrorWithStatus(c, http.StatusUnsupportedMediaType, err, nil)
	case errors.Is(err, syllabus.ErrSessionNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err, nil)
	case errors.Is(err, syllabus.ErrCalendarDisabled):
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, err, nil)
	case errors.Is(err, errFileTooLarge):
		response.ErrorWithStatus(c, http.StatusRequestEntityTooLarge, err, nil)
	case errors.Is(err, syllabus.ErrNoFile),
		errors.Is(err, syllabus.ErrNoTasks),
		errors.Is(err, syllabus.ErrBadTimezone),
		errors.Is(err, errBadRequestBody),
		errors.Is(err, errBadTaskTime),
		errors.Is(err, errBadTaskType):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
