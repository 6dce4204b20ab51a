package http

import (
	"github.com/gin-gonic/gin"

	"syllabus-sync/internal/syllabus"
	pkgLog "syllabus-sync/pkg/log"
)

// Handler is the public interface for the syllabus HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Session(c *gin.Context)
	ExportICS(c *gin.Context)
	PushCalendar(c *gin.Context)
}

type handler struct {
	l              pkgLog.Logger
	uc             syllabus.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the syllabus domain.
func New(l pkgLog.Logger, uc syllabus.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
