package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	syllabusHTTP "syllabus-sync/internal/syllabus/delivery/http"

	"syllabus-sync/internal/middleware"
	"syllabus-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	syllabusHandler syllabusHTTP.Handler
	middleware      middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	SyllabusHandler syllabusHTTP.Handler
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		syllabusHandler: cfg.SyllabusHandler,
		middleware:      cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.syllabusHandler == nil {
		return errors.New("syllabus handler is required")
	}
	return nil
}
