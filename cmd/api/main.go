package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"syllabus-sync/config"
	_ "syllabus-sync/docs" // Swagger docs
	"syllabus-sync/internal/extract"
	"syllabus-sync/internal/httpserver"
	"syllabus-sync/internal/middleware"
	"syllabus-sync/internal/store"
	syllabusHTTP "syllabus-sync/internal/syllabus/delivery/http"
	"syllabus-sync/internal/syllabus/usecase"
	"syllabus-sync/pkg/gcalendar"
	"syllabus-sync/pkg/log"
)

// @title       Syllabus Sync API
// @description Extracts dated tasks from syllabus documents and exports them to ICS or Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Syllabus Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction engine
	timezone := cfg.Syllabus.Timezone
	engine, err := extract.New(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		engine, _ = extract.New(timezone)
	}

	// 4. Session store
	sessions := store.NewSessionStore(
		cfg.Syllabus.SessionCapacity,
		time.Duration(cfg.Syllabus.SessionTTLMin)*time.Minute,
	)

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 6. Syllabus domain
	syllabusUC := usecase.New(logger, engine, sessions, calendarClient, cfg.GoogleCalendar.CalendarID, timezone)
	syllabusHandler := syllabusHTTP.New(logger, syllabusUC, cfg.Syllabus.MaxUploadBytes)
	mw := middleware.New(logger, cfg.Syllabus.RateLimitPerMin)

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		SyllabusHandler: syllabusHandler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
