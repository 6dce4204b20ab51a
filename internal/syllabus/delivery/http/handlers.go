package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"syllabus-sync/internal/syllabus"
	"syllabus-sync/pkg/response"
)

// Parse godoc
// @Summary     Parse an uploaded syllabus
// @Description Extracts dated tasks from a .txt or .docx syllabus and caches them under a session ID.
// @Tags        Syllabus
// @Accept      multipart/form-data
// @Produce     json
// @Param       file     formData file   true  "Syllabus document (.txt or .docx)"
// @Param       timezone formData string false "IANA timezone override (default from config)"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     415 {object} response.Resp "Unsupported document format"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/syllabus/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processParseReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Session godoc
// @Summary     Get a cached parse result
// @Description Returns the task list from a previous parse by its session ID.
// @Tags        Syllabus
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} parseResp
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/syllabus/sessions/{id} [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Session(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// ExportICS godoc
// @Summary     Export tasks as an ICS file
// @Description Serializes the given task list to an iCalendar attachment.
// @Tags        Syllabus
// @Accept      json
// @Produce     text/calendar
// @Param       body body tasksReq true "Tasks to export"
// @Success     200 {string} string "ICS file"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/syllabus/export/ics [POST]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tasks, err := req.toModels()
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.ExportICS(ctx, syllabus.ExportInput{Tasks: tasks})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.ICS))
}

// PushCalendar godoc
// @Summary     Push tasks to Google Calendar
// @Description Creates one Google Calendar event per task and returns the event links.
// @Tags        Syllabus
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks to push"
// @Success     200 {object} pushResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar integration not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/syllabus/calendar [POST]
func (h *handler) PushCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tasks, err := req.toModels()
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.PushCalendar(ctx, syllabus.PushInput{Tasks: tasks})
	if err != nil {
		h.l.Errorf(ctx, "uc.PushCalendar: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newPushResp(output))
}
