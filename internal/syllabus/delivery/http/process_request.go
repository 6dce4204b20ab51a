package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"syllabus-sync/internal/syllabus"
)

// processParseReq reads the multipart upload into a ParseInput.
func (h *handler) processParseReq(c *gin.Context) (syllabus.ParseInput, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return syllabus.ParseInput{}, syllabus.ErrNoFile
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return syllabus.ParseInput{}, errFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return syllabus.ParseInput{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return syllabus.ParseInput{}, err
	}

	return syllabus.ParseInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Timezone:    c.PostForm("timezone"),
	}, nil
}

// processTasksReq binds the inline task list shared by export and push.
func (h *handler) processTasksReq(c *gin.Context) (tasksReq, error) {
	var req tasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errBadRequestBody, err)
	}
	return req, nil
}
