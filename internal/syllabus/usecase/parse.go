package usecase

import (
	"context"
	"fmt"
	"strings"

	"syllabus-sync/internal/extract"
	"syllabus-sync/internal/model"
	"syllabus-sync/internal/syllabus"
	"syllabus-sync/pkg/docconv"
)

type documentKind int

const (
	kindText documentKind = iota
	kindDocx
	kindPDF
	kindLegacyDoc
)

// detectKind classifies an upload by content type first, filename
// extension second. Anything unrecognized is treated as plain text,
// which matches how instructors paste schedules into .txt exports.
func detectKind(filename, contentType string) documentKind {
	ct := strings.ToLower(contentType)
	name := strings.ToLower(filename)

	switch {
	case strings.Contains(ct, "pdf") || strings.HasSuffix(name, ".pdf"):
		return kindPDF
	case strings.Contains(ct, "wordprocessingml") || strings.HasSuffix(name, ".docx"):
		return kindDocx
	case ct == "application/msword" || strings.HasSuffix(name, ".doc"):
		return kindLegacyDoc
	default:
		return kindText
	}
}

// engineFor returns the shared engine, or a request-scoped one when the
// caller overrides the timezone.
func (uc *implUseCase) engineFor(timezone string) (*extract.Engine, error) {
	if timezone == "" || timezone == uc.timezone {
		return uc.engine, nil
	}

	engine, err := extract.New(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", syllabus.ErrBadTimezone, timezone)
	}
	return engine, nil
}

func (uc *implUseCase) Parse(ctx context.Context, input syllabus.ParseInput) (syllabus.ParseOutput, error) {
	if len(input.Data) == 0 {
		return syllabus.ParseOutput{}, syllabus.ErrNoFile
	}

	engine, err := uc.engineFor(input.Timezone)
	if err != nil {
		uc.l.Warnf(ctx, "syllabus.usecase.Parse.engineFor: %v", err)
		return syllabus.ParseOutput{}, err
	}

	var tasks []model.Task
	switch detectKind(input.Filename, input.ContentType) {
	case kindPDF:
		return syllabus.ParseOutput{}, syllabus.ErrPDFUnsupported
	case kindLegacyDoc:
		return syllabus.ParseOutput{}, syllabus.ErrLegacyDocUnsupported
	case kindDocx:
		html, err := docconv.DocxToHTML(input.Data)
		if err != nil {
			uc.l.Errorf(ctx, "syllabus.usecase.Parse.DocxToHTML: %v", err)
			return syllabus.ParseOutput{}, fmt.Errorf("convert docx: %w", err)
		}
		tasks, err = engine.FromHTML(html)
		if err != nil {
			uc.l.Errorf(ctx, "syllabus.usecase.Parse.FromHTML: %v", err)
			return syllabus.ParseOutput{}, fmt.Errorf("extract tasks: %w", err)
		}
	default:
		tasks, err = engine.FromText(string(input.Data))
		if err != nil {
			uc.l.Errorf(ctx, "syllabus.usecase.Parse.FromText: %v", err)
			return syllabus.ParseOutput{}, fmt.Errorf("extract tasks: %w", err)
		}
	}

	sessionID := uc.sessions.Put(tasks)
	uc.l.Infof(ctx, "syllabus.usecase.Parse: file=%q tasks=%d session=%s", input.Filename, len(tasks), sessionID)

	return syllabus.ParseOutput{SessionID: sessionID, Tasks: tasks}, nil
}
