package usecase

import (
	"context"

	"syllabus-sync/internal/syllabus"
	"syllabus-sync/pkg/ics"
)

func (uc *implUseCase) ExportICS(ctx context.Context, input syllabus.ExportInput) (syllabus.ExportOutput, error) {
	if len(input.Tasks) == 0 {
		return syllabus.ExportOutput{}, syllabus.ErrNoTasks
	}

	return syllabus.ExportOutput{
		ICS:      ics.Encode(input.Tasks),
		Filename: ics.DefaultFilename,
	}, nil
}
