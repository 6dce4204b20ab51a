package usecase

import (
	"context"

	"syllabus-sync/internal/syllabus"
)

func (uc *implUseCase) Session(ctx context.Context, id string) (syllabus.ParseOutput, error) {
	tasks, ok := uc.sessions.Get(id)
	if !ok {
		return syllabus.ParseOutput{}, syllabus.ErrSessionNotFound
	}

	return syllabus.ParseOutput{SessionID: id, Tasks: tasks}, nil
}
