package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is the closed set of task categories.
type TaskType string

const (
	TypeReading    TaskType = "Reading"
	TypeAssignment TaskType = "Assignment"
	TypeExam       TaskType = "Exam"
	TypeOther      TaskType = "Other"
)

// Valid reports whether t is one of the known categories.
func (t TaskType) Valid() bool {
	switch t {
	case TypeReading, TypeAssignment, TypeExam, TypeOther:
		return true
	}
	return false
}

// DefaultDuration is the event length assigned at creation time.
const DefaultDuration = 60 * time.Minute

// Task is a single extracted calendar item. Tasks are immutable once
// emitted by the extraction engine; edits happen on copies downstream.
type Task struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Type    TaskType  `json:"type"`
	Details string    `json:"details,omitempty"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// NewTask creates a Task with a fresh ID and End = Start + DefaultDuration.
func NewTask(title string, typ TaskType, start time.Time) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
		Type:  typ,
		Start: start,
		End:   start.Add(DefaultDuration),
	}
}
