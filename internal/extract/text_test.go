package extract

import (
	"testing"
	"time"

	"syllabus-sync/internal/model"
)

func newTestEngine(t *testing.T, tz string, now time.Time) *Engine {
	t.Helper()
	eng, err := New(tz, WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng
}

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func TestFromTextSingleLine(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, loc)
	eng := newTestEngine(t, "America/Chicago", now)

	tasks, err := eng.FromText("Sept 24 Midterm Exam")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}

	got := tasks[0]
	if got.Title != "Midterm Exam" {
		t.Errorf("title = %q, want %q", got.Title, "Midterm Exam")
	}
	if got.Type != model.TypeExam {
		t.Errorf("type = %s, want %s", got.Type, model.TypeExam)
	}
	wantStart := time.Date(2024, 9, 24, 12, 0, 0, 0, loc)
	if !got.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", got.Start, wantStart)
	}
	if !got.End.Equal(wantStart.Add(model.DefaultDuration)) {
		t.Errorf("end = %v, want start+60m", got.End)
	}
	if got.Details != "Sept 24 Midterm Exam" {
		t.Errorf("details = %q, want the full line", got.Details)
	}
	if got.ID == "" {
		t.Errorf("task ID is empty")
	}
}

func TestFromTextNoDates(t *testing.T) {
	eng := newTestEngine(t, "UTC", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	tasks, err := eng.FromText("Welcome to the course\nOffice hours by appointment\n\nGrading policy: see handbook")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("got %d tasks, want 0: %+v", len(tasks), tasks)
	}
}

func TestFromTextMultipleDatesPerLine(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	tasks, err := eng.FromText("Essay drafts due Dec 1 and Dec 15")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
	}
	if d1, d15 := tasks[0].Start.Day(), tasks[1].Start.Day(); d1 != 1 || d15 != 15 {
		t.Errorf("task days = %d, %d; want 1, 15", d1, d15)
	}
	for _, task := range tasks {
		if task.Type != model.TypeAssignment {
			t.Errorf("type = %s, want %s", task.Type, model.TypeAssignment)
		}
		if task.Details != "Essay drafts due Dec 1 and Dec 15" {
			t.Errorf("details = %q, want full line", task.Details)
		}
	}
}

func TestFromTextDeduplicates(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	// Same title and start on two lines: the first survives.
	tasks, err := eng.FromText("Quiz 1 on 10/3/2025\nQuiz 1 on 10/3/2025")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
}

func TestFromTextIdempotent(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)
	input := "Sept 24 Midterm Exam\nReading: Chapter 4 due 10/1\nFinal Exam December 12, 2025"

	first, err := eng.FromText(input)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	second, err := eng.FromText(input)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Title != second[i].Title || !first[i].Start.Equal(second[i].Start) ||
			first[i].Type != second[i].Type || first[i].Details != second[i].Details {
			t.Errorf("task %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFromTextTitleNeverEmpty(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	// The line is nothing but the date, so the stripped title is empty
	// and the fallback applies.
	tasks, err := eng.FromText("9/24/2025")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Title != FallbackTitle {
		t.Errorf("title = %q, want %q", tasks[0].Title, FallbackTitle)
	}
}
