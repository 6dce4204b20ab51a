package extract

import (
	"strings"
	"testing"
	"time"

	"syllabus-sync/internal/model"
)

func tableHTML(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("<html><body><table>")
	if header != nil {
		b.WriteString("<tr>")
		for _, h := range header {
			b.WriteString("<th>" + h + "</th>")
		}
		b.WriteString("</tr>")
	}
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range r {
			b.WriteString("<td>" + c + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

func TestFromHTMLSubmissionAndActivity(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	html := tableHTML(
		[]string{"Class Date", "Activities", "Submission", "Location"},
		[][]string{{"9/24/2025", "Lecture 5", "Quiz 2", "Room 101"}},
	)

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
	}

	quiz := tasks[0]
	if quiz.Title != "Quiz 2" {
		t.Errorf("submission title = %q, want %q", quiz.Title, "Quiz 2")
	}
	if quiz.Type != model.TypeExam {
		t.Errorf("submission type = %s, want %s", quiz.Type, model.TypeExam)
	}
	if quiz.Details != "Location: Room 101 · Activity: Lecture 5" {
		t.Errorf("submission details = %q", quiz.Details)
	}

	lecture := tasks[1]
	if lecture.Title != "Lecture 5" {
		t.Errorf("activity title = %q, want %q", lecture.Title, "Lecture 5")
	}
	if lecture.Type != model.TypeOther {
		t.Errorf("activity type = %s, want %s", lecture.Type, model.TypeOther)
	}
	if lecture.Details != "" {
		t.Errorf("activity details = %q, want empty", lecture.Details)
	}

	wantStart := time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC)
	for _, task := range tasks {
		if !task.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", task.Start, wantStart)
		}
		if !task.End.Equal(wantStart.Add(model.DefaultDuration)) {
			t.Errorf("end = %v, want start+60m", task.End)
		}
	}
}

func TestFromHTMLGenericSession(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	html := tableHTML(
		[]string{"Class Date", "Activities", "Submission", "Location"},
		[][]string{{"10/1/2025", "", "", "Room 5"}},
	)

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != SessionTitle {
		t.Errorf("title = %q, want %q", tasks[0].Title, SessionTitle)
	}
	if tasks[0].Type != model.TypeOther {
		t.Errorf("type = %s, want %s", tasks[0].Type, model.TypeOther)
	}
	if tasks[0].Details != "Location: Room 5" {
		t.Errorf("details = %q, want %q", tasks[0].Details, "Location: Room 5")
	}
}

func TestFromHTMLRowsWithoutDatesSkipped(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	html := tableHTML(
		[]string{"Class Date", "Activities", "Submission", "Location"},
		[][]string{
			{"", "Orientation", "", ""},
			{"TBD", "Lecture 1", "", ""},
			{"9/10/2025", "Lecture 2", "", ""},
		},
	)

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "Lecture 2" {
		t.Errorf("title = %q, want %q", tasks[0].Title, "Lecture 2")
	}
}

func TestFromHTMLContentFallbackDateColumn(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	// Headers give no date hint; the second column carries the dates.
	html := tableHTML(
		[]string{"Week", "When", "Topic"},
		[][]string{
			{"1", "9/3/2025", "Intro"},
			{"2", "9/10/2025", "Methods"},
		},
	)

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "Intro" || tasks[1].Title != "Methods" {
		t.Errorf("titles = %q, %q", tasks[0].Title, tasks[1].Title)
	}
}

func TestFromHTMLMultipleTablesSorted(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	later := tableHTML(
		[]string{"Class Date", "Activities", "Submission", "Location"},
		[][]string{{"11/5/2025", "Lecture 9", "", ""}},
	)
	earlier := tableHTML(
		[]string{"Class Date", "Activities", "Submission", "Location"},
		[][]string{{"9/3/2025", "Lecture 1", "", ""}},
	)
	html := strings.Replace(later, "</body></html>", "", 1) +
		strings.Replace(earlier, "<html><body>", "", 1)

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Start.Before(tasks[i-1].Start) {
			t.Errorf("tasks out of order: %v after %v", tasks[i].Start, tasks[i-1].Start)
		}
	}
	if tasks[0].Title != "Lecture 1" {
		t.Errorf("first task = %q, want the earlier date", tasks[0].Title)
	}
}

func TestFromHTMLFallsBackToBodyText(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	eng := newTestEngine(t, "America/Chicago", now)

	html := "<html><body><p>Course outline</p>\n<p>Sept 24 Midterm Exam</p>\n</body></html>"

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "Midterm Exam" {
		t.Errorf("title = %q, want %q", tasks[0].Title, "Midterm Exam")
	}
	if tasks[0].Type != model.TypeExam {
		t.Errorf("type = %s, want %s", tasks[0].Type, model.TypeExam)
	}
}

func TestFromHTMLHeaderInSecondRow(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	// A banner row above the real header: the last header-ish row within
	// the first three wins.
	html := "<html><body><table>" +
		"<tr><td>Fall 2025 Schedule</td><td></td><td></td><td></td></tr>" +
		"<tr><th>Class Date</th><th>Activities</th><th>Submission</th><th>Location</th></tr>" +
		"<tr><td>9/24/2025</td><td>Lecture 5</td><td></td><td></td></tr>" +
		"</table></body></html>"

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "Lecture 5" {
		t.Errorf("title = %q, want %q", tasks[0].Title, "Lecture 5")
	}
}

func TestFromHTMLDuplicateSubmissionAndActivityCollapse(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, "UTC", now)

	// Same text in both columns: both emissions share (title, start) and
	// the dedupe keeps only the first.
	html := tableHTML(
		[]string{"Class Date", "Activities", "Submission", "Location"},
		[][]string{{"9/24/2025", "Quiz 2", "Quiz 2", ""}},
	)

	tasks, err := eng.FromHTML(html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
	if tasks[0].Type != model.TypeExam {
		t.Errorf("type = %s, want the submission override %s", tasks[0].Type, model.TypeExam)
	}
}
