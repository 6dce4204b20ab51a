package extract

import (
	"strings"

	"syllabus-sync/internal/model"
)

// FromText scans line-oriented plain text and emits one task per date
// mention. Lines without a recognizable date carry no task. An empty
// result with a nil error means no dates were found, which is a valid
// outcome — the error is reserved for inputs that cannot be processed.
func (e *Engine) FromText(text string) ([]model.Task, error) {
	now := e.now()
	var tasks []model.Task

	for _, line := range cleanLines(text) {
		for _, m := range e.parser.ParseAll(line, now) {
			// The matched span is removed before titling so "Sept 24
			// Midterm Exam" titles as "Midterm Exam"; classification
			// sees the full line for context.
			title := NormalizeTitle(strings.Replace(line, m.Text, "", 1))
			task := model.NewTask(title, ClassifyType(line), m.Time)
			task.Details = line
			tasks = append(tasks, task)
		}
	}

	return dedupe(tasks), nil
}

func cleanLines(text string) []string {
	var out []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line := Clean(raw); line != "" {
			out = append(out, line)
		}
	}
	return out
}
