package extract

import (
	"sort"
	"time"

	"syllabus-sync/internal/model"
)

// dedupe collapses tasks sharing (title, start); the first occurrence in
// scan order wins and the surviving order is unchanged.
func dedupe(tasks []model.Task) []model.Task {
	seen := make(map[string]struct{}, len(tasks))
	var out []model.Task
	for _, t := range tasks {
		key := t.Title + "|" + t.Start.Format(time.RFC3339)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// sortByStart orders tasks chronologically, keeping emission order for
// equal start times.
func sortByStart(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start.Before(tasks[j].Start)
	})
}
