package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"syllabus-sync/internal/model"
)

// columnRole is the semantic label assigned to a table column. Roles are
// transient: inferred per table, never persisted across tables.
type columnRole int

const (
	roleOther columnRole = iota
	roleDate
	roleActivity
	roleSubmission
	roleLocation
)

var (
	// cellDateRe gates date cells and scores columns in the content
	// fallback: numeric D/M/Y or "Month D, Y" forms, year required.
	cellDateRe = regexp.MustCompile(`(?i)\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{2,4})\b`)

	headerRowRe = regexp.MustCompile(`(?i)class\s*date|date|activities|lecture|submission|quiz|location`)

	alnumRe = regexp.MustCompile(`[a-z0-9]`)
)

// headerRules is the column-role priority list; first match wins.
var headerRules = []struct {
	re   *regexp.Regexp
	role columnRole
}{
	{regexp.MustCompile(`(?i)class\s*date|^date$`), roleDate},
	{regexp.MustCompile(`(?i)activities|lecture|topic`), roleActivity},
	{regexp.MustCompile(`(?i)submission|quiz|assignment|deliverable|due`), roleSubmission},
	{regexp.MustCompile(`(?i)location|room`), roleLocation},
}

func headerRole(cell string) columnRole {
	for _, rule := range headerRules {
		if rule.re.MatchString(strings.ToLower(cell)) {
			return rule.role
		}
	}
	return roleOther
}

// FromHTML extracts tasks from an HTML rendering of the document. Every
// <table> is processed independently; when no table yields a task the
// document body text is run through the plain-text pipeline instead.
// The result is deduplicated and sorted chronologically, since rows from
// multiple tables arrive in document order, not date order.
func (e *Engine) FromHTML(html string) ([]model.Task, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	now := e.now()
	var out []model.Task
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		out = append(out, e.tableTasks(tableMatrix(table), now)...)
	})

	if len(out) == 0 {
		return e.FromText(doc.Find("body").Text())
	}

	tasks := dedupe(out)
	sortByStart(tasks)
	return tasks, nil
}

// tableMatrix renders a table into a row×cell text matrix, dropping rows
// whose cells are all empty after cleanup.
func tableMatrix(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		empty := true
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			text := Clean(cell.Text())
			if text != "" {
				empty = false
			}
			cells = append(cells, text)
		})
		if len(cells) == 0 || empty {
			return
		}
		rows = append(rows, cells)
	})
	return rows
}

// tableTasks emits tasks for one table. The header row is the last
// header-ish row within the first three; when no header names a date
// column, the column whose data cells look most date-like takes the role.
func (e *Engine) tableTasks(rows [][]string, now time.Time) []model.Task {
	if len(rows) == 0 {
		return nil
	}

	// A data row can mention "lecture" or "quiz" too, so a header
	// candidate must also be free of date-like cells.
	headerIdx := 0
	for i := 0; i < len(rows) && i < 3; i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		if headerRowRe.MatchString(joined) && !rowHasDate(rows[i]) {
			headerIdx = i
		}
	}
	header := rows[headerIdx]
	dataRows := rows[headerIdx+1:]

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	roles := make([]columnRole, width)
	for i, cell := range header {
		roles[i] = headerRole(cell)
	}
	if indexOfRole(roles, roleDate) < 0 {
		if idx := bestDateColumn(dataRows, width); idx >= 0 {
			roles[idx] = roleDate
		}
	}

	cellAt := func(row []string, role columnRole) string {
		if idx := indexOfRole(roles, role); idx >= 0 && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	var out []model.Task
	for _, row := range dataRows {
		dateCell := cellAt(row, roleDate)
		if dateCell == "" || !cellDateRe.MatchString(dateCell) {
			continue
		}
		m, ok := e.parser.ParseFirst(dateCell, now)
		if !ok {
			continue
		}

		location := cellAt(row, roleLocation)
		activity := cellAt(row, roleActivity)
		submission := cellAt(row, roleSubmission)

		if alnumRe.MatchString(strings.ToLower(submission)) {
			typ := model.TypeAssignment
			if submissionExamRe.MatchString(submission) {
				typ = model.TypeExam
			}
			task := model.NewTask(NormalizeTitle(submission), typ, m.Time)
			task.Details = joinDetails(
				labeled("Location", location),
				labeledIfDistinct("Activity", activity, submission),
			)
			out = append(out, task)
		}

		if alnumRe.MatchString(strings.ToLower(activity)) {
			out = append(out, model.NewTask(NormalizeTitle(activity), ClassifyType(activity), m.Time))
		}

		if activity == "" && submission == "" {
			task := model.NewTask(SessionTitle, model.TypeOther, m.Time)
			task.Details = labeled("Location", location)
			out = append(out, task)
		}
	}
	return out
}

func rowHasDate(row []string) bool {
	for _, cell := range row {
		if cellDateRe.MatchString(cell) {
			return true
		}
	}
	return false
}

func indexOfRole(roles []columnRole, role columnRole) int {
	for i, r := range roles {
		if r == role {
			return i
		}
	}
	return -1
}

// bestDateColumn scores every column by counting date-like data cells.
// Ties break to the lowest index; a column must score above zero to win.
func bestDateColumn(dataRows [][]string, width int) int {
	bestIdx, bestScore := -1, 0
	for c := 0; c < width; c++ {
		score := 0
		for _, row := range dataRows {
			if c < len(row) && cellDateRe.MatchString(row[c]) {
				score++
			}
		}
		if score > bestScore {
			bestScore, bestIdx = score, c
		}
	}
	return bestIdx
}

func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func labeledIfDistinct(label, value, against string) string {
	if value == against {
		return ""
	}
	return labeled(label, value)
}

func joinDetails(segments ...string) string {
	var parts []string
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}
