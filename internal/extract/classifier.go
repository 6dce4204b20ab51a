package extract

import (
	"regexp"

	"syllabus-sync/internal/model"
)

// typeRules is an explicit priority list: categories are tested in order
// and the first match wins, so exam language beats submission language
// ("Final Exam due" classifies as Exam, not Assignment).
var typeRules = []struct {
	re  *regexp.Regexp
	typ model.TaskType
}{
	{regexp.MustCompile(`(?i)\b(final|midterm|exam|quiz|test)\b`), model.TypeExam},
	{regexp.MustCompile(`(?i)\b(assign(ment)?|project|paper|report|submission|submit|due)\b`), model.TypeAssignment},
	{regexp.MustCompile(`(?i)\b(reading|chapter|chap\.|ch\.|pp\.\s*\d)`), model.TypeReading},
}

// ClassifyType returns the best-matching category for s, or TypeOther.
func ClassifyType(s string) model.TaskType {
	for _, rule := range typeRules {
		if rule.re.MatchString(s) {
			return rule.typ
		}
	}
	return model.TypeOther
}

// submissionExamRe is the stronger override used for table submission
// cells: anything quiz/exam-shaped is an Exam, everything else in that
// column is an Assignment.
var submissionExamRe = regexp.MustCompile(`(?i)\b(quiz|exam|midterm|final)\b`)
