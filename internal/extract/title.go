package extract

import (
	"regexp"
	"strings"
)

// Fallback titles. A Task title is never empty.
const (
	FallbackTitle = "Course Task"
	SessionTitle  = "Class Session"
	ReadingTitle  = "Reading"
)

var (
	dashRe  = regexp.MustCompile("[–—]")
	spaceRe = regexp.MustCompile(`\s+`)
	colonRe = regexp.MustCompile(`\s*:\s*`)
)

// Clean applies the generic text cleanup shared by both pipelines:
// en/em dashes become hyphens, whitespace collapses, colons get a single
// trailing space.
func Clean(s string) string {
	s = dashRe.ReplaceAllString(s, "-")
	s = spaceRe.ReplaceAllString(s, " ")
	s = colonRe.ReplaceAllString(s, ": ")
	return strings.TrimSpace(s)
}

var (
	quizPrefixRe         = regexp.MustCompile(`(?i)^quiz\s*\d+`)
	assignmentPrefixRe   = regexp.MustCompile(`(?i)^assignment\s*\d+`)
	presentationPrefixRe = regexp.MustCompile(`(?i)^group presentation`)
	verbatimPrefixRe     = regexp.MustCompile(`(?i)^(midterm|final)`)
	readingWordRe        = regexp.MustCompile(`(?i)reading`)
	pagesTailRe          = regexp.MustCompile(`(?i)\bpp\..*$`)
	readingPagesTailRe   = regexp.MustCompile(`(?i)\s*-?\s*pp\..*$`)
)

// NormalizeTitle derives a presentable title from a raw fragment.
// Pattern rules are tried in order, first match wins; the result is
// never empty.
func NormalizeTitle(s string) string {
	raw := strings.Trim(Clean(s), " -,:;")

	switch {
	case quizPrefixRe.MatchString(raw):
		return strings.TrimSpace(pagesTailRe.ReplaceAllString(raw, ""))
	case assignmentPrefixRe.MatchString(raw),
		presentationPrefixRe.MatchString(raw),
		verbatimPrefixRe.MatchString(raw):
		return raw
	case readingWordRe.MatchString(raw):
		if title := strings.TrimSpace(readingPagesTailRe.ReplaceAllString(raw, "")); title != "" {
			return title
		}
		return ReadingTitle
	}

	if raw == "" {
		return FallbackTitle
	}
	return raw
}
