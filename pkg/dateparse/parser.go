package dateparse

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Parser recognizes absolute date mentions in free text and resolves them
// to concrete times in a fixed timezone. Fields the text does not pin down
// are back-filled from a caller-supplied reference time: a missing clock
// becomes 12:00 local, a missing year becomes the reference year.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "America/Chicago".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Recognized date shapes, scanned in priority order. A span claimed by an
// earlier pattern is not re-matched by a later one.
var (
	// 9/24/2025, 9-24-25
	numericFullRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	// Sept 24 / September 24, 2025 / Sep. 24th
	monthDayRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{2,4}))?\b`)
	// 24 Sept / 24th of September 2025 is not supported; plain "24 Sept 2025" is
	dayMonthRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?(?:,?\s+(\d{2,4}))?\b`)
	// 9/24 — slash only, so page ranges like "pp. 12-15" stay unmatched
	numericShortRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)

	// Optional clock immediately after a date: "at 3pm", "2:30 PM", "14:00"
	clockRe = regexp.MustCompile(`(?i)^[,;]?\s*(?:at\s+)?(\d{1,2})(?::([0-5]\d))?\s*(a\.?m\.?|p\.?m\.?)?`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

type candidate struct {
	start, end int
	month      time.Month
	day        int
	year       int // 0 when absent
	hour, min  int
	hasClock   bool
}

// ParseAll returns every date mention in text, in order of appearance.
// now is the reference time used for back-fill; callers that need
// deterministic results pass a fixed clock instead of time.Now().
func (p *Parser) ParseAll(text string, now time.Time) []Match {
	var cands []candidate

	accept := func(c candidate) {
		for _, prev := range cands {
			if c.start < prev.end && prev.start < c.end {
				return
			}
		}
		cands = append(cands, c)
	}

	for _, idx := range numericFullRe.FindAllStringSubmatchIndex(text, -1) {
		if c, ok := numericCandidate(text, idx, true); ok {
			accept(c)
		}
	}
	for _, idx := range monthDayRe.FindAllStringSubmatchIndex(text, -1) {
		if c, ok := monthNameCandidate(text, idx, false); ok {
			accept(c)
		}
	}
	for _, idx := range dayMonthRe.FindAllStringSubmatchIndex(text, -1) {
		if c, ok := monthNameCandidate(text, idx, true); ok {
			accept(c)
		}
	}
	for _, idx := range numericShortRe.FindAllStringSubmatchIndex(text, -1) {
		if c, ok := numericCandidate(text, idx, false); ok {
			accept(c)
		}
	}

	for i := range cands {
		p.extendClock(text, &cands[i])
	}

	sort.Slice(cands, func(i, j int) bool { return cands[i].start < cands[j].start })

	matches := make([]Match, 0, len(cands))
	for _, c := range cands {
		matches = append(matches, p.resolve(text, c, now))
	}
	return matches
}

// ParseFirst returns the first date mention in text, if any.
func (p *Parser) ParseFirst(text string, now time.Time) (Match, bool) {
	all := p.ParseAll(text, now)
	if len(all) == 0 {
		return Match{}, false
	}
	return all[0], true
}

func numericCandidate(text string, idx []int, hasYear bool) (candidate, bool) {
	first, _ := strconv.Atoi(text[idx[2]:idx[3]])
	second, _ := strconv.Atoi(text[idx[4]:idx[5]])

	month, day := first, second
	// Month-first by default; swap when only the second value can be a month.
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return candidate{}, false
	}

	c := candidate{
		start: idx[0],
		end:   idx[1],
		month: time.Month(month),
		day:   day,
	}
	if hasYear {
		y, _ := strconv.Atoi(text[idx[6]:idx[7]])
		c.year = normalizeYear(y)
	}
	return c, true
}

func monthNameCandidate(text string, idx []int, dayFirst bool) (candidate, bool) {
	monthGroup, dayGroup := 1, 2
	if dayFirst {
		monthGroup, dayGroup = 2, 1
	}

	prefix := strings.ToLower(text[idx[2*monthGroup]:idx[2*monthGroup+1]])
	month, ok := monthsByPrefix[prefix]
	if !ok {
		return candidate{}, false
	}
	day, _ := strconv.Atoi(text[idx[2*dayGroup]:idx[2*dayGroup+1]])
	if day < 1 || day > 31 {
		return candidate{}, false
	}

	c := candidate{start: idx[0], end: idx[1], month: month, day: day}
	if idx[6] >= 0 {
		y, _ := strconv.Atoi(text[idx[6]:idx[7]])
		c.year = normalizeYear(y)
	}
	return c, true
}

// extendClock looks for a time-of-day directly after the date span and,
// when one is present, folds it into the candidate.
func (p *Parser) extendClock(text string, c *candidate) {
	rest := text[c.end:]
	idx := clockRe.FindStringSubmatchIndex(rest)
	if idx == nil {
		return
	}

	hour, _ := strconv.Atoi(rest[idx[2]:idx[3]])
	hasMinutes := idx[4] >= 0
	minutes := 0
	if hasMinutes {
		minutes, _ = strconv.Atoi(rest[idx[4]:idx[5]])
	}
	meridiem := ""
	if idx[6] >= 0 {
		meridiem = strings.ToLower(rest[idx[6]:idx[7]])
	}

	// A bare number is not a clock; require minutes or an am/pm marker.
	switch {
	case meridiem != "":
		if hour < 1 || hour > 12 {
			return
		}
		if strings.HasPrefix(meridiem, "p") && hour < 12 {
			hour += 12
		}
		if strings.HasPrefix(meridiem, "a") && hour == 12 {
			hour = 0
		}
	case hasMinutes:
		if hour > 23 {
			return
		}
	default:
		return
	}

	c.end += idx[1]
	c.hour, c.min = hour, minutes
	c.hasClock = true
}

func (p *Parser) resolve(text string, c candidate, now time.Time) Match {
	year := c.year
	if year == 0 {
		year = now.In(p.location).Year()
	}
	hour, min := c.hour, c.min
	if !c.hasClock {
		hour, min = 12, 0
	}

	return Match{
		Text:     text[c.start:c.end],
		Index:    c.start,
		Time:     time.Date(year, c.month, c.day, hour, min, 0, 0, p.location),
		HasClock: c.hasClock,
		HasYear:  c.year != 0,
	}
}

func normalizeYear(y int) int {
	switch {
	case y >= 100:
		return y
	case y >= 70:
		return y + 1900
	default:
		return y + 2000
	}
}
