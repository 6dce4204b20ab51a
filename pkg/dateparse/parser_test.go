package dateparse_test

import (
	"testing"
	"time"

	"syllabus-sync/pkg/dateparse"
)

func TestNewParser(t *testing.T) {
	_, err := dateparse.NewParser("America/Chicago")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = dateparse.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseAll(t *testing.T) {
	parser, err := dateparse.NewParser("America/Chicago")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	loc := parser.Location()
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)

	tests := []struct {
		name string
		text string
		want []dateparse.Match
	}{
		{
			name: "month name without year backfills year and noon",
			text: "Sept 24 Midterm Exam",
			want: []dateparse.Match{{
				Text:  "Sept 24",
				Index: 0,
				Time:  time.Date(2024, 9, 24, 12, 0, 0, 0, loc),
			}},
		},
		{
			name: "numeric with year",
			text: "Due 9/24/2025",
			want: []dateparse.Match{{
				Text:    "9/24/2025",
				Index:   4,
				Time:    time.Date(2025, 9, 24, 12, 0, 0, 0, loc),
				HasYear: true,
			}},
		},
		{
			name: "two digit year",
			text: "Quiz on 9-24-25",
			want: []dateparse.Match{{
				Text:    "9-24-25",
				Index:   8,
				Time:    time.Date(2025, 9, 24, 12, 0, 0, 0, loc),
				HasYear: true,
			}},
		},
		{
			name: "full month name with comma year",
			text: "Final on December 12, 2025",
			want: []dateparse.Match{{
				Text:    "December 12, 2025",
				Index:   9,
				Time:    time.Date(2025, 12, 12, 12, 0, 0, 0, loc),
				HasYear: true,
			}},
		},
		{
			name: "day before month",
			text: "24 Sept 2025 review session",
			want: []dateparse.Match{{
				Text:    "24 Sept 2025",
				Index:   0,
				Time:    time.Date(2025, 9, 24, 12, 0, 0, 0, loc),
				HasYear: true,
			}},
		},
		{
			name: "clock with meridiem",
			text: "Sept 24 at 3pm presentation",
			want: []dateparse.Match{{
				Text:     "Sept 24 at 3pm",
				Index:    0,
				Time:     time.Date(2024, 9, 24, 15, 0, 0, 0, loc),
				HasClock: true,
			}},
		},
		{
			name: "clock with minutes",
			text: "9/24/2025 2:30 PM",
			want: []dateparse.Match{{
				Text:     "9/24/2025 2:30 PM",
				Index:    0,
				Time:     time.Date(2025, 9, 24, 14, 30, 0, 0, loc),
				HasClock: true,
				HasYear:  true,
			}},
		},
		{
			name: "day first numeric swaps to month",
			text: "due 24/9/2025",
			want: []dateparse.Match{{
				Text:    "24/9/2025",
				Index:   4,
				Time:    time.Date(2025, 9, 24, 12, 0, 0, 0, loc),
				HasYear: true,
			}},
		},
		{
			name: "multiple mentions on one line",
			text: "Essay drafts Dec 1 and Dec 15",
			want: []dateparse.Match{
				{Text: "Dec 1", Index: 13, Time: time.Date(2024, 12, 1, 12, 0, 0, 0, loc)},
				{Text: "Dec 15", Index: 23, Time: time.Date(2024, 12, 15, 12, 0, 0, 0, loc)},
			},
		},
		{
			name: "short numeric without year",
			text: "Lab report 10/31",
			want: []dateparse.Match{{
				Text:  "10/31",
				Index: 11,
				Time:  time.Date(2024, 10, 31, 12, 0, 0, 0, loc),
			}},
		},
		{
			name: "page range is not a date",
			text: "Reading - pp. 12-15",
			want: nil,
		},
		{
			name: "no date",
			text: "Office hours by appointment",
			want: nil,
		},
		{
			name: "bare trailing number is not a clock",
			text: "Sept 24 Quiz 2",
			want: []dateparse.Match{{
				Text:  "Sept 24",
				Index: 0,
				Time:  time.Date(2024, 9, 24, 12, 0, 0, 0, loc),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ParseAll(tt.text, now)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Text != tt.want[i].Text {
					t.Errorf("match %d text = %q, want %q", i, got[i].Text, tt.want[i].Text)
				}
				if got[i].Index != tt.want[i].Index {
					t.Errorf("match %d index = %d, want %d", i, got[i].Index, tt.want[i].Index)
				}
				if !got[i].Time.Equal(tt.want[i].Time) {
					t.Errorf("match %d time = %v, want %v", i, got[i].Time, tt.want[i].Time)
				}
				if got[i].HasClock != tt.want[i].HasClock {
					t.Errorf("match %d HasClock = %v, want %v", i, got[i].HasClock, tt.want[i].HasClock)
				}
				if got[i].HasYear != tt.want[i].HasYear {
					t.Errorf("match %d HasYear = %v, want %v", i, got[i].HasYear, tt.want[i].HasYear)
				}
			}
		})
	}
}

func TestParseFirst(t *testing.T) {
	parser, _ := dateparse.NewParser("UTC")
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	m, ok := parser.ParseFirst("Sessions on 2/3/2025 and 2/10/2025", now)
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Text != "2/3/2025" {
		t.Errorf("first match = %q, want %q", m.Text, "2/3/2025")
	}

	if _, ok := parser.ParseFirst("nothing here", now); ok {
		t.Errorf("expected no match")
	}
}
