package dateparse

import "time"

// Match is a single date mention recognized inside a text fragment.
type Match struct {
	Text  string    // the exact substring that was recognized, clock suffix included
	Index int       // byte offset of the mention in the input
	Time  time.Time // resolved start time after back-fill

	// Certainty flags. When false the corresponding field of Time was
	// back-filled (noon for the clock, the reference year for the year).
	HasClock bool
	HasYear  bool
}
