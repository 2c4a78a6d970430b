package timephrase

import "time"

// Extraction is a single time/date candidate found in free text.
type Extraction struct {
	OriginalText string    // the exact substring that matched
	At           time.Time // resolved timestamp, always strictly after the base time
	TimeString   string    // human label for the matched phrase, e.g. "in 2 hours"
	IsRelative   bool      // true for offset phrases ("in N ...", "N ... from now")
}
