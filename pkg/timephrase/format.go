package timephrase

import "time"

// FormatForDisplay renders a resolved timestamp as a short human label:
// "Today at 3:00 PM", "Tomorrow at 9:00 AM", or "1/15/2024 at 2:30 PM".
func FormatForDisplay(t, now time.Time) string {
	now = now.In(t.Location())
	clock := t.Format("3:04 PM")

	if sameDay(t, now) {
		return "Today at " + clock
	}
	if sameDay(t, now.AddDate(0, 0, 1)) {
		return "Tomorrow at " + clock
	}
	return t.Format("1/2/2006") + " at " + clock
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
