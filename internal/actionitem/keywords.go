package actionitem

import "github.com/meeting-assistant-team/meeting-assistant/internal/model"

// actionKeywords flag a sentence as a candidate task. Matching is
// substring-based on the lower-cased sentence, not word-boundary-based.
var actionKeywords = []string{
	"follow up", "follow-up", "action item", "todo", "to do", "task",
	"assign", "responsible", "due", "deadline", "complete", "finish",
	"deliver", "send", "create", "update", "review", "check", "verify",
	"schedule", "organize", "prepare", "research", "contact", "call",
	"email", "meeting", "discuss", "resolve", "fix", "implement",
}

// priorityKeywords are scanned in order; the first level with a substring
// match wins.
var priorityKeywords = []struct {
	level    model.Priority
	keywords []string
}{
	{model.PriorityHigh, []string{"urgent", "asap", "critical", "important", "priority", "immediately"}},
	{model.PriorityMedium, []string{"soon", "next week", "upcoming", "moderate"}},
	{model.PriorityLow, []string{"later", "eventually", "when possible", "low priority"}},
}
