package actionitem

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/nlpdate"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/timephrase"
)

// Extractor detects action items in transcript utterances. It is pure over
// its (text, now) inputs and safe for concurrent use.
type Extractor struct {
	times    *timephrase.Extractor
	dates    *nlpdate.Parser
	location *time.Location
}

// New creates an Extractor for the given IANA timezone string.
func New(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	times, err := timephrase.New(timezone)
	if err != nil {
		return nil, err
	}
	dates, err := nlpdate.New(timezone)
	if err != nil {
		return nil, err
	}
	return &Extractor{times: times, dates: dates, location: loc}, nil
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)

	// Both capture groups are kept intentionally narrow: the assignee is the
	// single word token after the anchor, and the due date accepts only
	// "MonthName D", "M/D", or "M-D" shapes.
	assigneePattern = regexp.MustCompile(`(?i)(?:assign|responsible|@)(?:ed)?\s+(?:to\s+)?(\w+)`)
	dueDatePattern  = regexp.MustCompile(`(?i)(?:due|deadline|by)\s+(\w+\s+\d{1,2}|\d{1,2}/\d{1,2}|\d{1,2}-\d{1,2})`)
)

// Extract splits text into sentences and emits one Candidate per sentence
// containing an action keyword. Sentences without a keyword yield nothing.
func (e *Extractor) Extract(text string, now time.Time) []Candidate {
	now = now.In(e.location)

	var candidates []Candidate
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		lower := strings.ToLower(sentence)
		if !containsActionKeyword(lower) {
			continue
		}

		cand := Candidate{
			Text:       sentence,
			Priority:   priorityFor(lower),
			TimeSource: TimeSourceNone,
			CreatedAt:  now,
		}

		// Time-phrase extractor first; NLP parser as fallback.
		if extractions := e.times.Extract(sentence, now); len(extractions) > 0 {
			at := extractions[0].At
			cand.ScheduledTime = &at
			cand.TimeSource = TimeSourceExtractor
		} else if at, ok := e.dates.Parse(sentence, now); ok {
			cand.ScheduledTime = &at
			cand.TimeSource = TimeSourceParser
		}

		if m := assigneePattern.FindStringSubmatch(sentence); m != nil {
			cand.Assignee = m[1]
		}
		if m := dueDatePattern.FindStringSubmatch(sentence); m != nil {
			cand.DueDate = e.parseDueDate(m[1], now)
		}

		candidates = append(candidates, cand)
	}
	return candidates
}

func containsActionKeyword(lowerSentence string) bool {
	for _, keyword := range actionKeywords {
		if strings.Contains(lowerSentence, keyword) {
			return true
		}
	}
	return false
}

func priorityFor(lowerSentence string) model.Priority {
	for _, set := range priorityKeywords {
		for _, keyword := range set.keywords {
			if strings.Contains(lowerSentence, keyword) {
				return set.level
			}
		}
	}
	return model.PriorityMedium
}

// parseDueDate builds a date in the current year from the captured token.
// Tokens that don't parse into a valid calendar date are dropped, so "due
// Blarch 40" leaves the field unset rather than storing garbage.
func (e *Extractor) parseDueDate(token string, now time.Time) *time.Time {
	for _, layout := range []string{"January 2", "Jan 2", "1/2", "1-2"} {
		parsed, err := time.ParseInLocation(layout, token, e.location)
		if err != nil {
			continue
		}
		due := time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, e.location)
		return &due
	}
	return nil
}
