package actionitem

import "regexp"

// Highlighting wraps whole-word keyword occurrences, unlike detection which
// is substring-based. Presentation only; decisions in Extract are unaffected.
var highlightPatterns = buildHighlightPatterns()

func buildHighlightPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(actionKeywords))
	for _, keyword := range actionKeywords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(keyword)+`\b`))
	}
	return patterns
}

// HighlightKeywords wraps every whole-word, case-insensitive action keyword
// in a <mark> tag, preserving the original casing.
func HighlightKeywords(text string) string {
	for _, pattern := range highlightPatterns {
		text = pattern.ReplaceAllString(text, "<mark>$0</mark>")
	}
	return text
}
