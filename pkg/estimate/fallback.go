package estimate

import "strings"

// Fallback formula parameters: 30 base minutes plus 2 per word, rounded to
// the nearest 5, floored at 30 and capped at 480.
const (
	fallbackBase    = 30
	fallbackPerWord = 2
	fallbackFloor   = 30
	fallbackCap     = 480
)

// FallbackMinutes sizes a task from its text alone, for when the generation
// service is unreachable or its reply unusable. Pure and deterministic:
// identical input always yields identical output.
func FallbackMinutes(text string) int {
	words := len(strings.Fields(text))

	minutes := fallbackBase + words*fallbackPerWord
	minutes = (minutes*2 + 5) / 10 * 5 // round to nearest 5

	if minutes < fallbackFloor {
		minutes = fallbackFloor
	}
	if minutes > fallbackCap {
		minutes = fallbackCap
	}
	return minutes
}
