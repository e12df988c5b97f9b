package estimate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigitComma = regexp.MustCompile(`[^\d,]`)
	digitRun      = regexp.MustCompile(`\d+`)
)

// Extract parses a model reply into a clamped (minutes, difficulty) pair.
//
// Strategies, first match wins:
//  1. Strip everything but digits and commas, split on commas. Two or more
//     numeric segments: first two are (minutes, difficulty). This is the
//     strict pass for well-formed "45,4" replies and must run first — a
//     conforming reply is trusted over the loose scan below, which could pick
//     up stray numbers echoed back from the reference table.
//  2. Scan the original text for digit runs. Two or more: first two in order
//     of appearance.
//  3. Exactly one digit run: minutes only.
//  4. Nothing.
func Extract(raw string) Result {
	clean := nonDigitComma.ReplaceAllString(strings.TrimSpace(raw), "")
	segments := make([]string, 0, 2)
	for _, seg := range strings.Split(clean, ",") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) >= 2 {
		return Result{
			Minutes:    clampMinutes(atoiSaturating(segments[0])),
			Difficulty: clampDifficulty(atoiSaturating(segments[1])),
			Match:      MatchBoth,
		}
	}

	runs := digitRun.FindAllString(raw, -1)
	if len(runs) >= 2 {
		return Result{
			Minutes:    clampMinutes(atoiSaturating(runs[0])),
			Difficulty: clampDifficulty(atoiSaturating(runs[1])),
			Match:      MatchBoth,
		}
	}

	if len(runs) == 1 {
		return Result{
			Minutes: clampMinutes(atoiSaturating(runs[0])),
			Match:   MatchMinutesOnly,
		}
	}

	return Result{Match: MatchNone}
}

// atoiSaturating parses a digits-only string. On overflow Atoi already
// returns the saturated int, which the clamps then bound.
func atoiSaturating(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func clampMinutes(v int) int {
	return clamp(v, MinMinutes, MaxMinutes)
}

func clampDifficulty(v int) int {
	return clamp(v, MinDifficulty, MaxDifficulty)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
