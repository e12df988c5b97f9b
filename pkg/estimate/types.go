package estimate

// Bounds for estimates. Values parsed out of model replies are always clamped
// into these ranges, never trusted as-is.
const (
	MinMinutes = 5
	MaxMinutes = 1440

	MinDifficulty = 1
	MaxDifficulty = 10

	// DefaultDifficulty is used whenever a reply carries no usable difficulty.
	// Single source for every fallback path that needs one.
	DefaultDifficulty = 5
)

// Match says how much of an estimate was recovered from the text.
type Match int

const (
	// MatchNone means no numbers were found.
	MatchNone Match = iota
	// MatchMinutesOnly means a single number was found, read as minutes.
	MatchMinutesOnly
	// MatchBoth means both minutes and difficulty were found.
	MatchBoth
)

// Result is the outcome of extracting an estimate from free text.
// Minutes and Difficulty are only meaningful for the Match level reached,
// and are already clamped.
type Result struct {
	Minutes    int
	Difficulty int
	Match      Match
}
