package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/pkg/estimate"
	"github.com/AnishD4/StudyTide/pkg/gemini"
)

const (
	// estimateMaxTokens is small on purpose: the reply contract is two numbers.
	estimateMaxTokens = 200
	// estimateTemperature is zero for repeatable estimates.
	estimateTemperature = 0
)

// Estimate sizes a task from its title and description. Exactly one
// generation call, no retry; every failure mode degrades to the deterministic
// fallback so the caller always gets a bounded estimate.
func (uc *implUseCase) Estimate(ctx context.Context, input assignment.EstimateInput) assignment.Estimate {
	taskInfo := input.Title
	if input.Description != "" {
		taskInfo = input.Title + ": " + input.Description
	}

	raw, err := uc.llm.GenerateText(ctx, gemini.BuildEstimationPrompt(taskInfo), estimateMaxTokens, estimateTemperature)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			uc.l.Warnf(ctx, "Estimate: generation service not configured, using fallback")
		} else {
			uc.l.Warnf(ctx, "Estimate: generation call failed, using fallback: %v", err)
		}
		return uc.fallbackEstimate(input)
	}

	res := estimate.Extract(raw)
	switch res.Match {
	case estimate.MatchBoth:
		return assignment.Estimate{
			Minutes:    res.Minutes,
			Difficulty: res.Difficulty,
			Source:     assignment.EstimateSourceAI,
		}
	case estimate.MatchMinutesOnly:
		// One number reads as minutes; difficulty falls back to the default.
		return assignment.Estimate{
			Minutes:    res.Minutes,
			Difficulty: estimate.DefaultDifficulty,
			Source:     assignment.EstimateSourceAI,
		}
	default:
		uc.l.Warnf(ctx, "Estimate: no numbers in reply %q, using fallback", raw)
		return uc.fallbackEstimate(input)
	}
}

func (uc *implUseCase) fallbackEstimate(input assignment.EstimateInput) assignment.Estimate {
	text := strings.TrimSpace(input.Title + " " + input.Description)
	return assignment.Estimate{
		Minutes:    estimate.FallbackMinutes(text),
		Difficulty: estimate.DefaultDifficulty,
		Source:     assignment.EstimateSourceFallback,
	}
}
