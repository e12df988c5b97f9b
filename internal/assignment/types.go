package assignment

import "github.com/AnishD4/StudyTide/internal/model"

// EstimateSource says which path produced an estimate, so callers and tests
// can assert the branch instead of inferring it from logs.
type EstimateSource string

const (
	// EstimateSourceAI means the numbers came from the generation service.
	EstimateSourceAI EstimateSource = "ai"
	// EstimateSourceFallback means the deterministic sizing formula was used.
	EstimateSourceFallback EstimateSource = "fallback"
)

// Estimate is a bounded effort estimate. Minutes is in [5,1440], Difficulty
// in [1,10]; both are clamped before an Estimate is ever built.
type Estimate struct {
	Minutes    int
	Difficulty int
	Source     EstimateSource
}

// EstimateInput is the task text the estimator sizes.
type EstimateInput struct {
	Title       string
	Description string
}

// CreateInput is the input for assignment creation.
// UserID is carried in model.Scope, not here.
type CreateInput struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD; empty means two days from now
	ClassID     string
}

// CreateOutput is the result of creating an assignment, including which
// estimation path ran.
type CreateOutput struct {
	Assignment model.Assignment
	Estimate   Estimate
}

// ListOutput is the caller's assignments, newest first.
type ListOutput struct {
	Assignments []model.Assignment
	Count       int
}

// SetCompletedInput toggles the completion flag on an assignment.
type SetCompletedInput struct {
	ID        string
	Completed bool
}

// SetCompletedOutput returns the updated assignment.
type SetCompletedOutput struct {
	Assignment model.Assignment
}
