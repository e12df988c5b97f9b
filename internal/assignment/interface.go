package assignment

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
)

// UseCase defines the business logic interface for the assignment domain.
type UseCase interface {
	// Estimate sizes a task from its text. It never fails: configuration,
	// transport, and parse problems all degrade to the deterministic
	// fallback, tagged via Estimate.Source.
	Estimate(ctx context.Context, input EstimateInput) Estimate

	// Create stores a new assignment, running the estimator synchronously.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the caller's assignments, newest first.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// SetCompleted updates the completion flag.
	SetCompleted(ctx context.Context, sc model.Scope, input SetCompletedInput) (SetCompletedOutput, error)

	// Delete removes an assignment.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
