package repository

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
)

// Repository is the interface for assignment data access operations.
// Every operation is scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opt CreateOptions) (model.Assignment, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Assignment, error)
	List(ctx context.Context, sc model.Scope) ([]model.Assignment, error)
	SetCompleted(ctx context.Context, sc model.Scope, id string, completed bool) (model.Assignment, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
