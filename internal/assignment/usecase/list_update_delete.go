package usecase

import (
	"context"
	"errors"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
)

// List returns the caller's assignments, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (assignment.ListOutput, error) {
	assignments, err := uc.repo.List(ctx, sc)
	if err != nil {
		return assignment.ListOutput{}, err
	}

	return assignment.ListOutput{
		Assignments: assignments,
		Count:       len(assignments),
	}, nil
}

// SetCompleted updates the completion flag on an assignment the caller owns.
func (uc *implUseCase) SetCompleted(ctx context.Context, sc model.Scope, input assignment.SetCompletedInput) (assignment.SetCompletedOutput, error) {
	updated, err := uc.repo.SetCompleted(ctx, sc, input.ID, input.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return assignment.SetCompletedOutput{}, assignment.ErrNotFound
		}
		return assignment.SetCompletedOutput{}, err
	}

	return assignment.SetCompletedOutput{Assignment: updated}, nil
}

// Delete removes an assignment the caller owns.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return assignment.ErrNotFound
		}
		return err
	}
	return nil
}
