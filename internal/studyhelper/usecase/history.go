package usecase

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
)

// History returns turns oldest first. An empty AssignmentID returns the
// caller's full history across every thread.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input studyhelper.HistoryInput) (studyhelper.HistoryOutput, error) {
	turns, err := uc.repo.ListTurns(ctx, sc, input.AssignmentID)
	if err != nil {
		return studyhelper.HistoryOutput{}, err
	}
	return studyhelper.HistoryOutput{Turns: turns}, nil
}

// ClearHistory deletes every turn in the thread.
func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope, input studyhelper.ClearInput) error {
	return uc.repo.DeleteTurns(ctx, sc, input.AssignmentID)
}
