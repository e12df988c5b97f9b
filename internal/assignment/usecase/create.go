package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
)

// defaultDueDateDays pads new assignments without an explicit due date.
const defaultDueDateDays = 2

// Create stores a new assignment for the caller. The effort estimate runs
// synchronously before the insert; estimation never blocks creation since it
// always resolves to some bounded value.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input assignment.CreateInput) (assignment.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return assignment.CreateOutput{}, assignment.ErrEmptyTitle
	}

	dueDate := input.DueDate
	if dueDate == "" {
		dueDate = time.Now().AddDate(0, 0, defaultDueDateDays).Format("2006-01-02")
	}

	est := uc.Estimate(ctx, assignment.EstimateInput{
		Title:       input.Title,
		Description: input.Description,
	})

	uc.l.Infof(ctx, "Create: user=%s title=%q minutes=%d difficulty=%d source=%s",
		sc.UserID, input.Title, est.Minutes, est.Difficulty, est.Source)

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Title:            input.Title,
		Description:      input.Description,
		DueDate:          dueDate,
		Difficulty:       est.Difficulty,
		EstimatedMinutes: est.Minutes,
		ClassID:          input.ClassID,
	})
	if err != nil {
		return assignment.CreateOutput{}, err
	}

	return assignment.CreateOutput{
		Assignment: created,
		Estimate:   est,
	}, nil
}
