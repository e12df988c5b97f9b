package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/assignment/usecase"
	"github.com/AnishD4/StudyTide/internal/model"
)

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("Empty Title Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "45,4"}, &mockAssignmentRepo{})

		_, err := uc.Create(context.Background(), sc, assignment.CreateInput{Title: "   "})
		if !errors.Is(err, assignment.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Estimate Embedded In Created Assignment", func(t *testing.T) {
		var gotOpts repository.CreateOptions
		repo := &mockAssignmentRepo{
			createFunc: func(opt repository.CreateOptions) (model.Assignment, error) {
				gotOpts = opt
				return model.Assignment{ID: "a1", Title: opt.Title, Difficulty: opt.Difficulty, EstimatedMinutes: opt.EstimatedMinutes}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "90,6"}, repo)

		out, err := uc.Create(context.Background(), sc, assignment.CreateInput{Title: "Short essay"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpts.EstimatedMinutes != 90 || gotOpts.Difficulty != 6 {
			t.Errorf("repo received (%d,%d), want (90,6)", gotOpts.EstimatedMinutes, gotOpts.Difficulty)
		}
		if out.Estimate.Source != assignment.EstimateSourceAI {
			t.Errorf("expected ai source, got %s", out.Estimate.Source)
		}
	})

	t.Run("Default Due Date Applied", func(t *testing.T) {
		var gotOpts repository.CreateOptions
		repo := &mockAssignmentRepo{
			createFunc: func(opt repository.CreateOptions) (model.Assignment, error) {
				gotOpts = opt
				return model.Assignment{ID: "a1"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "30,3"}, repo)

		_, err := uc.Create(context.Background(), sc, assignment.CreateInput{Title: "Quiz prep"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpts.DueDate == "" {
			t.Errorf("expected a default due date to be set")
		}
	})

	t.Run("Explicit Due Date Kept", func(t *testing.T) {
		var gotOpts repository.CreateOptions
		repo := &mockAssignmentRepo{
			createFunc: func(opt repository.CreateOptions) (model.Assignment, error) {
				gotOpts = opt
				return model.Assignment{ID: "a1"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "30,3"}, repo)

		_, err := uc.Create(context.Background(), sc, assignment.CreateInput{Title: "Quiz prep", DueDate: "2026-09-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpts.DueDate != "2026-09-15" {
			t.Errorf("due date = %q, want 2026-09-15", gotOpts.DueDate)
		}
	})

	t.Run("Generator Down Still Creates", func(t *testing.T) {
		repo := &mockAssignmentRepo{}
		uc := usecase.New(&mockLogger{}, &mockGemini{err: errors.New("timeout")}, repo)

		out, err := uc.Create(context.Background(), sc, assignment.CreateInput{Title: "Lab report"})
		if err != nil {
			t.Fatalf("creation must not fail when the generator is down: %v", err)
		}
		if out.Estimate.Source != assignment.EstimateSourceFallback {
			t.Errorf("expected fallback source, got %s", out.Estimate.Source)
		}
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		repo := &mockAssignmentRepo{
			createFunc: func(opt repository.CreateOptions) (model.Assignment, error) {
				return model.Assignment{}, errors.New("insert failed")
			},
		}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "45,4"}, repo)

		_, err := uc.Create(context.Background(), sc, assignment.CreateInput{Title: "Essay"})
		if err == nil {
			t.Errorf("expected store error to propagate")
		}
	})
}
