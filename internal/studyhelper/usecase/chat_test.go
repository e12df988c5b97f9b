package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	assignmentRepo "github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/internal/studyhelper/usecase"
)

func TestChat(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("Empty Message Rejected", func(t *testing.T) {
		llm := &mockGemini{text: "hello"}
		uc := usecase.New(&mockLogger{}, llm, &mockHelperRepo{}, &mockAssignmentRepo{})

		_, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{Message: "  "})
		if !errors.Is(err, studyhelper.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
		if len(llm.prompts) != 0 {
			t.Errorf("generator must not be called for an empty message")
		}
	})

	t.Run("Round Persists Two Turns In Order", func(t *testing.T) {
		repo := &mockHelperRepo{}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "Sure, start with chapter 3."}, repo, &mockAssignmentRepo{})

		out, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{
			Task:    studyhelper.TaskRef{AssignmentID: "a1"},
			Message: "Where should I start?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Persisted {
			t.Errorf("expected a fully persisted round")
		}
		if out.Reply != "Sure, start with chapter 3." {
			t.Errorf("reply = %q", out.Reply)
		}
		if len(repo.turns) != 2 {
			t.Fatalf("persisted %d turns, want 2", len(repo.turns))
		}
		if repo.turns[0].Role != model.TurnRoleUser || repo.turns[1].Role != model.TurnRoleAssistant {
			t.Errorf("turn order = (%s,%s), want (user,assistant)", repo.turns[0].Role, repo.turns[1].Role)
		}
	})

	t.Run("User Turn Persist Failure Aborts Generation", func(t *testing.T) {
		llm := &mockGemini{text: "never used"}
		repo := &mockHelperRepo{createTurnErr: errors.New("insert failed")}
		uc := usecase.New(&mockLogger{}, llm, repo, &mockAssignmentRepo{})

		_, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{Message: "hi"})
		if err == nil {
			t.Fatalf("expected persist error")
		}
		if len(llm.prompts) != 0 {
			t.Errorf("generator must not run when the user turn was not recorded")
		}
	})

	t.Run("Generation Failure Leaves Orphan User Turn", func(t *testing.T) {
		repo := &mockHelperRepo{}
		uc := usecase.New(&mockLogger{}, &mockGemini{err: errors.New("upstream down")}, repo, &mockAssignmentRepo{})

		_, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{Message: "hi"})
		if err == nil {
			t.Fatalf("expected generation error to surface")
		}
		if len(repo.turns) != 1 || repo.turns[0].Role != model.TurnRoleUser {
			t.Errorf("the already persisted user turn must remain, got %d turns", len(repo.turns))
		}
	})

	t.Run("Assistant Persist Failure Still Returns Reply", func(t *testing.T) {
		repo := &mockHelperRepo{failAssistant: true}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "the reply"}, repo, &mockAssignmentRepo{})

		out, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{Message: "hi"})
		if !errors.Is(err, studyhelper.ErrReplyNotPersisted) {
			t.Fatalf("expected ErrReplyNotPersisted, got %v", err)
		}
		if out.Reply != "the reply" {
			t.Errorf("reply must still be returned, got %q", out.Reply)
		}
		if out.Persisted {
			t.Errorf("output must not read as a full success")
		}
	})

	t.Run("Window Renders Ten Most Recent Oldest First", func(t *testing.T) {
		// Store hands back 10 of 15 turns, newest first.
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		recent := func(assignmentID string, limit int) ([]model.ChatTurn, error) {
			if limit != 10 {
				t.Errorf("window limit = %d, want 10", limit)
			}
			turns := make([]model.ChatTurn, 0, limit)
			for i := 15; i > 15-limit; i-- {
				turns = append(turns, model.ChatTurn{
					Seq:       int64(i),
					Role:      model.TurnRoleUser,
					Content:   fmt.Sprintf("message %d", i),
					CreatedAt: base.Add(time.Duration(i) * time.Minute),
				})
			}
			return turns, nil
		}
		llm := &mockGemini{text: "ok"}
		uc := usecase.New(&mockLogger{}, llm, &mockHelperRepo{recentTurnsFunc: recent}, &mockAssignmentRepo{})

		if _, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{Message: "next"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(llm.prompts) != 1 {
			t.Fatalf("expected one generation call, got %d", len(llm.prompts))
		}

		prompt := llm.prompts[0]
		if strings.Contains(prompt, "message 5\n") {
			t.Errorf("turn outside the window leaked into the prompt")
		}
		first := strings.Index(prompt, "message 6")
		last := strings.Index(prompt, "message 15")
		if first == -1 || last == -1 {
			t.Fatalf("window edges missing from prompt")
		}
		if first > last {
			t.Errorf("history must render oldest first")
		}
	})

	t.Run("Assignment Context Always Present", func(t *testing.T) {
		// Empty history: the task identity must still be rendered.
		llm := &mockGemini{text: "ok"}
		uc := usecase.New(&mockLogger{}, llm, &mockHelperRepo{}, &mockAssignmentRepo{})

		if _, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{
			Task:    studyhelper.TaskRef{AssignmentID: "a1"},
			Message: "hello",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(llm.prompts[0], "Biology Exam") {
			t.Errorf("assignment identity missing from prompt")
		}
	})

	t.Run("Unknown Assignment", func(t *testing.T) {
		repo := &mockAssignmentRepo{getFunc: func(id string) (model.Assignment, error) {
			return model.Assignment{}, assignmentRepo.ErrNotFound
		}}
		uc := usecase.New(&mockLogger{}, &mockGemini{text: "ok"}, &mockHelperRepo{}, repo)

		_, err := uc.Chat(context.Background(), sc, studyhelper.ChatInput{
			Task:    studyhelper.TaskRef{AssignmentID: "missing"},
			Message: "hello",
		})
		if !errors.Is(err, studyhelper.ErrAssignmentNotFound) {
			t.Errorf("expected ErrAssignmentNotFound, got %v", err)
		}
	})
}
