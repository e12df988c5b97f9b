package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	assignmentRepo "github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
)

// historyWindow bounds how many stored turns a prompt carries.
const historyWindow = 10

// generalStudyLabel names the context when no assignment and no caller text
// is available.
const generalStudyLabel = "General Study"

// defaultTopicLabel tags artifacts whose task has no title at all.
const defaultTopicLabel = "Study Material"

// taskContext is the rendered identity block for a prompt plus the title
// used to tag generated artifacts.
type taskContext struct {
	text  string
	title string
}

func (tc taskContext) topic() string {
	if strings.TrimSpace(tc.title) != "" {
		return tc.title
	}
	return defaultTopicLabel
}

// buildTaskContext renders the task identity block for a prompt. The block
// is never empty: even a bare thread gets the general study label.
func (uc *implUseCase) buildTaskContext(ctx context.Context, sc model.Scope, task studyhelper.TaskRef) (taskContext, error) {
	if task.AssignmentID != "" {
		a, err := uc.assRepo.Get(ctx, sc, task.AssignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrNotFound) {
				return taskContext{}, studyhelper.ErrAssignmentNotFound
			}
			return taskContext{}, err
		}
		return taskContext{text: renderAssignmentContext(a), title: a.Title}, nil
	}

	if strings.TrimSpace(task.Title) != "" {
		var b strings.Builder
		fmt.Fprintf(&b, "Assignment: %s", task.Title)
		if strings.TrimSpace(task.Description) != "" {
			fmt.Fprintf(&b, "\nDescription: %s", task.Description)
		}
		return taskContext{text: b.String(), title: task.Title}, nil
	}

	return taskContext{text: generalStudyLabel}, nil
}

func renderAssignmentContext(a model.Assignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assignment: %s", a.Title)
	if a.ClassName != "" {
		fmt.Fprintf(&b, "\nClass: %s", a.ClassName)
	}
	if a.DueDate != "" {
		fmt.Fprintf(&b, "\nDue: %s", a.DueDate)
	}
	fmt.Fprintf(&b, "\nDifficulty: %d/10", a.Difficulty)
	if a.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", a.Description)
	}
	return b.String()
}

// renderHistory loads the thread's recent window and renders it oldest
// first, one "<label>: <content>" line per turn. The store returns newest
// first, so the window is reversed before rendering.
func (uc *implUseCase) renderHistory(ctx context.Context, sc model.Scope, assignmentID string) (string, error) {
	turns, err := uc.repo.RecentTurns(ctx, sc, assignmentID, historyWindow)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		lines = append(lines, fmt.Sprintf("%s: %s", roleLabel(turns[i].Role), turns[i].Content))
	}
	return strings.Join(lines, "\n"), nil
}

func roleLabel(role model.TurnRole) string {
	if role == model.TurnRoleAssistant {
		return "AI"
	}
	return "Student"
}
