package usecase_test

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client: returns a fixed text or error.
type mockGemini struct {
	text string
	err  error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: m.text}}}},
		},
	}, nil
}

func (m *mockGemini) GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockGemini) Model() string {
	return "gemini-test"
}

// Mock assignment repository with overridable behavior per test.
type mockAssignmentRepo struct {
	createFunc       func(opt repository.CreateOptions) (model.Assignment, error)
	getFunc          func(id string) (model.Assignment, error)
	listFunc         func() ([]model.Assignment, error)
	setCompletedFunc func(id string, completed bool) (model.Assignment, error)
	deleteFunc       func(id string) error
}

func (m *mockAssignmentRepo) Create(ctx context.Context, sc model.Scope, opt repository.CreateOptions) (model.Assignment, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Assignment{
		ID:               "assignment-1",
		UserID:           sc.UserID,
		Title:            opt.Title,
		Description:      opt.Description,
		DueDate:          opt.DueDate,
		Difficulty:       opt.Difficulty,
		EstimatedMinutes: opt.EstimatedMinutes,
		ClassID:          opt.ClassID,
	}, nil
}

func (m *mockAssignmentRepo) Get(ctx context.Context, sc model.Scope, id string) (model.Assignment, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Assignment{ID: id, UserID: sc.UserID}, nil
}

func (m *mockAssignmentRepo) List(ctx context.Context, sc model.Scope) ([]model.Assignment, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []model.Assignment{}, nil
}

func (m *mockAssignmentRepo) SetCompleted(ctx context.Context, sc model.Scope, id string, completed bool) (model.Assignment, error) {
	if m.setCompletedFunc != nil {
		return m.setCompletedFunc(id, completed)
	}
	return model.Assignment{ID: id, UserID: sc.UserID, Completed: completed}, nil
}

func (m *mockAssignmentRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}
