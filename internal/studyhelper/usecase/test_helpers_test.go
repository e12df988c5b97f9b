package usecase_test

import (
	"context"

	assignmentRepo "github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
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

// Mock Gemini client: returns a fixed text or error and records the prompts
// it was asked to complete.
type mockGemini struct {
	text    string
	err     error
	prompts []string
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
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockGemini) Model() string {
	return "gemini-test"
}

// Mock study helper repository. Created turns accumulate in turns so tests
// can assert persistence order and content.
type mockHelperRepo struct {
	turns []repository.CreateTurnOptions

	createTurnErr   error
	failAssistant   bool
	recentTurnsFunc func(assignmentID string, limit int) ([]model.ChatTurn, error)
	listTurnsFunc   func(assignmentID string) ([]model.ChatTurn, error)
	deleteTurnsFunc func(assignmentID string) error
	createCardsFunc func(opts []repository.CreateFlashcardOptions) ([]model.Flashcard, error)
	createGuideFunc func(opt repository.CreateStudyGuideOptions) (model.StudyGuide, error)
}

func (m *mockHelperRepo) CreateTurn(ctx context.Context, sc model.Scope, opt repository.CreateTurnOptions) (model.ChatTurn, error) {
	if m.createTurnErr != nil {
		return model.ChatTurn{}, m.createTurnErr
	}
	if m.failAssistant && opt.Role == model.TurnRoleAssistant {
		return model.ChatTurn{}, context.DeadlineExceeded
	}
	m.turns = append(m.turns, opt)
	return model.ChatTurn{
		ID:           "turn-1",
		Seq:          int64(len(m.turns)),
		UserID:       sc.UserID,
		AssignmentID: opt.AssignmentID,
		Role:         opt.Role,
		Content:      opt.Content,
		Context:      opt.Context,
	}, nil
}

func (m *mockHelperRepo) RecentTurns(ctx context.Context, sc model.Scope, assignmentID string, limit int) ([]model.ChatTurn, error) {
	if m.recentTurnsFunc != nil {
		return m.recentTurnsFunc(assignmentID, limit)
	}
	return []model.ChatTurn{}, nil
}

func (m *mockHelperRepo) ListTurns(ctx context.Context, sc model.Scope, assignmentID string) ([]model.ChatTurn, error) {
	if m.listTurnsFunc != nil {
		return m.listTurnsFunc(assignmentID)
	}
	return []model.ChatTurn{}, nil
}

func (m *mockHelperRepo) DeleteTurns(ctx context.Context, sc model.Scope, assignmentID string) error {
	if m.deleteTurnsFunc != nil {
		return m.deleteTurnsFunc(assignmentID)
	}
	return nil
}

func (m *mockHelperRepo) CreateFlashcards(ctx context.Context, sc model.Scope, opts []repository.CreateFlashcardOptions) ([]model.Flashcard, error) {
	if m.createCardsFunc != nil {
		return m.createCardsFunc(opts)
	}
	cards := make([]model.Flashcard, len(opts))
	for i, opt := range opts {
		cards[i] = model.Flashcard{
			ID:     "card-1",
			UserID: sc.UserID,
			Topic:  opt.Topic,
			Front:  opt.Front,
			Back:   opt.Back,
		}
	}
	return cards, nil
}

func (m *mockHelperRepo) CreateStudyGuide(ctx context.Context, sc model.Scope, opt repository.CreateStudyGuideOptions) (model.StudyGuide, error) {
	if m.createGuideFunc != nil {
		return m.createGuideFunc(opt)
	}
	return model.StudyGuide{
		ID:      "guide-1",
		UserID:  sc.UserID,
		Topic:   opt.Topic,
		Content: opt.Content,
	}, nil
}

// Mock assignment repository; only Get matters for context building.
type mockAssignmentRepo struct {
	getFunc func(id string) (model.Assignment, error)
}

func (m *mockAssignmentRepo) Create(ctx context.Context, sc model.Scope, opt assignmentRepo.CreateOptions) (model.Assignment, error) {
	return model.Assignment{}, nil
}

func (m *mockAssignmentRepo) Get(ctx context.Context, sc model.Scope, id string) (model.Assignment, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Assignment{ID: id, UserID: sc.UserID, Title: "Biology Exam", Difficulty: 6, DueDate: "2026-09-10"}, nil
}

func (m *mockAssignmentRepo) List(ctx context.Context, sc model.Scope) ([]model.Assignment, error) {
	return []model.Assignment{}, nil
}

func (m *mockAssignmentRepo) SetCompleted(ctx context.Context, sc model.Scope, id string, completed bool) (model.Assignment, error) {
	return model.Assignment{}, nil
}

func (m *mockAssignmentRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}
