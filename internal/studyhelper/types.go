package studyhelper

import "github.com/AnishD4/StudyTide/internal/model"

// TaskRef identifies the study context for a helper request. When
// AssignmentID is set the assignment row provides the context; otherwise
// the caller-supplied Title/Description do, falling back to a bare
// "General Study" label.
type TaskRef struct {
	AssignmentID string
	Title        string
	Description  string
}

// Action is one entry in the follow-up menu returned with a materials
// suggestion.
type Action struct {
	ID    string
	Label string
}

// SuggestInput asks for study material suggestions for a task.
type SuggestInput struct {
	Task TaskRef
}

// SuggestOutput carries the suggestion text and the fixed follow-up menu.
type SuggestOutput struct {
	Suggestion string
	Actions    []Action
}

// ChatInput is one user message in a task's conversation thread.
type ChatInput struct {
	Task    TaskRef
	Message string
}

// ChatOutput is the assistant's reply. Persisted is false when the reply
// was generated but the assistant turn could not be stored.
type ChatOutput struct {
	Reply     string
	Persisted bool
}

// FlashcardsInput asks for a flashcard batch for a task.
type FlashcardsInput struct {
	Task TaskRef
}

// FlashcardsOutput is a non-empty, persisted flashcard batch.
type FlashcardsOutput struct {
	Topic      string
	Flashcards []model.Flashcard
}

// GuideInput asks for a study guide document for a task.
type GuideInput struct {
	Task TaskRef
}

// GuideOutput is the persisted guide document.
type GuideOutput struct {
	Guide model.StudyGuide
}

// HistoryInput optionally narrows history to one thread; an empty
// AssignmentID returns the caller's turns across every thread.
type HistoryInput struct {
	AssignmentID string
}

// HistoryOutput is the matching turns, oldest first.
type HistoryOutput struct {
	Turns []model.ChatTurn
}

// ClearInput selects the thread to clear.
type ClearInput struct {
	AssignmentID string
}
