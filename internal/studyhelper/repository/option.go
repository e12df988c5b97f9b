package repository

import "github.com/AnishD4/StudyTide/internal/model"

// CreateTurnOptions holds the parameters for appending a chat turn.
// Context is an optional JSON note carried on assistant turns.
type CreateTurnOptions struct {
	AssignmentID string
	Role         model.TurnRole
	Content      string
	Context      string
}

// CreateFlashcardOptions holds one card of a batch insert.
type CreateFlashcardOptions struct {
	Topic string
	Front string
	Back  string
}

// CreateStudyGuideOptions holds the parameters for storing a guide.
type CreateStudyGuideOptions struct {
	Topic   string
	Content string
}
