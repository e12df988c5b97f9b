package repository

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
)

// Repository is the interface for study helper data access. Every operation
// is scoped to the owning user; a thread is (user, assignment id), with the
// empty assignment id naming the general study thread.
type Repository interface {
	// CreateTurn appends one turn to a thread.
	CreateTurn(ctx context.Context, sc model.Scope, opt CreateTurnOptions) (model.ChatTurn, error)

	// RecentTurns returns up to limit turns, newest first.
	RecentTurns(ctx context.Context, sc model.Scope, assignmentID string, limit int) ([]model.ChatTurn, error)

	// ListTurns returns turns oldest first. An empty assignmentID returns
	// every turn the user owns, across all threads.
	ListTurns(ctx context.Context, sc model.Scope, assignmentID string) ([]model.ChatTurn, error)

	// DeleteTurns removes every turn in the thread.
	DeleteTurns(ctx context.Context, sc model.Scope, assignmentID string) error

	// CreateFlashcards stores a batch in one transaction.
	CreateFlashcards(ctx context.Context, sc model.Scope, opts []CreateFlashcardOptions) ([]model.Flashcard, error)

	// CreateStudyGuide stores one guide document.
	CreateStudyGuide(ctx context.Context, sc model.Scope, opt CreateStudyGuideOptions) (model.StudyGuide, error)
}
