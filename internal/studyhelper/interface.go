package studyhelper

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
)

// UseCase defines the business logic interface for the study helper domain.
// Generation failures are surfaced to the caller here, unlike the estimator,
// because there is no deterministic fallback for conversational output.
type UseCase interface {
	// SuggestMaterials generates a study material suggestion and persists
	// it as one assistant turn, with the action menu attached as context.
	SuggestMaterials(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// Chat runs one conversation round: persist the user turn, build the
	// windowed context, generate a reply, persist the assistant turn.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// GenerateFlashcards generates, extracts, and persists a flashcard
	// batch for the task.
	GenerateFlashcards(ctx context.Context, sc model.Scope, input FlashcardsInput) (FlashcardsOutput, error)

	// GenerateStudyGuide generates and persists a guide document. The
	// reply is stored opaque; no extraction runs.
	GenerateStudyGuide(ctx context.Context, sc model.Scope, input GuideInput) (GuideOutput, error)

	// History returns the thread's turns, oldest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// ClearHistory deletes every turn in the thread.
	ClearHistory(ctx context.Context, sc model.Scope, input ClearInput) error
}
