package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
)

// CreateFlashcards stores a batch atomically. A failed insert rolls the
// whole batch back so a partial set never reaches the caller's deck.
func (r *implRepository) CreateFlashcards(ctx context.Context, sc model.Scope, opts []repository.CreateFlashcardOptions) ([]model.Flashcard, error) {
	if len(opts) == 0 {
		return []model.Flashcard{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin flashcard batch: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO flashcards (id, user_id, topic, front, back)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	cards := make([]model.Flashcard, 0, len(opts))
	for _, opt := range opts {
		card := model.Flashcard{
			ID:     uuid.NewString(),
			UserID: sc.UserID,
			Topic:  opt.Topic,
			Front:  opt.Front,
			Back:   opt.Back,
		}
		err := tx.QueryRow(ctx, query, card.ID, sc.UserID, opt.Topic, opt.Front, opt.Back).Scan(&card.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert flashcard: %w", err)
		}
		cards = append(cards, card)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit flashcard batch: %w", err)
	}

	return cards, nil
}
