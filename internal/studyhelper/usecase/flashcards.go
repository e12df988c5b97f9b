package usecase

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
	"github.com/AnishD4/StudyTide/pkg/gemini"
)

const (
	flashcardCount        = 10
	flashcardsMaxTokens   = 2000
	flashcardsTemperature = 0.7
)

// GenerateFlashcards generates a card batch, extracts it, tags it with the
// task's topic, and persists it. Extraction failures surface to the caller;
// there is no fallback for structured artifacts.
func (uc *implUseCase) GenerateFlashcards(ctx context.Context, sc model.Scope, input studyhelper.FlashcardsInput) (studyhelper.FlashcardsOutput, error) {
	taskCtx, err := uc.buildTaskContext(ctx, sc, input.Task)
	if err != nil {
		return studyhelper.FlashcardsOutput{}, err
	}

	prompt := gemini.BuildFlashcardsPrompt(taskCtx.text, flashcardCount)
	reply, err := uc.llm.GenerateText(ctx, prompt, flashcardsMaxTokens, flashcardsTemperature)
	if err != nil {
		uc.l.Errorf(ctx, "studyhelper.GenerateFlashcards: generate: %v", err)
		return studyhelper.FlashcardsOutput{}, err
	}

	cards, err := extractFlashcards(reply)
	if err != nil {
		uc.l.Errorf(ctx, "studyhelper.GenerateFlashcards: extract: %v", err)
		return studyhelper.FlashcardsOutput{}, err
	}

	topic := taskCtx.topic()
	opts := make([]repository.CreateFlashcardOptions, len(cards))
	for i, card := range cards {
		opts[i] = repository.CreateFlashcardOptions{
			Topic: topic,
			Front: card.Front,
			Back:  card.Back,
		}
	}

	stored, err := uc.repo.CreateFlashcards(ctx, sc, opts)
	if err != nil {
		return studyhelper.FlashcardsOutput{}, err
	}

	uc.l.Infof(ctx, "studyhelper.GenerateFlashcards: user=%s topic=%q cards=%d", sc.UserID, topic, len(stored))

	return studyhelper.FlashcardsOutput{
		Topic:      topic,
		Flashcards: stored,
	}, nil
}
