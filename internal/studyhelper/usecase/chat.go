package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
	"github.com/AnishD4/StudyTide/pkg/gemini"
)

const (
	chatMaxTokens   = 1000
	chatTemperature = 0.7
)

// Chat runs one conversation round. The user turn is persisted before the
// generation call so a reply is never produced for a message that was not
// durably recorded. A generation failure after that point leaves an orphan
// user turn in the thread; that is accepted, not compensated.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input studyhelper.ChatInput) (studyhelper.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return studyhelper.ChatOutput{}, studyhelper.ErrEmptyMessage
	}

	taskCtx, err := uc.buildTaskContext(ctx, sc, input.Task)
	if err != nil {
		return studyhelper.ChatOutput{}, err
	}

	if _, err := uc.repo.CreateTurn(ctx, sc, repository.CreateTurnOptions{
		AssignmentID: input.Task.AssignmentID,
		Role:         model.TurnRoleUser,
		Content:      message,
	}); err != nil {
		return studyhelper.ChatOutput{}, fmt.Errorf("failed to persist user turn: %w", err)
	}

	history, err := uc.renderHistory(ctx, sc, input.Task.AssignmentID)
	if err != nil {
		return studyhelper.ChatOutput{}, err
	}

	prompt := gemini.BuildChatPrompt(taskCtx.text, history, message)
	reply, err := uc.llm.GenerateText(ctx, prompt, chatMaxTokens, chatTemperature)
	if err != nil {
		uc.l.Errorf(ctx, "studyhelper.Chat: generate: %v", err)
		return studyhelper.ChatOutput{}, err
	}

	if _, err := uc.repo.CreateTurn(ctx, sc, repository.CreateTurnOptions{
		AssignmentID: input.Task.AssignmentID,
		Role:         model.TurnRoleAssistant,
		Content:      reply,
	}); err != nil {
		uc.l.Errorf(ctx, "studyhelper.Chat: persist assistant turn: %v", err)
		// The reply exists; return it, but flag the thread gap.
		return studyhelper.ChatOutput{Reply: reply}, studyhelper.ErrReplyNotPersisted
	}

	return studyhelper.ChatOutput{Reply: reply, Persisted: true}, nil
}
