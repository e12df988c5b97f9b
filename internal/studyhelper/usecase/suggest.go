package usecase

import (
	"context"
	"encoding/json"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
	"github.com/AnishD4/StudyTide/pkg/gemini"
)

const (
	suggestMaxTokens   = 800
	suggestTemperature = 0.7
)

// actionMenu is the fixed follow-up menu attached to every suggestion.
var actionMenu = []studyhelper.Action{
	{ID: "generate-flashcards", Label: "Create Flashcards"},
	{ID: "generate-study-guide", Label: "Create Study Guide"},
	{ID: "practice-test", Label: "Create Practice Test"},
}

// SuggestMaterials generates a material suggestion and records it as one
// assistant turn, with the action menu serialized into the turn's context
// note so the thread can re-render the menu later.
func (uc *implUseCase) SuggestMaterials(ctx context.Context, sc model.Scope, input studyhelper.SuggestInput) (studyhelper.SuggestOutput, error) {
	taskCtx, err := uc.buildTaskContext(ctx, sc, input.Task)
	if err != nil {
		return studyhelper.SuggestOutput{}, err
	}

	prompt := gemini.BuildSuggestMaterialsPrompt(taskCtx.text)
	suggestion, err := uc.llm.GenerateText(ctx, prompt, suggestMaxTokens, suggestTemperature)
	if err != nil {
		uc.l.Errorf(ctx, "studyhelper.SuggestMaterials: generate: %v", err)
		return studyhelper.SuggestOutput{}, err
	}

	contextNote, err := json.Marshal(map[string]any{"actions": actionIDs()})
	if err != nil {
		return studyhelper.SuggestOutput{}, err
	}

	if _, err := uc.repo.CreateTurn(ctx, sc, repository.CreateTurnOptions{
		AssignmentID: input.Task.AssignmentID,
		Role:         model.TurnRoleAssistant,
		Content:      suggestion,
		Context:      string(contextNote),
	}); err != nil {
		uc.l.Errorf(ctx, "studyhelper.SuggestMaterials: persist turn: %v", err)
		return studyhelper.SuggestOutput{Suggestion: suggestion, Actions: actionMenu}, studyhelper.ErrReplyNotPersisted
	}

	return studyhelper.SuggestOutput{Suggestion: suggestion, Actions: actionMenu}, nil
}

func actionIDs() []string {
	ids := make([]string, len(actionMenu))
	for i, a := range actionMenu {
		ids[i] = a.ID
	}
	return ids
}
