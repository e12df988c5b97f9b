package usecase

import (
	"context"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
	"github.com/AnishD4/StudyTide/pkg/gemini"
)

const (
	guideMaxTokens   = 3000
	guideTemperature = 0.7
)

// GenerateStudyGuide generates and persists a guide document. The reply is
// stored as-is; no extraction step runs on guides.
func (uc *implUseCase) GenerateStudyGuide(ctx context.Context, sc model.Scope, input studyhelper.GuideInput) (studyhelper.GuideOutput, error) {
	taskCtx, err := uc.buildTaskContext(ctx, sc, input.Task)
	if err != nil {
		return studyhelper.GuideOutput{}, err
	}

	prompt := gemini.BuildStudyGuidePrompt(taskCtx.text)
	content, err := uc.llm.GenerateText(ctx, prompt, guideMaxTokens, guideTemperature)
	if err != nil {
		uc.l.Errorf(ctx, "studyhelper.GenerateStudyGuide: generate: %v", err)
		return studyhelper.GuideOutput{}, err
	}

	guide, err := uc.repo.CreateStudyGuide(ctx, sc, repository.CreateStudyGuideOptions{
		Topic:   taskCtx.topic(),
		Content: content,
	})
	if err != nil {
		return studyhelper.GuideOutput{}, err
	}

	return studyhelper.GuideOutput{Guide: guide}, nil
}
