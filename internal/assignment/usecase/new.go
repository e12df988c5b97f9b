package usecase

import (
	"github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/pkg/gemini"
	pkgLog "github.com/AnishD4/StudyTide/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  gemini.IGemini
	repo repository.Repository
}

// New creates a new assignment UseCase instance.
func New(l pkgLog.Logger, llm gemini.IGemini, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
	}
}
