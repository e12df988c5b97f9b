package usecase

import (
	assignmentRepo "github.com/AnishD4/StudyTide/internal/assignment/repository"
	"github.com/AnishD4/StudyTide/internal/studyhelper/repository"
	"github.com/AnishD4/StudyTide/pkg/gemini"
	"github.com/AnishD4/StudyTide/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	llm     gemini.IGemini
	repo    repository.Repository
	assRepo assignmentRepo.Repository
}

// New creates the study helper use case. The assignment repository supplies
// the task context for assignment-scoped threads.
func New(l log.Logger, llm gemini.IGemini, repo repository.Repository, assRepo assignmentRepo.Repository) *implUseCase {
	return &implUseCase{
		l:       l,
		llm:     llm,
		repo:    repo,
		assRepo: assRepo,
	}
}
