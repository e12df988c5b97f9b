package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assignmentHTTP "github.com/AnishD4/StudyTide/internal/assignment/delivery/http"
	assignmentPG "github.com/AnishD4/StudyTide/internal/assignment/repository/postgres"
	assignmentUC "github.com/AnishD4/StudyTide/internal/assignment/usecase"
	"github.com/AnishD4/StudyTide/internal/middleware"
	studyhelperHTTP "github.com/AnishD4/StudyTide/internal/studyhelper/delivery/http"
	studyhelperPG "github.com/AnishD4/StudyTide/internal/studyhelper/repository/postgres"
	studyhelperUC "github.com/AnishD4/StudyTide/internal/studyhelper/usecase"
)

// setupAssignmentDomain wires the estimator-backed assignment CRUD.
func (srv HTTPServer) setupAssignmentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := assignmentPG.New(srv.postgresDB, srv.l)
	uc := assignmentUC.New(srv.l, srv.llm, repo)
	h := assignmentHTTP.New(srv.l, uc)

	assignmentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assignment domain registered")
	return nil
}

// setupStudyHelperDomain wires the conversational helper. It reuses the
// assignment repository for task context lookups.
func (srv HTTPServer) setupStudyHelperDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := studyhelperPG.New(srv.postgresDB, srv.l)
	assRepo := assignmentPG.New(srv.postgresDB, srv.l)
	uc := studyhelperUC.New(srv.l, srv.llm, repo, assRepo)
	h := studyhelperHTTP.New(srv.l, uc)

	studyhelperHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Study helper domain registered")
	return nil
}
