package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AnishD4/StudyTide/internal/middleware"
	"github.com/AnishD4/StudyTide/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	corsCfg := cors.DefaultConfig()
	if len(srv.cors.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = srv.cors.AllowedOrigins
		srv.l.Infof(ctx, "CORS origins: %v", srv.cors.AllowedOrigins)
	} else {
		corsCfg.AllowAllOrigins = true
		if srv.environment == string(model.EnvironmentProduction) {
			srv.l.Warn(ctx, "CORS: no origins configured in production, allowing all")
		} else {
			srv.l.Infof(ctx, "CORS: no origins configured, allowing all (%s)", srv.environment)
		}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	srv.gin.Use(cors.New(corsCfg))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.auth, srv.rateLimit)

	if err := srv.setupAssignmentDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupStudyHelperDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
