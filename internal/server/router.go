// Package server assembles the HTTP surface of the backend.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/handler"
	"github.com/earthly-ai/backend/internal/model"
	"github.com/earthly-ai/backend/internal/service"
	"github.com/earthly-ai/backend/internal/store"
)

// NewRouter wires middleware, services, and routes. Stores are injected
// so a real backing store can replace the in-memory ones without
// touching handler logic.
func NewRouter(logger zerolog.Logger, builds store.Store[model.BuildRecord], analyses store.Store[model.AnalysisRecord]) *gin.Engine {
	buildHandler := handler.NewBuildHandler(service.NewBuildService(builds, logger), logger)
	analysisHandler := handler.NewAnalysisHandler(service.NewAnalysisService(analyses, logger), logger)
	uploadHandler := handler.NewUploadHandler(logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)
	router.POST("/build", buildHandler.Create)
	router.GET("/build/:id", buildHandler.Status)
	router.POST("/analyze", analysisHandler.Analyze)
	router.POST("/upload-build", uploadHandler.Upload)

	return router
}
