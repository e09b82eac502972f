package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/model"
	"github.com/earthly-ai/backend/internal/service"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          zerolog.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, logger: logger}
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req model.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid analysis request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, h.analysisService.Analyze(req))
}
