package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/model"
	"github.com/earthly-ai/backend/internal/service"
)

type BuildHandler struct {
	buildService *service.BuildService
	logger       zerolog.Logger
}

func NewBuildHandler(buildService *service.BuildService, logger zerolog.Logger) *BuildHandler {
	return &BuildHandler{buildService: buildService, logger: logger}
}

func (h *BuildHandler) Create(c *gin.Context) {
	var req model.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid build request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, h.buildService.Create(req))
}

func (h *BuildHandler) Status(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.buildService.Status(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Build %s not found", id)})
			return
		}
		h.logger.Error().Err(err).Str("build_id", id).Msg("build status lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "build status lookup failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
