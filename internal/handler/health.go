package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/earthly-ai/backend/internal/model"
)

const (
	serviceName    = "Earthly AI"
	serviceVersion = "1.0.0"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Earthly AI Backend",
		"version": serviceVersion,
		"health":  "/health",
		"status":  "running",
	})
}
