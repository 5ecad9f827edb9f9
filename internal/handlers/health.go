package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gitstandup/gitstandup/pkg/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck handles the health check endpoint
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"github_configured": h.cfg.GitHubConfigured(),
		"ai_configured":     h.cfg.GeminiConfigured(),
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}
