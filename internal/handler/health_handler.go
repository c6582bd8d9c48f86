package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	sessions *Sessions
}

func NewHealthHandler(sessions *Sessions) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	if err := h.sessions.Ping(c.Request.Context()); err != nil {
		slog.Error("session store unreachable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"sessions": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
