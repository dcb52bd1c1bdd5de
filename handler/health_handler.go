package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	respondOKWith(c, gin.H{"timestamp": time.Now().UTC().Format(time.RFC3339)}, "HEALTHY", "server is live")
}
