package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Survey Microservices",
		"statusCode": "running",
		"version":    "1.0.0",
		"docs":       "/docs",
	})
}

func (h *HealthHandler) Check(c *gin.Context) {
	database := "connected"
	status := "healthy"
	if err := h.store.Ping(c.Request.Context()); err != nil {
		database = "disconnected"
		status = "unhealthy"
	}
	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":   status,
		"database": database,
	})
}
