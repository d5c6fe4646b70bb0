package testutils

import (
	"github.com/eventware/survey-go/internal/api/handlers"
	"github.com/eventware/survey-go/internal/api/routes"
	"github.com/gin-gonic/gin"
)

// SetupRouter mounts the route table for a prebuilt handler set in test mode.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Register(r, h)
	return r
}
