package http

import (
	"studypal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every stats route requires an authenticated user and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/overview", mw.Auth(), mw.RateLimit(), h.Overview)
}
