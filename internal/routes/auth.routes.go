package routes

import (
	"sysmond/internal/controllers"
	"sysmond/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes wires token issuance and the websocket boundary.
// Token issuance carries its own, stricter rate limit.
func RegisterAuthRoutes(r *gin.Engine, api *controllers.API) {
	r.GET("/auth/token", middleware.TokenRateLimitMiddleware(middleware.NewTokenRateLimiter()), api.HandleGetToken)
	r.GET("/ws", api.HandleWebSocket)
}
