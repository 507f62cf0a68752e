package routes

import (
	"sysmond/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterMonitorRoutes wires the publish and control boundaries.
func RegisterMonitorRoutes(r *gin.Engine, api *controllers.API) {
	r.GET("/report", api.GetReport)
	r.POST("/control", api.PostControl)
	r.GET("/history", api.GetHistory)

	metrics := r.Group("/metrics")
	{
		metrics.GET("/", api.GetSnapshot)
		metrics.GET("/cpu", api.GetCPU)
		metrics.GET("/memory", api.GetMemory)
		metrics.GET("/network", api.GetNetwork)
		metrics.GET("/io", api.GetIO)
	}
}
