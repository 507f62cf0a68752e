package routes

import (
	"sysmond/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProcessRoutes(r *gin.Engine, api *controllers.API) {
	processes := r.Group("/processes")
	{
		processes.GET("/", api.GetProcesses)
		processes.GET("/status", api.GetProcessStatus)
	}
}
