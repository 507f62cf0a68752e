package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProcesses returns the bounded process table in enumeration order.
func (a *API) GetProcesses(c *gin.Context) {
	entries := a.monitor.Processes()
	c.JSON(http.StatusOK, gin.H{
		"processes": entries,
		"count":     len(entries),
	})
}

// GetProcessStatus returns the live process count, read fresh.
func (a *API) GetProcessStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_processes": a.monitor.ProcessCount(),
	})
}
