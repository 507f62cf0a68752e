package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSnapshot returns the full composite snapshot.
func (a *API) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, a.monitor.Snapshot())
}

func (a *API) GetCPU(c *gin.Context) {
	c.JSON(http.StatusOK, a.monitor.CPU())
}

func (a *API) GetMemory(c *gin.Context) {
	c.JSON(http.StatusOK, a.monitor.Memory())
}

func (a *API) GetNetwork(c *gin.Context) {
	c.JSON(http.StatusOK, a.monitor.Network())
}

func (a *API) GetIO(c *gin.Context) {
	c.JSON(http.StatusOK, a.monitor.IO())
}
