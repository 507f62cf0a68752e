package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxControlBytes caps how much of the control body is read; tokens are
// matched on their leading characters only.
const maxControlBytes = 32

// PostControl applies a control token from the raw request body. Any
// input beginning with "enable" or "disable" flips the monitoring state;
// anything else is silently ignored. The response always reports the
// resulting state, never an error.
func (a *API) PostControl(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxControlBytes))
	if err == nil {
		a.monitor.Control(string(body))
	}
	c.JSON(http.StatusOK, gin.H{"monitoring": a.monitor.Enabled()})
}
