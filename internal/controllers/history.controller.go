package controllers

import (
	"net/http"

	"sysmond/internal/models"

	"github.com/gin-gonic/gin"
)

// GetHistory returns the ring contents newest-first, tagged with age
// indexes (age 0 = most recent sample).
func (a *API) GetHistory(c *gin.Context) {
	samples := a.monitor.History()

	aged := make([]models.AgedSample, len(samples))
	for i, s := range samples {
		aged[i] = models.AgedSample{Age: i, HistorySample: s}
	}

	c.JSON(http.StatusOK, gin.H{
		"size":    len(aged),
		"samples": aged,
	})
}
