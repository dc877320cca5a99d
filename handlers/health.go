// File: handlers/health.go
package handlers

import (
	"net/http"

	"haulify/utils"

	"github.com/gin-gonic/gin"
)

// Health returns the latest dependency health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	// The monitor ticks every minute; before the first tick the snapshot is
	// empty and the service is presumed healthy.
	if !status.CheckedAt.IsZero() && !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    "ok",
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
