package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness. No per-request state exists, so there
// is nothing else to check beyond the process being up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "face-detection"})
}
