package handlers

import (
	"net/http"

	"helpnest/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health with the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}
