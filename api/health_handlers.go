package api

import (
	"net/http"

	"github.com/DenverRacingSocial/orientation-go/cache"
	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"sheetsClient":  SheetsClient != nil,
		"guideSessions": cache.GetGlobalManager().SessionCount(),
	})
}
