// Package api provides HTTP handlers for analytics endpoints.
package api

import (
	"log"
	"net/http"

	"github.com/DenverRacingSocial/orientation-go/analytics"
	"github.com/DenverRacingSocial/orientation-go/config"
	"github.com/DenverRacingSocial/orientation-go/models"
	"github.com/DenverRacingSocial/orientation-go/sheets"
	"github.com/gin-gonic/gin"
)

// TrackHandler handles POST /api/analytics/track
func TrackHandler(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := trackEvent(c.Request.Context(), req.Action, req.Data, req.Timestamp, req.UserType); err != nil {
		log.Printf("ERROR: analytics tracking failed for %s: %v", req.Action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DashboardHandler handles GET /api/analytics/dashboard
func DashboardHandler(c *gin.Context) {
	if SheetsClient == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sheets client is not configured"})
		return
	}

	ctx := c.Request.Context()
	token, err := SheetsClient.AccessToken(ctx, sheets.ScopeReadonly)
	if err != nil {
		log.Printf("ERROR: analytics dashboard token exchange failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
		return
	}

	rows, err := SheetsClient.Values(ctx, token, config.AnalyticsSpreadsheetID, config.AnalyticsSheetName+"!A:G")
	if err != nil {
		log.Printf("ERROR: analytics log read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
		return
	}

	stringRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		stringRows = append(stringRows, stringCells(row))
	}

	events := analytics.ParseEventRows(stringRows)
	c.JSON(http.StatusOK, analytics.ComputeDashboard(events))
}
