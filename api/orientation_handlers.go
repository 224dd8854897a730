package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrientationDataHandler handles GET /api/sheets/orientation-data
func OrientationDataHandler(c *gin.Context) {
	items, err := loadOrientationItems(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, errNoData):
			c.JSON(http.StatusNotFound, gin.H{"error": "No data found in spreadsheet"})
		case errors.Is(err, errBadShape):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data structure in spreadsheet"})
		default:
			log.Printf("ERROR: orientation data fetch failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from Google Sheets"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}
