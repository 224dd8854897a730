// Package config provides centralized default values for the orientation guide service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile loads environment variables from .env file. Package-level vars
// initialize before init runs, so every getter triggers the load itself.
func loadEnvFile() {
	// .env file is optional, don't error if it doesn't exist
	envLoaded.Do(func() { godotenv.Load() })
}

func init() {
	// Ensure .env is loaded before any config access
	loadEnvFile()
}

// getEnvInt reads environment variable with fallback to default
func getEnvInt(key string, defaultValue int) int {
	loadEnvFile()
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvString reads environment variable with string fallback
func getEnvString(key string, defaultValue string) string {
	loadEnvFile()
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// getEnvDuration reads environment variable as duration with fallback
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	loadEnvFile()
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		// Try as integer seconds
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// Server Configuration
var (
	Port = getEnvString("PORT", "8080")
)

// Google Sheets Configuration
var (
	ServiceAccountEmail    = getEnvString("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	PrivateKey             = getEnvString("GOOGLE_PRIVATE_KEY", "")
	PrivateKeyID           = getEnvString("GOOGLE_PRIVATE_KEY_ID", "")
	SpreadsheetID          = getEnvString("GOOGLE_SPREADSHEET_ID", "")
	AnalyticsSpreadsheetID = getEnvString("GOOGLE_ANALYTICS_SPREADSHEET_ID", getEnvString("GOOGLE_SPREADSHEET_ID", ""))

	// The orientation tab is looked up by its numeric gid; the title is the
	// fallback when the gid is not found in the spreadsheet metadata.
	OrientationSheetGID  = getEnvInt("ORIENTATION_SHEET_GID", 2091426754)
	OrientationSheetName = getEnvString("ORIENTATION_SHEET_NAME", "Orientation Process")
	AnalyticsSheetName   = getEnvString("ANALYTICS_SHEET_NAME", "Analytics")
)

// Guide Configuration
var (
	// Known club locations offered by the location filter. An item with no
	// location is shown under every selection.
	GuideLocations = strings.Split(getEnvString("GUIDE_LOCATIONS", "centennial,lafayette"), ",")

	// RepPassword gates the rep view. This is a cosmetic UI gate, not a
	// security boundary: no data route enforces it.
	RepPassword = getEnvString("REP_PASSWORD", "DenRace7542B-01")
	JWTSecret   = getEnvString("JWT_SECRET", "")
)

// Session Configuration
var (
	SessionTTL             = getEnvDuration("GUIDE_SESSION_TTL", 4*time.Hour)
	SessionCleanupInterval = getEnvDuration("SESSION_CLEANUP_INTERVAL", 30*time.Minute)
)

// ValidateSheetsCredentials checks the service-account configuration before
// any Google call is attempted. An API key pasted where the service-account
// email belongs is a recurring misconfiguration, so it gets its own message.
func ValidateSheetsCredentials() error {
	if ServiceAccountEmail == "" {
		return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL environment variable is not set")
	}
	if strings.HasPrefix(ServiceAccountEmail, "AIza") || !strings.Contains(ServiceAccountEmail, "@") {
		return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL appears to be an API key instead of a service account email, expected format: your-service@project.iam.gserviceaccount.com, got: %s", ServiceAccountEmail)
	}
	if PrivateKey == "" {
		return fmt.Errorf("GOOGLE_PRIVATE_KEY environment variable is not set")
	}
	if PrivateKeyID == "" {
		return fmt.Errorf("GOOGLE_PRIVATE_KEY_ID environment variable is not set")
	}
	if SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SPREADSHEET_ID environment variable is not set")
	}
	return nil
}
