package main

import (
	"log"

	"github.com/DenverRacingSocial/orientation-go/api"
	"github.com/DenverRacingSocial/orientation-go/cache"
	"github.com/DenverRacingSocial/orientation-go/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	// Initialize global session manager
	cache.GlobalInstance = cache.NewManager()
	cache.StartCleanupRoutine(cache.GlobalInstance)

	// The sheets client is optional at startup: without credentials the data
	// routes answer 500 and the guide views serve the fallback sample set.
	if err := api.InitSheetsClient(); err != nil {
		log.Printf("WARNING: Google Sheets client unavailable: %v", err)
	}

	r := gin.New()
	r.Use(api.RequestID())
	r.Use(api.FilteredLogger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Configure CORS to allow localhost origins (including IPv6)
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://[::1]:3000",
		},
		AllowMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With",
		},
		AllowCredentials: true,
		ExposeHeaders: []string{
			"Content-Type", "X-Request-ID",
		},
	}))

	// Spreadsheet-backed data routes
	r.GET("/api/sheets/orientation-data", api.OrientationDataHandler)
	r.POST("/api/analytics/track", api.TrackHandler)
	r.GET("/api/analytics/dashboard", api.DashboardHandler)

	// Rep authentication (cosmetic UI gate, not a security boundary)
	r.POST("/api/auth/rep-login", api.RepLoginHandler)

	// Guide view routes
	views := r.Group("/api/views/:view")
	{
		views.POST("/guide", api.CreateGuideSessionHandler)
		views.GET("/guide", api.GetGuideHandler)
		views.POST("/guide/toggle", api.ToggleGuideItemHandler)
		views.POST("/guide/question", api.SubmitQuestionHandler)
	}

	r.GET("/api/health", api.HealthHandler)

	log.Println("Starting server on :" + config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
