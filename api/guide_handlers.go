// Package api provides HTTP handlers for the rep and member guide views.
package api

import (
	"log"
	"net/http"

	"github.com/DenverRacingSocial/orientation-go/cache"
	"github.com/DenverRacingSocial/orientation-go/config"
	"github.com/DenverRacingSocial/orientation-go/models"
	"github.com/DenverRacingSocial/orientation-go/orientation"
	"github.com/gin-gonic/gin"
)

// CreateGuideSessionHandler handles POST /api/views/:view/guide. It loads the
// item list once for the session; on fetch failure the guide falls back to
// the fixed sample set so the page stays usable.
func CreateGuideSessionHandler(c *gin.Context) {
	view, ok := GuideViews[c.Param("view")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}

	// The fallback decision is made on the full item list, before any view
	// scoping. A sheet that holds only internal rows gives the member view an
	// empty guide, not the sample set.
	usedFallback := false
	items, err := loadOrientationItems(c.Request.Context())
	if err != nil || len(items) == 0 {
		if err != nil {
			log.Printf("ERROR: guide data load failed, serving sample data: %v", err)
		}
		items = orientation.SampleItems()
		usedFallback = true
	}
	if view.CustomerOnly {
		items = orientation.CustomerFacing(items)
	}

	session := &cache.GuideSession{
		ID:           cache.NewSessionID(),
		View:         view.Name,
		Items:        items,
		Tracker:      orientation.NewTracker(items, trackerSink{}, view.Audience),
		UsedFallback: usedFallback,
	}
	cache.GetGlobalManager().SetSession(session)

	c.JSON(http.StatusOK, guidePayload(session, view, "", orientation.LocationAll))
}

// GetGuideHandler handles GET /api/views/:view/guide. The filter runs on
// every call; the list is small enough that no memoization is needed.
func GetGuideHandler(c *gin.Context) {
	view, session, ok := guideSession(c, c.Query("session"))
	if !ok {
		return
	}

	location := c.DefaultQuery("location", orientation.LocationAll)
	c.JSON(http.StatusOK, guidePayload(session, view, c.Query("q"), location))
}

// ToggleGuideItemHandler handles POST /api/views/:view/guide/toggle.
// Analytics emission is fire and forget; the state change never waits on it.
func ToggleGuideItemHandler(c *gin.Context) {
	var req struct {
		Session string `json:"session" binding:"required"`
		Index   int    `json:"index"`
		Control string `json:"control" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, session, ok := guideSession(c, req.Session)
	if !ok {
		return
	}
	if req.Index < 0 || req.Index >= len(session.Items) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item index out of range"})
		return
	}

	var state models.InteractionState
	switch req.Control {
	case "expand":
		state = session.Tracker.ToggleExpand(req.Index)
	case "bookmark":
		if !view.ShowBookmark {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bookmarks are not available in this view"})
			return
		}
		state = session.Tracker.ToggleBookmark(req.Index)
	case "complete":
		if !view.ShowChecklist {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the checklist is not available in this view"})
			return
		}
		state = session.Tracker.ToggleCompleted(req.Index)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown control"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"index": req.Index, "state": state})
}

// SubmitQuestionHandler handles POST /api/views/:view/guide/question
func SubmitQuestionHandler(c *gin.Context) {
	var req struct {
		Session  string `json:"session" binding:"required"`
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	_, session, ok := guideSession(c, req.Session)
	if !ok {
		return
	}

	session.Tracker.SubmitQuestion(req.Question)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// guideSession resolves the view and session for a request, answering the
// error responses itself when either is missing.
func guideSession(c *gin.Context, sessionID string) (models.GuideView, *cache.GuideSession, bool) {
	view, ok := GuideViews[c.Param("view")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return models.GuideView{}, nil, false
	}
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return models.GuideView{}, nil, false
	}
	session, exists := cache.GetGlobalManager().GetSession(sessionID)
	if !exists || session.View != view.Name {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return models.GuideView{}, nil, false
	}
	return view, session, true
}

func guidePayload(session *cache.GuideSession, view models.GuideView, query, location string) gin.H {
	groups := orientation.FilterAndGroup(session.Items, query, location)

	state := make(map[int]models.InteractionState, len(session.Items))
	for i := range session.Items {
		state[i] = session.Tracker.State(i)
	}

	return gin.H{
		"session":      session.ID,
		"view":         view,
		"groups":       groups,
		"phases":       orientation.Phases(groups),
		"state":        state,
		"locations":    config.GuideLocations,
		"usedFallback": session.UsedFallback,
	}
}
