// Package models defines the data structures shared across the orientation guide service.
package models

// =============================================================================
// Orientation Content Types
// =============================================================================

// OrientationItem is one normalized spreadsheet row of the orientation process.
type OrientationItem struct {
	Phase          string   `json:"phase"`
	Section        string   `json:"section"`
	CustomerFacing bool     `json:"customerFacing"`
	MemberPerform  bool     `json:"memberPerform"`
	Notes          string   `json:"notes"`
	Photos         []string `json:"photos"`
	Video          string   `json:"video"`
	Resources      []string `json:"resources"`
	Tags           []string `json:"tags"`
	Location       string   `json:"location"`
}

// PhaseGroup is the visible subset of items for one phase, in source order.
type PhaseGroup struct {
	Phase string        `json:"phase"`
	Items []IndexedItem `json:"items"`
}

// IndexedItem pairs an item with its stable index in the unfiltered source
// list. Interaction state is keyed by that index, so filtering must not
// renumber items.
type IndexedItem struct {
	Index int              `json:"index"`
	Item  *OrientationItem `json:"item"`
}

// =============================================================================
// Interaction State Types
// =============================================================================

// InteractionState is the per-item UI state for one guide session.
type InteractionState struct {
	Expanded   bool `json:"expanded"`
	Completed  bool `json:"completed"`
	Bookmarked bool `json:"bookmarked"`
}

// GuideView parameterizes the rep and member renderings of the guide.
type GuideView struct {
	Name          string `json:"name"`
	Audience      string `json:"audience"` // "rep" or "member"
	CustomerOnly  bool   `json:"customerOnly"`
	ShowChecklist bool   `json:"showChecklist"`
	ShowBookmark  bool   `json:"showBookmark"`
	Theme         string `json:"theme"`
}

// =============================================================================
// Analytics Types
// =============================================================================

// Event action names as written to the analytics log.
const (
	ActionBookmarkAdded     = "bookmark_added"
	ActionSectionCompleted  = "section_completed"
	ActionQuestionSubmitted = "question_submitted"
)

// AnalyticsEvent is one parsed row of the append-only analytics log.
type AnalyticsEvent struct {
	Timestamp string `json:"timestamp"`
	UserType  string `json:"userType"`
	Action    string `json:"action"`
	Phase     string `json:"phase"`
	Section   string `json:"section"`
	Location  string `json:"location"`
	Data      string `json:"data"` // raw JSON blob as logged
}

// TrackRequest is the body of POST /api/analytics/track.
type TrackRequest struct {
	Action    string         `json:"action" binding:"required"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"`
	UserType  string         `json:"userType"`
}

// SectionCount is one aggregated "Phase - Section" tally.
type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// QuestionEntry is one submitted free-text question.
type QuestionEntry struct {
	Question  string `json:"question"`
	Timestamp string `json:"timestamp"`
	UserType  string `json:"userType"`
}

// UserTypeCounts splits event totals by audience.
type UserTypeCounts struct {
	Rep    int `json:"rep"`
	Member int `json:"member"`
}

// DashboardAnalytics is the response of GET /api/analytics/dashboard.
type DashboardAnalytics struct {
	Bookmarks   []SectionCount  `json:"bookmarks"`
	Completions []SectionCount  `json:"completions"`
	TotalEvents int             `json:"totalEvents"`
	UserTypes   UserTypeCounts  `json:"userTypes"`
	Questions   []QuestionEntry `json:"questions"`
}
