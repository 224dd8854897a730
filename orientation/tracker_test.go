package orientation

import (
	"testing"

	"github.com/DenverRacingSocial/orientation-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	action   string
	data     map[string]any
	userType string
}

type recordingSink struct {
	events []recordedEvent
}

func (s *recordingSink) Track(action string, data map[string]any, timestamp, userType string) error {
	s.events = append(s.events, recordedEvent{action: action, data: data, userType: userType})
	return nil
}

func newTestTracker() (*Tracker, *recordingSink) {
	sink := &recordingSink{}
	items := []*models.OrientationItem{
		item("Phase 1", "Greet", "", "centennial"),
		item("Phase 2", "Tour", "", "lafayette"),
	}
	return NewTracker(items, sink, "rep"), sink
}

func TestTrackerDefaultsEveryItemExpanded(t *testing.T) {
	tracker, _ := newTestTracker()
	assert.True(t, tracker.State(0).Expanded)
	assert.True(t, tracker.State(1).Expanded)
	assert.False(t, tracker.State(0).Completed)
	assert.False(t, tracker.State(0).Bookmarked)
}

func TestToggleBookmarkTwiceEmitsOneEvent(t *testing.T) {
	tracker, sink := newTestTracker()

	state := tracker.ToggleBookmark(0)
	assert.True(t, state.Bookmarked)

	state = tracker.ToggleBookmark(0)
	assert.False(t, state.Bookmarked)

	require.Len(t, sink.events, 1)
	assert.Equal(t, models.ActionBookmarkAdded, sink.events[0].action)
	assert.Equal(t, "Phase 1", sink.events[0].data["phase"])
	assert.Equal(t, "Greet", sink.events[0].data["section"])
	assert.Equal(t, "centennial", sink.events[0].data["location"])
	assert.Equal(t, "rep", sink.events[0].userType)
}

func TestToggleCompletedEmitsOnlyOnCompletion(t *testing.T) {
	tracker, sink := newTestTracker()

	state := tracker.ToggleCompleted(1)
	assert.True(t, state.Completed)
	assert.False(t, state.Expanded, "completing collapses the item")

	state = tracker.ToggleCompleted(1)
	assert.False(t, state.Completed)
	assert.False(t, state.Expanded, "unchecking also collapses")

	require.Len(t, sink.events, 1)
	assert.Equal(t, models.ActionSectionCompleted, sink.events[0].action)
	assert.Equal(t, "Phase 2", sink.events[0].data["phase"])
}

func TestToggleExpandDoesNotComplete(t *testing.T) {
	tracker, sink := newTestTracker()

	state := tracker.ToggleExpand(0)
	assert.False(t, state.Expanded)
	assert.False(t, state.Completed)

	state = tracker.ToggleExpand(0)
	assert.True(t, state.Expanded)

	assert.Empty(t, sink.events, "expand/collapse alone emits nothing")
}

func TestToggleOutOfRangeIsZeroState(t *testing.T) {
	tracker, sink := newTestTracker()

	assert.Equal(t, models.InteractionState{}, tracker.ToggleBookmark(99))
	assert.Equal(t, models.InteractionState{}, tracker.ToggleCompleted(-1))
	assert.Empty(t, sink.events)
}

func TestSubmitQuestionEmitsEvent(t *testing.T) {
	tracker, sink := newTestTracker()

	tracker.SubmitQuestion("Where is the VIP entrance?")
	tracker.SubmitQuestion("")

	require.Len(t, sink.events, 1)
	assert.Equal(t, models.ActionQuestionSubmitted, sink.events[0].action)
	assert.Equal(t, "Where is the VIP entrance?", sink.events[0].data["question"])
}

func TestTrackerStateSurvivesSinkFailure(t *testing.T) {
	items := []*models.OrientationItem{item("P", "S", "", "")}
	tracker := NewTracker(items, failingSink{}, "member")

	state := tracker.ToggleBookmark(0)
	assert.True(t, state.Bookmarked, "sink failure never reverts the state change")
}

type failingSink struct{}

func (failingSink) Track(string, map[string]any, string, string) error {
	return assert.AnError
}
