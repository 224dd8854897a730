package orientation

import (
	"log"
	"sync"
	"time"

	"github.com/DenverRacingSocial/orientation-go/models"
)

// EventSink receives analytics events emitted by interaction state changes.
// Delivery is fire and forget: a sink error is logged by the tracker and never
// blocks or reverts the state change.
type EventSink interface {
	Track(action string, data map[string]any, timestamp, userType string) error
}

// Tracker holds the per-session interaction state for one loaded item list.
// The item list is immutable for the life of the tracker; state is keyed by
// the item's stable index in that list.
//
// Completion is driven by the checkbox toggle only. The original guide also
// auto-completed a step the first time its header was expanded; that second
// trigger double-counted completions and was dropped (see DESIGN.md).
type Tracker struct {
	mu       sync.Mutex
	items    []*models.OrientationItem
	state    map[int]*models.InteractionState
	sink     EventSink
	userType string
}

// NewTracker creates interaction state for a loaded item list with every item
// expanded, matching the guide's on-load presentation.
func NewTracker(items []*models.OrientationItem, sink EventSink, userType string) *Tracker {
	state := make(map[int]*models.InteractionState, len(items))
	for i := range items {
		state[i] = &models.InteractionState{Expanded: true}
	}
	return &Tracker{
		items:    items,
		state:    state,
		sink:     sink,
		userType: userType,
	}
}

// State returns a copy of the interaction state for an item, or a zero state
// for an index outside the item list.
func (t *Tracker) State(index int) models.InteractionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.state[index]; ok {
		return *s
	}
	return models.InteractionState{}
}

// ToggleExpand flips an item between expanded and collapsed.
func (t *Tracker) ToggleExpand(index int) models.InteractionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.state[index]
	if !ok {
		return models.InteractionState{}
	}
	s.Expanded = !s.Expanded
	return *s
}

// ToggleBookmark flips an item's bookmark flag. A bookmark_added event is
// emitted only when the bookmark is created, not when it is removed.
func (t *Tracker) ToggleBookmark(index int) models.InteractionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.state[index]
	if !ok {
		return models.InteractionState{}
	}
	s.Bookmarked = !s.Bookmarked
	if s.Bookmarked {
		t.emitItemEvent(models.ActionBookmarkAdded, index)
	}
	return *s
}

// ToggleCompleted flips an item's completed flag and collapses the item in
// either direction, mirroring how checking a step closes its accordion entry.
// A section_completed event is emitted only on the false to true transition;
// unchecking is allowed and emits nothing.
func (t *Tracker) ToggleCompleted(index int) models.InteractionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.state[index]
	if !ok {
		return models.InteractionState{}
	}
	s.Completed = !s.Completed
	s.Expanded = false
	if s.Completed {
		t.emitItemEvent(models.ActionSectionCompleted, index)
	}
	return *s
}

// SubmitQuestion emits a question_submitted event with the raw question text.
func (t *Tracker) SubmitQuestion(question string) {
	if question == "" {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	t.emit(models.ActionQuestionSubmitted, map[string]any{
		"question":  question,
		"timestamp": now,
	})
}

// emitItemEvent sends an item-scoped event; callers hold the lock.
func (t *Tracker) emitItemEvent(action string, index int) {
	if index < 0 || index >= len(t.items) {
		return
	}
	item := t.items[index]
	t.emit(action, map[string]any{
		"phase":    item.Phase,
		"section":  item.Section,
		"location": item.Location,
	})
}

func (t *Tracker) emit(action string, data map[string]any) {
	if t.sink == nil {
		return
	}
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if err := t.sink.Track(action, data, timestamp, t.userType); err != nil {
		log.Printf("ERROR: analytics tracking failed for %s: %v", action, err)
	}
}
