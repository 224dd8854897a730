// Package analytics aggregates the append-only event log into dashboard
// summaries. The log is read in full on every request; there is no index and
// no pagination, which is acceptable while the log stays small.
package analytics

import (
	"sort"

	"github.com/DenverRacingSocial/orientation-go/models"
	"github.com/tidwall/gjson"
)

const topN = 10

// ParseEventRows converts raw A:G sheet rows into events. The first row is
// the header row and is skipped; short rows are padded with empty columns.
func ParseEventRows(rows [][]string) []models.AnalyticsEvent {
	if len(rows) < 2 {
		return nil
	}
	events := make([]models.AnalyticsEvent, 0, len(rows)-1)
	for _, row := range rows[1:] {
		events = append(events, models.AnalyticsEvent{
			Timestamp: column(row, 0),
			UserType:  column(row, 1),
			Action:    column(row, 2),
			Phase:     column(row, 3),
			Section:   column(row, 4),
			Location:  column(row, 5),
			Data:      column(row, 6),
		})
	}
	return events
}

// ComputeDashboard produces the dashboard payload: top-10 bookmarked and
// completed sections, event totals by user type, and every submitted question.
func ComputeDashboard(events []models.AnalyticsEvent) *models.DashboardAnalytics {
	dashboard := &models.DashboardAnalytics{
		Bookmarks:   topSections(events, models.ActionBookmarkAdded),
		Completions: topSections(events, models.ActionSectionCompleted),
		TotalEvents: len(events),
		Questions:   questions(events),
	}
	for _, e := range events {
		switch e.UserType {
		case "rep":
			dashboard.UserTypes.Rep++
		case "member":
			dashboard.UserTypes.Member++
		}
	}
	return dashboard
}

// topSections counts events for one action per "Phase - Section" key and
// returns the top ten by count. Keys are collected in first-seen order and
// sorted stably, so equal counts keep their first-seen order and the result
// is deterministic for a given log.
func topSections(events []models.AnalyticsEvent, action string) []models.SectionCount {
	counts := make(map[string]int)
	order := []string{}
	for _, e := range events {
		if e.Action != action {
			continue
		}
		key := e.Phase + " - " + e.Section
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]models.SectionCount, 0, len(order))
	for _, key := range order {
		out = append(out, models.SectionCount{Section: key, Count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// questions returns every question_submitted event in log order, untruncated.
// The question text lives in the raw JSON column.
func questions(events []models.AnalyticsEvent) []models.QuestionEntry {
	out := []models.QuestionEntry{}
	for _, e := range events {
		if e.Action != models.ActionQuestionSubmitted {
			continue
		}
		out = append(out, models.QuestionEntry{
			Question:  gjson.Get(e.Data, "question").String(),
			Timestamp: e.Timestamp,
			UserType:  e.UserType,
		})
	}
	return out
}

func column(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
