// Package api provides shared helper functions
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/DenverRacingSocial/orientation-go/config"
	"github.com/DenverRacingSocial/orientation-go/models"
	"github.com/DenverRacingSocial/orientation-go/orientation"
	"github.com/DenverRacingSocial/orientation-go/sheets"
)

// SheetsClient is the shared Google Sheets client, set once at startup.
// Handlers answer 500 when it is unset (missing credentials).
var SheetsClient *sheets.Client

// InitSheetsClient builds the shared client from the environment.
func InitSheetsClient() error {
	client, err := sheets.NewClient()
	if err != nil {
		return err
	}
	SheetsClient = client
	return nil
}

// GuideViews are the two renderings of the orientation item set. The member
// view is scoped to customer-facing items and offers bookmarks only; the rep
// view sees everything and adds the completion checklist.
var GuideViews = map[string]models.GuideView{
	"rep": {
		Name:          "rep",
		Audience:      "rep",
		CustomerOnly:  false,
		ShowChecklist: true,
		ShowBookmark:  true,
		Theme:         "black-gold",
	},
	"member": {
		Name:          "member",
		Audience:      "member",
		CustomerOnly:  true,
		ShowChecklist: false,
		ShowBookmark:  true,
		Theme:         "clubhouse",
	},
}

// loadOrientationItems runs the full read pipeline: mint a readonly token,
// resolve the tab title by gid, read A:M, normalize. Returned errors carry
// enough context for the 500 log line; the data-shape cases are surfaced to
// callers through errNoData / errBadShape sentinels.
var (
	errNoData   = fmt.Errorf("no data found in spreadsheet")
	errBadShape = fmt.Errorf("invalid data structure in spreadsheet")
)

func loadOrientationItems(ctx context.Context) ([]*models.OrientationItem, error) {
	if SheetsClient == nil {
		return nil, fmt.Errorf("sheets client is not configured")
	}

	token, err := SheetsClient.AccessToken(ctx, sheets.ScopeReadonly)
	if err != nil {
		return nil, err
	}

	title, err := SheetsClient.SheetTitleByGID(ctx, token, config.SpreadsheetID, config.OrientationSheetGID, config.OrientationSheetName)
	if err != nil {
		return nil, err
	}

	rows, err := SheetsClient.Values(ctx, token, config.SpreadsheetID, title+"!A:M")
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errNoData
	}
	if len(rows) < 2 || rows[0] == nil {
		return nil, errBadShape
	}

	headers := rows[0]
	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		dataRows = append(dataRows, stringCells(row))
	}

	return orientation.NormalizeRows(headers, dataRows), nil
}

// stringCells coerces loosely typed sheet cells to strings, the same way the
// views consume them.
func stringCells(row []any) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if cell == nil {
			continue
		}
		out[i] = fmt.Sprintf("%v", cell)
	}
	return out
}

// appendAnalyticsRow writes one event row to the analytics log:
// timestamp, userType, action, phase, section, location, raw JSON blob.
func appendAnalyticsRow(ctx context.Context, action, rawJSON, timestamp, userType, phase, section, location string) error {
	if SheetsClient == nil {
		return fmt.Errorf("sheets client is not configured")
	}

	token, err := SheetsClient.AccessToken(ctx, sheets.ScopeReadWrite)
	if err != nil {
		return err
	}

	row := []any{timestamp, userType, action, phase, section, location, rawJSON}
	return SheetsClient.Append(ctx, token, config.AnalyticsSpreadsheetID, config.AnalyticsSheetName+"!A:G", row)
}

// trackEvent serializes an event payload and appends it to the log. The
// phase/section/location columns are lifted out of the payload; the full
// payload is kept verbatim in the last column.
func trackEvent(ctx context.Context, action string, data map[string]any, timestamp, userType string) error {
	if data == nil {
		data = map[string]any{}
	}
	rawJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return appendAnalyticsRow(ctx, action, string(rawJSON), timestamp, userType,
		stringField(data, "phase"), stringField(data, "section"), stringField(data, "location"))
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// trackerSink delivers tracker events to the analytics log without blocking
// the interaction that produced them. Failures are logged and swallowed.
type trackerSink struct{}

func (trackerSink) Track(action string, data map[string]any, timestamp, userType string) error {
	go func() {
		if err := trackEvent(context.Background(), action, data, timestamp, userType); err != nil {
			log.Printf("ERROR: analytics tracking failed for %s: %v", action, err)
		}
	}()
	return nil
}
