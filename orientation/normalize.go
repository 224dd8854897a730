// Package orientation holds the guide's content pipeline: spreadsheet row
// normalization, search/location filtering with phase grouping, and per-session
// interaction state.
package orientation

import (
	"log"
	"strings"

	"github.com/DenverRacingSocial/orientation-go/models"
)

// Spreadsheet column headers, as they appear in row 1 of the orientation tab.
const (
	headerPhase          = "Phase"
	headerSection        = "Section/Step"
	headerCustomerFacing = "Customer-Facing?"
	headerMemberPerform  = "Member Perform"
	headerNotes          = "Detailed Steps/Notes"
	headerPhoto          = "Photo"
	headerVideo          = "Video"
	headerTags           = "Tags"
	headerLocation       = "Location"
)

var resourceHeaders = []string{
	"Additional Resource 1",
	"Additional Resource 2",
	"Additional Resource 3",
}

// NormalizeRow converts one raw spreadsheet row into an OrientationItem.
// Returns nil when the row is entirely blank or missing Phase or Section/Step.
// Cells are loosely typed on the wire, so non-string headers are skipped with
// a warning and cell values are taken as strings.
func NormalizeRow(headers []any, row []string) *models.OrientationItem {
	if !rowHasContent(row) {
		return nil
	}

	fields := make(map[string]string, len(headers))
	for i, header := range headers {
		name, ok := header.(string)
		if !ok {
			log.Printf("WARNING: header at index %d is not a string: %v", i, header)
			continue
		}
		if i < len(row) {
			fields[name] = row[i]
		} else {
			fields[name] = ""
		}
	}

	if fields[headerPhase] == "" || fields[headerSection] == "" {
		return nil
	}

	var resources []string
	for _, h := range resourceHeaders {
		if v := fields[h]; v != "" {
			resources = append(resources, v)
		}
	}

	return &models.OrientationItem{
		Phase:          fields[headerPhase],
		Section:        fields[headerSection],
		CustomerFacing: isYes(fields[headerCustomerFacing]),
		MemberPerform:  isYes(fields[headerMemberPerform]),
		Notes:          fields[headerNotes],
		Photos:         splitList(fields[headerPhoto], false),
		Video:          fields[headerVideo],
		Resources:      resources,
		Tags:           splitList(fields[headerTags], true),
		Location:       strings.ToLower(strings.TrimSpace(fields[headerLocation])),
	}
}

// NormalizeRows runs NormalizeRow over every data row, dropping the ones that
// come back nil. The first row of the sheet is the header row and is not part
// of rows here.
func NormalizeRows(headers []any, rows [][]string) []*models.OrientationItem {
	items := make([]*models.OrientationItem, 0, len(rows))
	for _, row := range rows {
		if item := NormalizeRow(headers, row); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// CustomerFacing returns the subset of items shown to the member view.
func CustomerFacing(items []*models.OrientationItem) []*models.OrientationItem {
	var out []*models.OrientationItem
	for _, item := range items {
		if item.CustomerFacing {
			out = append(out, item)
		}
	}
	return out
}

func rowHasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

func isYes(value string) bool {
	return strings.ToLower(strings.TrimSpace(value)) == "yes"
}

// splitList splits a comma-separated cell, trimming segments and dropping
// empties. Tags are additionally lowercased.
func splitList(value string, lowercase bool) []string {
	if lowercase {
		value = strings.ToLower(value)
	}
	parts := strings.Split(value, ",")
	out := []string{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
