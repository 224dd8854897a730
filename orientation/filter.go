package orientation

import (
	"strings"

	"github.com/DenverRacingSocial/orientation-go/models"
)

// LocationAll is the location filter value that matches every item.
const LocationAll = "all"

// Matches reports whether an item survives the free-text query and location
// filter. The query matches against the concatenated phase/section/notes text
// or any single tag; the location filter passes items with no location set.
func Matches(item *models.OrientationItem, query, location string) bool {
	q := strings.ToLower(query)

	searchText := strings.ToLower(item.Phase + " " + item.Section + " " + item.Notes)
	textMatch := strings.Contains(searchText, q)

	tagMatch := false
	for _, tag := range item.Tags {
		if strings.Contains(tag, q) {
			tagMatch = true
			break
		}
	}

	locationMatch := location == LocationAll || item.Location == "" || item.Location == location

	return (textMatch || tagMatch) && locationMatch
}

// FilterAndGroup produces the visible subset of items for a query and
// location selection, partitioned into phase groups. Phase order is the
// phase's first occurrence in the unfiltered source list, never alphabetical;
// item order within a phase is source order. Phases whose items are all
// filtered out do not appear as empty groups. Item indices refer to positions
// in the unfiltered source list so interaction state stays stable under
// filtering.
func FilterAndGroup(items []*models.OrientationItem, query, location string) []models.PhaseGroup {
	groupIndex := make(map[string]int)
	groups := []models.PhaseGroup{}

	for i, item := range items {
		if !Matches(item, query, location) {
			continue
		}
		gi, seen := groupIndex[item.Phase]
		if !seen {
			gi = len(groups)
			groupIndex[item.Phase] = gi
			groups = append(groups, models.PhaseGroup{Phase: item.Phase})
		}
		groups[gi].Items = append(groups[gi].Items, models.IndexedItem{Index: i, Item: item})
	}

	return groups
}

// Phases returns the ordered phase names of a group list, for the quick
// navigation sidebar.
func Phases(groups []models.PhaseGroup) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Phase
	}
	return names
}
