package orientation

import "github.com/DenverRacingSocial/orientation-go/models"

// SampleItems is the fixed fallback dataset served when the spreadsheet fetch
// fails, so the guide stays usable offline or misconfigured.
func SampleItems() []*models.OrientationItem {
	return []*models.OrientationItem{
		{
			Phase:          "Phase 1: Welcome & Setup",
			Section:        "Greet New VIP Member",
			CustomerFacing: true,
			MemberPerform:  false,
			Notes:          "Welcome the new VIP member warmly and introduce yourself. Explain the orientation process and what they can expect.",
			Photos:         []string{},
			Resources:      []string{},
			Tags:           []string{"welcome", "greeting"},
			Location:       "centennial",
		},
		{
			Phase:          "Phase 1: Welcome & Setup",
			Section:        "Collect Member Information",
			CustomerFacing: true,
			MemberPerform:  true,
			Notes:          "Have the member fill out their profile information and preferences. Ensure all contact details are accurate.",
			Photos:         []string{},
			Resources:      []string{},
			Tags:           []string{"information", "profile"},
			Location:       "centennial",
		},
		{
			Phase:          "Phase 2: Facility Tour",
			Section:        "Show Main Areas",
			CustomerFacing: true,
			MemberPerform:  false,
			Notes:          "Give a comprehensive tour of the facility including VIP areas, amenities, and key locations they'll need to know.",
			Photos:         []string{},
			Resources:      []string{},
			Tags:           []string{"tour", "facility"},
			Location:       "lafayette",
		},
	}
}
