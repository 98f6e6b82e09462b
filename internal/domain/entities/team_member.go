package entities

import "github.com/volatiletech/null/v8"

// Group categories shown on the team page. The column is an open string so
// that rows written before the categories settled still round-trip.
const (
	GroupFounders        = "Founders"
	GroupDevelopmentCrew = "Development Crew"
	GroupCommunityTeam   = "Community Team"
)

// EndOfListOrder is assigned to freshly created members so they sort last
// until manually reordered.
const EndOfListOrder = 9999

// TeamMember is the canonical wire shape of one team-page entry. Callers only
// ever see these field names regardless of which column layout the backing
// store uses.
type TeamMember struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Role         string      `json:"role"`
	Bio          null.String `json:"bio"`
	ImageURL     string      `json:"imageUrl"`
	LinkedIn     null.String `json:"linkedin"`
	Group        string      `json:"group"`
	DisplayOrder int         `json:"displayOrder"`
}

// OrderUpdate is one entry of a reorder batch.
type OrderUpdate struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"displayOrder"`
}
