// Package community mines a slide-deck document for community reference-guide
// facts: organization identity, contacts, team roster, goals, engagement
// terms, market and development findings, presentation dates, and next steps.
package community

// Contact is one mined contact record, keyed loosely by email. Name and
// Title are only present when the surrounding text yielded a match.
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// TeamMember is one "Name: Role" entry from a team slide. Duplicate entries
// are possible; no deduplication rule exists for the roster.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Engagement holds the commercial terms of the engagement. StartDate and
// Timeline have no extraction rule yet and stay zero-valued; they are kept in
// the record so the wire format is stable when a rule lands.
type Engagement struct {
	Phase     string   `json:"phase"`
	StartDate string   `json:"start_date"`
	Fee       string   `json:"fee"`
	Timeline  []string `json:"timeline"`
}

// MarketAnalysis groups the market findings. Only DemandSummary has an
// extraction rule today.
type MarketAnalysis struct {
	PMADescription string   `json:"pma_description"`
	Demographics   []string `json:"demographics"`
	DemandSummary  []string `json:"demand_summary"`
}

// Development buckets the site/development findings. A content block lands
// in exactly one bucket.
type Development struct {
	Objectives      []string `json:"objectives"`
	Vulnerabilities []string `json:"vulnerabilities"`
	Opportunities   []string `json:"opportunities"`
}

// Presentation records a mined presentation date with the slide it came from.
type Presentation struct {
	Date  string `json:"date"`
	Slide int    `json:"slide"`
}

// Profile is the aggregate mined from one document. It is a plain value:
// sequence fields are append-only during mining and never reordered, and the
// record has no identity beyond its content until the sync layer uses Name
// as the CRM lookup key.
type Profile struct {
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Contacts       []Contact      `json:"contacts"`
	Team           []TeamMember   `json:"one_point_team"`
	Goals          []string       `json:"goals"`
	Engagement     Engagement     `json:"engagement"`
	MarketAnalysis MarketAnalysis `json:"market_analysis"`
	Development    Development    `json:"development"`
	Presentations  []Presentation `json:"presentations"`
	NextSteps      []string       `json:"next_steps"`
}

// NewProfile returns an empty profile with all sequence fields initialized
// so the JSON form serializes them as empty arrays rather than null.
func NewProfile() Profile {
	return Profile{
		Contacts: []Contact{},
		Team:     []TeamMember{},
		Goals:    []string{},
		Engagement: Engagement{
			Timeline: []string{},
		},
		MarketAnalysis: MarketAnalysis{
			Demographics:  []string{},
			DemandSummary: []string{},
		},
		Development: Development{
			Objectives:      []string{},
			Vulnerabilities: []string{},
			Opportunities:   []string{},
		},
		Presentations: []Presentation{},
		NextSteps:     []string{},
	}
}
