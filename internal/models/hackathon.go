package models

// HackathonRecord is the metadata of one hackathon, either extracted by the
// LLM or taken from the report catalog.
type HackathonRecord struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Organizer   string   `json:"organizer"`
	Sponsors    []string `json:"sponsors"`
	Description string   `json:"description"`
	Jury        []string `json:"jury"`
	URL         string   `json:"url,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	Prizes      string   `json:"prizes,omitempty"`

	SponsorAnalysis []SponsorAnalysis `json:"sponsorAnalysis,omitempty"`
}

// CompanySnapshot summarizes a sponsor's business.
type CompanySnapshot struct {
	CompanyName     string   `json:"company_name"`
	MainProducts    []string `json:"main_products"`
	TargetAudience  string   `json:"target_audience"`
	RecentUpdates   []string `json:"recent_updates"`
	Competitors     []string `json:"competitors"`
	Differentiation string   `json:"differentiation"`
}

// Opportunity is one concrete play a sponsor could run at the hackathon.
type Opportunity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// SponsorAnalysis is the per-sponsor strategic breakdown.
type SponsorAnalysis struct {
	Sponsor         string           `json:"sponsor"`
	CompanySnapshot *CompanySnapshot `json:"company_snapshot,omitempty"`
	Opportunities   []Opportunity    `json:"opportunities"`
}
