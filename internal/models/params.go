package models

// IdeasParams is the input of idea generation.
type IdeasParams struct {
	HackathonName     string
	Sponsors          []string
	TechnicalLevel    string
	CommitmentLevel   string
	TeamSize          string
	Intentions        []string
	AdditionalContext string
}

// LeveragesParams is the input of leverage generation.
type LeveragesParams struct {
	HackathonName     string
	Sponsors          []string
	AdditionalContext string
}

// SponsorParams is the input of a single sponsor analysis. Organizer and
// Theme may be empty.
type SponsorParams struct {
	Sponsor       string
	HackathonName string
	Organizer     string
	Theme         string
}
