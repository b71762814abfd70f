package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report bundles the pre-written ideas and leverages for one hackathon.
// Instant reports skip every network call on search.
type Report struct {
	HackathonName string           `json:"hackathonName"`
	GeneratedAt   string           `json:"generatedAt"`
	Instant       bool             `json:"instant"`
	Hackathon     *HackathonRecord `json:"hackathon,omitempty"`
	Ideas         []ProjectIdea    `json:"ideas"`
	Leverages     []Leverage       `json:"leverages"`
}

// HasReport reports whether the entry carries pre-generated results.
func (r Report) HasReport() bool {
	return len(r.Ideas) > 0 || len(r.Leverages) > 0
}

// Record returns the hackathon record of the entry, synthesizing a minimal
// one from the name when the entry has none.
func (r Report) Record() HackathonRecord {
	if r.Hackathon != nil {
		rec := *r.Hackathon
		rec.Sponsors = cloneStrings(rec.Sponsors)
		rec.Jury = cloneStrings(rec.Jury)
		return rec
	}
	return HackathonRecord{Name: r.HackathonName, Sponsors: []string{}, Jury: []string{}}
}

// NormalizeName is the catalog matching key: trimmed and lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ReportRow is a persisted catalog entry.
type ReportRow struct {
	gorm.Model
	NormalizedName string                                `gorm:"uniqueIndex;not null"`
	HackathonName  string                                `gorm:"not null"`
	GeneratedAt    string
	Instant        bool
	Hackathon      datatypes.JSONType[*HackathonRecord]
	Ideas          datatypes.JSONSlice[ProjectIdea]
	Leverages      datatypes.JSONSlice[Leverage]
}

// ToRow converts a report for storage.
func (r Report) ToRow() ReportRow {
	return ReportRow{
		NormalizedName: NormalizeName(r.HackathonName),
		HackathonName:  r.HackathonName,
		GeneratedAt:    r.GeneratedAt,
		Instant:        r.Instant,
		Hackathon:      datatypes.NewJSONType(r.Hackathon),
		Ideas:          datatypes.NewJSONSlice(r.Ideas),
		Leverages:      datatypes.NewJSONSlice(r.Leverages),
	}
}

// Report converts a stored row back to the domain type.
func (row ReportRow) Report() Report {
	return Report{
		HackathonName: row.HackathonName,
		GeneratedAt:   row.GeneratedAt,
		Instant:       row.Instant,
		Hackathon:     row.Hackathon.Data(),
		Ideas:         []ProjectIdea(row.Ideas),
		Leverages:     []Leverage(row.Leverages),
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
