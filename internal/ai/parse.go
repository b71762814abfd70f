package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"whattohack-api/internal/models"
)

// looseString accepts a JSON string or number; models are inconsistent
// about ids.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}

type extractionPayload struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Organizer   string   `json:"organizer"`
	Sponsors    []string `json:"sponsors"`
	Description string   `json:"description"`
	Jury        []string `json:"jury"`
	Theme       *string  `json:"theme"`
	Prizes      *string  `json:"prizes"`
}

func decode(content string, v any) error {
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func parseExtraction(content, url string) (models.HackathonRecord, error) {
	var p extractionPayload
	if err := decode(content, &p); err != nil {
		return models.HackathonRecord{}, err
	}

	rec := models.HackathonRecord{
		Name:        orDefault(p.Name, "Unknown Hackathon"),
		Date:        orDefault(p.Date, "TBD"),
		Location:    orDefault(p.Location, "Virtual"),
		Organizer:   orDefault(p.Organizer, "Unknown"),
		Sponsors:    nonNil(p.Sponsors),
		Description: p.Description,
		Jury:        nonNil(p.Jury),
		URL:         url,
	}
	if p.Theme != nil {
		rec.Theme = *p.Theme
	}
	if p.Prizes != nil {
		rec.Prizes = *p.Prizes
	}
	return rec, nil
}

type sponsorPayload struct {
	CompanySnapshot *models.CompanySnapshot `json:"company_snapshot"`
	Opportunities   []models.Opportunity    `json:"opportunities"`
}

func parseSponsorAnalysis(content, sponsor string) (models.SponsorAnalysis, error) {
	var p sponsorPayload
	if err := decode(content, &p); err != nil {
		return models.SponsorAnalysis{}, err
	}
	opps := p.Opportunities
	if opps == nil {
		opps = []models.Opportunity{}
	}
	return models.SponsorAnalysis{Sponsor: sponsor, CompanySnapshot: p.CompanySnapshot, Opportunities: opps}, nil
}

type ideaPayload struct {
	ID               looseString `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Score            json.Number `json:"score"`
	Category         string      `json:"category"`
	Difficulty       string      `json:"difficulty"`
	TechRequirements string      `json:"techRequirements"`
	Sponsors         []string    `json:"sponsors"`
	Why              string      `json:"why"`
	Leverages        []string    `json:"leverages"`
	RequiredSkills   []string    `json:"requiredSkills"`
	EstimatedTime    string      `json:"estimatedTime"`
}

func parseIdeas(content string) ([]models.ProjectIdea, error) {
	var p struct {
		Ideas []ideaPayload `json:"ideas"`
	}
	if err := decode(content, &p); err != nil {
		return nil, err
	}

	ideas := make([]models.ProjectIdea, 0, len(p.Ideas))
	for _, raw := range p.Ideas {
		score, _ := strconv.ParseFloat(raw.Score.String(), 64)
		ideas = append(ideas, models.ProjectIdea{
			ID:               string(raw.ID),
			Title:            raw.Title,
			Description:      raw.Description,
			Score:            score,
			Category:         raw.Category,
			Difficulty:       raw.Difficulty,
			TechRequirements: raw.TechRequirements,
			Sponsors:         nonNil(raw.Sponsors),
			Why:              raw.Why,
			Leverages:        nonNil(raw.Leverages),
			RequiredSkills:   nonNil(raw.RequiredSkills),
			EstimatedTime:    raw.EstimatedTime,
		})
	}
	return ideas, nil
}

type leveragePayload struct {
	ID              looseString `json:"id"`
	Leverage        string      `json:"leverage"`
	StrategicImpact string      `json:"strategicImpact"`
	Description     string      `json:"description"`
	Company         string      `json:"company"`
	Relevance       string      `json:"relevance"`
}

func parseLeverages(content string) ([]models.Leverage, error) {
	var p struct {
		Leverages []leveragePayload `json:"leverages"`
	}
	if err := decode(content, &p); err != nil {
		return nil, err
	}

	out := make([]models.Leverage, 0, len(p.Leverages))
	for _, raw := range p.Leverages {
		out = append(out, models.Leverage{
			ID:              string(raw.ID),
			Leverage:        raw.Leverage,
			StrategicImpact: raw.StrategicImpact,
			Description:     raw.Description,
			Company:         raw.Company,
			Relevance:       raw.Relevance,
		})
	}
	return out, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
