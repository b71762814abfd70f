package ai

import (
	"fmt"
	"strings"

	"whattohack-api/internal/models"
)

const (
	extractSystem   = "You analyze hackathon announcements and extract structured data. Always return valid JSON."
	sponsorSystem   = "You advise companies on developer marketing and hackathon sponsorship. Give concrete, actionable recommendations."
	ideasSystem     = "You are a hackathon strategist who helps participants find winning project ideas."
	leveragesSystem = "You analyze company strategy and explain why companies sponsor hackathons."
)

func buildExtractionPrompt(query, pageContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract structured information about this hackathon: %s\n\n", query)
	if pageContext != "" {
		fmt.Fprintf(&b, "Material gathered about it:\n---\n%s\n---\n\n", pageContext)
	}
	b.WriteString(`Return JSON with exactly these keys:
{
  "name": "Hackathon name",
  "date": "Dates or timeline",
  "location": "Virtual, Hybrid or a city",
  "organizer": "Host company",
  "sponsors": ["every sponsor, technology, API, platform and prize partner"],
  "description": "2-3 sentence summary",
  "jury": ["judges, if mentioned"],
  "theme": "focus area or null",
  "prizes": "short prize summary or null"
}
If the page cannot be read, infer from the URL and known events. Return only JSON.`)
	return b.String()
}

func buildSponsorPrompt(p models.SponsorParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the strategic opportunities for %s at the %s hackathon", p.Sponsor, p.HackathonName)
	if p.Organizer != "" {
		fmt.Fprintf(&b, " organized by %s", p.Organizer)
	}
	if p.Theme != "" {
		fmt.Fprintf(&b, " with the theme %s", p.Theme)
	}
	b.WriteString(".\n\n")
	b.WriteString(`Rank opportunities from foundational to strategic using these tiers:
1. Evangelization/Awareness
2. Community Engagement
3. Product Feedback Loop
4. Use Case Creation
5. Integration & Ecosystem Play
6. Influencer/Maker Adoption
7. Recruitment & Talent Discovery
8. Long-term Strategic Positioning

Return JSON:
{
  "company_snapshot": {
    "company_name": "...",
    "main_products": ["..."],
    "target_audience": "...",
    "recent_updates": ["..."],
    "competitors": ["..."],
    "differentiation": "..."
  },
  "opportunities": [
    {"type": "1. Evangelization/Awareness", "description": "...", "example": "..."}
  ]
}
Be concrete and name tools or integrations. Return only JSON.`)
	return b.String()
}

func buildIdeasPrompt(p models.IdeasParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 5-8 project ideas for the hackathon %q.\n\n", p.HackathonName)
	fmt.Fprintf(&b, "Sponsors: %s\n", strings.Join(p.Sponsors, ", "))
	writeOptional(&b, "Technical Level", p.TechnicalLevel)
	writeOptional(&b, "Commitment Level", p.CommitmentLevel)
	writeOptional(&b, "Team Size", p.TeamSize)
	if len(p.Intentions) > 0 {
		fmt.Fprintf(&b, "Intentions (highest priority first): %s\n", strings.Join(p.Intentions, ", "))
	}
	writeOptional(&b, "Additional Context", p.AdditionalContext)
	b.WriteString(`
Return JSON:
{
  "ideas": [
    {
      "id": "1",
      "title": "...",
      "description": "2-3 sentences",
      "score": 0-100 winning potential,
      "category": "...",
      "difficulty": "beginner" | "intermediate" | "advanced",
      "techRequirements": "low-code" | "moderate" | "highly-technical",
      "sponsors": ["sponsors the project uses"],
      "why": "why it would win",
      "leverages": ["3-4 ways it uses sponsor technology"],
      "requiredSkills": ["3-5 skills"],
      "estimatedTime": "e.g. 24-36 hours"
    }
  ]
}`)
	return b.String()
}

func buildLeveragesPrompt(p models.LeveragesParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze why companies sponsor the hackathon %q.\n\n", p.HackathonName)
	fmt.Fprintf(&b, "Sponsors: %s\n", strings.Join(p.Sponsors, ", "))
	writeOptional(&b, "Additional Context", p.AdditionalContext)
	b.WriteString(`
For each sponsor give 1-2 leverages, considering recent launches, market positioning, developer community goals and evangelization needs.

Return JSON:
{
  "leverages": [
    {
      "id": "1",
      "leverage": "e.g. Product Launch",
      "strategicImpact": "e.g. Use Case Creation",
      "description": "2-3 sentences",
      "company": "sponsor name",
      "relevance": "high" | "medium" | "low"
    }
  ]
}`)
	return b.String()
}

func writeOptional(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}
