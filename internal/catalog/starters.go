package catalog

import (
	"strings"

	"whattohack-api/internal/models"
)

// starters maps a normalized sponsor name to an evergreen idea built on
// that sponsor's flagship product.
var starters = map[string]models.ProjectIdea{
	"supabase": {
		ID: "starter-supabase", Title: "Realtime Team Dashboard",
		Description: "Live dashboard of team activity built on Supabase Auth, Postgres and Realtime.",
		Score:       72, Category: "Starter",
		Difficulty: models.DifficultyBeginner, TechRequirements: models.TechLowCode,
		Why:            "Covers the core Supabase stack in a few hours and leaves time for polish.",
		Leverages:      []string{"Uses Auth, Database and Realtime together"},
		RequiredSkills: []string{"JavaScript", "SQL"},
		EstimatedTime:  "6-8 hours",
	},
	"algolia": {
		ID: "starter-algolia", Title: "Instant Docs Search",
		Description: "Drop-in search for a project's documentation powered by Algolia DocSearch.",
		Score:       68, Category: "Starter",
		Difficulty: models.DifficultyBeginner, TechRequirements: models.TechLowCode,
		Why:            "A fast, visible win that shows the sponsor's product working end to end.",
		Leverages:      []string{"Shows InstantSearch relevance tuning"},
		RequiredSkills: []string{"JavaScript", "HTML"},
		EstimatedTime:  "4-6 hours",
	},
	"figma": {
		ID: "starter-figma", Title: "Design Linter Plugin",
		Description: "Figma plugin that flags off-palette colors and inconsistent spacing.",
		Score:       70, Category: "Starter",
		Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
		Why:            "Plugins are how Figma grows its ecosystem and judges can try it live.",
		Leverages:      []string{"Figma Plugin API", "Design tokens"},
		RequiredSkills: []string{"TypeScript", "Figma Plugin API"},
		EstimatedTime:  "8-10 hours",
	},
	"openai": {
		ID: "starter-openai", Title: "Meeting Notes Summarizer",
		Description: "Turns meeting transcripts into action items with assignees and due dates.",
		Score:       66, Category: "Starter",
		Difficulty: models.DifficultyBeginner, TechRequirements: models.TechLowCode,
		Why:            "Simple prompt engineering with an obvious everyday use.",
		Leverages:      []string{"Structured outputs", "Function calling"},
		RequiredSkills: []string{"Python or JavaScript", "OpenAI API"},
		EstimatedTime:  "4-6 hours",
	},
}

// StarterIdeas returns the starter idea of each known sponsor in sponsor
// order, each listing that sponsor. Unknown and repeated sponsors are
// skipped.
func StarterIdeas(sponsors []string) []models.ProjectIdea {
	var out []models.ProjectIdea
	seen := map[string]bool{}
	for _, s := range sponsors {
		key := strings.ToLower(strings.TrimSpace(s))
		idea, ok := starters[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		idea.Sponsors = []string{s}
		idea.Leverages = append([]string(nil), idea.Leverages...)
		idea.RequiredSkills = append([]string(nil), idea.RequiredSkills...)
		out = append(out, idea)
	}
	return out
}
