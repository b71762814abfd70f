package models

// Difficulty levels of a project idea.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Technical requirement levels of a project idea.
const (
	TechLowCode         = "low-code"
	TechModerate        = "moderate"
	TechHighlyTechnical = "highly-technical"
)

// Relevance levels of a leverage.
const (
	RelevanceHigh   = "high"
	RelevanceMedium = "medium"
	RelevanceLow    = "low"
)

// ProjectIdea is a ranked hackathon project suggestion. Score is expected
// to fall in 0..100 but is not clamped.
type ProjectIdea struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Score            float64  `json:"score"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	TechRequirements string   `json:"techRequirements"`
	Sponsors         []string `json:"sponsors"`
	Why              string   `json:"why"`
	Leverages        []string `json:"leverages"`
	RequiredSkills   []string `json:"requiredSkills"`
	EstimatedTime    string   `json:"estimatedTime"`
}

// Leverage is a strategic angle that aligns a project with a sponsor's goals.
type Leverage struct {
	ID              string `json:"id"`
	Leverage        string `json:"leverage"`
	StrategicImpact string `json:"strategicImpact"`
	Description     string `json:"description"`
	Company         string `json:"company"`
	Relevance       string `json:"relevance"`
}

// DifficultyRank orders difficulties from easiest to hardest. Unknown values
// sort after every known one.
func DifficultyRank(d string) int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 4
	}
}
