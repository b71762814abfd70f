// Package catalog derives the displayed idea list from filters and sort
// order. Every function here is pure.
package catalog

import (
	"slices"
	"sort"

	"whattohack-api/internal/models"
)

// Sort keys.
const (
	SortScore      = "score"
	SortDifficulty = "difficulty"
)

// Filters narrows the idea list. An empty slice disables that filter.
type Filters struct {
	Sponsors         []string `form:"sponsor" json:"sponsors"`
	Difficulty       []string `form:"difficulty" json:"difficulty"`
	TechRequirements []string `form:"tech" json:"techRequirements"`
}

// ActiveCount is the number of selected filter values.
func (f Filters) ActiveCount() int {
	return len(f.Sponsors) + len(f.Difficulty) + len(f.TechRequirements)
}

// Match reports whether idea passes every active filter.
func (f Filters) Match(idea models.ProjectIdea) bool {
	if len(f.Sponsors) > 0 && !slices.ContainsFunc(idea.Sponsors, func(s string) bool {
		return slices.Contains(f.Sponsors, s)
	}) {
		return false
	}
	if len(f.Difficulty) > 0 && !slices.Contains(f.Difficulty, idea.Difficulty) {
		return false
	}
	if len(f.TechRequirements) > 0 && !slices.Contains(f.TechRequirements, idea.TechRequirements) {
		return false
	}
	return true
}

// Derive filters items and sorts the survivors. Unknown sort keys sort by
// score. The sort is stable and the input is never modified.
func Derive(items []models.ProjectIdea, f Filters, sortBy string) []models.ProjectIdea {
	out := make([]models.ProjectIdea, 0, len(items))
	for _, idea := range items {
		if f.Match(idea) {
			out = append(out, idea)
		}
	}

	switch sortBy {
	case SortDifficulty:
		sort.SliceStable(out, func(i, j int) bool {
			return models.DifficultyRank(out[i].Difficulty) < models.DifficultyRank(out[j].Difficulty)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score > out[j].Score
		})
	}
	return out
}

// Combine concatenates starter ideas for sponsors with generated ideas.
func Combine(sponsors []string, generated []models.ProjectIdea) []models.ProjectIdea {
	starters := StarterIdeas(sponsors)
	out := make([]models.ProjectIdea, 0, len(starters)+len(generated))
	out = append(out, starters...)
	return append(out, generated...)
}
