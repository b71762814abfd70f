package models

import (
	"fmt"
	"slices"
)

var (
	technicalLevels  = []string{"beginner", "hobbyist", "professional"}
	commitmentLevels = []string{"casual", "balanced", "hardcore"}
	teamSizes        = []string{"1", "2", "3", "4+"}
	intentions       = []string{"get-hired", "win-prize", "launch-startup", "build-portfolio", "learn-tech", "network"}
)

// OnboardingProfile captures the participant's answers. Intentions are in
// priority order, first chosen first.
type OnboardingProfile struct {
	TechnicalLevel  string   `json:"technicalLevel,omitempty"`
	CommitmentLevel string   `json:"commitmentLevel,omitempty"`
	TeamSize        string   `json:"teamSize,omitempty"`
	Intentions      []string `json:"intentions"`
}

// IsEmpty reports whether no answer was given, as after a skipped onboarding.
func (p OnboardingProfile) IsEmpty() bool {
	return p.TechnicalLevel == "" && p.CommitmentLevel == "" && p.TeamSize == "" && len(p.Intentions) == 0
}

// Normalize validates every answer and returns a copy with duplicate
// intentions removed, keeping the first occurrence.
func (p OnboardingProfile) Normalize() (OnboardingProfile, error) {
	if err := checkOption("technicalLevel", p.TechnicalLevel, technicalLevels); err != nil {
		return OnboardingProfile{}, err
	}
	if err := checkOption("commitmentLevel", p.CommitmentLevel, commitmentLevels); err != nil {
		return OnboardingProfile{}, err
	}
	if err := checkOption("teamSize", p.TeamSize, teamSizes); err != nil {
		return OnboardingProfile{}, err
	}

	out := p
	out.Intentions = make([]string, 0, len(p.Intentions))
	for _, in := range p.Intentions {
		if !slices.Contains(intentions, in) {
			return OnboardingProfile{}, fmt.Errorf("invalid intention %q", in)
		}
		if !slices.Contains(out.Intentions, in) {
			out.Intentions = append(out.Intentions, in)
		}
	}
	return out, nil
}

func checkOption(field, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q", field, value)
}
