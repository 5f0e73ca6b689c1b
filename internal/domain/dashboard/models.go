package dashboard

import (
	"worklog/internal/domain/scoring"
)

// Evaluation is the dashboard payload: the scoring engine's evaluation plus
// the names of the profile and target that produced it.
type Evaluation struct {
	scoring.Evaluation
	WeightProfileName string `json:"weightProfileName,omitempty"`
	TargetName        string `json:"targetName,omitempty"`
}

// Coverage pairs current-level expectation coverage with next-level growth
// suggestions for the active user profile.
type Coverage struct {
	Role        string                        `json:"role"`
	Level       int                           `json:"level"`
	NextLevel   int                           `json:"nextLevel,omitempty"`
	Current     []scoring.ExpectationCoverage `json:"current"`
	Growth      []scoring.GrowthSuggestion    `json:"growth"`
	WindowWeeks []string                      `json:"windowWeeks"`
}
