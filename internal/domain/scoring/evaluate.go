package scoring

import "time"

// EvaluationInput carries everything a single evaluation pass needs. Weights
// and Target are nil when no profile or target is active.
type EvaluationInput struct {
	Now     time.Time
	Entries []LogEntry
	Weights *Weights
	Target  *Target
}

// WeekScore is one week's scalar score, for trend rendering.
type WeekScore struct {
	Week  string  `json:"week"`
	Score float64 `json:"score"`
}

// DimensionBreakdown is one dimension's slice of the evaluation window.
type DimensionBreakdown struct {
	Dimension string  `json:"dimension"`
	Points    int     `json:"points"`
	Share     float64 `json:"share"`
	Weight    float64 `json:"weight"`
}

// Evaluation is the full result of one evaluation pass.
type Evaluation struct {
	Weeks          []string             `json:"weeks"`
	WeeklyScores   []WeekScore          `json:"weeklyScores"`
	AggregateScore float64              `json:"aggregateScore"`
	Weighted       bool                 `json:"weighted"`
	Totals         DimensionTotals      `json:"totals"`
	Breakdown      []DimensionBreakdown `json:"breakdown"`
	HasTarget      bool                 `json:"hasTarget"`
	Band           string               `json:"band,omitempty"`
	Insights       []string             `json:"insights"`
}

// Evaluate computes per-week scores, the window aggregate, the dimension
// breakdown, the performance band and insights for one evaluation window.
// The window length comes from the active target; with no target active it
// is the current week only. Inputs are never mutated.
func Evaluate(in EvaluationInput) Evaluation {
	windowWeeks := 1
	if in.Target != nil && in.Target.TimePeriodWeeks > 0 {
		windowWeeks = in.Target.TimePeriodWeeks
	}
	weeks := RecentWeeks(in.Now, windowWeeks)

	inWindow := map[string]bool{}
	for _, week := range weeks {
		inWindow[week] = true
	}
	byWeek := map[string][]LogEntry{}
	var windowEntries []LogEntry
	for _, entry := range in.Entries {
		if !inWindow[entry.Week] {
			continue
		}
		windowEntries = append(windowEntries, entry)
		byWeek[entry.Week] = append(byWeek[entry.Week], entry)
	}

	score := func(totals DimensionTotals) float64 {
		if in.Weights != nil {
			return WeightedScore(totals, *in.Weights)
		}
		return float64(RawTotal(totals))
	}

	weeklyScores := make([]WeekScore, 0, len(weeks))
	for _, week := range weeks {
		weeklyScores = append(weeklyScores, WeekScore{
			Week:  week,
			Score: score(AggregateDimensions(byWeek[week])),
		})
	}

	totals := AggregateDimensions(windowEntries)

	evaluation := Evaluation{
		Weeks:          weeks,
		WeeklyScores:   weeklyScores,
		AggregateScore: score(totals),
		Weighted:       in.Weights != nil,
		Totals:         totals,
		Breakdown:      breakdown(totals, in.Weights),
		Insights:       GenerateInsights(totals),
	}
	if in.Target != nil {
		evaluation.HasTarget = true
		evaluation.Band = ClassifyScore(evaluation.AggregateScore, in.Target.Thresholds)
	}
	return evaluation
}

func breakdown(totals DimensionTotals, weights *Weights) []DimensionBreakdown {
	total := RawTotal(totals)
	rows := make([]DimensionBreakdown, 0, len(Dimensions))
	for _, dimension := range Dimensions {
		row := DimensionBreakdown{Dimension: dimension, Points: totals[dimension]}
		if total > 0 {
			row.Share = float64(totals[dimension]) / float64(total) * 100
		}
		if weights != nil {
			switch dimension {
			case DimensionInput:
				row.Weight = weights.Input
			case DimensionOutput:
				row.Weight = weights.Output
			case DimensionOutcome:
				row.Weight = weights.Outcome
			case DimensionImpact:
				row.Weight = weights.Impact
			}
		}
		rows = append(rows, row)
	}
	return rows
}
