package scoring

import (
	"testing"
	"time"
)

func TestEvaluateNoTargetUsesCurrentWeek(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) // ISO week 5
	entries := []LogEntry{
		{Dimension: DimensionInput, ScorePerOccurrence: 10, Count: 1, Week: "2024-W05"},
		{Dimension: DimensionOutput, ScorePerOccurrence: 20, Count: 1, Week: "2024-W04"},
	}

	evaluation := Evaluate(EvaluationInput{Now: now, Entries: entries})
	if len(evaluation.Weeks) != 1 || evaluation.Weeks[0] != "2024-W05" {
		t.Fatalf("expected current-week window, got %v", evaluation.Weeks)
	}
	if evaluation.AggregateScore != 10 {
		t.Fatalf("expected last week's entry excluded, got score %v", evaluation.AggregateScore)
	}
	if evaluation.HasTarget || evaluation.Band != "" {
		t.Fatalf("expected no band without a target, got %q", evaluation.Band)
	}
}

func TestEvaluateRawTotalWithoutWeights(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	entries := []LogEntry{
		{Dimension: DimensionInput, ScorePerOccurrence: 10, Count: 1, Week: "2024-W05"},
		{Dimension: DimensionOutput, ScorePerOccurrence: 20, Count: 1, Week: "2024-W05"},
		{Dimension: DimensionOutcome, ScorePerOccurrence: 10, Count: 1, Week: "2024-W05"},
		{Dimension: DimensionImpact, ScorePerOccurrence: 5, Count: 1, Week: "2024-W05"},
	}

	evaluation := Evaluate(EvaluationInput{Now: now, Entries: entries})
	if evaluation.Weighted {
		t.Fatal("expected unweighted mode without an active profile")
	}
	if evaluation.AggregateScore != 45 {
		t.Fatalf("expected raw total 45, got %v", evaluation.AggregateScore)
	}
}

func TestEvaluateWithTargetAndWeights(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) // ISO week 5
	weights := Weights{Input: 0.3, Output: 0.4, Outcome: 0.2, Impact: 0.1}
	target := Target{
		Thresholds:      Thresholds{Outstanding: 300, Strong: 230, Meeting: 170, Partial: 140, Underperforming: 120},
		TimePeriodWeeks: 4,
	}
	entries := []LogEntry{
		{Dimension: DimensionOutput, ScorePerOccurrence: 100, Count: 2, Week: "2024-W03"},
		{Dimension: DimensionOutput, ScorePerOccurrence: 100, Count: 2, Week: "2024-W05"},
		// Outside the four-week window.
		{Dimension: DimensionOutput, ScorePerOccurrence: 100, Count: 5, Week: "2024-W01"},
	}

	evaluation := Evaluate(EvaluationInput{Now: now, Entries: entries, Weights: &weights, Target: &target})
	if len(evaluation.Weeks) != 4 {
		t.Fatalf("expected 4-week window, got %v", evaluation.Weeks)
	}
	// 400 output points at weight 0.4.
	if evaluation.AggregateScore != 160 {
		t.Fatalf("expected aggregate 160, got %v", evaluation.AggregateScore)
	}
	if !evaluation.HasTarget || evaluation.Band != BandPartial {
		t.Fatalf("expected partially-meeting band, got %q", evaluation.Band)
	}
	if len(evaluation.WeeklyScores) != 4 {
		t.Fatalf("expected a score per window week, got %d", len(evaluation.WeeklyScores))
	}
	if evaluation.WeeklyScores[0].Week != "2024-W02" || evaluation.WeeklyScores[0].Score != 0 {
		t.Fatalf("unexpected first week score: %+v", evaluation.WeeklyScores[0])
	}
	if evaluation.WeeklyScores[3].Score != 80 {
		t.Fatalf("expected current week score 80, got %v", evaluation.WeeklyScores[3].Score)
	}
}

func TestEvaluateBreakdownShares(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	weights := Weights{Input: 0.25, Output: 0.25, Outcome: 0.25, Impact: 0.25}
	entries := []LogEntry{
		{Dimension: DimensionInput, ScorePerOccurrence: 30, Count: 1, Week: "2024-W05"},
		{Dimension: DimensionOutput, ScorePerOccurrence: 70, Count: 1, Week: "2024-W05"},
	}

	evaluation := Evaluate(EvaluationInput{Now: now, Entries: entries, Weights: &weights})
	if len(evaluation.Breakdown) != 4 {
		t.Fatalf("expected 4 breakdown rows, got %d", len(evaluation.Breakdown))
	}
	if evaluation.Breakdown[0].Dimension != DimensionInput || evaluation.Breakdown[0].Share != 30 {
		t.Fatalf("unexpected input row: %+v", evaluation.Breakdown[0])
	}
	if evaluation.Breakdown[1].Share != 70 || evaluation.Breakdown[1].Weight != 0.25 {
		t.Fatalf("unexpected output row: %+v", evaluation.Breakdown[1])
	}
}
