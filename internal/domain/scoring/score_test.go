package scoring

import (
	"math"
	"testing"
)

func TestWeightedScore(t *testing.T) {
	totals := DimensionTotals{DimensionInput: 9}
	weights := Weights{Input: 0.3, Output: 0.4, Outcome: 0.2, Impact: 0.1}

	score := WeightedScore(totals, weights)
	if math.Abs(score-2.7) > 1e-9 {
		t.Fatalf("expected 2.7, got %v", score)
	}
}

func TestWeightedScoreLinearity(t *testing.T) {
	entries := []LogEntry{
		{Dimension: DimensionInput, ScorePerOccurrence: 3, Count: 2},
		{Dimension: DimensionOutput, ScorePerOccurrence: 10, Count: 1},
		{Dimension: DimensionImpact, ScorePerOccurrence: 8, Count: 2},
	}
	doubled := make([]LogEntry, len(entries))
	for i, entry := range entries {
		entry.Count *= 2
		doubled[i] = entry
	}

	weights := Weights{Input: 0.25, Output: 0.35, Outcome: 0.15, Impact: 0.25}
	base := WeightedScore(AggregateDimensions(entries), weights)
	twice := WeightedScore(AggregateDimensions(doubled), weights)
	if math.Abs(twice-2*base) > 1e-9 {
		t.Fatalf("expected %v, got %v", 2*base, twice)
	}
}

func TestWeightedScoreMissingDimensions(t *testing.T) {
	score := WeightedScore(DimensionTotals{}, Weights{Input: 0.5, Output: 0.5})
	if score != 0 {
		t.Fatalf("expected 0 for empty totals, got %v", score)
	}
	if math.IsNaN(score) {
		t.Fatal("score must never be NaN")
	}
}

func TestRawTotal(t *testing.T) {
	totals := DimensionTotals{
		DimensionInput:   10,
		DimensionOutput:  20,
		DimensionOutcome: 10,
		DimensionImpact:  5,
	}
	if sum := RawTotal(totals); sum != 45 {
		t.Fatalf("expected raw total 45, got %d", sum)
	}
}
