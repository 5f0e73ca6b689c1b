package scoring

import "testing"

func TestAggregateDimensions(t *testing.T) {
	entries := []LogEntry{
		{CategoryName: "Code Review", Dimension: DimensionInput, ScorePerOccurrence: 3, Week: "2024-W01", Count: 1},
		{CategoryName: "Code Review", Dimension: DimensionInput, ScorePerOccurrence: 3, Week: "2024-W02", Count: 1},
		{CategoryName: "Code Review", Dimension: DimensionInput, ScorePerOccurrence: 3, Week: "2024-W03", Count: 1},
	}

	totals := AggregateDimensions(entries)
	if totals[DimensionInput] != 9 {
		t.Fatalf("expected input total 9, got %d", totals[DimensionInput])
	}
	for _, dimension := range []string{DimensionOutput, DimensionOutcome, DimensionImpact} {
		if totals[dimension] != 0 {
			t.Fatalf("expected %s total 0, got %d", dimension, totals[dimension])
		}
	}
}

func TestAggregateDimensionsTotalInvariant(t *testing.T) {
	override := 7
	entries := []LogEntry{
		{Dimension: DimensionInput, ScorePerOccurrence: 3, Count: 2},
		{Dimension: DimensionOutput, ScorePerOccurrence: 10, Count: 1},
		{Dimension: DimensionImpact, ScorePerOccurrence: 5, Count: 4, OverrideScore: &override},
	}

	expected := 0
	for _, entry := range entries {
		expected += EffectiveScore(entry)
	}

	totals := AggregateDimensions(entries)
	if sum := RawTotal(totals); sum != expected {
		t.Fatalf("expected totals to sum to %d, got %d", expected, sum)
	}
}

func TestAggregateDimensionsDropsUnknown(t *testing.T) {
	entries := []LogEntry{
		{Dimension: DimensionOutput, ScorePerOccurrence: 2, Count: 3},
		{Dimension: "velocity", ScorePerOccurrence: 100, Count: 1},
		{Dimension: "", ScorePerOccurrence: 100, Count: 1},
	}

	totals := AggregateDimensions(entries)
	if len(totals) != 4 {
		t.Fatalf("expected exactly 4 dimension keys, got %d", len(totals))
	}
	if sum := RawTotal(totals); sum != 6 {
		t.Fatalf("expected unknown dimensions dropped, total 6, got %d", sum)
	}
}

func TestEffectiveScoreOverride(t *testing.T) {
	override := 12
	entry := LogEntry{Dimension: DimensionOutcome, ScorePerOccurrence: 5, Count: 4, OverrideScore: &override}
	if score := EffectiveScore(entry); score != 12 {
		t.Fatalf("expected override score 12, got %d", score)
	}

	entry.OverrideScore = nil
	if score := EffectiveScore(entry); score != 20 {
		t.Fatalf("expected computed score 20, got %d", score)
	}
}
