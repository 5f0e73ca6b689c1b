package scoring

// EffectiveScore returns the entry's override score when one is set, else
// count times the category's per-occurrence score.
func EffectiveScore(entry LogEntry) int {
	if entry.OverrideScore != nil {
		return *entry.OverrideScore
	}
	return entry.Count * entry.ScorePerOccurrence
}

// AggregateDimensions reduces a collection of log entries into per-dimension
// point totals. The result always carries exactly the four dimension keys.
// Entries whose dimension is not one of the four are dropped, never misfiled.
func AggregateDimensions(entries []LogEntry) DimensionTotals {
	totals := DimensionTotals{
		DimensionInput:   0,
		DimensionOutput:  0,
		DimensionOutcome: 0,
		DimensionImpact:  0,
	}
	for _, entry := range entries {
		if _, known := totals[entry.Dimension]; !known {
			continue
		}
		totals[entry.Dimension] += EffectiveScore(entry)
	}
	return totals
}
