package scoring

// WeightedScore combines dimension totals with a weight profile into one
// scalar. Dimensions absent from the map contribute zero. Rounding for
// display is the caller's concern.
func WeightedScore(totals DimensionTotals, weights Weights) float64 {
	return float64(totals[DimensionInput])*weights.Input +
		float64(totals[DimensionOutput])*weights.Output +
		float64(totals[DimensionOutcome])*weights.Outcome +
		float64(totals[DimensionImpact])*weights.Impact
}

// RawTotal is the unweighted sum of all dimension totals. It is the scoring
// mode used when no weight profile is active, distinct from equal weighting.
func RawTotal(totals DimensionTotals) int {
	sum := 0
	for _, dimension := range Dimensions {
		sum += totals[dimension]
	}
	return sum
}
