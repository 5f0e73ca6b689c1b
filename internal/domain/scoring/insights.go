package scoring

import "fmt"

// GenerateInsights evaluates independent heuristic rules over each
// dimension's percentage share of the total and returns the observations in
// rule order. Multiple rules can fire for the same totals. A final line
// always names the highest-share dimension, ties broken by canonical
// dimension order.
func GenerateInsights(totals DimensionTotals) []string {
	total := RawTotal(totals)
	if total == 0 {
		return []string{"No activity logged for this period."}
	}

	share := func(dimension string) float64 {
		return float64(totals[dimension]) / float64(total) * 100
	}
	input := share(DimensionInput)
	output := share(DimensionOutput)
	outcome := share(DimensionOutcome)
	impact := share(DimensionImpact)

	var insights []string
	if input > 40 && outcome < 15 {
		insights = append(insights, "High input activity with low outcome delivery. Consider converting groundwork into shipped results.")
	}
	if output > 50 && impact < 10 {
		insights = append(insights, "Output-heavy week with little strategic impact. Look for work that moves broader goals.")
	}

	topDimension := Dimensions[0]
	topShare := share(Dimensions[0])
	for _, dimension := range Dimensions[1:] {
		if s := share(dimension); s > topShare {
			topDimension = dimension
			topShare = s
		}
	}

	if topShare < 40 {
		insights = append(insights, "Well-balanced distribution across all four dimensions.")
	}
	if impact > 30 {
		insights = append(insights, "Strong impact focus. This profile suits senior roles well.")
	}

	insights = append(insights, fmt.Sprintf("Most points come from %s work (%.0f%% of the total).", topDimension, topShare))
	return insights
}
