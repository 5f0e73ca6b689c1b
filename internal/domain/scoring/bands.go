package scoring

// ClassifyScore maps a scalar score to one of the five performance bands,
// evaluated top-down. Ties go to the higher band. Callers must represent
// "no active target" as a separate state and not invoke the classifier.
func ClassifyScore(score float64, t Thresholds) string {
	switch {
	case score >= float64(t.Outstanding):
		return BandOutstanding
	case score >= float64(t.Strong):
		return BandStrong
	case score >= float64(t.Meeting):
		return BandMeeting
	case score >= float64(t.Partial):
		return BandPartial
	default:
		return BandUnderperforming
	}
}
