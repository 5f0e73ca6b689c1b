package scoring

// LogEntry is one week's activity for one category, denormalized with the
// category fields the engine needs. Entries referencing a deleted category
// arrive with an empty dimension and are ignored during aggregation.
type LogEntry struct {
	CategoryName       string
	Dimension          string
	ScorePerOccurrence int
	Week               string
	Count              int
	OverrideScore      *int
	Reference          string
}

// DimensionTotals maps each of the four dimensions to its summed points.
type DimensionTotals map[string]int

// Weights is a role's dimension weight profile. Each weight is a fraction in
// [0,1]; a fully specified profile sums to 1.0.
type Weights struct {
	Input   float64
	Output  float64
	Outcome float64
	Impact  float64
}

// Thresholds is a five-band target definition with strictly descending values.
type Thresholds struct {
	Outstanding     int
	Strong          int
	Meeting         int
	Partial         int
	Underperforming int
}

// Target pairs band thresholds with the evaluation window they apply to.
type Target struct {
	Thresholds      Thresholds
	TimePeriodWeeks int
}

// Template is a role/level recommended category used for expectation matching.
type Template struct {
	Role                string
	Level               int
	CategoryName        string
	Dimension           string
	ScorePerOccurrence  int
	ExpectedWeeklyCount float64
	Description         string
}

// ExpectationCoverage classifies one current-level expectation against the
// logged activity of the evaluation period.
type ExpectationCoverage struct {
	Expectation       string   `json:"expectation"`
	Status            string   `json:"status"`
	WeeksCovered      int      `json:"weeksCovered"`
	MatchedCategories []string `json:"matchedCategories"`
}

// GrowthSuggestion classifies one next-level expectation and carries exactly
// one suggestion sentence.
type GrowthSuggestion struct {
	Expectation       string   `json:"expectation"`
	Status            string   `json:"status"`
	Suggestion        string   `json:"suggestion"`
	MatchedCategories []string `json:"matchedCategories"`
}
