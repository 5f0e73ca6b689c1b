package scoring

const (
	DimensionInput   = "input"
	DimensionOutput  = "output"
	DimensionOutcome = "outcome"
	DimensionImpact  = "impact"
)

// Dimensions lists the four work dimensions in their canonical order.
// Tie-breaks in insight generation rely on this order.
var Dimensions = []string{DimensionInput, DimensionOutput, DimensionOutcome, DimensionImpact}

const (
	BandOutstanding     = "Outstanding"
	BandStrong          = "Strong Performance"
	BandMeeting         = "Meeting Expectations"
	BandPartial         = "Partially Meeting Expectations"
	BandUnderperforming = "Underperforming"
)

const (
	CoverageConsistent   = "consistent"
	CoverageEvidenced    = "evidenced"
	CoverageNotEvidenced = "not_evidenced"
	GrowthEmerging       = "emerging"
	GrowthMissing        = "missing"
)

// consistentWeeks is the distinct-weeks-with-activity bar for "consistent" coverage.
const consistentWeeks = 3
