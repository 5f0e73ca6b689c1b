package scoring

import "strings"

type cannedAdvice struct {
	keyword string
	advice  string
}

var categoryAdvice = []cannedAdvice{
	{"mentor", "Start mentoring a teammate on a recurring weekly basis."},
	{"review", "Raise your review participation and log each session."},
	{"design", "Take ownership of a design document for upcoming work."},
	{"strategy", "Contribute to planning or strategy discussions this quarter."},
	{"coordination", "Volunteer to coordinate a cross-team effort."},
	{"documentation", "Write or overhaul documentation for an area you know well."},
}

var dimensionAdvice = map[string]string{
	DimensionInput:   "Build a weekly habit of logging groundwork in this area.",
	DimensionOutput:  "Aim to ship one concrete deliverable of this kind each week.",
	DimensionOutcome: "Tie this work to a measurable result and track it weekly.",
	DimensionImpact:  "Look for chances where this work influences beyond your own team.",
}

var expectationAdvice = []cannedAdvice{
	{"mentor", "Start mentoring a teammate on a recurring weekly basis."},
	{"lead", "Ask to lead a small initiative end to end."},
	{"design", "Take ownership of a design document for upcoming work."},
	{"strategy", "Contribute to planning or strategy discussions this quarter."},
}

const genericAdvice = "Look for weekly opportunities to practice this and log them as they happen."

// suggestionFor picks one suggestion via a prioritized fallback chain:
// category-name advice, then dimension advice from the matched templates,
// then keyword advice from the expectation text, then a generic sentence.
func suggestionFor(expectation string, matched []Template) string {
	for _, tpl := range matched {
		name := strings.ToLower(tpl.CategoryName)
		for _, canned := range categoryAdvice {
			if strings.Contains(name, canned.keyword) {
				return canned.advice
			}
		}
	}

	for _, tpl := range matched {
		if advice, ok := dimensionAdvice[tpl.Dimension]; ok {
			return advice
		}
	}

	lowered := strings.ToLower(expectation)
	for _, canned := range expectationAdvice {
		if strings.Contains(lowered, canned.keyword) {
			return canned.advice
		}
	}

	return genericAdvice
}
