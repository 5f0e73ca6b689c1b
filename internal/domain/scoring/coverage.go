package scoring

import (
	"regexp"
	"strings"
)

var stopWords = map[string]struct{}{
	"should": {}, "must": {}, "can": {}, "will": {},
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// ExtractKeywords tokenizes an expectation sentence into at most five
// lowercase keywords: stop words removed, non-word characters stripped,
// tokens of length two or less discarded. Deterministic for a given input.
func ExtractKeywords(sentence string) []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(sentence)) {
		token = nonWord.ReplaceAllString(token, "")
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords
}

// TemplateMatcher decides whether a category template is relevant to an
// expectation sentence. The default heuristic is coarse; the interface lets
// callers swap it without touching the analyzer.
type TemplateMatcher interface {
	Matches(expectation string, tpl Template) bool
}

// KeywordMatcher matches extracted keywords as substrings of the template
// name or description, or the first word of the template name as a substring
// of a keyword.
type KeywordMatcher struct{}

func (KeywordMatcher) Matches(expectation string, tpl Template) bool {
	name := strings.ToLower(tpl.CategoryName)
	description := strings.ToLower(tpl.Description)
	firstWord := name
	if idx := strings.IndexByte(name, ' '); idx >= 0 {
		firstWord = name[:idx]
	}

	for _, keyword := range ExtractKeywords(expectation) {
		if strings.Contains(name, keyword) || strings.Contains(description, keyword) {
			return true
		}
		if firstWord != "" && strings.Contains(keyword, firstWord) {
			return true
		}
	}
	return false
}

// AnalyzeCoverage classifies each current-level expectation against the
// period's logged activity: "consistent" with activity in three or more
// distinct weeks on a matching category, "evidenced" with any activity, else
// "not_evidenced".
func AnalyzeCoverage(expectations []string, templates []Template, entries []LogEntry, matcher TemplateMatcher) []ExpectationCoverage {
	results := make([]ExpectationCoverage, 0, len(expectations))
	for _, expectation := range expectations {
		matched := matchingTemplates(expectation, templates, matcher)

		weeksCovered := 0
		for _, tpl := range matched {
			if weeks := activeWeeks(entries, tpl.CategoryName); weeks > weeksCovered {
				weeksCovered = weeks
			}
		}

		status := CoverageNotEvidenced
		switch {
		case weeksCovered >= consistentWeeks:
			status = CoverageConsistent
		case weeksCovered > 0:
			status = CoverageEvidenced
		}

		results = append(results, ExpectationCoverage{
			Expectation:       expectation,
			Status:            status,
			WeeksCovered:      weeksCovered,
			MatchedCategories: templateNames(matched),
		})
	}
	return results
}

// GrowthSuggestions classifies each next-level expectation as "emerging" when
// any matching template already shows activity, else "missing", and attaches
// exactly one suggestion sentence.
func GrowthSuggestions(expectations []string, templates []Template, entries []LogEntry, matcher TemplateMatcher) []GrowthSuggestion {
	results := make([]GrowthSuggestion, 0, len(expectations))
	for _, expectation := range expectations {
		matched := matchingTemplates(expectation, templates, matcher)

		status := GrowthMissing
		for _, tpl := range matched {
			if activeWeeks(entries, tpl.CategoryName) > 0 {
				status = GrowthEmerging
				break
			}
		}

		results = append(results, GrowthSuggestion{
			Expectation:       expectation,
			Status:            status,
			Suggestion:        suggestionFor(expectation, matched),
			MatchedCategories: templateNames(matched),
		})
	}
	return results
}

func matchingTemplates(expectation string, templates []Template, matcher TemplateMatcher) []Template {
	var matched []Template
	for _, tpl := range templates {
		if matcher.Matches(expectation, tpl) {
			matched = append(matched, tpl)
		}
	}
	return matched
}

// activeWeeks counts distinct weeks with a positive count on entries whose
// category name fuzzy-matches the template's category name.
func activeWeeks(entries []LogEntry, categoryName string) int {
	target := strings.ToLower(categoryName)
	weeks := map[string]struct{}{}
	for _, entry := range entries {
		if entry.Count <= 0 {
			continue
		}
		name := strings.ToLower(entry.CategoryName)
		if !strings.Contains(name, target) && !strings.Contains(target, name) {
			continue
		}
		weeks[entry.Week] = struct{}{}
	}
	return len(weeks)
}

func templateNames(templates []Template) []string {
	names := make([]string, 0, len(templates))
	for _, tpl := range templates {
		names = append(names, tpl.CategoryName)
	}
	return names
}
