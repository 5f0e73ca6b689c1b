package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"worklog/internal/domain/scoring"
	"worklog/internal/domain/settings"
	"worklog/internal/domain/tracker"
)

type fakeTracker struct {
	activity     []tracker.LoggedActivity
	templates    map[int][]tracker.CategoryTemplate
	expectations map[int][]string
	weeksAsked   []string
}

func (f *fakeTracker) ActivityForWeeks(_ context.Context, weeks []string) ([]tracker.LoggedActivity, error) {
	f.weeksAsked = weeks
	asked := map[string]bool{}
	for _, week := range weeks {
		asked[week] = true
	}
	var out []tracker.LoggedActivity
	for _, row := range f.activity {
		if asked[row.Week] {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTracker) ListTemplates(_ context.Context, _ string, level int) ([]tracker.CategoryTemplate, error) {
	return f.templates[level], nil
}

func (f *fakeTracker) Expectations(_ context.Context, _ string, level int) ([]string, error) {
	return f.expectations[level], nil
}

type fakeSettings struct {
	profile *settings.RoleWeightProfile
	target  *settings.PerformanceTarget
	user    *settings.UserProfile
}

func (f *fakeSettings) ActiveWeightProfile(context.Context) (settings.RoleWeightProfile, bool, error) {
	if f.profile == nil {
		return settings.RoleWeightProfile{}, false, nil
	}
	return *f.profile, true, nil
}

func (f *fakeSettings) ActiveTarget(context.Context) (settings.PerformanceTarget, bool, error) {
	if f.target == nil {
		return settings.PerformanceTarget{}, false, nil
	}
	return *f.target, true, nil
}

func (f *fakeSettings) ActiveUserProfile(context.Context) (settings.UserProfile, bool, error) {
	if f.user == nil {
		return settings.UserProfile{}, false, nil
	}
	return *f.user, true, nil
}

var testNow = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) // ISO week 5

func TestEvaluationNoActiveRecords(t *testing.T) {
	trackerAPI := &fakeTracker{activity: []tracker.LoggedActivity{
		{CategoryName: "Code Review", Dimension: scoring.DimensionInput, ScorePerOccurrence: 15, Week: "2024-W05", Count: 3},
	}}
	service := NewService(trackerAPI, &fakeSettings{})

	evaluation, err := service.Evaluation(context.Background(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evaluation.Weighted {
		t.Fatal("expected raw-total mode without an active weight profile")
	}
	if evaluation.AggregateScore != 45 {
		t.Fatalf("expected raw total 45, got %v", evaluation.AggregateScore)
	}
	if evaluation.HasTarget {
		t.Fatal("expected no-target state")
	}
	if len(trackerAPI.weeksAsked) != 1 {
		t.Fatalf("expected current-week fetch, got %v", trackerAPI.weeksAsked)
	}
}

func TestEvaluationWithActiveTarget(t *testing.T) {
	trackerAPI := &fakeTracker{activity: []tracker.LoggedActivity{
		{CategoryName: "Feature Shipped", Dimension: scoring.DimensionOutput, ScorePerOccurrence: 100, Week: "2024-W04", Count: 2},
		{CategoryName: "Feature Shipped", Dimension: scoring.DimensionOutput, ScorePerOccurrence: 100, Week: "2024-W05", Count: 2},
	}}
	settingsAPI := &fakeSettings{
		profile: &settings.RoleWeightProfile{Name: "IC4", InputWeight: 0.3, OutputWeight: 0.4, OutcomeWeight: 0.2, ImpactWeight: 0.1},
		target: &settings.PerformanceTarget{
			Name:                     "IC4 Quarter",
			OutstandingThreshold:     300,
			StrongThreshold:          230,
			MeetingThreshold:         170,
			PartialThreshold:         140,
			UnderperformingThreshold: 120,
			TimePeriodWeeks:          4,
		},
	}
	service := NewService(trackerAPI, settingsAPI)

	evaluation, err := service.Evaluation(context.Background(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !evaluation.Weighted || evaluation.WeightProfileName != "IC4" {
		t.Fatalf("expected weighted evaluation for IC4, got %+v", evaluation)
	}
	// 400 output points at weight 0.4.
	if evaluation.AggregateScore != 160 {
		t.Fatalf("expected aggregate 160, got %v", evaluation.AggregateScore)
	}
	if evaluation.Band != scoring.BandPartial {
		t.Fatalf("expected partial band, got %q", evaluation.Band)
	}
	if len(trackerAPI.weeksAsked) != 4 {
		t.Fatalf("expected 4-week fetch, got %v", trackerAPI.weeksAsked)
	}
}

func TestCoverageRequiresActiveProfile(t *testing.T) {
	service := NewService(&fakeTracker{}, &fakeSettings{})
	if _, err := service.Coverage(context.Background(), testNow); !errors.Is(err, ErrNoActiveProfile) {
		t.Fatalf("expected ErrNoActiveProfile, got %v", err)
	}
}

func TestCoverageCurrentAndNextLevel(t *testing.T) {
	trackerAPI := &fakeTracker{
		activity: []tracker.LoggedActivity{
			{CategoryName: "Code Review", Dimension: scoring.DimensionInput, ScorePerOccurrence: 3, Week: "2024-W03", Count: 1},
			{CategoryName: "Code Review", Dimension: scoring.DimensionInput, ScorePerOccurrence: 3, Week: "2024-W04", Count: 1},
			{CategoryName: "Code Review", Dimension: scoring.DimensionInput, ScorePerOccurrence: 3, Week: "2024-W05", Count: 1},
		},
		templates: map[int][]tracker.CategoryTemplate{
			4: {{CategoryName: "Code Review", Dimension: scoring.DimensionInput}},
			5: {{CategoryName: "Mentoring Session", Dimension: scoring.DimensionImpact}},
		},
		expectations: map[int][]string{
			4: {"Should participate in code review weekly"},
			5: {"Should mentor junior engineers"},
		},
	}
	settingsAPI := &fakeSettings{
		user: &settings.UserProfile{Role: settings.RoleIC, Level: 4},
		target: &settings.PerformanceTarget{
			OutstandingThreshold: 300, StrongThreshold: 230, MeetingThreshold: 170,
			PartialThreshold: 140, UnderperformingThreshold: 120, TimePeriodWeeks: 4,
		},
	}
	service := NewService(trackerAPI, settingsAPI)

	coverage, err := service.Coverage(context.Background(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coverage.Level != 4 || coverage.NextLevel != 5 {
		t.Fatalf("expected level 4 with next level 5, got %+v", coverage)
	}
	if len(coverage.Current) != 1 || coverage.Current[0].Status != scoring.CoverageConsistent {
		t.Fatalf("expected consistent coverage, got %+v", coverage.Current)
	}
	if len(coverage.Growth) != 1 || coverage.Growth[0].Status != scoring.GrowthMissing {
		t.Fatalf("expected missing growth status, got %+v", coverage.Growth)
	}
	if coverage.Growth[0].Suggestion == "" {
		t.Fatal("expected a growth suggestion")
	}
}

func TestCoverageTopLevelHasNoNextLevel(t *testing.T) {
	trackerAPI := &fakeTracker{
		templates:    map[int][]tracker.CategoryTemplate{},
		expectations: map[int][]string{},
	}
	settingsAPI := &fakeSettings{user: &settings.UserProfile{Role: settings.RoleIC, Level: 8}}
	service := NewService(trackerAPI, settingsAPI)

	coverage, err := service.Coverage(context.Background(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coverage.NextLevel != 0 || coverage.Growth != nil {
		t.Fatalf("expected no next-level analysis at the top level, got %+v", coverage)
	}
}
