package dashboard

import (
	"context"
	"errors"
	"time"

	"worklog/internal/domain/scoring"
	"worklog/internal/domain/settings"
	"worklog/internal/domain/tracker"
)

// ErrNoActiveProfile is returned by Coverage when no user profile is active.
var ErrNoActiveProfile = errors.New("no active user profile")

type TrackerAPI interface {
	ActivityForWeeks(ctx context.Context, weeks []string) ([]tracker.LoggedActivity, error)
	ListTemplates(ctx context.Context, role string, level int) ([]tracker.CategoryTemplate, error)
	Expectations(ctx context.Context, role string, level int) ([]string, error)
}

type SettingsAPI interface {
	ActiveWeightProfile(ctx context.Context) (settings.RoleWeightProfile, bool, error)
	ActiveTarget(ctx context.Context) (settings.PerformanceTarget, bool, error)
	ActiveUserProfile(ctx context.Context) (settings.UserProfile, bool, error)
}

// Service gathers stored inputs and runs the scoring engine over them.
type Service struct {
	tracker  TrackerAPI
	settings SettingsAPI
	matcher  scoring.TemplateMatcher
}

func NewService(trackerAPI TrackerAPI, settingsAPI SettingsAPI) *Service {
	return &Service{tracker: trackerAPI, settings: settingsAPI, matcher: scoring.KeywordMatcher{}}
}

// WithMatcher swaps the template matching strategy used for coverage analysis.
func (s *Service) WithMatcher(matcher scoring.TemplateMatcher) *Service {
	if matcher != nil {
		s.matcher = matcher
	}
	return s
}

// Evaluation computes the scoring dashboard for the window defined by the
// active target, or the current week when none is active.
func (s *Service) Evaluation(ctx context.Context, now time.Time) (Evaluation, error) {
	input := scoring.EvaluationInput{Now: now}
	result := Evaluation{}

	profile, hasProfile, err := s.settings.ActiveWeightProfile(ctx)
	if err != nil {
		return Evaluation{}, err
	}
	if hasProfile {
		input.Weights = &scoring.Weights{
			Input:   profile.InputWeight,
			Output:  profile.OutputWeight,
			Outcome: profile.OutcomeWeight,
			Impact:  profile.ImpactWeight,
		}
		result.WeightProfileName = profile.Name
	}

	target, hasTarget, err := s.settings.ActiveTarget(ctx)
	if err != nil {
		return Evaluation{}, err
	}
	windowWeeks := 1
	if hasTarget {
		input.Target = &scoring.Target{
			Thresholds: scoring.Thresholds{
				Outstanding:     target.OutstandingThreshold,
				Strong:          target.StrongThreshold,
				Meeting:         target.MeetingThreshold,
				Partial:         target.PartialThreshold,
				Underperforming: target.UnderperformingThreshold,
			},
			TimePeriodWeeks: target.TimePeriodWeeks,
		}
		result.TargetName = target.Name
		if target.TimePeriodWeeks > 0 {
			windowWeeks = target.TimePeriodWeeks
		}
	}

	weeks := scoring.RecentWeeks(now, windowWeeks)
	activity, err := s.tracker.ActivityForWeeks(ctx, weeks)
	if err != nil {
		return Evaluation{}, err
	}
	input.Entries = toEntries(activity)

	result.Evaluation = scoring.Evaluate(input)
	return result, nil
}

// Coverage analyzes expectation coverage for the active user profile's level
// and growth suggestions for the level above it, over the same evaluation
// window the dashboard uses.
func (s *Service) Coverage(ctx context.Context, now time.Time) (Coverage, error) {
	user, hasUser, err := s.settings.ActiveUserProfile(ctx)
	if err != nil {
		return Coverage{}, err
	}
	if !hasUser {
		return Coverage{}, ErrNoActiveProfile
	}

	windowWeeks := 1
	if target, hasTarget, err := s.settings.ActiveTarget(ctx); err != nil {
		return Coverage{}, err
	} else if hasTarget && target.TimePeriodWeeks > 0 {
		windowWeeks = target.TimePeriodWeeks
	}
	weeks := scoring.RecentWeeks(now, windowWeeks)

	activity, err := s.tracker.ActivityForWeeks(ctx, weeks)
	if err != nil {
		return Coverage{}, err
	}
	entries := toEntries(activity)

	coverage := Coverage{Role: user.Role, Level: user.Level, WindowWeeks: weeks}

	expectations, err := s.tracker.Expectations(ctx, user.Role, user.Level)
	if err != nil {
		return Coverage{}, err
	}
	templates, err := s.tracker.ListTemplates(ctx, user.Role, user.Level)
	if err != nil {
		return Coverage{}, err
	}
	coverage.Current = scoring.AnalyzeCoverage(expectations, toTemplates(templates), entries, s.matcher)

	if user.Level < settings.MaxLevel(user.Role) {
		nextLevel := user.Level + 1
		nextExpectations, err := s.tracker.Expectations(ctx, user.Role, nextLevel)
		if err != nil {
			return Coverage{}, err
		}
		nextTemplates, err := s.tracker.ListTemplates(ctx, user.Role, nextLevel)
		if err != nil {
			return Coverage{}, err
		}
		coverage.NextLevel = nextLevel
		coverage.Growth = scoring.GrowthSuggestions(nextExpectations, toTemplates(nextTemplates), entries, s.matcher)
	}

	return coverage, nil
}

func toEntries(activity []tracker.LoggedActivity) []scoring.LogEntry {
	entries := make([]scoring.LogEntry, 0, len(activity))
	for _, row := range activity {
		entries = append(entries, scoring.LogEntry{
			CategoryName:       row.CategoryName,
			Dimension:          row.Dimension,
			ScorePerOccurrence: row.ScorePerOccurrence,
			Week:               row.Week,
			Count:              row.Count,
			OverrideScore:      row.OverrideScore,
			Reference:          row.Reference,
		})
	}
	return entries
}

func toTemplates(templates []tracker.CategoryTemplate) []scoring.Template {
	converted := make([]scoring.Template, 0, len(templates))
	for _, template := range templates {
		converted = append(converted, scoring.Template{
			Role:                template.Role,
			Level:               template.Level,
			CategoryName:        template.CategoryName,
			Dimension:           template.Dimension,
			ScorePerOccurrence:  template.ScorePerOccurrence,
			ExpectedWeeklyCount: template.ExpectedWeeklyCount,
			Description:         template.Description,
		})
	}
	return converted
}
