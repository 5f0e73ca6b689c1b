package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedCategory struct {
	name        string
	score       int
	dimension   string
	description string
}

var defaultCategories = []seedCategory{
	{"Code Review", 3, "input", "Reviewing a teammate's change"},
	{"Pairing Session", 5, "input", "Pair programming or debugging together"},
	{"Feature Shipped", 15, "output", "A user-visible feature released"},
	{"Bug Fixed", 5, "output", "A confirmed defect resolved"},
	{"Documentation Written", 8, "output", "New or substantially revised docs"},
	{"Metric Improved", 20, "outcome", "A tracked metric moved by your work"},
	{"Incident Resolved", 15, "outcome", "Production incident driven to resolution"},
	{"Design Doc Authored", 20, "impact", "A design document guiding others"},
	{"Mentoring Session", 10, "impact", "Structured mentoring of a teammate"},
}

// Seed installs default categories, a starter weight profile and target, and
// example IC templates/expectations when the relevant tables are empty.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedCategories(ctx, pool); err != nil {
		return err
	}
	if err := seedWeightProfile(ctx, pool); err != nil {
		return err
	}
	if err := seedTarget(ctx, pool); err != nil {
		return err
	}
	if err := seedTemplates(ctx, pool); err != nil {
		return err
	}
	return seedExpectations(ctx, pool)
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM work_categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, category := range defaultCategories {
		if _, err := pool.Exec(ctx, `
      INSERT INTO work_categories (name, score_per_occurrence, dimension, description)
      VALUES ($1,$2,$3,$4)
      ON CONFLICT (name) DO NOTHING
    `, category.name, category.score, category.dimension, category.description); err != nil {
			return err
		}
	}
	return nil
}

func seedWeightProfile(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM weight_profiles").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx, `
    INSERT INTO weight_profiles (name, role, level, input_weight, output_weight, outcome_weight, impact_weight, is_active)
    VALUES ('IC Level 4', 'IC', 4, 0.2, 0.4, 0.25, 0.15, true)
  `)
	return err
}

func seedTarget(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM performance_targets").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx, `
    INSERT INTO performance_targets
      (name, role, level, outstanding_threshold, strong_threshold, meeting_threshold,
       partial_threshold, underperforming_threshold, time_period_weeks, is_active)
    VALUES ('IC Level 4 Monthly', 'IC', 4, 300, 230, 170, 140, 120, 4, true)
  `)
	return err
}

func seedTemplates(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM category_templates").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type tpl struct {
		level     int
		name      string
		dimension string
		score     int
		weekly    float64
		desc      string
	}
	templates := []tpl{
		{4, "Code Review", "input", 3, 5, "Review teammates' changes"},
		{4, "Feature Shipped", "output", 15, 1, "Ship user-visible work"},
		{4, "Incident Resolved", "outcome", 15, 0.5, "Drive incidents to resolution"},
		{5, "Design Doc Authored", "impact", 20, 0.5, "Author designs that guide others"},
		{5, "Mentoring Session", "impact", 10, 1, "Mentor a junior engineer"},
		{5, "Cross-team Coordination", "outcome", 12, 1, "Coordinate work across teams"},
	}
	for _, template := range templates {
		if _, err := pool.Exec(ctx, `
      INSERT INTO category_templates (role, level, category_name, dimension, score_per_occurrence, expected_weekly_count, description)
      VALUES ('IC',$1,$2,$3,$4,$5,$6)
      ON CONFLICT (role, level, category_name) DO NOTHING
    `, template.level, template.name, template.dimension, template.score, template.weekly, template.desc); err != nil {
			return err
		}
	}
	return nil
}

func seedExpectations(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM level_expectations").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records := map[int][]string{
		4: {
			"Should participate in code review consistently",
			"Ships features independently with minimal guidance",
			"Resolves incidents in owned areas",
		},
		5: {
			"Should mentor junior engineers",
			"Authors design documents for team-scoped projects",
			"Coordinates work that spans multiple teams",
		},
	}
	for level, expectations := range records {
		payload, err := json.Marshal(expectations)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO level_expectations (role, level, expectations_json)
      VALUES ('IC',$1,$2)
      ON CONFLICT (role, level) DO NOTHING
    `, level, payload); err != nil {
			return err
		}
	}
	return nil
}
