package tracker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListCategories(ctx context.Context) ([]WorkCategory, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, score_per_occurrence, dimension, description, created_at
    FROM work_categories
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []WorkCategory
	for rows.Next() {
		var category WorkCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.ScorePerOccurrence, &category.Dimension, &category.Description, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (s *Store) CreateCategory(ctx context.Context, category WorkCategory) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO work_categories (name, score_per_occurrence, dimension, description)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, category.Name, category.ScorePerOccurrence, category.Dimension, category.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateCategory(ctx context.Context, category WorkCategory) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE work_categories
    SET name = $1, score_per_occurrence = $2, dimension = $3, description = $4
    WHERE id = $5
  `, category.Name, category.ScorePerOccurrence, category.Dimension, category.Description, category.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category; dependent weekly logs go with it via the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM work_categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CategoryNames(ctx context.Context) (map[string]bool, error) {
	rows, err := s.DB.Query(ctx, "SELECT name FROM work_categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names[name] = true
	}
	return names, rows.Err()
}

// UpsertLog writes one (category, week) entry; a second write for the same
// pair replaces count, override and reference.
func (s *Store) UpsertLog(ctx context.Context, entry WeeklyLog) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO weekly_logs (category_id, week, count, override_score, reference)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (category_id, week)
    DO UPDATE SET count = EXCLUDED.count,
                  override_score = EXCLUDED.override_score,
                  reference = EXCLUDED.reference,
                  updated_at = now()
    RETURNING id
  `, entry.CategoryID, entry.Week, entry.Count, entry.OverrideScore, entry.Reference).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListLogs(ctx context.Context, week string) ([]WeeklyLog, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, category_id, week, count, override_score, reference, updated_at
    FROM weekly_logs
    WHERE week = $1
    ORDER BY updated_at DESC
  `, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []WeeklyLog
	for rows.Next() {
		var entry WeeklyLog
		if err := rows.Scan(&entry.ID, &entry.CategoryID, &entry.Week, &entry.Count, &entry.OverrideScore, &entry.Reference, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func (s *Store) DeleteLog(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM weekly_logs WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ActivityForWeeks returns logs joined with their category for the given
// weeks. The inner join drops entries whose category was deleted.
func (s *Store) ActivityForWeeks(ctx context.Context, weeks []string) ([]LoggedActivity, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT l.category_id, c.name, c.dimension, c.score_per_occurrence,
           l.week, l.count, l.override_score, l.reference
    FROM weekly_logs l
    JOIN work_categories c ON l.category_id = c.id
    WHERE l.week = ANY($1)
    ORDER BY l.week, c.name
  `, weeks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []LoggedActivity
	for rows.Next() {
		var row LoggedActivity
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Dimension, &row.ScorePerOccurrence, &row.Week, &row.Count, &row.OverrideScore, &row.Reference); err != nil {
			return nil, err
		}
		activity = append(activity, row)
	}
	return activity, rows.Err()
}

func (s *Store) ListTemplates(ctx context.Context, role string, level int) ([]CategoryTemplate, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, role, level, category_name, dimension, score_per_occurrence, expected_weekly_count, description
    FROM category_templates
    WHERE role = $1 AND level = $2
    ORDER BY category_name
  `, role, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []CategoryTemplate
	for rows.Next() {
		var template CategoryTemplate
		if err := rows.Scan(&template.ID, &template.Role, &template.Level, &template.CategoryName, &template.Dimension, &template.ScorePerOccurrence, &template.ExpectedWeeklyCount, &template.Description); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

func (s *Store) CreateTemplate(ctx context.Context, template CategoryTemplate) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO category_templates (role, level, category_name, dimension, score_per_occurrence, expected_weekly_count, description)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (role, level, category_name)
    DO UPDATE SET dimension = EXCLUDED.dimension,
                  score_per_occurrence = EXCLUDED.score_per_occurrence,
                  expected_weekly_count = EXCLUDED.expected_weekly_count,
                  description = EXCLUDED.description
    RETURNING id
  `, template.Role, template.Level, template.CategoryName, template.Dimension, template.ScorePerOccurrence, template.ExpectedWeeklyCount, template.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// Expectations returns the ordered expectation sentences for (role, level).
// A missing record or unparseable stored payload yields an empty list.
func (s *Store) Expectations(ctx context.Context, role string, level int) ([]string, error) {
	var payload []byte
	err := s.DB.QueryRow(ctx, `
    SELECT expectations_json FROM level_expectations WHERE role = $1 AND level = $2
  `, role, level).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var expectations []string
	if err := json.Unmarshal(payload, &expectations); err != nil {
		return nil, nil
	}
	return expectations, nil
}

func (s *Store) PutExpectations(ctx context.Context, record LevelExpectation) error {
	payload, err := json.Marshal(record.Expectations)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO level_expectations (role, level, expectations_json)
    VALUES ($1,$2,$3)
    ON CONFLICT (role, level)
    DO UPDATE SET expectations_json = EXCLUDED.expectations_json
  `, record.Role, record.Level, payload)
	return err
}
