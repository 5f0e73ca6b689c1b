package settings

import (
	"context"
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

func (s *Store) ListWeightProfiles(ctx context.Context) ([]RoleWeightProfile, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, role, level, input_weight, output_weight, outcome_weight, impact_weight, is_active
    FROM weight_profiles
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []RoleWeightProfile
	for rows.Next() {
		var profile RoleWeightProfile
		if err := rows.Scan(&profile.ID, &profile.Name, &profile.Role, &profile.Level, &profile.InputWeight, &profile.OutputWeight, &profile.OutcomeWeight, &profile.ImpactWeight, &profile.IsActive); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (s *Store) CreateWeightProfile(ctx context.Context, profile RoleWeightProfile) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO weight_profiles (name, role, level, input_weight, output_weight, outcome_weight, impact_weight, is_active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,false)
    RETURNING id
  `, profile.Name, profile.Role, profile.Level, profile.InputWeight, profile.OutputWeight, profile.OutcomeWeight, profile.ImpactWeight).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateWeightProfile(ctx context.Context, profile RoleWeightProfile) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE weight_profiles
    SET name = $1, role = $2, level = $3,
        input_weight = $4, output_weight = $5, outcome_weight = $6, impact_weight = $7
    WHERE id = $8
  `, profile.Name, profile.Role, profile.Level, profile.InputWeight, profile.OutputWeight, profile.OutcomeWeight, profile.ImpactWeight, profile.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteWeightProfile(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM weight_profiles WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActiveWeightProfile deactivates every profile and activates the given
// one inside a single transaction, so concurrent activations cannot leave
// zero or two active rows.
func (s *Store) SetActiveWeightProfile(ctx context.Context, id string) error {
	return s.activateOne(ctx, "weight_profiles", id)
}

func (s *Store) ActiveWeightProfile(ctx context.Context) (RoleWeightProfile, bool, error) {
	var profile RoleWeightProfile
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, role, level, input_weight, output_weight, outcome_weight, impact_weight, is_active
    FROM weight_profiles
    WHERE is_active
    LIMIT 1
  `).Scan(&profile.ID, &profile.Name, &profile.Role, &profile.Level, &profile.InputWeight, &profile.OutputWeight, &profile.OutcomeWeight, &profile.ImpactWeight, &profile.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return RoleWeightProfile{}, false, nil
	}
	if err != nil {
		return RoleWeightProfile{}, false, err
	}
	return profile, true, nil
}

func (s *Store) ListTargets(ctx context.Context) ([]PerformanceTarget, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, role, level, outstanding_threshold, strong_threshold, meeting_threshold,
           partial_threshold, underperforming_threshold, time_period_weeks, is_active
    FROM performance_targets
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []PerformanceTarget
	for rows.Next() {
		var target PerformanceTarget
		if err := rows.Scan(&target.ID, &target.Name, &target.Role, &target.Level, &target.OutstandingThreshold, &target.StrongThreshold, &target.MeetingThreshold, &target.PartialThreshold, &target.UnderperformingThreshold, &target.TimePeriodWeeks, &target.IsActive); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, rows.Err()
}

func (s *Store) CreateTarget(ctx context.Context, target PerformanceTarget) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_targets
      (name, role, level, outstanding_threshold, strong_threshold, meeting_threshold,
       partial_threshold, underperforming_threshold, time_period_weeks, is_active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,false)
    RETURNING id
  `, target.Name, target.Role, target.Level, target.OutstandingThreshold, target.StrongThreshold, target.MeetingThreshold, target.PartialThreshold, target.UnderperformingThreshold, target.TimePeriodWeeks).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateTarget(ctx context.Context, target PerformanceTarget) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE performance_targets
    SET name = $1, role = $2, level = $3,
        outstanding_threshold = $4, strong_threshold = $5, meeting_threshold = $6,
        partial_threshold = $7, underperforming_threshold = $8, time_period_weeks = $9
    WHERE id = $10
  `, target.Name, target.Role, target.Level, target.OutstandingThreshold, target.StrongThreshold, target.MeetingThreshold, target.PartialThreshold, target.UnderperformingThreshold, target.TimePeriodWeeks, target.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTarget(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM performance_targets WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetActiveTarget(ctx context.Context, id string) error {
	return s.activateOne(ctx, "performance_targets", id)
}

func (s *Store) ActiveTarget(ctx context.Context) (PerformanceTarget, bool, error) {
	var target PerformanceTarget
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, role, level, outstanding_threshold, strong_threshold, meeting_threshold,
           partial_threshold, underperforming_threshold, time_period_weeks, is_active
    FROM performance_targets
    WHERE is_active
    LIMIT 1
  `).Scan(&target.ID, &target.Name, &target.Role, &target.Level, &target.OutstandingThreshold, &target.StrongThreshold, &target.MeetingThreshold, &target.PartialThreshold, &target.UnderperformingThreshold, &target.TimePeriodWeeks, &target.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return PerformanceTarget{}, false, nil
	}
	if err != nil {
		return PerformanceTarget{}, false, err
	}
	return target, true, nil
}

func (s *Store) ListUserProfiles(ctx context.Context) ([]UserProfile, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, role, level, is_active FROM user_profiles ORDER BY role, level")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []UserProfile
	for rows.Next() {
		var profile UserProfile
		if err := rows.Scan(&profile.ID, &profile.Role, &profile.Level, &profile.IsActive); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (s *Store) CreateUserProfile(ctx context.Context, profile UserProfile) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO user_profiles (role, level, is_active)
    VALUES ($1,$2,false)
    RETURNING id
  `, profile.Role, profile.Level).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) SetActiveUserProfile(ctx context.Context, id string) error {
	return s.activateOne(ctx, "user_profiles", id)
}

func (s *Store) ActiveUserProfile(ctx context.Context) (UserProfile, bool, error) {
	var profile UserProfile
	err := s.DB.QueryRow(ctx, "SELECT id, role, level, is_active FROM user_profiles WHERE is_active LIMIT 1").
		Scan(&profile.ID, &profile.Role, &profile.Level, &profile.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return UserProfile{}, false, nil
	}
	if err != nil {
		return UserProfile{}, false, err
	}
	return profile, true, nil
}

// activateOne flips the exclusive is_active flag for one of the settings
// tables in a single transaction. The table name is always one of our own
// constants, never user input.
func (s *Store) activateOne(ctx context.Context, table, id string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "UPDATE "+table+" SET is_active = false WHERE is_active"); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, "UPDATE "+table+" SET is_active = true WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
