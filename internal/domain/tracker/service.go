package tracker

import (
	"context"
	"fmt"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListCategories(ctx context.Context) ([]WorkCategory, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, category WorkCategory) (string, error) {
	if !ValidDimension(category.Dimension) {
		return "", fmt.Errorf("unknown dimension %q", category.Dimension)
	}
	return s.store.CreateCategory(ctx, category)
}

func (s *Service) UpdateCategory(ctx context.Context, category WorkCategory) error {
	if !ValidDimension(category.Dimension) {
		return fmt.Errorf("unknown dimension %q", category.Dimension)
	}
	return s.store.UpdateCategory(ctx, category)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.store.DeleteCategory(ctx, id)
}

func (s *Service) UpsertLog(ctx context.Context, entry WeeklyLog) (string, error) {
	if entry.Count < 0 {
		return "", fmt.Errorf("count must be non-negative")
	}
	return s.store.UpsertLog(ctx, entry)
}

func (s *Service) ListLogs(ctx context.Context, week string) ([]WeeklyLog, error) {
	return s.store.ListLogs(ctx, week)
}

func (s *Service) DeleteLog(ctx context.Context, id string) error {
	return s.store.DeleteLog(ctx, id)
}

func (s *Service) ActivityForWeeks(ctx context.Context, weeks []string) ([]LoggedActivity, error) {
	return s.store.ActivityForWeeks(ctx, weeks)
}

func (s *Service) ListTemplates(ctx context.Context, role string, level int) ([]CategoryTemplate, error) {
	return s.store.ListTemplates(ctx, role, level)
}

func (s *Service) CreateTemplate(ctx context.Context, template CategoryTemplate) (string, error) {
	if !ValidDimension(template.Dimension) {
		return "", fmt.Errorf("unknown dimension %q", template.Dimension)
	}
	return s.store.CreateTemplate(ctx, template)
}

// ApplyTemplates copies the (role, level) recommended categories into the
// user's categories, skipping names that already exist. Returns the number
// of categories created.
func (s *Service) ApplyTemplates(ctx context.Context, role string, level int) (int, error) {
	templates, err := s.store.ListTemplates(ctx, role, level)
	if err != nil {
		return 0, err
	}
	existing, err := s.store.CategoryNames(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, template := range templates {
		if existing[template.CategoryName] {
			continue
		}
		category := WorkCategory{
			Name:               template.CategoryName,
			ScorePerOccurrence: template.ScorePerOccurrence,
			Dimension:          template.Dimension,
			Description:        template.Description,
		}
		if _, err := s.store.CreateCategory(ctx, category); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Service) Expectations(ctx context.Context, role string, level int) ([]string, error) {
	return s.store.Expectations(ctx, role, level)
}

func (s *Service) PutExpectations(ctx context.Context, record LevelExpectation) error {
	return s.store.PutExpectations(ctx, record)
}
