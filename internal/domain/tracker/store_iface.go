package tracker

import "context"

type StoreAPI interface {
	ListCategories(ctx context.Context) ([]WorkCategory, error)
	CreateCategory(ctx context.Context, category WorkCategory) (string, error)
	UpdateCategory(ctx context.Context, category WorkCategory) error
	DeleteCategory(ctx context.Context, id string) error
	CategoryNames(ctx context.Context) (map[string]bool, error)

	UpsertLog(ctx context.Context, entry WeeklyLog) (string, error)
	ListLogs(ctx context.Context, week string) ([]WeeklyLog, error)
	DeleteLog(ctx context.Context, id string) error
	ActivityForWeeks(ctx context.Context, weeks []string) ([]LoggedActivity, error)

	ListTemplates(ctx context.Context, role string, level int) ([]CategoryTemplate, error)
	CreateTemplate(ctx context.Context, template CategoryTemplate) (string, error)

	Expectations(ctx context.Context, role string, level int) ([]string, error)
	PutExpectations(ctx context.Context, record LevelExpectation) error
}
