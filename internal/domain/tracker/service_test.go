package tracker

import (
	"context"
	"testing"
)

type fakeStore struct {
	StoreAPI
	templates []CategoryTemplate
	names     map[string]bool
	created   []WorkCategory
	upserted  []WeeklyLog
}

func (f *fakeStore) ListTemplates(_ context.Context, _ string, _ int) ([]CategoryTemplate, error) {
	return f.templates, nil
}

func (f *fakeStore) CategoryNames(_ context.Context) (map[string]bool, error) {
	return f.names, nil
}

func (f *fakeStore) CreateCategory(_ context.Context, category WorkCategory) (string, error) {
	f.created = append(f.created, category)
	return "cat-1", nil
}

func (f *fakeStore) UpsertLog(_ context.Context, entry WeeklyLog) (string, error) {
	f.upserted = append(f.upserted, entry)
	return "log-1", nil
}

func TestApplyTemplatesSkipsExistingNames(t *testing.T) {
	store := &fakeStore{
		templates: []CategoryTemplate{
			{CategoryName: "Code Review", Dimension: "input", ScorePerOccurrence: 3},
			{CategoryName: "Mentoring Session", Dimension: "impact", ScorePerOccurrence: 10},
		},
		names: map[string]bool{"Code Review": true},
	}
	service := NewService(store)

	created, err := service.ApplyTemplates(context.Background(), "IC", 5)
	if err != nil {
		t.Fatalf("ApplyTemplates: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 category created, got %d", created)
	}
	if len(store.created) != 1 || store.created[0].Name != "Mentoring Session" {
		t.Fatalf("expected only the missing template to be created, got %+v", store.created)
	}
}

func TestCreateCategoryRejectsUnknownDimension(t *testing.T) {
	service := NewService(&fakeStore{})
	if _, err := service.CreateCategory(context.Background(), WorkCategory{Name: "X", Dimension: "sideways"}); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestUpsertLogRejectsNegativeCount(t *testing.T) {
	store := &fakeStore{}
	service := NewService(store)
	if _, err := service.UpsertLog(context.Background(), WeeklyLog{CategoryID: "c1", Week: "2024-W05", Count: -1}); err == nil {
		t.Fatal("expected error for negative count")
	}
	if len(store.upserted) != 0 {
		t.Fatal("negative count must not reach the store")
	}
}

func TestUpsertLogAcceptsZeroCount(t *testing.T) {
	store := &fakeStore{}
	service := NewService(store)
	id, err := service.UpsertLog(context.Background(), WeeklyLog{CategoryID: "c1", Week: "2024-W05", Count: 0})
	if err != nil {
		t.Fatalf("UpsertLog: %v", err)
	}
	if id != "log-1" {
		t.Fatalf("unexpected id %q", id)
	}
}
