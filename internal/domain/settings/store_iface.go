package settings

import "context"

type StoreAPI interface {
	ListWeightProfiles(ctx context.Context) ([]RoleWeightProfile, error)
	CreateWeightProfile(ctx context.Context, profile RoleWeightProfile) (string, error)
	UpdateWeightProfile(ctx context.Context, profile RoleWeightProfile) error
	DeleteWeightProfile(ctx context.Context, id string) error
	SetActiveWeightProfile(ctx context.Context, id string) error
	ActiveWeightProfile(ctx context.Context) (RoleWeightProfile, bool, error)

	ListTargets(ctx context.Context) ([]PerformanceTarget, error)
	CreateTarget(ctx context.Context, target PerformanceTarget) (string, error)
	UpdateTarget(ctx context.Context, target PerformanceTarget) error
	DeleteTarget(ctx context.Context, id string) error
	SetActiveTarget(ctx context.Context, id string) error
	ActiveTarget(ctx context.Context) (PerformanceTarget, bool, error)

	ListUserProfiles(ctx context.Context) ([]UserProfile, error)
	CreateUserProfile(ctx context.Context, profile UserProfile) (string, error)
	SetActiveUserProfile(ctx context.Context, id string) error
	ActiveUserProfile(ctx context.Context) (UserProfile, bool, error)
}
