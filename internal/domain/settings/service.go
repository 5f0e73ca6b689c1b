package settings

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListWeightProfiles(ctx context.Context) ([]RoleWeightProfile, error) {
	return s.store.ListWeightProfiles(ctx)
}

func (s *Service) CreateWeightProfile(ctx context.Context, profile RoleWeightProfile) (string, error) {
	if err := ValidateWeights(profile); err != nil {
		return "", err
	}
	return s.store.CreateWeightProfile(ctx, profile)
}

func (s *Service) UpdateWeightProfile(ctx context.Context, profile RoleWeightProfile) error {
	if err := ValidateWeights(profile); err != nil {
		return err
	}
	return s.store.UpdateWeightProfile(ctx, profile)
}

func (s *Service) DeleteWeightProfile(ctx context.Context, id string) error {
	return s.store.DeleteWeightProfile(ctx, id)
}

func (s *Service) SetActiveWeightProfile(ctx context.Context, id string) error {
	return s.store.SetActiveWeightProfile(ctx, id)
}

func (s *Service) ActiveWeightProfile(ctx context.Context) (RoleWeightProfile, bool, error) {
	return s.store.ActiveWeightProfile(ctx)
}

func (s *Service) ListTargets(ctx context.Context) ([]PerformanceTarget, error) {
	return s.store.ListTargets(ctx)
}

func (s *Service) CreateTarget(ctx context.Context, target PerformanceTarget) (string, error) {
	if err := ValidateTarget(target); err != nil {
		return "", err
	}
	return s.store.CreateTarget(ctx, target)
}

func (s *Service) UpdateTarget(ctx context.Context, target PerformanceTarget) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	return s.store.UpdateTarget(ctx, target)
}

func (s *Service) DeleteTarget(ctx context.Context, id string) error {
	return s.store.DeleteTarget(ctx, id)
}

func (s *Service) SetActiveTarget(ctx context.Context, id string) error {
	return s.store.SetActiveTarget(ctx, id)
}

func (s *Service) ActiveTarget(ctx context.Context) (PerformanceTarget, bool, error) {
	return s.store.ActiveTarget(ctx)
}

func (s *Service) ListUserProfiles(ctx context.Context) ([]UserProfile, error) {
	return s.store.ListUserProfiles(ctx)
}

func (s *Service) CreateUserProfile(ctx context.Context, profile UserProfile) (string, error) {
	if err := ValidateRoleLevel(profile.Role, profile.Level); err != nil {
		return "", err
	}
	return s.store.CreateUserProfile(ctx, profile)
}

func (s *Service) SetActiveUserProfile(ctx context.Context, id string) error {
	return s.store.SetActiveUserProfile(ctx, id)
}

func (s *Service) ActiveUserProfile(ctx context.Context) (UserProfile, bool, error) {
	return s.store.ActiveUserProfile(ctx)
}
