package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type GetProfileQuery struct {
	ProfileSID string
}

type GetProfileUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewGetProfileUseCase(retailerRepo retailer.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, q GetProfileQuery) (*retailer.Profile, error) {
	profile, err := uc.retailerRepo.GetBySID(ctx, q.ProfileSID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "sid", q.ProfileSID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("retailer profile not found")
	}
	return profile, nil
}

// GetOwnProfileUseCase resolves the retailer profile owned by the calling
// user, for the dashboard surface.
type GetOwnProfileUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewGetOwnProfileUseCase(retailerRepo retailer.Repository, logger logger.Interface) *GetOwnProfileUseCase {
	return &GetOwnProfileUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

func (uc *GetOwnProfileUseCase) Execute(ctx context.Context, userID uint) (*retailer.Profile, error) {
	profile, err := uc.retailerRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile by owner", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewForbiddenError("no retailer profile is linked to this account")
	}
	return profile, nil
}
