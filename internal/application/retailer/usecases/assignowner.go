package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type AssignOwnerCommand struct {
	ProfileSID string
	UserID     uint
}

type AssignOwnerUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewAssignOwnerUseCase(retailerRepo retailer.Repository, logger logger.Interface) *AssignOwnerUseCase {
	return &AssignOwnerUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute links a platform user to the profile. A user owns at most one
// profile and a profile has at most one owner.
func (uc *AssignOwnerUseCase) Execute(ctx context.Context, cmd AssignOwnerCommand) (*retailer.Profile, error) {
	existing, err := uc.retailerRepo.GetByOwnerUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check owner", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to check owner: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("user already owns a retailer profile")
	}

	profile, err := uc.retailerRepo.GetBySID(ctx, cmd.ProfileSID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "sid", cmd.ProfileSID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("retailer profile not found")
	}

	if err := profile.AssignOwner(cmd.UserID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.retailerRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update retailer profile", "error", err, "sid", cmd.ProfileSID)
		return nil, fmt.Errorf("failed to update retailer profile: %w", err)
	}

	uc.logger.Infow("retailer profile owner assigned", "sid", cmd.ProfileSID, "user_id", cmd.UserID)
	return profile, nil
}

type RevokeOwnerCommand struct {
	ProfileSID string
}

type RevokeOwnerUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewRevokeOwnerUseCase(retailerRepo retailer.Repository, logger logger.Interface) *RevokeOwnerUseCase {
	return &RevokeOwnerUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

func (uc *RevokeOwnerUseCase) Execute(ctx context.Context, cmd RevokeOwnerCommand) (*retailer.Profile, error) {
	profile, err := uc.retailerRepo.GetBySID(ctx, cmd.ProfileSID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "sid", cmd.ProfileSID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("retailer profile not found")
	}

	profile.RevokeOwner()

	if err := uc.retailerRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update retailer profile", "error", err, "sid", cmd.ProfileSID)
		return nil, fmt.Errorf("failed to update retailer profile: %w", err)
	}

	uc.logger.Infow("retailer profile owner revoked", "sid", cmd.ProfileSID)
	return profile, nil
}
