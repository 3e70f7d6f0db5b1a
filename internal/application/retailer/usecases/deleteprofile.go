package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type DeleteProfileCommand struct {
	ProfileSID string
}

type DeleteProfileUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewDeleteProfileUseCase(retailerRepo retailer.Repository, logger logger.Interface) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute hard-deletes the profile and cascades through its deals, their
// images and every bookmark pointing at them.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, cmd DeleteProfileCommand) error {
	profile, err := uc.retailerRepo.GetBySID(ctx, cmd.ProfileSID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "sid", cmd.ProfileSID)
		return fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return errors.NewNotFoundError("retailer profile not found")
	}

	if err := uc.retailerRepo.Delete(ctx, profile.ID()); err != nil {
		uc.logger.Errorw("failed to delete retailer profile", "error", err, "sid", cmd.ProfileSID)
		return fmt.Errorf("failed to delete retailer profile: %w", err)
	}

	uc.logger.Infow("retailer profile deleted", "sid", cmd.ProfileSID)
	return nil
}
