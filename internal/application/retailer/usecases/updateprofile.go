package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type UpdateProfileCommand struct {
	ProfileSID       string
	CompanyName      *string
	ContactEmail     *string
	ContactPhone     *string
	LogoURL          *string
	WebsiteURL       *string
	DailyDealLimit   *int
	HasCSVPermission *bool
	IsAlwaysOnTop    *bool
	IsActive         *bool
}

type UpdateProfileUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewUpdateProfileUseCase(retailerRepo retailer.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute applies the non-nil fields. Lowering the daily deal limit never
// touches deals already created today; the new limit binds from the next
// creation attempt onward.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*retailer.Profile, error) {
	profile, err := uc.retailerRepo.GetBySID(ctx, cmd.ProfileSID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "sid", cmd.ProfileSID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("retailer profile not found")
	}

	if err := profile.Update(retailer.UpdateProfileParams{
		CompanyName:      cmd.CompanyName,
		ContactEmail:     cmd.ContactEmail,
		ContactPhone:     cmd.ContactPhone,
		LogoURL:          cmd.LogoURL,
		WebsiteURL:       cmd.WebsiteURL,
		DailyDealLimit:   cmd.DailyDealLimit,
		HasCSVPermission: cmd.HasCSVPermission,
		IsAlwaysOnTop:    cmd.IsAlwaysOnTop,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			profile.Activate()
		} else {
			profile.Deactivate()
		}
	}

	if err := uc.retailerRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update retailer profile", "error", err, "sid", cmd.ProfileSID)
		return nil, fmt.Errorf("failed to update retailer profile: %w", err)
	}

	uc.logger.Infow("retailer profile updated", "sid", cmd.ProfileSID)
	return profile, nil
}
