package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type CreateProfileCommand struct {
	CompanyName      string
	ContactEmail     string
	ContactPhone     string
	LogoURL          string
	WebsiteURL       string
	DailyDealLimit   int
	HasCSVPermission bool
	IsAlwaysOnTop    bool
	OwnerUserID      *uint
}

type CreateProfileUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewCreateProfileUseCase(retailerRepo retailer.Repository, logger logger.Interface) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute creates an active retailer profile. A daily deal limit of 0 means
// unlimited.
func (uc *CreateProfileUseCase) Execute(ctx context.Context, cmd CreateProfileCommand) (*retailer.Profile, error) {
	if cmd.OwnerUserID != nil {
		existing, err := uc.retailerRepo.GetByOwnerUserID(ctx, *cmd.OwnerUserID)
		if err != nil {
			uc.logger.Errorw("failed to check owner", "error", err, "owner_user_id", *cmd.OwnerUserID)
			return nil, fmt.Errorf("failed to check owner: %w", err)
		}
		if existing != nil {
			return nil, errors.NewConflictError("user already owns a retailer profile")
		}
	}

	profile, err := retailer.NewProfile(retailer.NewProfileParams{
		CompanyName:      cmd.CompanyName,
		ContactEmail:     cmd.ContactEmail,
		ContactPhone:     cmd.ContactPhone,
		LogoURL:          cmd.LogoURL,
		WebsiteURL:       cmd.WebsiteURL,
		DailyDealLimit:   cmd.DailyDealLimit,
		HasCSVPermission: cmd.HasCSVPermission,
		IsAlwaysOnTop:    cmd.IsAlwaysOnTop,
		OwnerUserID:      cmd.OwnerUserID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.retailerRepo.Create(ctx, profile); err != nil {
		uc.logger.Errorw("failed to create retailer profile", "error", err, "company_name", cmd.CompanyName)
		return nil, fmt.Errorf("failed to create retailer profile: %w", err)
	}

	uc.logger.Infow("retailer profile created", "sid", profile.SID(), "company_name", profile.CompanyName())
	return profile, nil
}
