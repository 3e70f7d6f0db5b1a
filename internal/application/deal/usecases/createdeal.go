package usecases

import (
	"context"
	"fmt"
	"time"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type CreateDealCommand struct {
	RetailerProfileID uint
	DealTypeSID       *string
	Title             string
	Description       string
	Price             float64
	OriginalPrice     *float64
	ExternalURL       string
	ExpiresAt         time.Time
	ImageURLs         []string
}

type CreateDealUseCase struct {
	dealRepo     deal.Repository
	dealTypeRepo deal.TypeRepository
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewCreateDealUseCase(
	dealRepo deal.Repository,
	dealTypeRepo deal.TypeRepository,
	retailerRepo retailer.Repository,
	logger logger.Interface,
) *CreateDealUseCase {
	return &CreateDealUseCase{
		dealRepo:     dealRepo,
		dealTypeRepo: dealTypeRepo,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute validates the content, resolves the optional deal type, and hands
// the insert to the repository together with the retailer's daily window so
// the quota check and the insert happen in one transaction.
func (uc *CreateDealUseCase) Execute(ctx context.Context, cmd CreateDealCommand) (*deal.Deal, error) {
	profile, err := uc.retailerRepo.GetByID(ctx, cmd.RetailerProfileID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "retailer_profile_id", cmd.RetailerProfileID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("retailer profile not found")
	}
	if !profile.IsActive() {
		return nil, errors.NewForbiddenError("retailer profile is deactivated")
	}

	var dealTypeID *uint
	if cmd.DealTypeSID != nil && *cmd.DealTypeSID != "" {
		dealType, err := uc.dealTypeRepo.GetBySID(ctx, *cmd.DealTypeSID)
		if err != nil {
			uc.logger.Errorw("failed to get deal type", "error", err, "deal_type_sid", *cmd.DealTypeSID)
			return nil, fmt.Errorf("failed to get deal type: %w", err)
		}
		if dealType == nil {
			return nil, errors.NewValidationError("unknown deal type")
		}
		typeID := dealType.ID()
		dealTypeID = &typeID
	}

	newDeal, err := deal.NewDeal(deal.NewDealParams{
		RetailerProfileID: cmd.RetailerProfileID,
		DealTypeID:        dealTypeID,
		Title:             cmd.Title,
		Description:       cmd.Description,
		Price:             cmd.Price,
		OriginalPrice:     cmd.OriginalPrice,
		ExternalURL:       cmd.ExternalURL,
		ExpiresAt:         cmd.ExpiresAt,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.ImageURLs) > 0 {
		images := make([]deal.Image, 0, len(cmd.ImageURLs))
		for i, url := range cmd.ImageURLs {
			img, err := deal.NewImage(0, url, i)
			if err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			images = append(images, *img)
		}
		if err := newDeal.ReplaceImages(images); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	now := biztime.NowUTC()
	windowStart := biztime.StartOfDayUTC(now)
	windowEnd := biztime.EndOfDayUTC(now)

	if err := uc.dealRepo.CreateWithDailyQuota(ctx, newDeal, profile.CanCreateDeal, windowStart, windowEnd); err != nil {
		if err == deal.ErrQuotaExceeded {
			return nil, errors.NewQuotaExceededError(
				fmt.Sprintf("daily deal limit of %d reached", profile.DailyDealLimit()),
			)
		}
		uc.logger.Errorw("failed to create deal", "error", err, "retailer_profile_id", cmd.RetailerProfileID)
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	uc.logger.Infow("deal created",
		"deal_id", newDeal.ID(),
		"sid", newDeal.SID(),
		"retailer_profile_id", cmd.RetailerProfileID,
	)

	return newDeal, nil
}
