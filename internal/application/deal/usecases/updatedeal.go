package usecases

import (
	"context"
	"fmt"
	"time"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type UpdateDealCommand struct {
	DealSID           string
	RetailerProfileID uint
	DealTypeSID       *string
	Title             string
	Description       string
	Price             float64
	OriginalPrice     *float64
	ExternalURL       string
	ExpiresAt         time.Time
}

type UpdateDealUseCase struct {
	dealRepo     deal.Repository
	dealTypeRepo deal.TypeRepository
	logger       logger.Interface
}

func NewUpdateDealUseCase(
	dealRepo deal.Repository,
	dealTypeRepo deal.TypeRepository,
	logger logger.Interface,
) *UpdateDealUseCase {
	return &UpdateDealUseCase{
		dealRepo:     dealRepo,
		dealTypeRepo: dealTypeRepo,
		logger:       logger,
	}
}

// Execute replaces the deal's content. Updating content never changes the
// lifecycle status and never consumes a quota slot.
func (uc *UpdateDealUseCase) Execute(ctx context.Context, cmd UpdateDealCommand) (*deal.Deal, error) {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return nil, err
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

	if err := d.UpdateContent(deal.NewDealParams{
		RetailerProfileID: cmd.RetailerProfileID,
		DealTypeID:        dealTypeID,
		Title:             cmd.Title,
		Description:       cmd.Description,
		Price:             cmd.Price,
		OriginalPrice:     cmd.OriginalPrice,
		ExternalURL:       cmd.ExternalURL,
		ExpiresAt:         cmd.ExpiresAt,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.dealRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update deal", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	uc.logger.Infow("deal content updated", "deal_sid", cmd.DealSID)
	return d, nil
}
