package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/logger"
)

type DeleteDealCommand struct {
	DealSID           string
	RetailerProfileID uint
}

type DeleteDealUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewDeleteDealUseCase(dealRepo deal.Repository, logger logger.Interface) *DeleteDealUseCase {
	return &DeleteDealUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute hard-deletes the deal. Images and saved-deal rows go with it, so
// users who bookmarked the deal simply stop seeing it in their lists.
func (uc *DeleteDealUseCase) Execute(ctx context.Context, cmd DeleteDealCommand) error {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return err
	}

	if err := uc.dealRepo.Delete(ctx, d.ID()); err != nil {
		uc.logger.Errorw("failed to delete deal", "error", err, "deal_sid", cmd.DealSID)
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	uc.logger.Infow("deal deleted", "deal_sid", cmd.DealSID, "retailer_profile_id", cmd.RetailerProfileID)
	return nil
}
