package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type SaveDealCommand struct {
	UserID  uint
	DealSID string
}

type SaveDealUseCase struct {
	savedRepo saveddeal.Repository
	dealRepo  deal.Repository
	logger    logger.Interface
}

func NewSaveDealUseCase(
	savedRepo saveddeal.Repository,
	dealRepo deal.Repository,
	logger logger.Interface,
) *SaveDealUseCase {
	return &SaveDealUseCase{
		savedRepo: savedRepo,
		dealRepo:  dealRepo,
		logger:    logger,
	}
}

// Execute bookmarks the deal for the user. Saving an already-saved deal
// returns the existing bookmark unchanged; the save counter only moves when
// a new row is created.
func (uc *SaveDealUseCase) Execute(ctx context.Context, cmd SaveDealCommand) (*saveddeal.SavedDeal, error) {
	d, err := uc.dealRepo.GetBySID(ctx, cmd.DealSID)
	if err != nil {
		uc.logger.Errorw("failed to get deal", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("deal not found")
	}

	entity, err := saveddeal.New(cmd.UserID, d.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	saved, created, err := uc.savedRepo.Upsert(ctx, entity)
	if err != nil {
		uc.logger.Errorw("failed to save deal", "error", err, "user_id", cmd.UserID, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to save deal: %w", err)
	}

	if created {
		if err := uc.dealRepo.AdjustSaveCount(ctx, d.ID(), 1); err != nil {
			uc.logger.Warnw("failed to bump save count", "error", err, "deal_id", d.ID())
		}
	}

	return saved, nil
}
