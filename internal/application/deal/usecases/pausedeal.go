package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type PauseDealCommand struct {
	DealSID           string
	RetailerProfileID uint
}

type PauseDealUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewPauseDealUseCase(dealRepo deal.Repository, logger logger.Interface) *PauseDealUseCase {
	return &PauseDealUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

func (uc *PauseDealUseCase) Execute(ctx context.Context, cmd PauseDealCommand) (*deal.Deal, error) {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return nil, err
	}

	if err := d.Pause(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.dealRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update deal", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	uc.logger.Infow("deal paused", "deal_sid", cmd.DealSID)
	return d, nil
}

// loadOwnedDeal fetches the deal and enforces that it belongs to the caller's
// retailer profile. Foreign deals read as not-found so ownership cannot be
// probed.
func loadOwnedDeal(ctx context.Context, repo deal.Repository, sid string, retailerProfileID uint) (*deal.Deal, error) {
	d, err := repo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	if d == nil || d.RetailerProfileID() != retailerProfileID {
		return nil, errors.NewNotFoundError("deal not found")
	}
	return d, nil
}
