package usecases

import (
	"context"
	"errors"
	"fmt"

	"keydeals/internal/domain/deal"
	apperrors "keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type ActivateDealCommand struct {
	DealSID           string
	RetailerProfileID uint
}

type ActivateDealUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewActivateDealUseCase(dealRepo deal.Repository, logger logger.Interface) *ActivateDealUseCase {
	return &ActivateDealUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute resumes a paused deal. A paused deal whose expiry has already
// passed cannot come back this way; the retailer must restore it with a new
// expiry instead.
func (uc *ActivateDealUseCase) Execute(ctx context.Context, cmd ActivateDealCommand) (*deal.Deal, error) {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return nil, err
	}

	if err := d.Activate(); err != nil {
		if errors.Is(err, deal.ErrDealExpired) {
			return nil, apperrors.NewInvalidTransitionError("deal has expired; update the expiry date to reactivate it")
		}
		return nil, apperrors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.dealRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update deal", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	uc.logger.Infow("deal activated", "deal_sid", cmd.DealSID)
	return d, nil
}
