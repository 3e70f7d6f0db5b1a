package usecases

import (
	"context"
	"fmt"
	"time"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type RestoreDealCommand struct {
	DealSID           string
	RetailerProfileID uint
	NewExpiresAt      time.Time
}

type RestoreDealUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewRestoreDealUseCase(dealRepo deal.Repository, logger logger.Interface) *RestoreDealUseCase {
	return &RestoreDealUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute brings an archived deal back to active with a fresh expiry.
// Restoring does not consume a quota slot; the deal already took one the
// day it was created.
func (uc *RestoreDealUseCase) Execute(ctx context.Context, cmd RestoreDealCommand) (*deal.Deal, error) {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return nil, err
	}

	if err := d.Restore(cmd.NewExpiresAt); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.dealRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update deal", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	uc.logger.Infow("deal restored", "deal_sid", cmd.DealSID, "new_expires_at", cmd.NewExpiresAt)
	return d, nil
}
