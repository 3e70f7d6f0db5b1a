package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type ArchiveDealCommand struct {
	DealSID           string
	RetailerProfileID uint
}

type ArchiveDealUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewArchiveDealUseCase(dealRepo deal.Repository, logger logger.Interface) *ArchiveDealUseCase {
	return &ArchiveDealUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute archives the deal. The quota slot the deal consumed on its
// creation day stays consumed; archiving is not a way to post more deals.
func (uc *ArchiveDealUseCase) Execute(ctx context.Context, cmd ArchiveDealCommand) (*deal.Deal, error) {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return nil, err
	}

	if err := d.Archive(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.dealRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update deal", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	uc.logger.Infow("deal archived", "deal_sid", cmd.DealSID)
	return d, nil
}
