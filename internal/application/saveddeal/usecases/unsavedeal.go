package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/shared/logger"
)

type UnsaveDealCommand struct {
	UserID  uint
	DealSID string
}

type UnsaveDealUseCase struct {
	savedRepo saveddeal.Repository
	dealRepo  deal.Repository
	logger    logger.Interface
}

func NewUnsaveDealUseCase(
	savedRepo saveddeal.Repository,
	dealRepo deal.Repository,
	logger logger.Interface,
) *UnsaveDealUseCase {
	return &UnsaveDealUseCase{
		savedRepo: savedRepo,
		dealRepo:  dealRepo,
		logger:    logger,
	}
}

// Execute removes the bookmark. Unsaving a deal that was never saved, or a
// deal that no longer exists, succeeds without complaint.
func (uc *UnsaveDealUseCase) Execute(ctx context.Context, cmd UnsaveDealCommand) error {
	d, err := uc.dealRepo.GetBySID(ctx, cmd.DealSID)
	if err != nil {
		uc.logger.Errorw("failed to get deal", "error", err, "deal_sid", cmd.DealSID)
		return fmt.Errorf("failed to get deal: %w", err)
	}
	if d == nil {
		return nil
	}

	removed, err := uc.savedRepo.Delete(ctx, cmd.UserID, d.ID())
	if err != nil {
		uc.logger.Errorw("failed to unsave deal", "error", err, "user_id", cmd.UserID, "deal_sid", cmd.DealSID)
		return fmt.Errorf("failed to unsave deal: %w", err)
	}

	if removed {
		if err := uc.dealRepo.AdjustSaveCount(ctx, d.ID(), -1); err != nil {
			uc.logger.Warnw("failed to drop save count", "error", err, "deal_id", d.ID())
		}
	}

	return nil
}
