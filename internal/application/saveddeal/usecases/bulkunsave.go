package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

const maxBulkUnsave = 100

type BulkUnsaveCommand struct {
	UserID        uint
	SavedDealSIDs []string
}

type BulkUnsaveResult struct {
	Removed int64
}

type BulkUnsaveUseCase struct {
	savedRepo saveddeal.Repository
	dealRepo  deal.Repository
	logger    logger.Interface
}

func NewBulkUnsaveUseCase(
	savedRepo saveddeal.Repository,
	dealRepo deal.Repository,
	logger logger.Interface,
) *BulkUnsaveUseCase {
	return &BulkUnsaveUseCase{
		savedRepo: savedRepo,
		dealRepo:  dealRepo,
		logger:    logger,
	}
}

// Execute removes many bookmarks at once. SIDs that belong to another user,
// or to nothing at all, are skipped silently; the response reports only how
// many rows were actually removed, so the endpoint leaks nothing about
// other users' bookmarks.
func (uc *BulkUnsaveUseCase) Execute(ctx context.Context, cmd BulkUnsaveCommand) (*BulkUnsaveResult, error) {
	if len(cmd.SavedDealSIDs) == 0 {
		return &BulkUnsaveResult{Removed: 0}, nil
	}
	if len(cmd.SavedDealSIDs) > maxBulkUnsave {
		return nil, errors.NewValidationError(fmt.Sprintf("at most %d bookmarks per request", maxBulkUnsave))
	}

	dealIDs, err := uc.savedRepo.DeleteBySIDs(ctx, cmd.UserID, cmd.SavedDealSIDs)
	if err != nil {
		uc.logger.Errorw("failed to bulk unsave deals", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to bulk unsave deals: %w", err)
	}

	for _, dealID := range dealIDs {
		if err := uc.dealRepo.AdjustSaveCount(ctx, dealID, -1); err != nil {
			uc.logger.Warnw("failed to drop save count", "error", err, "deal_id", dealID)
		}
	}

	return &BulkUnsaveResult{Removed: int64(len(dealIDs))}, nil
}
