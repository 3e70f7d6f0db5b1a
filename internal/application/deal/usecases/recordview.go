package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/infrastructure/cache"
	"keydeals/internal/shared/logger"
)

type RecordViewCommand struct {
	DealSID string
}

type RecordViewUseCase struct {
	dealRepo    deal.Repository
	viewCounter cache.ViewCounter
	logger      logger.Interface
}

func NewRecordViewUseCase(
	dealRepo deal.Repository,
	viewCounter cache.ViewCounter,
	logger logger.Interface,
) *RecordViewUseCase {
	return &RecordViewUseCase{
		dealRepo:    dealRepo,
		viewCounter: viewCounter,
		logger:      logger,
	}
}

// Execute buffers a view hit. Unknown SIDs are ignored silently so the
// endpoint cannot be used to probe for deals.
func (uc *RecordViewUseCase) Execute(ctx context.Context, cmd RecordViewCommand) error {
	d, err := uc.dealRepo.GetBySID(ctx, cmd.DealSID)
	if err != nil {
		return fmt.Errorf("failed to get deal: %w", err)
	}
	if d == nil {
		return nil
	}

	if err := uc.viewCounter.Record(ctx, d.ID()); err != nil {
		// View stats are best effort; never fail the request over them.
		uc.logger.Warnw("failed to record view", "error", err, "deal_sid", cmd.DealSID)
	}
	return nil
}

// FlushViewCountsUseCase drains the buffered counters into the deals table.
// The server runs it on a ticker.
type FlushViewCountsUseCase struct {
	dealRepo    deal.Repository
	viewCounter cache.ViewCounter
	logger      logger.Interface
}

func NewFlushViewCountsUseCase(
	dealRepo deal.Repository,
	viewCounter cache.ViewCounter,
	logger logger.Interface,
) *FlushViewCountsUseCase {
	return &FlushViewCountsUseCase{
		dealRepo:    dealRepo,
		viewCounter: viewCounter,
		logger:      logger,
	}
}

func (uc *FlushViewCountsUseCase) Execute(ctx context.Context) error {
	counts, err := uc.viewCounter.Drain(ctx)
	if err != nil {
		return fmt.Errorf("failed to drain view counter: %w", err)
	}
	if len(counts) == 0 {
		return nil
	}

	var flushed int
	for dealID, count := range counts {
		if err := uc.dealRepo.IncrementViewCount(ctx, dealID, count); err != nil {
			uc.logger.Warnw("failed to flush view count", "error", err, "deal_id", dealID, "count", count)
			continue
		}
		flushed++
	}

	uc.logger.Debugw("view counts flushed", "deals", flushed)
	return nil
}
