package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	vo "keydeals/internal/domain/deal/valueobjects"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type ListRetailerDealsQuery struct {
	RetailerProfileID uint
	Status            *string
	Page              int
	PageSize          int
}

type ListRetailerDealsResult struct {
	Deals []*deal.Deal
	Total int64
}

type ListRetailerDealsUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewListRetailerDealsUseCase(dealRepo deal.Repository, logger logger.Interface) *ListRetailerDealsUseCase {
	return &ListRetailerDealsUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute lists the caller's own deals for the dashboard, expired ones
// included so they can be restored or archived.
func (uc *ListRetailerDealsUseCase) Execute(ctx context.Context, q ListRetailerDealsQuery) (*ListRetailerDealsResult, error) {
	if q.Status != nil && !vo.ValidStatuses[vo.DealStatus(*q.Status)] {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown deal status: %s", *q.Status))
	}

	deals, total, err := uc.dealRepo.ListByRetailer(ctx, q.RetailerProfileID, deal.RetailerFilter{
		Status:   q.Status,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list retailer deals", "error", err, "retailer_profile_id", q.RetailerProfileID)
		return nil, fmt.Errorf("failed to list retailer deals: %w", err)
	}

	return &ListRetailerDealsResult{Deals: deals, Total: total}, nil
}
