package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type GetPublicDealQuery struct {
	DealSID string
}

// GetPublicDealResult bundles the deal with the retailer it belongs to for
// the storefront detail page.
type GetPublicDealResult struct {
	Deal     *deal.Deal
	Retailer *retailer.Profile
	DealType *deal.Type
}

type GetPublicDealUseCase struct {
	dealRepo     deal.Repository
	dealTypeRepo deal.TypeRepository
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewGetPublicDealUseCase(
	dealRepo deal.Repository,
	dealTypeRepo deal.TypeRepository,
	retailerRepo retailer.Repository,
	logger logger.Interface,
) *GetPublicDealUseCase {
	return &GetPublicDealUseCase{
		dealRepo:     dealRepo,
		dealTypeRepo: dealTypeRepo,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute returns the deal only while it is publicly visible: active,
// unexpired, and owned by an active retailer. Everything else reads as
// not-found on the public surface.
func (uc *GetPublicDealUseCase) Execute(ctx context.Context, q GetPublicDealQuery) (*GetPublicDealResult, error) {
	d, err := uc.dealRepo.GetBySID(ctx, q.DealSID)
	if err != nil {
		uc.logger.Errorw("failed to get deal", "error", err, "deal_sid", q.DealSID)
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	if d == nil || !d.IsPubliclyVisible(biztime.NowUTC()) {
		return nil, errors.NewNotFoundError("deal not found")
	}

	profile, err := uc.retailerRepo.GetByID(ctx, d.RetailerProfileID())
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "deal_sid", q.DealSID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil || !profile.IsActive() {
		return nil, errors.NewNotFoundError("deal not found")
	}

	var dealType *deal.Type
	if typeID := d.DealTypeID(); typeID != nil {
		dealType, err = uc.dealTypeRepo.GetByID(ctx, *typeID)
		if err != nil {
			uc.logger.Warnw("failed to get deal type", "error", err, "deal_sid", q.DealSID)
		}
	}

	return &GetPublicDealResult{
		Deal:     d,
		Retailer: profile,
		DealType: dealType,
	}, nil
}

type GetRetailerDealQuery struct {
	DealSID           string
	RetailerProfileID uint
}

type GetRetailerDealUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewGetRetailerDealUseCase(dealRepo deal.Repository, logger logger.Interface) *GetRetailerDealUseCase {
	return &GetRetailerDealUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute returns one of the caller's own deals regardless of status.
func (uc *GetRetailerDealUseCase) Execute(ctx context.Context, q GetRetailerDealQuery) (*deal.Deal, error) {
	return loadOwnedDeal(ctx, uc.dealRepo, q.DealSID, q.RetailerProfileID)
}
