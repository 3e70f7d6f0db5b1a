package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type ListSavedDealsQuery struct {
	UserID             uint
	RetailerProfileSID *string
}

// SavedDealItem pairs a bookmark with the deal it points to. Deals are
// present whatever their status or expiry; the bookmark list is the user's
// own history, not a storefront view.
type SavedDealItem struct {
	Saved *saveddeal.SavedDeal
	Deal  *deal.Deal
}

type ListSavedDealsUseCase struct {
	savedRepo    saveddeal.Repository
	dealRepo     deal.Repository
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewListSavedDealsUseCase(
	savedRepo saveddeal.Repository,
	dealRepo deal.Repository,
	retailerRepo retailer.Repository,
	logger logger.Interface,
) *ListSavedDealsUseCase {
	return &ListSavedDealsUseCase{
		savedRepo:    savedRepo,
		dealRepo:     dealRepo,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute lists the user's bookmarks newest first. Bookmarks whose deal was
// hard-deleted are already gone via cascade, so every item here resolves.
func (uc *ListSavedDealsUseCase) Execute(ctx context.Context, q ListSavedDealsQuery) ([]SavedDealItem, error) {
	var retailerProfileID *uint
	if q.RetailerProfileSID != nil && *q.RetailerProfileSID != "" {
		profile, err := uc.retailerRepo.GetBySID(ctx, *q.RetailerProfileSID)
		if err != nil {
			uc.logger.Errorw("failed to get retailer profile", "error", err, "retailer_sid", *q.RetailerProfileSID)
			return nil, fmt.Errorf("failed to get retailer profile: %w", err)
		}
		if profile == nil {
			return nil, errors.NewNotFoundError("retailer not found")
		}
		profileID := profile.ID()
		retailerProfileID = &profileID
	}

	saves, err := uc.savedRepo.ListByUser(ctx, q.UserID, retailerProfileID)
	if err != nil {
		uc.logger.Errorw("failed to list saved deals", "error", err, "user_id", q.UserID)
		return nil, fmt.Errorf("failed to list saved deals: %w", err)
	}

	items := make([]SavedDealItem, 0, len(saves))
	for _, s := range saves {
		d, err := uc.dealRepo.GetByID(ctx, s.DealID())
		if err != nil {
			uc.logger.Warnw("failed to resolve saved deal", "error", err, "deal_id", s.DealID())
			continue
		}
		if d == nil {
			// Deleted between the list query and this lookup; skip.
			continue
		}
		items = append(items, SavedDealItem{Saved: s, Deal: d})
	}

	return items, nil
}
