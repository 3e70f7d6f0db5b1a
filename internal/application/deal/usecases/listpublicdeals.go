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

type ListPublicDealsQuery struct {
	DealTypeSID        *string
	RetailerProfileSID *string
	Search             string
	Page               int
	PageSize           int
}

type ListPublicDealsResult struct {
	Deals []*deal.Deal
	// Retailers holds the owning profile per deal ID, for the storefront
	// retailer embed.
	Retailers map[uint]*retailer.Profile
	Total     int64
}

type ListPublicDealsUseCase struct {
	dealRepo     deal.Repository
	dealTypeRepo deal.TypeRepository
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewListPublicDealsUseCase(
	dealRepo deal.Repository,
	dealTypeRepo deal.TypeRepository,
	retailerRepo retailer.Repository,
	logger logger.Interface,
) *ListPublicDealsUseCase {
	return &ListPublicDealsUseCase{
		dealRepo:     dealRepo,
		dealTypeRepo: dealTypeRepo,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute lists storefront deals. Expiration is enforced here at read time:
// a deal past its expiry never appears, whatever its stored status says.
func (uc *ListPublicDealsUseCase) Execute(ctx context.Context, q ListPublicDealsQuery) (*ListPublicDealsResult, error) {
	filter := deal.PublicFilter{
		Search:   q.Search,
		Now:      biztime.NowUTC(),
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if q.DealTypeSID != nil && *q.DealTypeSID != "" {
		dealType, err := uc.dealTypeRepo.GetBySID(ctx, *q.DealTypeSID)
		if err != nil {
			uc.logger.Errorw("failed to get deal type", "error", err, "deal_type_sid", *q.DealTypeSID)
			return nil, fmt.Errorf("failed to get deal type: %w", err)
		}
		if dealType == nil {
			return nil, errors.NewValidationError("unknown deal type")
		}
		typeID := dealType.ID()
		filter.DealTypeID = &typeID
	}

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
		filter.RetailerProfileID = &profileID
	}

	deals, total, err := uc.dealRepo.ListPublic(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list public deals", "error", err)
		return nil, fmt.Errorf("failed to list public deals: %w", err)
	}

	retailers := make(map[uint]*retailer.Profile)
	for _, d := range deals {
		if _, ok := retailers[d.RetailerProfileID()]; ok {
			continue
		}
		profile, err := uc.retailerRepo.GetByID(ctx, d.RetailerProfileID())
		if err != nil {
			uc.logger.Warnw("failed to get retailer profile for listing", "error", err, "retailer_profile_id", d.RetailerProfileID())
			continue
		}
		if profile != nil {
			retailers[d.RetailerProfileID()] = profile
		}
	}

	return &ListPublicDealsResult{
		Deals:     deals,
		Retailers: retailers,
		Total:     total,
	}, nil
}
