package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/logger"
)

// QuotaStatus tells a retailer how much of today's posting window is left.
// UsedToday counts every deal created today regardless of its current
// status; archiving does not return the slot.
type QuotaStatus struct {
	DailyLimit int   `json:"daily_limit"`
	Unlimited  bool  `json:"unlimited"`
	UsedToday  int64 `json:"used_today"`
	CanCreate  bool  `json:"can_create"`
}

type GetQuotaStatusUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewGetQuotaStatusUseCase(dealRepo deal.Repository, logger logger.Interface) *GetQuotaStatusUseCase {
	return &GetQuotaStatusUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

func (uc *GetQuotaStatusUseCase) Execute(ctx context.Context, profile *retailer.Profile) (*QuotaStatus, error) {
	now := biztime.NowUTC()
	count, err := uc.dealRepo.CountCreatedBetween(ctx, profile.ID(), biztime.StartOfDayUTC(now), biztime.EndOfDayUTC(now))
	if err != nil {
		uc.logger.Errorw("failed to count today's deals", "error", err, "retailer_profile_id", profile.ID())
		return nil, fmt.Errorf("failed to resolve quota status: %w", err)
	}

	return &QuotaStatus{
		DailyLimit: profile.DailyDealLimit(),
		Unlimited:  profile.HasUnlimitedQuota(),
		UsedToday:  count,
		CanCreate:  profile.CanCreateDeal(count),
	}, nil
}
