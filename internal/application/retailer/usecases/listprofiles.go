package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/logger"
)

type ListProfilesQuery struct {
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

type ListProfilesResult struct {
	Profiles []*retailer.Profile
	Total    int64
}

type ListProfilesUseCase struct {
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewListProfilesUseCase(retailerRepo retailer.Repository, logger logger.Interface) *ListProfilesUseCase {
	return &ListProfilesUseCase{
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context, q ListProfilesQuery) (*ListProfilesResult, error) {
	profiles, total, err := uc.retailerRepo.List(ctx, retailer.Filter{
		IsActive: q.IsActive,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list retailer profiles", "error", err)
		return nil, fmt.Errorf("failed to list retailer profiles: %w", err)
	}

	return &ListProfilesResult{Profiles: profiles, Total: total}, nil
}
