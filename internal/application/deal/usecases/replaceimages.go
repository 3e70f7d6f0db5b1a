package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type ReplaceImagesCommand struct {
	DealSID           string
	RetailerProfileID uint
	// ImageURLs in display order; the first one is the cover image.
	ImageURLs []string
}

type ReplaceImagesUseCase struct {
	dealRepo deal.Repository
	logger   logger.Interface
}

func NewReplaceImagesUseCase(dealRepo deal.Repository, logger logger.Interface) *ReplaceImagesUseCase {
	return &ReplaceImagesUseCase{
		dealRepo: dealRepo,
		logger:   logger,
	}
}

// Execute swaps the deal's image set wholesale. An empty list clears every
// image.
func (uc *ReplaceImagesUseCase) Execute(ctx context.Context, cmd ReplaceImagesCommand) (*deal.Deal, error) {
	d, err := loadOwnedDeal(ctx, uc.dealRepo, cmd.DealSID, cmd.RetailerProfileID)
	if err != nil {
		return nil, err
	}

	images := make([]deal.Image, 0, len(cmd.ImageURLs))
	for i, url := range cmd.ImageURLs {
		img, err := deal.NewImage(d.ID(), url, i)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		images = append(images, *img)
	}

	if err := d.ReplaceImages(images); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.dealRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update deal images", "error", err, "deal_sid", cmd.DealSID)
		return nil, fmt.Errorf("failed to update deal images: %w", err)
	}

	uc.logger.Infow("deal images replaced", "deal_sid", cmd.DealSID, "count", len(images))
	return d, nil
}
