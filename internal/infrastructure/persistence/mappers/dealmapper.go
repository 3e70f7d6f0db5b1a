package mappers

import (
	"fmt"

	"keydeals/internal/domain/deal"
	vo "keydeals/internal/domain/deal/valueobjects"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/mapper"
)

type DealMapper interface {
	ToEntity(model *models.DealModel) (*deal.Deal, error)
	ToModel(entity *deal.Deal) (*models.DealModel, error)
	ToEntities(models []*models.DealModel) ([]*deal.Deal, error)
	ToImageModels(entity *deal.Deal) []*models.DealImageModel
}

type DealMapperImpl struct{}

func NewDealMapper() DealMapper {
	return &DealMapperImpl{}
}

func (m *DealMapperImpl) ToEntity(model *models.DealModel) (*deal.Deal, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.DealStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid deal status: %s", model.Status)
	}

	images := make([]deal.Image, 0, len(model.Images))
	for _, img := range model.Images {
		images = append(images, deal.ReconstructImage(
			img.ID,
			img.SID,
			img.DealID,
			img.ImageURL,
			img.DisplayOrder,
			img.CreatedAt,
		))
	}

	entity, err := deal.ReconstructDeal(deal.DealReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		RetailerProfileID: model.RetailerProfileID,
		DealTypeID:        model.DealTypeID,
		Title:             model.Title,
		Description:       model.Description,
		Price:             model.Price,
		OriginalPrice:     model.OriginalPrice,
		ExternalURL:       model.ExternalURL,
		ExpiresAt:         model.ExpiresAt,
		Status:            status,
		ViewCount:         model.ViewCount,
		SaveCount:         model.SaveCount,
		Images:            images,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct deal entity: %w", err)
	}

	return entity, nil
}

func (m *DealMapperImpl) ToModel(entity *deal.Deal) (*models.DealModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DealModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		RetailerProfileID: entity.RetailerProfileID(),
		DealTypeID:        entity.DealTypeID(),
		Title:             entity.Title(),
		Description:       entity.Description(),
		Price:             entity.Price(),
		OriginalPrice:     entity.OriginalPrice(),
		ExternalURL:       entity.ExternalURL(),
		ExpiresAt:         entity.ExpiresAt(),
		Status:            entity.Status().String(),
		ViewCount:         entity.ViewCount(),
		SaveCount:         entity.SaveCount(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *DealMapperImpl) ToEntities(modelList []*models.DealModel) ([]*deal.Deal, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DealModel) uint { return model.ID })
}

// ToImageModels flattens the aggregate's images into persistence rows.
// Image rows are replaced wholesale on update, so IDs of new images are zero.
func (m *DealMapperImpl) ToImageModels(entity *deal.Deal) []*models.DealImageModel {
	if entity == nil {
		return nil
	}

	imgs := entity.Images()
	result := make([]*models.DealImageModel, 0, len(imgs))
	for _, img := range imgs {
		result = append(result, &models.DealImageModel{
			ID:           img.ID(),
			SID:          img.SID(),
			DealID:       entity.ID(),
			ImageURL:     img.ImageURL(),
			DisplayOrder: img.DisplayOrder(),
			CreatedAt:    img.CreatedAt(),
		})
	}
	return result
}
