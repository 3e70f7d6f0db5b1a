package mappers

import (
	"fmt"

	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/mapper"
)

type SavedDealMapper interface {
	ToEntity(model *models.SavedDealModel) (*saveddeal.SavedDeal, error)
	ToModel(entity *saveddeal.SavedDeal) (*models.SavedDealModel, error)
	ToEntities(models []*models.SavedDealModel) ([]*saveddeal.SavedDeal, error)
}

type SavedDealMapperImpl struct{}

func NewSavedDealMapper() SavedDealMapper {
	return &SavedDealMapperImpl{}
}

func (m *SavedDealMapperImpl) ToEntity(model *models.SavedDealModel) (*saveddeal.SavedDeal, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := saveddeal.Reconstruct(model.ID, model.SID, model.UserID, model.DealID, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct saved deal entity: %w", err)
	}

	return entity, nil
}

func (m *SavedDealMapperImpl) ToModel(entity *saveddeal.SavedDeal) (*models.SavedDealModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SavedDealModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		DealID:    entity.DealID(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *SavedDealMapperImpl) ToEntities(modelList []*models.SavedDealModel) ([]*saveddeal.SavedDeal, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SavedDealModel) uint { return model.ID })
}
