package mappers

import (
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/mapper"
)

type DealTypeMapper interface {
	ToEntity(model *models.DealTypeModel) (*deal.Type, error)
	ToModel(entity *deal.Type) (*models.DealTypeModel, error)
	ToEntities(models []*models.DealTypeModel) ([]*deal.Type, error)
}

type DealTypeMapperImpl struct{}

func NewDealTypeMapper() DealTypeMapper {
	return &DealTypeMapperImpl{}
}

func (m *DealTypeMapperImpl) ToEntity(model *models.DealTypeModel) (*deal.Type, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := deal.ReconstructType(model.ID, model.SID, model.Name, model.ColorHex, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct deal type entity: %w", err)
	}

	return entity, nil
}

func (m *DealTypeMapperImpl) ToModel(entity *deal.Type) (*models.DealTypeModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DealTypeModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		ColorHex:  entity.Color(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *DealTypeMapperImpl) ToEntities(modelList []*models.DealTypeModel) ([]*deal.Type, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DealTypeModel) uint { return model.ID })
}
