package mappers

import (
	"fmt"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/mapper"
)

type RetailerProfileMapper interface {
	ToEntity(model *models.RetailerProfileModel) (*retailer.Profile, error)
	ToModel(entity *retailer.Profile) (*models.RetailerProfileModel, error)
	ToEntities(models []*models.RetailerProfileModel) ([]*retailer.Profile, error)
}

type RetailerProfileMapperImpl struct{}

func NewRetailerProfileMapper() RetailerProfileMapper {
	return &RetailerProfileMapperImpl{}
}

func (m *RetailerProfileMapperImpl) ToEntity(model *models.RetailerProfileModel) (*retailer.Profile, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := retailer.ReconstructProfile(retailer.ProfileReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		CompanyName:      model.CompanyName,
		ContactEmail:     model.ContactEmail,
		ContactPhone:     model.ContactPhone,
		LogoURL:          model.LogoURL,
		WebsiteURL:       model.WebsiteURL,
		DailyDealLimit:   model.DailyDealLimit,
		HasCSVPermission: model.HasCSVPermission,
		IsAlwaysOnTop:    model.IsAlwaysOnTop,
		IsActive:         model.IsActive,
		OwnerUserID:      model.OwnerUserID,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct retailer profile entity: %w", err)
	}

	return entity, nil
}

func (m *RetailerProfileMapperImpl) ToModel(entity *retailer.Profile) (*models.RetailerProfileModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RetailerProfileModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		CompanyName:      entity.CompanyName(),
		ContactEmail:     entity.ContactEmail(),
		ContactPhone:     entity.ContactPhone(),
		LogoURL:          entity.LogoURL(),
		WebsiteURL:       entity.WebsiteURL(),
		DailyDealLimit:   entity.DailyDealLimit(),
		HasCSVPermission: entity.HasCSVPermission(),
		IsAlwaysOnTop:    entity.IsAlwaysOnTop(),
		IsActive:         entity.IsActive(),
		OwnerUserID:      entity.OwnerUserID(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *RetailerProfileMapperImpl) ToEntities(modelList []*models.RetailerProfileModel) ([]*retailer.Profile, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.RetailerProfileModel) uint { return model.ID })
}
