package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keydeals/internal/domain/deal"
	"keydeals/internal/infrastructure/persistence/mappers"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/logger"
)

type DealTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DealTypeMapper
	logger logger.Interface
}

func NewDealTypeRepository(
	db *gorm.DB,
	logger logger.Interface,
) deal.TypeRepository {
	return &DealTypeRepositoryImpl{
		db:     db,
		mapper: mappers.NewDealTypeMapper(),
		logger: logger,
	}
}

func (r *DealTypeRepositoryImpl) Create(ctx context.Context, typeEntity *deal.Type) error {
	model, err := r.mapper.ToModel(typeEntity)
	if err != nil {
		r.logger.Errorw("failed to map deal type entity to model", "error", err)
		return fmt.Errorf("failed to map deal type entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create deal type in database", "error", err)
		return fmt.Errorf("failed to create deal type: %w", err)
	}

	if err := typeEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set deal type ID", "error", err)
		return fmt.Errorf("failed to set deal type ID: %w", err)
	}

	r.logger.Infow("deal type created successfully", "id", model.ID, "name", model.Name)
	return nil
}

func (r *DealTypeRepositoryImpl) GetByID(ctx context.Context, typeID uint) (*deal.Type, error) {
	var model models.DealTypeModel

	if err := r.db.WithContext(ctx).First(&model, typeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get deal type by ID", "id", typeID, "error", err)
		return nil, fmt.Errorf("failed to get deal type: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map deal type model to entity", "id", typeID, "error", err)
		return nil, fmt.Errorf("failed to map deal type: %w", err)
	}

	return entity, nil
}

func (r *DealTypeRepositoryImpl) GetBySID(ctx context.Context, sid string) (*deal.Type, error) {
	var model models.DealTypeModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get deal type by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get deal type: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map deal type model to entity", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to map deal type: %w", err)
	}

	return entity, nil
}

func (r *DealTypeRepositoryImpl) List(ctx context.Context) ([]*deal.Type, error) {
	var typeModels []*models.DealTypeModel

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels).Error; err != nil {
		r.logger.Errorw("failed to list deal types", "error", err)
		return nil, fmt.Errorf("failed to list deal types: %w", err)
	}

	entities, err := r.mapper.ToEntities(typeModels)
	if err != nil {
		r.logger.Errorw("failed to map deal type models to entities", "error", err)
		return nil, fmt.Errorf("failed to map deal types: %w", err)
	}

	return entities, nil
}

// Delete removes the type and detaches deals referencing it rather than
// deleting them.
func (r *DealTypeRepositoryImpl) Delete(ctx context.Context, typeID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DealModel{}).
			Where("deal_type_id = ?", typeID).
			UpdateColumn("deal_type_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach deals from type: %w", err)
		}
		if err := tx.Delete(&models.DealTypeModel{}, typeID).Error; err != nil {
			return fmt.Errorf("failed to delete deal type: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to delete deal type", "id", typeID, "error", err)
		return err
	}

	r.logger.Infow("deal type deleted successfully", "id", typeID)
	return nil
}
