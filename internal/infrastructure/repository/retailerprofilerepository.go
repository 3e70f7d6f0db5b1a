package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/infrastructure/persistence/mappers"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/logger"
)

type RetailerProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RetailerProfileMapper
	logger logger.Interface
}

func NewRetailerProfileRepository(
	db *gorm.DB,
	logger logger.Interface,
) retailer.Repository {
	return &RetailerProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewRetailerProfileMapper(),
		logger: logger,
	}
}

func (r *RetailerProfileRepositoryImpl) Create(ctx context.Context, profileEntity *retailer.Profile) error {
	model, err := r.mapper.ToModel(profileEntity)
	if err != nil {
		r.logger.Errorw("failed to map retailer profile entity to model", "error", err)
		return fmt.Errorf("failed to map retailer profile entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create retailer profile in database", "error", err)
		return fmt.Errorf("failed to create retailer profile: %w", err)
	}

	if err := profileEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set retailer profile ID", "error", err)
		return fmt.Errorf("failed to set retailer profile ID: %w", err)
	}

	r.logger.Infow("retailer profile created successfully", "id", model.ID, "company_name", model.CompanyName)
	return nil
}

func (r *RetailerProfileRepositoryImpl) GetByID(ctx context.Context, profileID uint) (*retailer.Profile, error) {
	var model models.RetailerProfileModel

	if err := r.db.WithContext(ctx).First(&model, profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get retailer profile by ID", "id", profileID, "error", err)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map retailer profile model to entity", "id", profileID, "error", err)
		return nil, fmt.Errorf("failed to map retailer profile: %w", err)
	}

	return entity, nil
}

func (r *RetailerProfileRepositoryImpl) GetBySID(ctx context.Context, sid string) (*retailer.Profile, error) {
	var model models.RetailerProfileModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get retailer profile by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map retailer profile model to entity", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to map retailer profile: %w", err)
	}

	return entity, nil
}

func (r *RetailerProfileRepositoryImpl) GetByOwnerUserID(ctx context.Context, userID uint) (*retailer.Profile, error) {
	var model models.RetailerProfileModel

	if err := r.db.WithContext(ctx).Where("owner_user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get retailer profile by owner", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map retailer profile model to entity", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to map retailer profile: %w", err)
	}

	return entity, nil
}

func (r *RetailerProfileRepositoryImpl) Update(ctx context.Context, profileEntity *retailer.Profile) error {
	model, err := r.mapper.ToModel(profileEntity)
	if err != nil {
		r.logger.Errorw("failed to map retailer profile entity to model", "id", profileEntity.ID(), "error", err)
		return fmt.Errorf("failed to map retailer profile entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.RetailerProfileModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"company_name":       model.CompanyName,
			"contact_email":      model.ContactEmail,
			"contact_phone":      model.ContactPhone,
			"logo_url":           model.LogoURL,
			"website_url":        model.WebsiteURL,
			"daily_deal_limit":   model.DailyDealLimit,
			"has_csv_permission": model.HasCSVPermission,
			"is_always_on_top":   model.IsAlwaysOnTop,
			"is_active":          model.IsActive,
			"owner_user_id":      model.OwnerUserID,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update retailer profile", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update retailer profile: %w", result.Error)
	}

	r.logger.Infow("retailer profile updated successfully", "id", model.ID)
	return nil
}

// Delete hard-deletes the profile and everything hanging off it: its deals,
// their images and the bookmarks pointing at those deals.
func (r *RetailerProfileRepositoryImpl) Delete(ctx context.Context, profileID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dealIDs []uint
		if err := tx.Model(&models.DealModel{}).
			Where("retailer_profile_id = ?", profileID).
			Pluck("id", &dealIDs).Error; err != nil {
			return fmt.Errorf("failed to collect deal IDs: %w", err)
		}

		if len(dealIDs) > 0 {
			if err := tx.Where("deal_id IN ?", dealIDs).Delete(&models.SavedDealModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete saved-deal rows: %w", err)
			}
			if err := tx.Where("deal_id IN ?", dealIDs).Delete(&models.DealImageModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete deal images: %w", err)
			}
			if err := tx.Where("retailer_profile_id = ?", profileID).Delete(&models.DealModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete deals: %w", err)
			}
		}

		if err := tx.Delete(&models.RetailerProfileModel{}, profileID).Error; err != nil {
			return fmt.Errorf("failed to delete retailer profile: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to delete retailer profile", "id", profileID, "error", err)
		return err
	}

	r.logger.Infow("retailer profile deleted successfully", "id", profileID)
	return nil
}

func (r *RetailerProfileRepositoryImpl) List(ctx context.Context, filter retailer.Filter) ([]*retailer.Profile, int64, error) {
	var profileModels []*models.RetailerProfileModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RetailerProfileModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("company_name LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count retailer profiles", "error", err)
		return nil, 0, fmt.Errorf("failed to count retailer profiles: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to list retailer profiles", "error", err)
		return nil, 0, fmt.Errorf("failed to list retailer profiles: %w", err)
	}

	entities, err := r.mapper.ToEntities(profileModels)
	if err != nil {
		r.logger.Errorw("failed to map retailer profile models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map retailer profiles: %w", err)
	}

	return entities, total, nil
}
