package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"keydeals/internal/domain/deal"
	vo "keydeals/internal/domain/deal/valueobjects"
	"keydeals/internal/infrastructure/persistence/mappers"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/constants"
	"keydeals/internal/shared/logger"
)

type DealRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DealMapper
	logger logger.Interface
}

func NewDealRepository(
	db *gorm.DB,
	logger logger.Interface,
) deal.Repository {
	return &DealRepositoryImpl{
		db:     db,
		mapper: mappers.NewDealMapper(),
		logger: logger,
	}
}

func (r *DealRepositoryImpl) Create(ctx context.Context, dealEntity *deal.Deal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.createInTx(tx, dealEntity)
	})
}

// CreateWithDailyQuota serializes concurrent creations for the same retailer
// by taking a row lock on the retailer profile before counting. Two racing
// requests therefore count one after the other, and the second one sees the
// first one's insert.
func (r *DealRepositoryImpl) CreateWithDailyQuota(ctx context.Context, dealEntity *deal.Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error {
	var countToday int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.RetailerProfileModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&profile, dealEntity.RetailerProfileID()).Error; err != nil {
			return fmt.Errorf("failed to lock retailer profile: %w", err)
		}

		count, err := countCreatedBetween(tx, dealEntity.RetailerProfileID(), windowStart, windowEnd)
		if err != nil {
			return err
		}
		countToday = count

		if !admit(count) {
			return deal.ErrQuotaExceeded
		}

		return r.createInTx(tx, dealEntity)
	})
	if err != nil {
		if err == deal.ErrQuotaExceeded {
			r.logger.Infow("daily deal quota exhausted",
				"retailer_profile_id", dealEntity.RetailerProfileID(),
				"count_today", countToday,
			)
		} else {
			r.logger.Errorw("failed to create deal with quota check", "error", err)
		}
		return err
	}

	return nil
}

func (r *DealRepositoryImpl) createInTx(tx *gorm.DB, dealEntity *deal.Deal) error {
	model, err := r.mapper.ToModel(dealEntity)
	if err != nil {
		return fmt.Errorf("failed to map deal entity: %w", err)
	}

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	if err := dealEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set deal ID: %w", err)
	}

	imageModels := r.mapper.ToImageModels(dealEntity)
	for _, img := range imageModels {
		img.DealID = model.ID
		if err := tx.Create(img).Error; err != nil {
			return fmt.Errorf("failed to create deal image: %w", err)
		}
	}

	r.logger.Infow("deal created successfully",
		"id", model.ID,
		"sid", model.SID,
		"retailer_profile_id", model.RetailerProfileID,
	)
	return nil
}

func (r *DealRepositoryImpl) GetByID(ctx context.Context, dealID uint) (*deal.Deal, error) {
	var model models.DealModel

	if err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		First(&model, dealID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get deal by ID", "id", dealID, "error", err)
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map deal model to entity", "id", dealID, "error", err)
		return nil, fmt.Errorf("failed to map deal: %w", err)
	}

	return entity, nil
}

func (r *DealRepositoryImpl) GetBySID(ctx context.Context, sid string) (*deal.Deal, error) {
	var model models.DealModel

	if err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get deal by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map deal model to entity", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to map deal: %w", err)
	}

	return entity, nil
}

func (r *DealRepositoryImpl) Update(ctx context.Context, dealEntity *deal.Deal) error {
	model, err := r.mapper.ToModel(dealEntity)
	if err != nil {
		r.logger.Errorw("failed to map deal entity to model", "id", dealEntity.ID(), "error", err)
		return fmt.Errorf("failed to map deal entity: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DealModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"deal_type_id":   model.DealTypeID,
				"title":          model.Title,
				"description":    model.Description,
				"price":          model.Price,
				"original_price": model.OriginalPrice,
				"external_url":   model.ExternalURL,
				"expires_at":     model.ExpiresAt,
				"status":         model.Status,
				"updated_at":     model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update deal: %w", result.Error)
		}

		// Image rows are replaced wholesale; the aggregate owns the full set.
		if err := tx.Where("deal_id = ?", model.ID).Delete(&models.DealImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear deal images: %w", err)
		}
		for _, img := range r.mapper.ToImageModels(dealEntity) {
			img.ID = 0
			img.DealID = model.ID
			if err := tx.Create(img).Error; err != nil {
				return fmt.Errorf("failed to recreate deal image: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to update deal", "id", model.ID, "error", err)
		return err
	}

	r.logger.Infow("deal updated successfully", "id", model.ID)
	return nil
}

// Delete hard-deletes the deal together with its images and every bookmark
// pointing at it, in one transaction.
func (r *DealRepositoryImpl) Delete(ctx context.Context, dealID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deal_id = ?", dealID).Delete(&models.SavedDealModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete saved-deal rows: %w", err)
		}
		if err := tx.Where("deal_id = ?", dealID).Delete(&models.DealImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete deal images: %w", err)
		}
		if err := tx.Delete(&models.DealModel{}, dealID).Error; err != nil {
			return fmt.Errorf("failed to delete deal: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to delete deal", "id", dealID, "error", err)
		return err
	}

	r.logger.Infow("deal deleted successfully", "id", dealID)
	return nil
}

func (r *DealRepositoryImpl) CountCreatedBetween(ctx context.Context, retailerProfileID uint, from, to time.Time) (int64, error) {
	count, err := countCreatedBetween(r.db.WithContext(ctx), retailerProfileID, from, to)
	if err != nil {
		r.logger.Errorw("failed to count deals in window", "retailer_profile_id", retailerProfileID, "error", err)
		return 0, err
	}
	return count, nil
}

// countCreatedBetween is the single counting query behind both the quota
// admission check and the dashboard quota status, so the two can never drift.
func countCreatedBetween(tx *gorm.DB, retailerProfileID uint, from, to time.Time) (int64, error) {
	var count int64
	if err := tx.Model(&models.DealModel{}).
		Where("retailer_profile_id = ?", retailerProfileID).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count deals in quota window: %w", err)
	}
	return count, nil
}

// ListPublic returns storefront deals: active status, unexpired, owned by an
// active retailer profile. Always-on-top retailers sort before everyone else.
func (r *DealRepositoryImpl) ListPublic(ctx context.Context, filter deal.PublicFilter) ([]*deal.Deal, int64, error) {
	var dealModels []*models.DealModel
	var total int64

	now := filter.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	query := r.db.WithContext(ctx).Model(&models.DealModel{}).
		Joins(fmt.Sprintf("JOIN %s rp ON rp.id = %s.retailer_profile_id", constants.TableRetailerProfiles, constants.TableDeals)).
		Where(constants.TableDeals+".status = ?", vo.StatusActive.String()).
		Where(constants.TableDeals+".expires_at > ?", now).
		Where("rp.is_active = ?", true)

	if filter.DealTypeID != nil {
		query = query.Where(constants.TableDeals+".deal_type_id = ?", *filter.DealTypeID)
	}
	if filter.RetailerProfileID != nil {
		query = query.Where(constants.TableDeals+".retailer_profile_id = ?", *filter.RetailerProfileID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			constants.TableDeals+".title LIKE ? OR "+constants.TableDeals+".description LIKE ?",
			pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count public deals", "error", err)
		return nil, 0, fmt.Errorf("failed to count public deals: %w", err)
	}

	query = query.Order("rp.is_always_on_top DESC").
		Order(constants.TableDeals + ".created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Find(&dealModels).Error; err != nil {
		r.logger.Errorw("failed to list public deals", "error", err)
		return nil, 0, fmt.Errorf("failed to list public deals: %w", err)
	}

	entities, err := r.mapper.ToEntities(dealModels)
	if err != nil {
		r.logger.Errorw("failed to map deal models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map deals: %w", err)
	}

	return entities, total, nil
}

func (r *DealRepositoryImpl) ListByRetailer(ctx context.Context, retailerProfileID uint, filter deal.RetailerFilter) ([]*deal.Deal, int64, error) {
	var dealModels []*models.DealModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.DealModel{}).
		Where("retailer_profile_id = ?", retailerProfileID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count retailer deals", "retailer_profile_id", retailerProfileID, "error", err)
		return nil, 0, fmt.Errorf("failed to count retailer deals: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Find(&dealModels).Error; err != nil {
		r.logger.Errorw("failed to list retailer deals", "retailer_profile_id", retailerProfileID, "error", err)
		return nil, 0, fmt.Errorf("failed to list retailer deals: %w", err)
	}

	entities, err := r.mapper.ToEntities(dealModels)
	if err != nil {
		r.logger.Errorw("failed to map deal models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map deals: %w", err)
	}

	return entities, total, nil
}

func (r *DealRepositoryImpl) IncrementViewCount(ctx context.Context, dealID uint, delta uint64) error {
	if delta == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&models.DealModel{}).
		Where("id = ?", dealID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error; err != nil {
		r.logger.Errorw("failed to increment view count", "id", dealID, "delta", delta, "error", err)
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

func (r *DealRepositoryImpl) AdjustSaveCount(ctx context.Context, dealID uint, delta int64) error {
	if delta == 0 {
		return nil
	}

	var expr clause.Expr
	if delta > 0 {
		expr = gorm.Expr("save_count + ?", delta)
	} else {
		// Clamp at zero so concurrent unsaves never underflow the counter.
		expr = gorm.Expr("CASE WHEN save_count >= ? THEN save_count - ? ELSE 0 END", -delta, -delta)
	}

	if err := r.db.WithContext(ctx).Model(&models.DealModel{}).
		Where("id = ?", dealID).
		UpdateColumn("save_count", expr).Error; err != nil {
		r.logger.Errorw("failed to adjust save count", "id", dealID, "delta", delta, "error", err)
		return fmt.Errorf("failed to adjust save count: %w", err)
	}
	return nil
}
