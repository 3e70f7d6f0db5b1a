package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/infrastructure/persistence/mappers"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/constants"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type SavedDealRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SavedDealMapper
	logger logger.Interface
}

func NewSavedDealRepository(
	db *gorm.DB,
	logger logger.Interface,
) saveddeal.Repository {
	return &SavedDealRepositoryImpl{
		db:     db,
		mapper: mappers.NewSavedDealMapper(),
		logger: logger,
	}
}

// Upsert inserts the bookmark, falling back to the existing row when the
// (user_id, deal_id) unique index fires. Repeated saves are side-effect free.
func (r *SavedDealRepositoryImpl) Upsert(ctx context.Context, savedEntity *saveddeal.SavedDeal) (*saveddeal.SavedDeal, bool, error) {
	model, err := r.mapper.ToModel(savedEntity)
	if err != nil {
		r.logger.Errorw("failed to map saved deal entity to model", "error", err)
		return nil, false, fmt.Errorf("failed to map saved deal entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if !errors.IsDuplicateError(err) {
			r.logger.Errorw("failed to create saved deal", "user_id", model.UserID, "deal_id", model.DealID, "error", err)
			return nil, false, fmt.Errorf("failed to create saved deal: %w", err)
		}

		existing, err := r.GetByUserAndDeal(ctx, model.UserID, model.DealID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			// Raced with a concurrent unsave; treat as a fresh miss.
			return nil, false, fmt.Errorf("saved deal vanished during upsert")
		}
		return existing, false, nil
	}

	if err := savedEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set saved deal ID", "error", err)
		return nil, false, fmt.Errorf("failed to set saved deal ID: %w", err)
	}

	r.logger.Infow("deal saved", "user_id", model.UserID, "deal_id", model.DealID)
	return savedEntity, true, nil
}

func (r *SavedDealRepositoryImpl) GetByUserAndDeal(ctx context.Context, userID, dealID uint) (*saveddeal.SavedDeal, error) {
	var model models.SavedDealModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deal_id = ?", userID, dealID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get saved deal", "user_id", userID, "deal_id", dealID, "error", err)
		return nil, fmt.Errorf("failed to get saved deal: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map saved deal model to entity", "error", err)
		return nil, fmt.Errorf("failed to map saved deal: %w", err)
	}

	return entity, nil
}

func (r *SavedDealRepositoryImpl) Delete(ctx context.Context, userID, dealID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND deal_id = ?", userID, dealID).
		Delete(&models.SavedDealModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete saved deal", "user_id", userID, "deal_id", dealID, "error", result.Error)
		return false, fmt.Errorf("failed to delete saved deal: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// DeleteBySIDs removes only rows owned by userID; SIDs belonging to other
// users or to nothing at all fall out of the WHERE clause silently. The
// removed rows' deal IDs come back so callers can settle the save counters.
func (r *SavedDealRepositoryImpl) DeleteBySIDs(ctx context.Context, userID uint, sids []string) ([]uint, error) {
	if len(sids) == 0 {
		return nil, nil
	}

	var dealIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SavedDealModel{}).
			Where("user_id = ? AND sid IN ?", userID, sids).
			Pluck("deal_id", &dealIDs).Error; err != nil {
			return fmt.Errorf("failed to resolve saved deals: %w", err)
		}
		if len(dealIDs) == 0 {
			return nil
		}
		if err := tx.Where("user_id = ? AND sid IN ?", userID, sids).
			Delete(&models.SavedDealModel{}).Error; err != nil {
			return fmt.Errorf("failed to bulk delete saved deals: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to bulk delete saved deals", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Infow("saved deals bulk removed", "user_id", userID, "requested", len(sids), "removed", len(dealIDs))
	return dealIDs, nil
}

func (r *SavedDealRepositoryImpl) ListByUser(ctx context.Context, userID uint, retailerProfileID *uint) ([]*saveddeal.SavedDeal, error) {
	var savedModels []*models.SavedDealModel

	query := r.db.WithContext(ctx).Model(&models.SavedDealModel{}).
		Where(constants.TableSavedDeals+".user_id = ?", userID)

	if retailerProfileID != nil {
		query = query.
			Joins(fmt.Sprintf("JOIN %s d ON d.id = %s.deal_id", constants.TableDeals, constants.TableSavedDeals)).
			Where("d.retailer_profile_id = ?", *retailerProfileID)
	}

	if err := query.Order(constants.TableSavedDeals + ".created_at DESC").Find(&savedModels).Error; err != nil {
		r.logger.Errorw("failed to list saved deals", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list saved deals: %w", err)
	}

	entities, err := r.mapper.ToEntities(savedModels)
	if err != nil {
		r.logger.Errorw("failed to map saved deal models to entities", "error", err)
		return nil, fmt.Errorf("failed to map saved deals: %w", err)
	}

	return entities, nil
}

func (r *SavedDealRepositoryImpl) CountByDeal(ctx context.Context, dealID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SavedDealModel{}).
		Where("deal_id = ?", dealID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count saved deals", "deal_id", dealID, "error", err)
		return 0, fmt.Errorf("failed to count saved deals: %w", err)
	}
	return count, nil
}
