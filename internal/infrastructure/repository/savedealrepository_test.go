package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/infrastructure/persistence/models"
	"keydeals/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.RetailerProfileModel{},
		&models.DealModel{},
		&models.DealImageModel{},
		&models.SavedDealModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seedDeal(t *testing.T, db *gorm.DB, sid string, retailerProfileID uint) uint {
	t.Helper()
	model := &models.DealModel{
		SID:               sid,
		RetailerProfileID: retailerProfileID,
		Title:             "Seeded deal",
		Price:             10,
		ExternalURL:       "https://store.example.com/item",
		ExpiresAt:         time.Now().UTC().Add(24 * time.Hour),
		Status:            "active",
	}
	require.NoError(t, db.Create(model).Error)
	return model.ID
}

func newSaved(t *testing.T, userID, dealID uint) *saveddeal.SavedDeal {
	t.Helper()
	s, err := saveddeal.New(userID, dealID)
	require.NoError(t, err)
	return s
}

func TestSavedDealRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSavedDealRepository(db, testLogger())
	ctx := context.Background()
	dealID := seedDeal(t, db, "deal_upsert01", 1)

	t.Run("creates new bookmark", func(t *testing.T) {
		saved, created, err := repo.Upsert(ctx, newSaved(t, 9, dealID))
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, saved.ID())
	})

	t.Run("second save returns existing row", func(t *testing.T) {
		first, _, err := repo.Upsert(ctx, newSaved(t, 10, dealID))
		require.NoError(t, err)

		again, created, err := repo.Upsert(ctx, newSaved(t, 10, dealID))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID(), again.ID())
		assert.Equal(t, first.SID(), again.SID())

		count, err := repo.CountByDeal(ctx, dealID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestSavedDealRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSavedDealRepository(db, testLogger())
	ctx := context.Background()
	dealID := seedDeal(t, db, "deal_delete01", 1)

	_, _, err := repo.Upsert(ctx, newSaved(t, 9, dealID))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, 9, dealID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, 9, dealID)
	require.NoError(t, err)
	assert.False(t, removed, "deleting an absent bookmark reports no removal")
}

func TestSavedDealRepository_DeleteBySIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSavedDealRepository(db, testLogger())
	ctx := context.Background()
	dealA := seedDeal(t, db, "deal_bulk0001", 1)
	dealB := seedDeal(t, db, "deal_bulk0002", 1)

	mine, _, err := repo.Upsert(ctx, newSaved(t, 9, dealA))
	require.NoError(t, err)
	theirs, _, err := repo.Upsert(ctx, newSaved(t, 10, dealB))
	require.NoError(t, err)

	dealIDs, err := repo.DeleteBySIDs(ctx, 9, []string{mine.SID(), theirs.SID(), "sav_nothing0"})
	require.NoError(t, err)
	assert.Equal(t, []uint{dealA}, dealIDs)

	// The other user's bookmark is untouched.
	still, err := repo.GetByUserAndDeal(ctx, 10, dealB)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, theirs.SID(), still.SID())
}

func TestSavedDealRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSavedDealRepository(db, testLogger())
	ctx := context.Background()
	dealA := seedDeal(t, db, "deal_list0001", 1)
	dealB := seedDeal(t, db, "deal_list0002", 2)

	_, _, err := repo.Upsert(ctx, newSaved(t, 9, dealA))
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, newSaved(t, 9, dealB))
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, newSaved(t, 10, dealA))
	require.NoError(t, err)

	all, err := repo.ListByUser(ctx, 9, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	retailerTwo := uint(2)
	filtered, err := repo.ListByUser(ctx, 9, &retailerTwo)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, dealB, filtered[0].DealID())
}
