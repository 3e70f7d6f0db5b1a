package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/errors"
)

func newBookmarkableDeal(t *testing.T, dealID uint) *deal.Deal {
	t.Helper()
	d, err := deal.NewDeal(deal.NewDealParams{
		RetailerProfileID: 1,
		Title:             "Kwikset SmartKey deadbolt",
		Price:             39.99,
		ExternalURL:       "https://store.example.com/kwikset",
		ExpiresAt:         biztime.NowUTC().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, d.SetID(dealID))
	return d
}

func dealRepoReturning(d *deal.Deal) *mockDealRepository {
	return &mockDealRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*deal.Deal, error) {
			if d != nil && sid == d.SID() {
				return d, nil
			}
			return nil, nil
		},
	}
}

func TestSaveDealUseCase_NewBookmarkBumpsSaveCount(t *testing.T) {
	d := newBookmarkableDeal(t, 5)
	dealRepo := dealRepoReturning(d)

	var adjustedID uint
	var adjustedDelta int64
	dealRepo.AdjustSaveCountFunc = func(ctx context.Context, dealID uint, delta int64) error {
		adjustedID = dealID
		adjustedDelta = delta
		return nil
	}

	savedRepo := &mockSavedDealRepository{
		UpsertFunc: func(ctx context.Context, s *saveddeal.SavedDeal) (*saveddeal.SavedDeal, bool, error) {
			require.NoError(t, s.SetID(77))
			return s, true, nil
		},
	}

	uc := NewSaveDealUseCase(savedRepo, dealRepo, &mockLogger{})
	saved, err := uc.Execute(context.Background(), SaveDealCommand{UserID: 9, DealSID: d.SID()})

	require.NoError(t, err)
	assert.Equal(t, uint(9), saved.UserID())
	assert.Equal(t, uint(5), saved.DealID())
	assert.Equal(t, uint(5), adjustedID)
	assert.Equal(t, int64(1), adjustedDelta)
}

func TestSaveDealUseCase_RepeatedSaveIsIdempotent(t *testing.T) {
	d := newBookmarkableDeal(t, 5)
	dealRepo := dealRepoReturning(d)

	adjusted := false
	dealRepo.AdjustSaveCountFunc = func(ctx context.Context, dealID uint, delta int64) error {
		adjusted = true
		return nil
	}

	existing, err := saveddeal.Reconstruct(77, "sav_existing1", 9, 5, biztime.NowUTC().Add(-time.Hour))
	require.NoError(t, err)

	savedRepo := &mockSavedDealRepository{
		UpsertFunc: func(ctx context.Context, s *saveddeal.SavedDeal) (*saveddeal.SavedDeal, bool, error) {
			return existing, false, nil
		},
	}

	uc := NewSaveDealUseCase(savedRepo, dealRepo, &mockLogger{})
	saved, err := uc.Execute(context.Background(), SaveDealCommand{UserID: 9, DealSID: d.SID()})

	require.NoError(t, err)
	assert.Equal(t, "sav_existing1", saved.SID())
	assert.False(t, adjusted, "an existing bookmark must not move the save counter")
}

func TestSaveDealUseCase_UnknownDeal(t *testing.T) {
	uc := NewSaveDealUseCase(&mockSavedDealRepository{}, dealRepoReturning(nil), &mockLogger{})

	_, err := uc.Execute(context.Background(), SaveDealCommand{UserID: 9, DealSID: "deal_missing"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}
