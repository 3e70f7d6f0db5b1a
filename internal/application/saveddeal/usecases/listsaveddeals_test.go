package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/domain/saveddeal"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/errors"
)

func TestListSavedDealsUseCase_ResolvesDeals(t *testing.T) {
	d := newBookmarkableDeal(t, 5)
	saved, err := saveddeal.Reconstruct(77, "sav_abc123", 9, 5, biztime.NowUTC().Add(-time.Hour))
	require.NoError(t, err)

	savedRepo := &mockSavedDealRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, retailerProfileID *uint) ([]*saveddeal.SavedDeal, error) {
			assert.Equal(t, uint(9), userID)
			assert.Nil(t, retailerProfileID)
			return []*saveddeal.SavedDeal{saved}, nil
		},
	}
	dealRepo := &mockDealRepository{
		GetByIDFunc: func(ctx context.Context, dealID uint) (*deal.Deal, error) {
			if dealID == 5 {
				return d, nil
			}
			return nil, nil
		},
	}

	uc := NewListSavedDealsUseCase(savedRepo, dealRepo, &mockRetailerRepository{}, &mockLogger{})
	items, err := uc.Execute(context.Background(), ListSavedDealsQuery{UserID: 9})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sav_abc123", items[0].Saved.SID())
	assert.Equal(t, uint(5), items[0].Deal.ID())
}

func TestListSavedDealsUseCase_FiltersByRetailer(t *testing.T) {
	profile, err := retailer.NewProfile(retailer.NewProfileParams{CompanyName: "Acme Locks"})
	require.NoError(t, err)
	require.NoError(t, profile.SetID(3))

	var gotProfileID *uint
	savedRepo := &mockSavedDealRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, retailerProfileID *uint) ([]*saveddeal.SavedDeal, error) {
			gotProfileID = retailerProfileID
			return nil, nil
		},
	}
	retailerRepo := &mockRetailerRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*retailer.Profile, error) {
			if sid == profile.SID() {
				return profile, nil
			}
			return nil, nil
		},
	}

	uc := NewListSavedDealsUseCase(savedRepo, &mockDealRepository{}, retailerRepo, &mockLogger{})
	sid := profile.SID()
	items, err := uc.Execute(context.Background(), ListSavedDealsQuery{UserID: 9, RetailerProfileSID: &sid})

	require.NoError(t, err)
	assert.Empty(t, items)
	require.NotNil(t, gotProfileID)
	assert.Equal(t, uint(3), *gotProfileID)
}

func TestListSavedDealsUseCase_UnknownRetailerFilter(t *testing.T) {
	uc := NewListSavedDealsUseCase(&mockSavedDealRepository{}, &mockDealRepository{}, &mockRetailerRepository{}, &mockLogger{})

	sid := "ret_missing"
	_, err := uc.Execute(context.Background(), ListSavedDealsQuery{UserID: 9, RetailerProfileSID: &sid})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestListSavedDealsUseCase_SkipsVanishedDeals(t *testing.T) {
	saved, err := saveddeal.Reconstruct(77, "sav_abc123", 9, 404, biztime.NowUTC().Add(-time.Hour))
	require.NoError(t, err)

	savedRepo := &mockSavedDealRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, retailerProfileID *uint) ([]*saveddeal.SavedDeal, error) {
			return []*saveddeal.SavedDeal{saved}, nil
		},
	}

	uc := NewListSavedDealsUseCase(savedRepo, &mockDealRepository{}, &mockRetailerRepository{}, &mockLogger{})
	items, err := uc.Execute(context.Background(), ListSavedDealsQuery{UserID: 9})

	require.NoError(t, err)
	assert.Empty(t, items)
}
