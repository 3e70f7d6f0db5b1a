package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/deal"
	vo "keydeals/internal/domain/deal/valueobjects"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/errors"
)

func TestGetPublicDealUseCase(t *testing.T) {
	activeProfile := newTestProfile(t, 0)

	retailerRepoWith := func(p *retailer.Profile) *mockRetailerRepository {
		return &mockRetailerRepository{
			GetByIDFunc: func(ctx context.Context, profileID uint) (*retailer.Profile, error) {
				return p, nil
			},
		}
	}

	t.Run("returns a visible deal with its retailer and type", func(t *testing.T) {
		d := newStoredDeal(t, 1, vo.StatusActive, biztime.NowUTC().Add(48*time.Hour))

		uc := NewGetPublicDealUseCase(dealRepoFor(d), &mockDealTypeRepository{}, retailerRepoWith(activeProfile), &mockLogger{})
		result, err := uc.Execute(context.Background(), GetPublicDealQuery{DealSID: d.SID()})

		require.NoError(t, err)
		assert.Equal(t, d.SID(), result.Deal.SID())
		assert.Equal(t, activeProfile.SID(), result.Retailer.SID())
	})

	t.Run("expired deal reads as not found even while status is active", func(t *testing.T) {
		d := newStoredDeal(t, 1, vo.StatusActive, biztime.NowUTC().Add(-time.Minute))

		uc := NewGetPublicDealUseCase(dealRepoFor(d), &mockDealTypeRepository{}, retailerRepoWith(activeProfile), &mockLogger{})
		_, err := uc.Execute(context.Background(), GetPublicDealQuery{DealSID: d.SID()})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("paused and archived deals are not publicly visible", func(t *testing.T) {
		for _, status := range []vo.DealStatus{vo.StatusPaused, vo.StatusArchived} {
			d := newStoredDeal(t, 1, status, biztime.NowUTC().Add(48*time.Hour))

			uc := NewGetPublicDealUseCase(dealRepoFor(d), &mockDealTypeRepository{}, retailerRepoWith(activeProfile), &mockLogger{})
			_, err := uc.Execute(context.Background(), GetPublicDealQuery{DealSID: d.SID()})

			require.Error(t, err, status.String())
		}
	})

	t.Run("deal of a deactivated retailer reads as not found", func(t *testing.T) {
		inactive := newTestProfile(t, 0)
		inactive.Deactivate()
		d := newStoredDeal(t, 1, vo.StatusActive, biztime.NowUTC().Add(48*time.Hour))

		uc := NewGetPublicDealUseCase(dealRepoFor(d), &mockDealTypeRepository{}, retailerRepoWith(inactive), &mockLogger{})
		_, err := uc.Execute(context.Background(), GetPublicDealQuery{DealSID: d.SID()})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("unknown sid reads as not found", func(t *testing.T) {
		uc := NewGetPublicDealUseCase(&mockDealRepository{}, &mockDealTypeRepository{}, retailerRepoWith(activeProfile), &mockLogger{})
		_, err := uc.Execute(context.Background(), GetPublicDealQuery{DealSID: "deal_nosuch"})

		require.Error(t, err)
	})
}

func TestGetRetailerDealUseCase(t *testing.T) {
	t.Run("owner sees every status", func(t *testing.T) {
		for _, status := range []vo.DealStatus{vo.StatusActive, vo.StatusPaused, vo.StatusArchived} {
			d := newStoredDeal(t, 1, status, biztime.NowUTC().Add(-time.Hour))

			uc := NewGetRetailerDealUseCase(dealRepoFor(d), &mockLogger{})
			result, err := uc.Execute(context.Background(), GetRetailerDealQuery{DealSID: d.SID(), RetailerProfileID: 1})

			require.NoError(t, err, status.String())
			assert.Equal(t, d.SID(), result.SID())
		}
	})

	t.Run("foreign deal reads as not found", func(t *testing.T) {
		d := newStoredDeal(t, 2, vo.StatusActive, biztime.NowUTC().Add(48*time.Hour))

		uc := NewGetRetailerDealUseCase(dealRepoFor(d), &mockLogger{})
		_, err := uc.Execute(context.Background(), GetRetailerDealQuery{DealSID: d.SID(), RetailerProfileID: 1})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestListPublicDealsUseCase_FilterCarriesReadTime(t *testing.T) {
	var gotFilter deal.PublicFilter
	dealRepo := &mockDealRepository{
		ListPublicFunc: func(ctx context.Context, filter deal.PublicFilter) ([]*deal.Deal, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	uc := NewListPublicDealsUseCase(dealRepo, &mockDealTypeRepository{}, &mockRetailerRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListPublicDealsQuery{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Zero(t, result.Total)
	// Expiration is enforced against the moment of the read, not a stored
	// flag, so the filter must carry "now".
	assert.WithinDuration(t, biztime.NowUTC(), gotFilter.Now, 2*time.Second)
}

func TestListRetailerDealsUseCase_RejectsUnknownStatus(t *testing.T) {
	uc := NewListRetailerDealsUseCase(&mockDealRepository{}, &mockLogger{})

	bogus := "expired"
	_, err := uc.Execute(context.Background(), ListRetailerDealsQuery{RetailerProfileID: 1, Status: &bogus})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
