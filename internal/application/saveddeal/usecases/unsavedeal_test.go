package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/deal"
)

func TestUnsaveDealUseCase_RemovesAndDropsSaveCount(t *testing.T) {
	d := newBookmarkableDeal(t, 5)
	dealRepo := dealRepoReturning(d)

	var adjustedDelta int64
	dealRepo.AdjustSaveCountFunc = func(ctx context.Context, dealID uint, delta int64) error {
		assert.Equal(t, uint(5), dealID)
		adjustedDelta = delta
		return nil
	}

	savedRepo := &mockSavedDealRepository{
		DeleteFunc: func(ctx context.Context, userID, dealID uint) (bool, error) {
			assert.Equal(t, uint(9), userID)
			assert.Equal(t, uint(5), dealID)
			return true, nil
		},
	}

	uc := NewUnsaveDealUseCase(savedRepo, dealRepo, &mockLogger{})
	err := uc.Execute(context.Background(), UnsaveDealCommand{UserID: 9, DealSID: d.SID()})

	require.NoError(t, err)
	assert.Equal(t, int64(-1), adjustedDelta)
}

func TestUnsaveDealUseCase_NotSavedIsNoOp(t *testing.T) {
	d := newBookmarkableDeal(t, 5)
	dealRepo := dealRepoReturning(d)

	adjusted := false
	dealRepo.AdjustSaveCountFunc = func(ctx context.Context, dealID uint, delta int64) error {
		adjusted = true
		return nil
	}

	savedRepo := &mockSavedDealRepository{
		DeleteFunc: func(ctx context.Context, userID, dealID uint) (bool, error) {
			return false, nil
		},
	}

	uc := NewUnsaveDealUseCase(savedRepo, dealRepo, &mockLogger{})
	err := uc.Execute(context.Background(), UnsaveDealCommand{UserID: 9, DealSID: d.SID()})

	require.NoError(t, err)
	assert.False(t, adjusted, "removing a bookmark that never existed must not move the counter")
}

func TestUnsaveDealUseCase_UnknownDealIsNoOp(t *testing.T) {
	deleted := false
	savedRepo := &mockSavedDealRepository{
		DeleteFunc: func(ctx context.Context, userID, dealID uint) (bool, error) {
			deleted = true
			return false, nil
		},
	}
	dealRepo := &mockDealRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*deal.Deal, error) {
			return nil, nil
		},
	}

	uc := NewUnsaveDealUseCase(savedRepo, dealRepo, &mockLogger{})
	err := uc.Execute(context.Background(), UnsaveDealCommand{UserID: 9, DealSID: "deal_gone"})

	require.NoError(t, err)
	assert.False(t, deleted)
}
