package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "keydeals/internal/domain/deal/valueobjects"
	"keydeals/internal/shared/biztime"
)

func TestRecordViewUseCase(t *testing.T) {
	t.Run("buffers a hit for a known deal", func(t *testing.T) {
		d := newStoredDeal(t, 1, vo.StatusActive, biztime.NowUTC().Add(48*time.Hour))

		var recorded uint
		counter := &mockViewCounter{
			RecordFunc: func(ctx context.Context, dealID uint) error {
				recorded = dealID
				return nil
			},
		}

		uc := NewRecordViewUseCase(dealRepoFor(d), counter, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), RecordViewCommand{DealSID: d.SID()}))
		assert.Equal(t, d.ID(), recorded)
	})

	t.Run("unknown sid is ignored silently", func(t *testing.T) {
		var recorded bool
		counter := &mockViewCounter{
			RecordFunc: func(ctx context.Context, dealID uint) error {
				recorded = true
				return nil
			},
		}

		uc := NewRecordViewUseCase(&mockDealRepository{}, counter, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), RecordViewCommand{DealSID: "deal_nosuch"}))
		assert.False(t, recorded)
	})

	t.Run("counter failure never fails the request", func(t *testing.T) {
		d := newStoredDeal(t, 1, vo.StatusActive, biztime.NowUTC().Add(48*time.Hour))

		counter := &mockViewCounter{
			RecordFunc: func(ctx context.Context, dealID uint) error {
				return fmt.Errorf("redis down")
			},
		}

		uc := NewRecordViewUseCase(dealRepoFor(d), counter, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), RecordViewCommand{DealSID: d.SID()}))
	})
}

func TestFlushViewCountsUseCase(t *testing.T) {
	t.Run("drains buffered counts into the repository", func(t *testing.T) {
		counter := &mockViewCounter{
			DrainFunc: func(ctx context.Context) (map[uint]uint64, error) {
				return map[uint]uint64{10: 3, 11: 1}, nil
			},
		}

		flushed := map[uint]uint64{}
		dealRepo := &mockDealRepository{
			IncrementViewCountFunc: func(ctx context.Context, dealID uint, delta uint64) error {
				flushed[dealID] = delta
				return nil
			},
		}

		uc := NewFlushViewCountsUseCase(dealRepo, counter, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background()))
		assert.Equal(t, map[uint]uint64{10: 3, 11: 1}, flushed)
	})

	t.Run("one failed deal does not block the rest", func(t *testing.T) {
		counter := &mockViewCounter{
			DrainFunc: func(ctx context.Context) (map[uint]uint64, error) {
				return map[uint]uint64{10: 3, 11: 1}, nil
			},
		}

		var flushed int
		dealRepo := &mockDealRepository{
			IncrementViewCountFunc: func(ctx context.Context, dealID uint, delta uint64) error {
				if dealID == 10 {
					return fmt.Errorf("deadlock")
				}
				flushed++
				return nil
			},
		}

		uc := NewFlushViewCountsUseCase(dealRepo, counter, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background()))
		assert.Equal(t, 1, flushed)
	})
}
