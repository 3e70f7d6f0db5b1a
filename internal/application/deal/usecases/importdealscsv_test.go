package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/errors"
)

func newCSVProfile(t *testing.T, csvPermission bool) *retailer.Profile {
	t.Helper()
	profile, err := retailer.NewProfile(retailer.NewProfileParams{
		CompanyName:      "Bulk Keys Inc",
		ContactEmail:     "ops@bulkkeys.test",
		HasCSVPermission: csvPermission,
	})
	require.NoError(t, err)
	require.NoError(t, profile.SetID(1))
	return profile
}

func csvImportUseCase(t *testing.T, profile *retailer.Profile, dealRepo *mockDealRepository) *ImportDealsCSVUseCase {
	t.Helper()
	retailerRepo := &mockRetailerRepository{
		GetByIDFunc: func(ctx context.Context, profileID uint) (*retailer.Profile, error) {
			return profile, nil
		},
	}
	createUC := NewCreateDealUseCase(dealRepo, &mockDealTypeRepository{}, retailerRepo, &mockLogger{})
	return NewImportDealsCSVUseCase(createUC, retailerRepo, &mockLogger{})
}

func TestImportDealsCSVUseCase(t *testing.T) {
	expiry := biztime.NowUTC().Add(72 * time.Hour).Format(time.RFC3339)

	t.Run("imports valid rows and reports invalid ones", func(t *testing.T) {
		var created int
		dealRepo := &mockDealRepository{
			CreateWithDailyQuotaFunc: func(ctx context.Context, d *deal.Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error {
				created++
				return d.SetID(uint(created))
			},
		}
		uc := csvImportUseCase(t, newCSVProfile(t, true), dealRepo)

		csv := strings.Join([]string{
			"title,price,external_url,expires_at,original_price",
			fmt.Sprintf("Medeco cylinder,45.00,https://shop.test/medeco,%s,60.00", expiry),
			fmt.Sprintf(",12.00,https://shop.test/blank,%s,", expiry),
			fmt.Sprintf("Key blanks 100pk,not-a-price,https://shop.test/blanks,%s,", expiry),
			fmt.Sprintf("Abus padlock,19.99,https://shop.test/abus,%s,", expiry),
		}, "\n")

		result, err := uc.Execute(context.Background(), ImportDealsCSVCommand{
			RetailerProfileID: 1,
			Reader:            strings.NewReader(csv),
			MaxRows:           100,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 2, result.Failed)
		require.Len(t, result.RowErrors, 2)
		assert.Equal(t, 3, result.RowErrors[0].Row)
		assert.Equal(t, 4, result.RowErrors[1].Row)
		assert.Contains(t, result.RowErrors[1].Reason, "invalid price")
	})

	t.Run("quota exhaustion mid-file fails only the remaining rows", func(t *testing.T) {
		var created int
		dealRepo := &mockDealRepository{
			CreateWithDailyQuotaFunc: func(ctx context.Context, d *deal.Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error {
				if created >= 1 {
					return deal.ErrQuotaExceeded
				}
				created++
				return d.SetID(uint(created))
			},
		}
		uc := csvImportUseCase(t, newCSVProfile(t, true), dealRepo)

		csv := strings.Join([]string{
			"title,price,external_url,expires_at",
			fmt.Sprintf("First,10.00,https://shop.test/a,%s", expiry),
			fmt.Sprintf("Second,11.00,https://shop.test/b,%s", expiry),
		}, "\n")

		result, err := uc.Execute(context.Background(), ImportDealsCSVCommand{
			RetailerProfileID: 1,
			Reader:            strings.NewReader(csv),
			MaxRows:           100,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("profile without CSV permission is rejected", func(t *testing.T) {
		uc := csvImportUseCase(t, newCSVProfile(t, false), &mockDealRepository{})

		_, err := uc.Execute(context.Background(), ImportDealsCSVCommand{
			RetailerProfileID: 1,
			Reader:            strings.NewReader("title,price,external_url,expires_at\n"),
			MaxRows:           100,
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("missing required column is rejected up front", func(t *testing.T) {
		uc := csvImportUseCase(t, newCSVProfile(t, true), &mockDealRepository{})

		_, err := uc.Execute(context.Background(), ImportDealsCSVCommand{
			RetailerProfileID: 1,
			Reader:            strings.NewReader("title,price,external_url\nFoo,1.00,https://shop.test/x\n"),
			MaxRows:           100,
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Message, "expires_at")
	})

	t.Run("row limit aborts the import", func(t *testing.T) {
		dealRepo := &mockDealRepository{
			CreateWithDailyQuotaFunc: func(ctx context.Context, d *deal.Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error {
				return d.SetID(1)
			},
		}
		uc := csvImportUseCase(t, newCSVProfile(t, true), dealRepo)

		var sb strings.Builder
		sb.WriteString("title,price,external_url,expires_at\n")
		for i := 0; i < 4; i++ {
			fmt.Fprintf(&sb, "Deal %d,9.99,https://shop.test/%d,%s\n", i, i, expiry)
		}

		_, err := uc.Execute(context.Background(), ImportDealsCSVCommand{
			RetailerProfileID: 1,
			Reader:            strings.NewReader(sb.String()),
			MaxRows:           2,
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Message, "row limit")
	})
}
