package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
)

func storedProfile(t *testing.T, ownerUserID *uint) *retailer.Profile {
	t.Helper()
	profile, err := retailer.NewProfile(retailer.NewProfileParams{
		CompanyName:    "Acme Locks",
		ContactEmail:   "sales@acmelocks.test",
		DailyDealLimit: 5,
		OwnerUserID:    ownerUserID,
	})
	require.NoError(t, err)
	require.NoError(t, profile.SetID(3))
	return profile
}

func repoWithProfile(p *retailer.Profile) *mockRetailerRepository {
	return &mockRetailerRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*retailer.Profile, error) {
			if p != nil && sid == p.SID() {
				return p, nil
			}
			return nil, nil
		},
	}
}

func TestCreateProfileUseCase(t *testing.T) {
	t.Run("creates active profile", func(t *testing.T) {
		var stored *retailer.Profile
		repo := &mockRetailerRepository{
			CreateFunc: func(ctx context.Context, p *retailer.Profile) error {
				stored = p
				return p.SetID(3)
			},
		}

		uc := NewCreateProfileUseCase(repo, &mockLogger{})
		profile, err := uc.Execute(context.Background(), CreateProfileCommand{
			CompanyName:    "Acme Locks",
			DailyDealLimit: 5,
		})

		require.NoError(t, err)
		assert.True(t, profile.IsActive())
		assert.Equal(t, 5, profile.DailyDealLimit())
		assert.Same(t, profile, stored)
	})

	t.Run("rejects owner who already has a profile", func(t *testing.T) {
		ownerID := uint(7)
		repo := &mockRetailerRepository{
			GetByOwnerUserIDFunc: func(ctx context.Context, userID uint) (*retailer.Profile, error) {
				return storedProfile(t, &ownerID), nil
			},
		}

		uc := NewCreateProfileUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateProfileCommand{
			CompanyName: "Second Shop",
			OwnerUserID: &ownerID,
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("rejects blank company name", func(t *testing.T) {
		uc := NewCreateProfileUseCase(&mockRetailerRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateProfileCommand{CompanyName: "   "})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})
}

func TestUpdateProfileUseCase(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		profile := storedProfile(t, nil)
		repo := repoWithProfile(profile)
		updated := false
		repo.UpdateFunc = func(ctx context.Context, p *retailer.Profile) error {
			updated = true
			return nil
		}

		newLimit := 0
		inactive := false
		uc := NewUpdateProfileUseCase(repo, &mockLogger{})
		got, err := uc.Execute(context.Background(), UpdateProfileCommand{
			ProfileSID:     profile.SID(),
			DailyDealLimit: &newLimit,
			IsActive:       &inactive,
		})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, 0, got.DailyDealLimit())
		assert.False(t, got.IsActive())
		assert.Equal(t, "Acme Locks", got.CompanyName())
	})

	t.Run("unknown profile", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(repoWithProfile(nil), &mockLogger{})
		_, err := uc.Execute(context.Background(), UpdateProfileCommand{ProfileSID: "ret_missing"})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestAssignOwnerUseCase(t *testing.T) {
	t.Run("links user to unowned profile", func(t *testing.T) {
		profile := storedProfile(t, nil)
		repo := repoWithProfile(profile)

		uc := NewAssignOwnerUseCase(repo, &mockLogger{})
		got, err := uc.Execute(context.Background(), AssignOwnerCommand{
			ProfileSID: profile.SID(),
			UserID:     7,
		})

		require.NoError(t, err)
		require.NotNil(t, got.OwnerUserID())
		assert.Equal(t, uint(7), *got.OwnerUserID())
	})

	t.Run("user already owning a profile is rejected", func(t *testing.T) {
		ownerID := uint(7)
		repo := repoWithProfile(storedProfile(t, nil))
		repo.GetByOwnerUserIDFunc = func(ctx context.Context, userID uint) (*retailer.Profile, error) {
			return storedProfile(t, &ownerID), nil
		}

		uc := NewAssignOwnerUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), AssignOwnerCommand{ProfileSID: "ret_any", UserID: 7})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("transfers an already-owned profile to the new user", func(t *testing.T) {
		previousOwner := uint(8)
		profile := storedProfile(t, &previousOwner)
		repo := repoWithProfile(profile)

		uc := NewAssignOwnerUseCase(repo, &mockLogger{})
		got, err := uc.Execute(context.Background(), AssignOwnerCommand{
			ProfileSID: profile.SID(),
			UserID:     7,
		})

		require.NoError(t, err)
		require.NotNil(t, got.OwnerUserID())
		assert.Equal(t, uint(7), *got.OwnerUserID())
	})
}

func TestRevokeOwnerUseCase(t *testing.T) {
	ownerID := uint(7)
	profile := storedProfile(t, &ownerID)
	repo := repoWithProfile(profile)

	uc := NewRevokeOwnerUseCase(repo, &mockLogger{})
	got, err := uc.Execute(context.Background(), RevokeOwnerCommand{ProfileSID: profile.SID()})

	require.NoError(t, err)
	assert.Nil(t, got.OwnerUserID())
}
