package usecases

import (
	"context"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/logger"
)

type mockRetailerRepository struct {
	CreateFunc           func(ctx context.Context, p *retailer.Profile) error
	GetByIDFunc          func(ctx context.Context, profileID uint) (*retailer.Profile, error)
	GetBySIDFunc         func(ctx context.Context, sid string) (*retailer.Profile, error)
	GetByOwnerUserIDFunc func(ctx context.Context, userID uint) (*retailer.Profile, error)
	UpdateFunc           func(ctx context.Context, p *retailer.Profile) error
	DeleteFunc           func(ctx context.Context, profileID uint) error
	ListFunc             func(ctx context.Context, filter retailer.Filter) ([]*retailer.Profile, int64, error)
}

func (m *mockRetailerRepository) Create(ctx context.Context, p *retailer.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockRetailerRepository) GetByID(ctx context.Context, profileID uint) (*retailer.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *mockRetailerRepository) GetBySID(ctx context.Context, sid string) (*retailer.Profile, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockRetailerRepository) GetByOwnerUserID(ctx context.Context, userID uint) (*retailer.Profile, error) {
	if m.GetByOwnerUserIDFunc != nil {
		return m.GetByOwnerUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRetailerRepository) Update(ctx context.Context, p *retailer.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockRetailerRepository) Delete(ctx context.Context, profileID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID)
	}
	return nil
}

func (m *mockRetailerRepository) List(ctx context.Context, filter retailer.Filter) ([]*retailer.Profile, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
