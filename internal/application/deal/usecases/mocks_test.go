package usecases

import (
	"context"
	"time"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/logger"
)

type mockDealRepository struct {
	CreateFunc               func(ctx context.Context, d *deal.Deal) error
	CreateWithDailyQuotaFunc func(ctx context.Context, d *deal.Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error
	GetByIDFunc              func(ctx context.Context, dealID uint) (*deal.Deal, error)
	GetBySIDFunc             func(ctx context.Context, sid string) (*deal.Deal, error)
	UpdateFunc               func(ctx context.Context, d *deal.Deal) error
	DeleteFunc               func(ctx context.Context, dealID uint) error
	CountCreatedBetweenFunc  func(ctx context.Context, retailerProfileID uint, from, to time.Time) (int64, error)
	ListPublicFunc           func(ctx context.Context, filter deal.PublicFilter) ([]*deal.Deal, int64, error)
	ListByRetailerFunc       func(ctx context.Context, retailerProfileID uint, filter deal.RetailerFilter) ([]*deal.Deal, int64, error)
	IncrementViewCountFunc   func(ctx context.Context, dealID uint, delta uint64) error
	AdjustSaveCountFunc      func(ctx context.Context, dealID uint, delta int64) error
}

func (m *mockDealRepository) Create(ctx context.Context, d *deal.Deal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDealRepository) CreateWithDailyQuota(ctx context.Context, d *deal.Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error {
	if m.CreateWithDailyQuotaFunc != nil {
		return m.CreateWithDailyQuotaFunc(ctx, d, admit, windowStart, windowEnd)
	}
	return nil
}

func (m *mockDealRepository) GetByID(ctx context.Context, dealID uint) (*deal.Deal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, dealID)
	}
	return nil, nil
}

func (m *mockDealRepository) GetBySID(ctx context.Context, sid string) (*deal.Deal, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockDealRepository) Update(ctx context.Context, d *deal.Deal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDealRepository) Delete(ctx context.Context, dealID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, dealID)
	}
	return nil
}

func (m *mockDealRepository) CountCreatedBetween(ctx context.Context, retailerProfileID uint, from, to time.Time) (int64, error) {
	if m.CountCreatedBetweenFunc != nil {
		return m.CountCreatedBetweenFunc(ctx, retailerProfileID, from, to)
	}
	return 0, nil
}

func (m *mockDealRepository) ListPublic(ctx context.Context, filter deal.PublicFilter) ([]*deal.Deal, int64, error) {
	if m.ListPublicFunc != nil {
		return m.ListPublicFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockDealRepository) ListByRetailer(ctx context.Context, retailerProfileID uint, filter deal.RetailerFilter) ([]*deal.Deal, int64, error) {
	if m.ListByRetailerFunc != nil {
		return m.ListByRetailerFunc(ctx, retailerProfileID, filter)
	}
	return nil, 0, nil
}

func (m *mockDealRepository) IncrementViewCount(ctx context.Context, dealID uint, delta uint64) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, dealID, delta)
	}
	return nil
}

func (m *mockDealRepository) AdjustSaveCount(ctx context.Context, dealID uint, delta int64) error {
	if m.AdjustSaveCountFunc != nil {
		return m.AdjustSaveCountFunc(ctx, dealID, delta)
	}
	return nil
}

type mockDealTypeRepository struct {
	CreateFunc   func(ctx context.Context, t *deal.Type) error
	GetByIDFunc  func(ctx context.Context, typeID uint) (*deal.Type, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*deal.Type, error)
	ListFunc     func(ctx context.Context) ([]*deal.Type, error)
	DeleteFunc   func(ctx context.Context, typeID uint) error
}

func (m *mockDealTypeRepository) Create(ctx context.Context, t *deal.Type) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockDealTypeRepository) GetByID(ctx context.Context, typeID uint) (*deal.Type, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, typeID)
	}
	return nil, nil
}

func (m *mockDealTypeRepository) GetBySID(ctx context.Context, sid string) (*deal.Type, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockDealTypeRepository) List(ctx context.Context) ([]*deal.Type, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDealTypeRepository) Delete(ctx context.Context, typeID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, typeID)
	}
	return nil
}

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

type mockViewCounter struct {
	RecordFunc func(ctx context.Context, dealID uint) error
	DrainFunc  func(ctx context.Context) (map[uint]uint64, error)
}

func (m *mockViewCounter) Record(ctx context.Context, dealID uint) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, dealID)
	}
	return nil
}

func (m *mockViewCounter) Drain(ctx context.Context) (map[uint]uint64, error) {
	if m.DrainFunc != nil {
		return m.DrainFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
