package deal

import (
	"context"
	"time"
)

// Repository persists deal aggregates. Implementations return (nil, nil)
// when a lookup misses; callers translate that into a not-found error.
type Repository interface {
	Create(ctx context.Context, d *Deal) error
	// CreateWithDailyQuota atomically counts the retailer's deals created
	// inside [windowStart, windowEnd) and inserts the new deal only when
	// admit accepts that count. The admission rule itself lives on the
	// retailer aggregate (Profile.CanCreateDeal); implementations must
	// serialize concurrent creations for the same retailer so the quota
	// invariant holds under racing requests. Returns ErrQuotaExceeded
	// when admit rejects.
	CreateWithDailyQuota(ctx context.Context, d *Deal, admit func(countToday int64) bool, windowStart, windowEnd time.Time) error

	GetByID(ctx context.Context, dealID uint) (*Deal, error)
	GetBySID(ctx context.Context, sid string) (*Deal, error)
	Update(ctx context.Context, d *Deal) error
	// Delete hard-deletes the deal, cascading its images and every
	// saved-deal row referencing it in one transaction.
	Delete(ctx context.Context, dealID uint) error

	// CountCreatedBetween counts deals of every status created by the
	// retailer inside the window. Archived deals still count: the slot
	// was consumed the day they were made.
	CountCreatedBetween(ctx context.Context, retailerProfileID uint, from, to time.Time) (int64, error)

	ListPublic(ctx context.Context, filter PublicFilter) ([]*Deal, int64, error)
	ListByRetailer(ctx context.Context, retailerProfileID uint, filter RetailerFilter) ([]*Deal, int64, error)

	// IncrementViewCount adds delta to the stored view counter without
	// loading the aggregate. Counters are monotonically non-decreasing.
	IncrementViewCount(ctx context.Context, dealID uint, delta uint64) error
	// AdjustSaveCount shifts the save counter by delta, clamping at zero.
	AdjustSaveCount(ctx context.Context, dealID uint, delta int64) error
}

// PublicFilter selects deals for the public storefront: active status,
// unexpired, owned by active retailer profiles.
type PublicFilter struct {
	DealTypeID        *uint
	RetailerProfileID *uint
	Search            string
	Now               time.Time
	Page              int
	PageSize          int
}

// RetailerFilter selects a retailer's own deals for the dashboard,
// optionally narrowed to one status.
type RetailerFilter struct {
	Status   *string
	Page     int
	PageSize int
}

// TypeRepository persists the deal type lookup.
type TypeRepository interface {
	Create(ctx context.Context, t *Type) error
	GetByID(ctx context.Context, typeID uint) (*Type, error)
	GetBySID(ctx context.Context, sid string) (*Type, error)
	List(ctx context.Context) ([]*Type, error)
	Delete(ctx context.Context, typeID uint) error
}
