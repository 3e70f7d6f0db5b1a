package retailer

import "context"

// Repository persists retailer profiles. Lookups return (nil, nil) on miss.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, profileID uint) (*Profile, error)
	GetBySID(ctx context.Context, sid string) (*Profile, error)
	GetByOwnerUserID(ctx context.Context, userID uint) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	// Delete hard-deletes the profile, cascading its deals (and through
	// them images and saved-deal rows).
	Delete(ctx context.Context, profileID uint) error

	List(ctx context.Context, filter Filter) ([]*Profile, int64, error)
}

// Filter narrows admin profile listings.
type Filter struct {
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}
