package saveddeal

import "context"

// Repository persists bookmark relations.
type Repository interface {
	// Upsert inserts the relation or returns the existing row for the
	// (userID, dealID) pair, making repeated saves side-effect free.
	// The bool result is true when a new row was created.
	Upsert(ctx context.Context, s *SavedDeal) (*SavedDeal, bool, error)

	GetByUserAndDeal(ctx context.Context, userID, dealID uint) (*SavedDeal, error)

	// Delete removes the relation for the pair. Returns true when a row
	// was actually removed; a miss is not an error.
	Delete(ctx context.Context, userID, dealID uint) (bool, error)

	// DeleteBySIDs removes only relations owned by userID among the given
	// saved-deal SIDs and returns the deal IDs of the removed rows.
	// Foreign SIDs are skipped silently.
	DeleteBySIDs(ctx context.Context, userID uint, sids []string) ([]uint, error)

	// ListByUser returns the user's bookmarks newest first, optionally
	// narrowed to deals of one retailer. Bookmarks whose deal was
	// hard-deleted are already gone via cascade.
	ListByUser(ctx context.Context, userID uint, retailerProfileID *uint) ([]*SavedDeal, error)

	CountByDeal(ctx context.Context, dealID uint) (int64, error)
}
