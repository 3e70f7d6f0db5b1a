// Package saveddeal models the user-to-deal bookmark relation. A saved
// deal lives independently of the deal's lifecycle status and disappears
// only when the user removes it or the deal itself is hard-deleted.
package saveddeal

import (
	"fmt"
	"time"

	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
)

// SavedDeal is one user's bookmark of one deal. At most one row exists per
// (userID, dealID) pair.
type SavedDeal struct {
	savedID   uint
	sid       string
	userID    uint
	dealID    uint
	createdAt time.Time
}

// New creates a bookmark relation.
func New(userID, dealID uint) (*SavedDeal, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if dealID == 0 {
		return nil, fmt.Errorf("deal ID is required")
	}

	return &SavedDeal{
		sid:       id.MustGenerateWithPrefix(id.PrefixSavedDeal, id.DefaultLength),
		userID:    userID,
		dealID:    dealID,
		createdAt: biztime.NowUTC(),
	}, nil
}

// Reconstruct rebuilds a bookmark from persistence.
func Reconstruct(savedID uint, sid string, userID, dealID uint, createdAt time.Time) (*SavedDeal, error) {
	if savedID == 0 {
		return nil, fmt.Errorf("saved deal ID cannot be zero")
	}
	return &SavedDeal{
		savedID:   savedID,
		sid:       sid,
		userID:    userID,
		dealID:    dealID,
		createdAt: createdAt,
	}, nil
}

func (s *SavedDeal) ID() uint {
	return s.savedID
}

func (s *SavedDeal) SID() string {
	return s.sid
}

func (s *SavedDeal) UserID() uint {
	return s.userID
}

func (s *SavedDeal) DealID() uint {
	return s.dealID
}

func (s *SavedDeal) CreatedAt() time.Time {
	return s.createdAt
}

// SetID sets the row ID (only for persistence layer use)
func (s *SavedDeal) SetID(savedID uint) error {
	if s.savedID != 0 {
		return fmt.Errorf("saved deal ID is already set")
	}
	if savedID == 0 {
		return fmt.Errorf("saved deal ID cannot be zero")
	}
	s.savedID = savedID
	return nil
}
