package models

import (
	"time"

	"keydeals/internal/shared/constants"
)

// SavedDealModel is the database persistence model for the user/deal
// saved relation. The composite unique index makes repeated saves of
// the same deal collapse into a single row.
type SavedDealModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_deal,priority:1;index:idx_saved_user"`
	DealID    uint   `gorm:"not null;uniqueIndex:idx_user_deal,priority:2;index:idx_saved_deal"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SavedDealModel) TableName() string {
	return constants.TableSavedDeals
}
