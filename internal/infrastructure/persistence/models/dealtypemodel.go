package models

import (
	"time"

	"keydeals/internal/shared/constants"
)

// DealTypeModel is the database persistence model for deal types.
type DealTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50"`
	Name      string `gorm:"not null;size:100;uniqueIndex:idx_deal_type_name"`
	ColorHex  string `gorm:"not null;size:7"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (DealTypeModel) TableName() string {
	return constants.TableDealTypes
}
