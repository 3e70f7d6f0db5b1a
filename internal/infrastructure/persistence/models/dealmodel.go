package models

import (
	"time"

	"keydeals/internal/shared/constants"
)

// DealModel is the database persistence model for deals.
type DealModel struct {
	ID                uint      `gorm:"primarykey"`
	SID               string    `gorm:"uniqueIndex;not null;size:50"`
	RetailerProfileID uint      `gorm:"not null;index:idx_retailer_created,priority:1;index:idx_retailer_status"`
	DealTypeID        *uint     `gorm:"index:idx_deal_type"`
	Title             string    `gorm:"not null;size:255"`
	Description       string    `gorm:"size:500"`
	Price             float64   `gorm:"not null;default:0"`
	OriginalPrice     *float64  `gorm:"default:null"`
	ExternalURL       string    `gorm:"not null;size:500"`
	ExpiresAt         time.Time `gorm:"not null;index:idx_expires_at"`
	Status            string    `gorm:"not null;size:20;index:idx_retailer_status,priority:2;index:idx_status"`
	ViewCount         uint64    `gorm:"not null;default:0"`
	SaveCount         uint64    `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"index:idx_retailer_created,priority:2"`
	UpdatedAt         time.Time

	Images []DealImageModel `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (DealModel) TableName() string {
	return constants.TableDeals
}

// DealImageModel is the database persistence model for a deal's ordered
// image URLs.
type DealImageModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"uniqueIndex;not null;size:50"`
	DealID       uint   `gorm:"not null;index:idx_image_deal"`
	ImageURL     string `gorm:"not null;size:500"`
	DisplayOrder int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (DealImageModel) TableName() string {
	return constants.TableDealImages
}
