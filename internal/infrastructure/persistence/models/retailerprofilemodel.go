package models

import (
	"time"

	"keydeals/internal/shared/constants"
)

// RetailerProfileModel is the database persistence model for retailer
// profiles. This is the anti-corruption layer between domain and database.
type RetailerProfileModel struct {
	ID               uint   `gorm:"primarykey"`
	SID              string `gorm:"uniqueIndex;not null;size:50"`
	CompanyName      string `gorm:"not null;size:255;index:idx_company_name"`
	ContactEmail     string `gorm:"size:255"`
	ContactPhone     string `gorm:"size:50"`
	LogoURL          string `gorm:"size:500"`
	WebsiteURL       string `gorm:"size:500"`
	DailyDealLimit   int    `gorm:"not null;default:0"`
	HasCSVPermission bool   `gorm:"not null;default:false"`
	IsAlwaysOnTop    bool   `gorm:"not null;default:false"`
	IsActive         bool   `gorm:"not null;default:true;index:idx_profile_active"`
	OwnerUserID      *uint  `gorm:"index:idx_owner_user"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (RetailerProfileModel) TableName() string {
	return constants.TableRetailerProfiles
}
