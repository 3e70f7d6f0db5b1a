// Package constants defines shared constant values used across the application.
package constants

// Context keys set by middleware and read by handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// User roles carried in auth token claims.
const (
	RoleUser     = "user"
	RoleRetailer = "retailer"
	RoleAdmin    = "admin"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Table names used by persistence models and migrations.
const (
	TableRetailerProfiles = "retailer_profiles"
	TableDeals            = "deals"
	TableDealImages       = "deal_images"
	TableDealTypes        = "deal_types"
	TableSavedDeals       = "saved_deals"
)

// Deal content limits.
const (
	MaxDealDescriptionLength = 500
	MaxDealTitleLength       = 255
	MaxDealImages            = 10
)
