package retailer

import (
	"fmt"
	"strings"
	"time"

	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
)

// Profile is the account entity owning deals. It carries the daily deal
// quota and the permission flags admins manage.
type Profile struct {
	profileID        uint
	sid              string
	companyName      string
	contactEmail     string
	contactPhone     string
	logoURL          string
	websiteURL       string
	dailyDealLimit   int
	hasCSVPermission bool
	isAlwaysOnTop    bool
	isActive         bool
	ownerUserID      *uint
	createdAt        time.Time
	updatedAt        time.Time
}

// NewProfileParams carries the input for an admin-created retailer profile.
type NewProfileParams struct {
	CompanyName      string
	ContactEmail     string
	ContactPhone     string
	LogoURL          string
	WebsiteURL       string
	DailyDealLimit   int
	HasCSVPermission bool
	IsAlwaysOnTop    bool
	OwnerUserID      *uint
}

// NewProfile creates an active retailer profile. A daily deal limit of 0
// means unlimited.
func NewProfile(p NewProfileParams) (*Profile, error) {
	companyName := strings.TrimSpace(p.CompanyName)
	if companyName == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if p.DailyDealLimit < 0 {
		return nil, fmt.Errorf("daily deal limit must not be negative")
	}

	now := biztime.NowUTC()
	return &Profile{
		sid:              id.MustGenerateWithPrefix(id.PrefixRetailerProfile, id.DefaultLength),
		companyName:      companyName,
		contactEmail:     strings.TrimSpace(p.ContactEmail),
		contactPhone:     strings.TrimSpace(p.ContactPhone),
		logoURL:          p.LogoURL,
		websiteURL:       p.WebsiteURL,
		dailyDealLimit:   p.DailyDealLimit,
		hasCSVPermission: p.HasCSVPermission,
		isAlwaysOnTop:    p.IsAlwaysOnTop,
		isActive:         true,
		ownerUserID:      p.OwnerUserID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ProfileReconstructParams rebuilds a profile from persistence.
type ProfileReconstructParams struct {
	ID               uint
	SID              string
	CompanyName      string
	ContactEmail     string
	ContactPhone     string
	LogoURL          string
	WebsiteURL       string
	DailyDealLimit   int
	HasCSVPermission bool
	IsAlwaysOnTop    bool
	IsActive         bool
	OwnerUserID      *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructProfile rebuilds a retailer profile aggregate from persistence.
func ReconstructProfile(p ProfileReconstructParams) (*Profile, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if p.DailyDealLimit < 0 {
		return nil, fmt.Errorf("daily deal limit must not be negative")
	}

	return &Profile{
		profileID:        p.ID,
		sid:              p.SID,
		companyName:      p.CompanyName,
		contactEmail:     p.ContactEmail,
		contactPhone:     p.ContactPhone,
		logoURL:          p.LogoURL,
		websiteURL:       p.WebsiteURL,
		dailyDealLimit:   p.DailyDealLimit,
		hasCSVPermission: p.HasCSVPermission,
		isAlwaysOnTop:    p.IsAlwaysOnTop,
		isActive:         p.IsActive,
		ownerUserID:      p.OwnerUserID,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (r *Profile) ID() uint {
	return r.profileID
}

func (r *Profile) SID() string {
	return r.sid
}

func (r *Profile) CompanyName() string {
	return r.companyName
}

func (r *Profile) ContactEmail() string {
	return r.contactEmail
}

func (r *Profile) ContactPhone() string {
	return r.contactPhone
}

func (r *Profile) LogoURL() string {
	return r.logoURL
}

func (r *Profile) WebsiteURL() string {
	return r.websiteURL
}

func (r *Profile) DailyDealLimit() int {
	return r.dailyDealLimit
}

func (r *Profile) HasCSVPermission() bool {
	return r.hasCSVPermission
}

func (r *Profile) IsAlwaysOnTop() bool {
	return r.isAlwaysOnTop
}

func (r *Profile) IsActive() bool {
	return r.isActive
}

func (r *Profile) OwnerUserID() *uint {
	return r.ownerUserID
}

func (r *Profile) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Profile) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the profile ID (only for persistence layer use)
func (r *Profile) SetID(profileID uint) error {
	if r.profileID != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if profileID == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	r.profileID = profileID
	return nil
}

// HasUnlimitedQuota reports whether the profile may post without a daily cap.
func (r *Profile) HasUnlimitedQuota() bool {
	return r.dailyDealLimit == 0
}

// CanCreateDeal is the quota admission check: an inactive profile never
// accepts new deals; otherwise either the quota is unlimited or today's
// count must still be below the limit.
func (r *Profile) CanCreateDeal(countToday int64) bool {
	if !r.isActive {
		return false
	}
	if r.HasUnlimitedQuota() {
		return true
	}
	return countToday < int64(r.dailyDealLimit)
}

// OwnedBy reports whether the given user owns this profile.
func (r *Profile) OwnedBy(userID uint) bool {
	return r.ownerUserID != nil && *r.ownerUserID == userID
}

// AssignOwner transfers the profile to a user.
func (r *Profile) AssignOwner(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("owner user ID cannot be zero")
	}
	r.ownerUserID = &userID
	r.updatedAt = biztime.NowUTC()
	return nil
}

// RevokeOwner detaches the profile from its owner, returning it to
// admin-managed state.
func (r *Profile) RevokeOwner() {
	r.ownerUserID = nil
	r.updatedAt = biztime.NowUTC()
}

// Activate re-enables the profile.
func (r *Profile) Activate() {
	if r.isActive {
		return
	}
	r.isActive = true
	r.updatedAt = biztime.NowUTC()
}

// Deactivate blocks new deal creation for the profile. Existing deals keep
// their status; only admission is affected.
func (r *Profile) Deactivate() {
	if !r.isActive {
		return
	}
	r.isActive = false
	r.updatedAt = biztime.NowUTC()
}

// UpdateProfileParams carries an admin or owner edit of profile fields.
type UpdateProfileParams struct {
	CompanyName      *string
	ContactEmail     *string
	ContactPhone     *string
	LogoURL          *string
	WebsiteURL       *string
	DailyDealLimit   *int
	HasCSVPermission *bool
	IsAlwaysOnTop    *bool
}

// Update applies the non-nil fields.
func (r *Profile) Update(p UpdateProfileParams) error {
	if p.CompanyName != nil {
		name := strings.TrimSpace(*p.CompanyName)
		if name == "" {
			return fmt.Errorf("company name is required")
		}
		r.companyName = name
	}
	if p.ContactEmail != nil {
		r.contactEmail = strings.TrimSpace(*p.ContactEmail)
	}
	if p.ContactPhone != nil {
		r.contactPhone = strings.TrimSpace(*p.ContactPhone)
	}
	if p.LogoURL != nil {
		r.logoURL = *p.LogoURL
	}
	if p.WebsiteURL != nil {
		r.websiteURL = *p.WebsiteURL
	}
	if p.DailyDealLimit != nil {
		if *p.DailyDealLimit < 0 {
			return fmt.Errorf("daily deal limit must not be negative")
		}
		r.dailyDealLimit = *p.DailyDealLimit
	}
	if p.HasCSVPermission != nil {
		r.hasCSVPermission = *p.HasCSVPermission
	}
	if p.IsAlwaysOnTop != nil {
		r.isAlwaysOnTop = *p.IsAlwaysOnTop
	}

	r.updatedAt = biztime.NowUTC()
	return nil
}
