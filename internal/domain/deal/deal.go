package deal

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "keydeals/internal/domain/deal/valueobjects"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/constants"
	"keydeals/internal/shared/id"
)

// Deal is the aggregate root for a retailer's promotional offer. Lifecycle
// methods enforce the legal status graph; validation of incoming content
// happens in NewDeal before a deal is ever admitted.
type Deal struct {
	dealID            uint
	sid               string
	retailerProfileID uint
	dealTypeID        *uint
	title             string
	description       string
	price             float64
	originalPrice     *float64
	externalURL       string
	expiresAt         time.Time
	status            vo.DealStatus
	viewCount         uint64
	saveCount         uint64
	images            []Image
	createdAt         time.Time
	updatedAt         time.Time
}

// NewDealParams carries the validated-at-the-boundary input for a new deal.
type NewDealParams struct {
	RetailerProfileID uint
	DealTypeID        *uint
	Title             string
	Description       string
	Price             float64
	OriginalPrice     *float64
	ExternalURL       string
	ExpiresAt         time.Time
}

// NewDeal creates a deal in active status. It validates the incoming
// content: non-empty title, bounded description, non-negative price,
// original price never below price, a well-formed external URL and an
// expiry strictly in the future.
func NewDeal(p NewDealParams) (*Deal, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > constants.MaxDealTitleLength {
		return nil, fmt.Errorf("title must be at most %d characters", constants.MaxDealTitleLength)
	}
	if p.RetailerProfileID == 0 {
		return nil, fmt.Errorf("retailer profile ID is required")
	}
	if len(p.Description) > constants.MaxDealDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters", constants.MaxDealDescriptionLength)
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return nil, fmt.Errorf("original price must not be below the deal price")
	}

	externalURL, err := vo.NormalizeExternalURL(p.ExternalURL)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	if !p.ExpiresAt.After(now) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	return &Deal{
		sid:               id.MustGenerateWithPrefix(id.PrefixDeal, id.DefaultLength),
		retailerProfileID: p.RetailerProfileID,
		dealTypeID:        p.DealTypeID,
		title:             title,
		description:       p.Description,
		price:             p.Price,
		originalPrice:     p.OriginalPrice,
		externalURL:       externalURL,
		expiresAt:         p.ExpiresAt.UTC(),
		status:            vo.StatusActive,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// DealReconstructParams rebuilds a deal from persistence.
type DealReconstructParams struct {
	ID                uint
	SID               string
	RetailerProfileID uint
	DealTypeID        *uint
	Title             string
	Description       string
	Price             float64
	OriginalPrice     *float64
	ExternalURL       string
	ExpiresAt         time.Time
	Status            vo.DealStatus
	ViewCount         uint64
	SaveCount         uint64
	Images            []Image
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructDeal rebuilds a deal aggregate from persistence without
// re-running creation-time validation.
func ReconstructDeal(p DealReconstructParams) (*Deal, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("deal ID cannot be zero")
	}
	if p.RetailerProfileID == 0 {
		return nil, fmt.Errorf("retailer profile ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid deal status: %s", p.Status)
	}

	return &Deal{
		dealID:            p.ID,
		sid:               p.SID,
		retailerProfileID: p.RetailerProfileID,
		dealTypeID:        p.DealTypeID,
		title:             p.Title,
		description:       p.Description,
		price:             p.Price,
		originalPrice:     p.OriginalPrice,
		externalURL:       p.ExternalURL,
		expiresAt:         p.ExpiresAt,
		status:            p.Status,
		viewCount:         p.ViewCount,
		saveCount:         p.SaveCount,
		images:            p.Images,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (d *Deal) ID() uint {
	return d.dealID
}

func (d *Deal) SID() string {
	return d.sid
}

func (d *Deal) RetailerProfileID() uint {
	return d.retailerProfileID
}

func (d *Deal) DealTypeID() *uint {
	return d.dealTypeID
}

func (d *Deal) Title() string {
	return d.title
}

func (d *Deal) Description() string {
	return d.description
}

func (d *Deal) Price() float64 {
	return d.price
}

func (d *Deal) OriginalPrice() *float64 {
	return d.originalPrice
}

func (d *Deal) ExternalURL() string {
	return d.externalURL
}

func (d *Deal) ExpiresAt() time.Time {
	return d.expiresAt
}

func (d *Deal) Status() vo.DealStatus {
	return d.status
}

func (d *Deal) ViewCount() uint64 {
	return d.viewCount
}

func (d *Deal) SaveCount() uint64 {
	return d.saveCount
}

func (d *Deal) Images() []Image {
	return d.images
}

func (d *Deal) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Deal) UpdatedAt() time.Time {
	return d.updatedAt
}

// SetID sets the deal ID (only for persistence layer use)
func (d *Deal) SetID(dealID uint) error {
	if d.dealID != 0 {
		return fmt.Errorf("deal ID is already set")
	}
	if dealID == 0 {
		return fmt.Errorf("deal ID cannot be zero")
	}
	d.dealID = dealID
	return nil
}

// DiscountPercent returns the display discount derived from the original
// price, or 0 when no original price is present.
func (d *Deal) DiscountPercent() int {
	if d.originalPrice == nil || *d.originalPrice <= 0 {
		return 0
	}
	return int(math.Round((*d.originalPrice - d.price) / *d.originalPrice * 100))
}

// IsExpired reports whether the deal's expiry has passed. Expiration is a
// derived condition for display and listing filters; it never mutates
// status by itself.
func (d *Deal) IsExpired(now time.Time) bool {
	return !d.expiresAt.After(now)
}

// IsPubliclyVisible reports whether the deal belongs in public listings.
func (d *Deal) IsPubliclyVisible(now time.Time) bool {
	return d.status.IsPubliclyListable() && !d.IsExpired(now)
}

// Pause takes an active deal out of public listings without retiring it.
func (d *Deal) Pause() error {
	if !d.status.CanTransitionTo(vo.StatusPaused) {
		return ErrInvalidTransition(d.status.String(), vo.StatusPaused.String())
	}

	d.status = vo.StatusPaused
	d.updatedAt = biztime.NowUTC()
	return nil
}

// Activate resumes a paused deal. A paused deal whose expiry has since
// passed cannot be re-activated; it must be restored with a fresh expiry.
func (d *Deal) Activate() error {
	if !d.status.CanTransitionTo(vo.StatusActive) || d.status == vo.StatusArchived {
		return ErrInvalidTransition(d.status.String(), vo.StatusActive.String())
	}

	now := biztime.NowUTC()
	if d.IsExpired(now) {
		return fmt.Errorf("%w: cannot activate a deal past its expiry", ErrDealExpired)
	}

	d.status = vo.StatusActive
	d.updatedAt = now
	return nil
}

// Archive soft-retires a deal from any listable state. The quota slot the
// deal consumed on its creation day is not freed.
func (d *Deal) Archive() error {
	if !d.status.CanTransitionTo(vo.StatusArchived) {
		return ErrInvalidTransition(d.status.String(), vo.StatusArchived.String())
	}

	d.status = vo.StatusArchived
	d.updatedAt = biztime.NowUTC()
	return nil
}

// Restore brings an archived deal back to active with a fresh expiry.
// Restoring is exempt from the daily quota: the slot was consumed on the
// day the deal was created.
func (d *Deal) Restore(newExpiresAt time.Time) error {
	if d.status != vo.StatusArchived {
		return ErrInvalidTransition(d.status.String(), vo.StatusActive.String())
	}

	now := biztime.NowUTC()
	if !newExpiresAt.After(now) {
		return fmt.Errorf("new expiry must be in the future")
	}

	d.status = vo.StatusActive
	d.expiresAt = newExpiresAt.UTC()
	d.updatedAt = now
	return nil
}

// UpdateContent applies an edit to the deal's content fields, re-running
// the same validation as creation. Status and counters are untouched.
func (d *Deal) UpdateContent(p NewDealParams) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > constants.MaxDealTitleLength {
		return fmt.Errorf("title must be at most %d characters", constants.MaxDealTitleLength)
	}
	if len(p.Description) > constants.MaxDealDescriptionLength {
		return fmt.Errorf("description must be at most %d characters", constants.MaxDealDescriptionLength)
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return fmt.Errorf("original price must not be below the deal price")
	}

	externalURL, err := vo.NormalizeExternalURL(p.ExternalURL)
	if err != nil {
		return err
	}

	if !p.ExpiresAt.IsZero() {
		if !p.ExpiresAt.After(biztime.NowUTC()) {
			return fmt.Errorf("expiry must be in the future")
		}
		d.expiresAt = p.ExpiresAt.UTC()
	}

	d.title = title
	d.description = p.Description
	d.price = p.Price
	d.originalPrice = p.OriginalPrice
	d.externalURL = externalURL
	d.dealTypeID = p.DealTypeID
	d.updatedAt = biztime.NowUTC()
	return nil
}

// ReplaceImages swaps the ordered image set. Display order is normalized
// to the slice order.
func (d *Deal) ReplaceImages(images []Image) error {
	if len(images) > constants.MaxDealImages {
		return fmt.Errorf("%w: at most %d images per deal", ErrTooManyImages, constants.MaxDealImages)
	}
	for i := range images {
		images[i].displayOrder = i
	}
	d.images = images
	d.updatedAt = biztime.NowUTC()
	return nil
}
