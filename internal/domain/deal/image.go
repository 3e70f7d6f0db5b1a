package deal

import (
	"fmt"
	"strings"
	"time"

	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
)

// Image is an ordered photo attached to a deal. Only the URL is stored;
// image bytes live with the storage collaborator.
type Image struct {
	imageID      uint
	sid          string
	dealID       uint
	imageURL     string
	displayOrder int
	createdAt    time.Time
}

// NewImage creates an image entry for a deal. The deal ID may be zero when
// the image is attached before the deal is first persisted.
func NewImage(dealID uint, imageURL string, displayOrder int) (*Image, error) {
	trimmed := strings.TrimSpace(imageURL)
	if trimmed == "" {
		return nil, fmt.Errorf("image URL is required")
	}
	if displayOrder < 0 {
		return nil, fmt.Errorf("display order must not be negative")
	}

	return &Image{
		sid:          id.MustGenerateWithPrefix(id.PrefixDealImage, id.DefaultLength),
		dealID:       dealID,
		imageURL:     trimmed,
		displayOrder: displayOrder,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructImage rebuilds an image from persistence.
func ReconstructImage(imageID uint, sid string, dealID uint, imageURL string, displayOrder int, createdAt time.Time) Image {
	return Image{
		imageID:      imageID,
		sid:          sid,
		dealID:       dealID,
		imageURL:     imageURL,
		displayOrder: displayOrder,
		createdAt:    createdAt,
	}
}

func (i Image) ID() uint {
	return i.imageID
}

func (i Image) SID() string {
	return i.sid
}

func (i Image) DealID() uint {
	return i.dealID
}

func (i Image) ImageURL() string {
	return i.imageURL
}

func (i Image) DisplayOrder() int {
	return i.displayOrder
}

func (i Image) CreatedAt() time.Time {
	return i.createdAt
}
