package dto

import (
	"time"

	"keydeals/internal/domain/deal"
	"keydeals/internal/domain/retailer"
)

type DealDTO struct {
	SID             string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DescriptionHTML string         `json:"description_html,omitempty"`
	Price           float64        `json:"price"`
	OriginalPrice   *float64       `json:"original_price,omitempty"`
	DiscountPercent int            `json:"discount_percent,omitempty"`
	ExternalURL     string         `json:"external_url"`
	ExpiresAt       time.Time      `json:"expires_at"`
	IsExpired       bool           `json:"is_expired"`
	Status          string         `json:"status"`
	ViewCount       uint64         `json:"view_count"`
	SaveCount       uint64         `json:"save_count"`
	DealType        *DealTypeDTO   `json:"deal_type,omitempty"`
	Retailer        *RetailerRef   `json:"retailer,omitempty"`
	Images          []DealImageDTO `json:"images"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type DealImageDTO struct {
	SID          string `json:"id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type DealTypeDTO struct {
	SID   string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RetailerRef is the slim retailer embed on storefront deals.
type RetailerRef struct {
	SID         string `json:"id"`
	CompanyName string `json:"company_name"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// ToDealDTO converts a deal aggregate for API responses. The retailer and
// type embeds are optional because retailer-dashboard responses already
// know whose deals they are.
func ToDealDTO(d *deal.Deal, now time.Time) *DealDTO {
	if d == nil {
		return nil
	}

	images := make([]DealImageDTO, 0, len(d.Images()))
	for _, img := range d.Images() {
		images = append(images, DealImageDTO{
			SID:          img.SID(),
			ImageURL:     img.ImageURL(),
			DisplayOrder: img.DisplayOrder(),
		})
	}

	return &DealDTO{
		SID:             d.SID(),
		Title:           d.Title(),
		Description:     d.Description(),
		Price:           d.Price(),
		OriginalPrice:   d.OriginalPrice(),
		DiscountPercent: d.DiscountPercent(),
		ExternalURL:     d.ExternalURL(),
		ExpiresAt:       d.ExpiresAt(),
		IsExpired:       d.IsExpired(now),
		Status:          d.Status().String(),
		ViewCount:       d.ViewCount(),
		SaveCount:       d.SaveCount(),
		Images:          images,
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func ToDealDTOs(deals []*deal.Deal, now time.Time) []*DealDTO {
	result := make([]*DealDTO, 0, len(deals))
	for _, d := range deals {
		result = append(result, ToDealDTO(d, now))
	}
	return result
}

func ToDealTypeDTO(t *deal.Type) *DealTypeDTO {
	if t == nil {
		return nil
	}
	return &DealTypeDTO{
		SID:   t.SID(),
		Name:  t.Name(),
		Color: t.Color(),
	}
}

func ToDealTypeDTOs(types []*deal.Type) []*DealTypeDTO {
	result := make([]*DealTypeDTO, 0, len(types))
	for _, t := range types {
		result = append(result, ToDealTypeDTO(t))
	}
	return result
}

func ToRetailerRef(p *retailer.Profile) *RetailerRef {
	if p == nil {
		return nil
	}
	return &RetailerRef{
		SID:         p.SID(),
		CompanyName: p.CompanyName(),
		LogoURL:     p.LogoURL(),
	}
}
