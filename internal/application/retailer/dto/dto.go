package dto

import (
	"time"

	"keydeals/internal/domain/retailer"
)

type RetailerProfileDTO struct {
	SID              string    `json:"id"`
	CompanyName      string    `json:"company_name"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	ContactPhone     string    `json:"contact_phone,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	WebsiteURL       string    `json:"website_url,omitempty"`
	DailyDealLimit   int       `json:"daily_deal_limit"`
	HasCSVPermission bool      `json:"has_csv_permission"`
	IsAlwaysOnTop    bool      `json:"is_always_on_top"`
	IsActive         bool      `json:"is_active"`
	OwnerUserID      *uint     `json:"owner_user_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PublicRetailerDTO hides the admin-only knobs from storefront responses.
type PublicRetailerDTO struct {
	SID         string `json:"id"`
	CompanyName string `json:"company_name"`
	LogoURL     string `json:"logo_url,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
}

func ToRetailerProfileDTO(p *retailer.Profile) *RetailerProfileDTO {
	if p == nil {
		return nil
	}
	return &RetailerProfileDTO{
		SID:              p.SID(),
		CompanyName:      p.CompanyName(),
		ContactEmail:     p.ContactEmail(),
		ContactPhone:     p.ContactPhone(),
		LogoURL:          p.LogoURL(),
		WebsiteURL:       p.WebsiteURL(),
		DailyDealLimit:   p.DailyDealLimit(),
		HasCSVPermission: p.HasCSVPermission(),
		IsAlwaysOnTop:    p.IsAlwaysOnTop(),
		IsActive:         p.IsActive(),
		OwnerUserID:      p.OwnerUserID(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func ToRetailerProfileDTOs(profiles []*retailer.Profile) []*RetailerProfileDTO {
	result := make([]*RetailerProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, ToRetailerProfileDTO(p))
	}
	return result
}

func ToPublicRetailerDTO(p *retailer.Profile) *PublicRetailerDTO {
	if p == nil {
		return nil
	}
	return &PublicRetailerDTO{
		SID:         p.SID(),
		CompanyName: p.CompanyName(),
		LogoURL:     p.LogoURL(),
		WebsiteURL:  p.WebsiteURL(),
	}
}
