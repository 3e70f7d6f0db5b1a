package dto

import (
	"time"

	dealdto "keydeals/internal/application/deal/dto"
	"keydeals/internal/domain/saveddeal"
)

type SavedDealDTO struct {
	SID     string           `json:"id"`
	SavedAt time.Time        `json:"saved_at"`
	Deal    *dealdto.DealDTO `json:"deal,omitempty"`
}

type BulkUnsaveResultDTO struct {
	Removed int64 `json:"removed"`
}

func ToSavedDealDTO(s *saveddeal.SavedDeal, d *dealdto.DealDTO) *SavedDealDTO {
	if s == nil {
		return nil
	}
	return &SavedDealDTO{
		SID:     s.SID(),
		SavedAt: s.CreatedAt(),
		Deal:    d,
	}
}
