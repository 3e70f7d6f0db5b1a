package handlers

import (
	"github.com/gin-gonic/gin"

	dealdto "keydeals/internal/application/deal/dto"
	saveddto "keydeals/internal/application/saveddeal/dto"
	"keydeals/internal/application/saveddeal/usecases"
	"keydeals/internal/interfaces/http/middleware"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
	"keydeals/internal/shared/logger"
	"keydeals/internal/shared/utils"
)

// SavedDealHandler serves the authenticated user's bookmark list.
type SavedDealHandler struct {
	saveUC       *usecases.SaveDealUseCase
	unsaveUC     *usecases.UnsaveDealUseCase
	bulkUnsaveUC *usecases.BulkUnsaveUseCase
	listUC       *usecases.ListSavedDealsUseCase
	logger       logger.Interface
}

func NewSavedDealHandler(
	saveUC *usecases.SaveDealUseCase,
	unsaveUC *usecases.UnsaveDealUseCase,
	bulkUnsaveUC *usecases.BulkUnsaveUseCase,
	listUC *usecases.ListSavedDealsUseCase,
) *SavedDealHandler {
	return &SavedDealHandler{
		saveUC:       saveUC,
		unsaveUC:     unsaveUC,
		bulkUnsaveUC: bulkUnsaveUC,
		listUC:       listUC,
		logger:       logger.NewLogger(),
	}
}

type BulkUnsaveRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// SaveDeal is idempotent: saving an already-saved deal returns the existing
// bookmark with 200 rather than a conflict.
func (h *SavedDealHandler) SaveDeal(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDeal, "deal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	saved, err := h.saveUC.Execute(c.Request.Context(), usecases.SaveDealCommand{
		UserID:  middleware.UserID(c),
		DealSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, saveddto.ToSavedDealDTO(saved, nil))
}

// UnsaveDeal is a no-op when the deal was never saved.
func (h *SavedDealHandler) UnsaveDeal(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDeal, "deal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.unsaveUC.Execute(c.Request.Context(), usecases.UnsaveDealCommand{
		UserID:  middleware.UserID(c),
		DealSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}

func (h *SavedDealHandler) BulkUnsave(c *gin.Context) {
	var req BulkUnsaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk unsave", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkUnsaveUC.Execute(c.Request.Context(), usecases.BulkUnsaveCommand{
		UserID:        middleware.UserID(c),
		SavedDealSIDs: req.IDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, saveddto.BulkUnsaveResultDTO{Removed: result.Removed})
}

func (h *SavedDealHandler) ListSavedDeals(c *gin.Context) {
	query := usecases.ListSavedDealsQuery{UserID: middleware.UserID(c)}
	if retailerSID := c.Query("retailer_id"); retailerSID != "" {
		query.RetailerProfileSID = &retailerSID
	}

	items, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	now := biztime.NowUTC()
	result := make([]*saveddto.SavedDealDTO, 0, len(items))
	for _, item := range items {
		result = append(result, saveddto.ToSavedDealDTO(item.Saved, dealdto.ToDealDTO(item.Deal, now)))
	}

	utils.OKResponse(c, result)
}
