package handlers

import (
	"github.com/gin-gonic/gin"

	dealdto "keydeals/internal/application/deal/dto"
	"keydeals/internal/application/deal/usecases"
	"keydeals/internal/shared/id"
	"keydeals/internal/shared/logger"
	"keydeals/internal/shared/utils"
)

// DealTypeHandler manages the deal type catalog. Creation and deletion are
// admin operations; the public listing lives on DealHandler.
type DealTypeHandler struct {
	createUC *usecases.CreateDealTypeUseCase
	deleteUC *usecases.DeleteDealTypeUseCase
	logger   logger.Interface
}

func NewDealTypeHandler(
	createUC *usecases.CreateDealTypeUseCase,
	deleteUC *usecases.DeleteDealTypeUseCase,
) *DealTypeHandler {
	return &DealTypeHandler{
		createUC: createUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateDealTypeRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (h *DealTypeHandler) CreateDealType(c *gin.Context) {
	var req CreateDealTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create deal type", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	dealType, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDealTypeCommand{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dealdto.ToDealTypeDTO(dealType), "Deal type created successfully")
}

// DeleteDealType detaches the type from any deals referencing it; the deals
// themselves survive untyped.
func (h *DealTypeHandler) DeleteDealType(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDealType, "deal type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDealTypeCommand{DealTypeSID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}
