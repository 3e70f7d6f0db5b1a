package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	dealdto "keydeals/internal/application/deal/dto"
	"keydeals/internal/application/deal/usecases"
	"keydeals/internal/domain/deal"
	"keydeals/internal/infrastructure/cache"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
	"keydeals/internal/shared/logger"
	"keydeals/internal/shared/services/markdown"
	"keydeals/internal/shared/utils"
)

// DealHandler serves the public storefront: listing, detail pages, view
// recording, and the deal type catalog. No authentication required.
type DealHandler struct {
	listPublicUC *usecases.ListPublicDealsUseCase
	getPublicUC  *usecases.GetPublicDealUseCase
	recordViewUC *usecases.RecordViewUseCase
	listTypesUC  *usecases.ListDealTypesUseCase
	markdownSvc  markdown.Service
	listingCache cache.ListingCache
	logger       logger.Interface
}

func NewDealHandler(
	listPublicUC *usecases.ListPublicDealsUseCase,
	getPublicUC *usecases.GetPublicDealUseCase,
	recordViewUC *usecases.RecordViewUseCase,
	listTypesUC *usecases.ListDealTypesUseCase,
	markdownSvc markdown.Service,
	listingCache cache.ListingCache,
) *DealHandler {
	return &DealHandler{
		listPublicUC: listPublicUC,
		getPublicUC:  getPublicUC,
		recordViewUC: recordViewUC,
		listTypesUC:  listTypesUC,
		markdownSvc:  markdownSvc,
		listingCache: listingCache,
		logger:       logger.NewLogger(),
	}
}

func (h *DealHandler) ListDeals(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cacheKey := c.Request.URL.RawQuery
	if cacheKey == "" {
		cacheKey = "default"
	}
	if cached, err := h.listingCache.Get(c.Request.Context(), cacheKey); err != nil {
		h.logger.Warnw("listing cache lookup failed", "error", err)
	} else if cached != nil {
		utils.OKResponse(c, json.RawMessage(cached))
		return
	}

	query := usecases.ListPublicDealsQuery{
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if typeSID := c.Query("deal_type_id"); typeSID != "" {
		query.DealTypeSID = &typeSID
	}
	if retailerSID := c.Query("retailer_id"); retailerSID != "" {
		query.RetailerProfileSID = &retailerSID
	}

	result, err := h.listPublicUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	typesByID, err := h.dealTypesByID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	now := biztime.NowUTC()
	items := make([]*dealdto.DealDTO, 0, len(result.Deals))
	for _, d := range result.Deals {
		item := dealdto.ToDealDTO(d, now)
		item.Retailer = dealdto.ToRetailerRef(result.Retailers[d.RetailerProfileID()])
		if typeID := d.DealTypeID(); typeID != nil {
			item.DealType = dealdto.ToDealTypeDTO(typesByID[*typeID])
		}
		items = append(items, item)
	}

	listing := utils.NewListResponse(items, result.Total, pagination.Page, pagination.PageSize)

	if payload, err := json.Marshal(listing); err == nil {
		if err := h.listingCache.Set(c.Request.Context(), cacheKey, payload); err != nil {
			h.logger.Warnw("failed to cache listing page", "error", err)
		}
	}

	utils.OKResponse(c, listing)
}

func (h *DealHandler) GetDeal(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDeal, "deal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPublicUC.Execute(c.Request.Context(), usecases.GetPublicDealQuery{DealSID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item := dealdto.ToDealDTO(result.Deal, biztime.NowUTC())
	item.Retailer = dealdto.ToRetailerRef(result.Retailer)
	item.DealType = dealdto.ToDealTypeDTO(result.DealType)
	h.renderDescription(item)

	utils.OKResponse(c, item)
}

// RecordView acknowledges unconditionally; view counting is best effort and
// must never surface an error to the storefront.
func (h *DealHandler) RecordView(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDeal, "deal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.recordViewUC.Execute(c.Request.Context(), usecases.RecordViewCommand{DealSID: sid}); err != nil {
		h.logger.Warnw("failed to record deal view", "deal_sid", sid, "error", err)
	}

	utils.OKResponse(c, nil)
}

func (h *DealHandler) ListDealTypes(c *gin.Context) {
	types, err := h.listTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dealdto.ToDealTypeDTOs(types))
}

func (h *DealHandler) dealTypesByID(c *gin.Context) (map[uint]*deal.Type, error) {
	types, err := h.listTypesUC.Execute(c.Request.Context())
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*deal.Type, len(types))
	for _, t := range types {
		byID[t.ID()] = t
	}
	return byID, nil
}

func (h *DealHandler) renderDescription(item *dealdto.DealDTO) {
	if item == nil || item.Description == "" {
		return
	}
	html, err := h.markdownSvc.ToHTMLSanitized(item.Description)
	if err != nil {
		h.logger.Warnw("failed to render deal description", "deal_sid", item.SID, "error", err)
		return
	}
	item.DescriptionHTML = html
}
