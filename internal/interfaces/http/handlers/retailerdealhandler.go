package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	dealdto "keydeals/internal/application/deal/dto"
	dealusecases "keydeals/internal/application/deal/usecases"
	retailerdto "keydeals/internal/application/retailer/dto"
	retailerusecases "keydeals/internal/application/retailer/usecases"
	"keydeals/internal/domain/retailer"
	"keydeals/internal/infrastructure/cache"
	"keydeals/internal/interfaces/http/middleware"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/id"
	"keydeals/internal/shared/logger"
	"keydeals/internal/shared/utils"
)

// RetailerDealHandler serves the retailer dashboard. Every route resolves the
// caller's own profile first; deal SIDs belonging to other retailers come back
// as not found.
type RetailerDealHandler struct {
	getOwnProfileUC *retailerusecases.GetOwnProfileUseCase
	createDealUC    *dealusecases.CreateDealUseCase
	updateDealUC    *dealusecases.UpdateDealUseCase
	getDealUC       *dealusecases.GetRetailerDealUseCase
	listDealsUC     *dealusecases.ListRetailerDealsUseCase
	pauseDealUC     *dealusecases.PauseDealUseCase
	activateDealUC  *dealusecases.ActivateDealUseCase
	archiveDealUC   *dealusecases.ArchiveDealUseCase
	restoreDealUC   *dealusecases.RestoreDealUseCase
	deleteDealUC    *dealusecases.DeleteDealUseCase
	replaceImagesUC *dealusecases.ReplaceImagesUseCase
	importCSVUC     *dealusecases.ImportDealsCSVUseCase
	quotaStatusUC   *dealusecases.GetQuotaStatusUseCase
	listingCache    cache.ListingCache
	csvMaxRows      int
	logger          logger.Interface
}

func NewRetailerDealHandler(
	getOwnProfileUC *retailerusecases.GetOwnProfileUseCase,
	createDealUC *dealusecases.CreateDealUseCase,
	updateDealUC *dealusecases.UpdateDealUseCase,
	getDealUC *dealusecases.GetRetailerDealUseCase,
	listDealsUC *dealusecases.ListRetailerDealsUseCase,
	pauseDealUC *dealusecases.PauseDealUseCase,
	activateDealUC *dealusecases.ActivateDealUseCase,
	archiveDealUC *dealusecases.ArchiveDealUseCase,
	restoreDealUC *dealusecases.RestoreDealUseCase,
	deleteDealUC *dealusecases.DeleteDealUseCase,
	replaceImagesUC *dealusecases.ReplaceImagesUseCase,
	importCSVUC *dealusecases.ImportDealsCSVUseCase,
	quotaStatusUC *dealusecases.GetQuotaStatusUseCase,
	listingCache cache.ListingCache,
	csvMaxRows int,
) *RetailerDealHandler {
	return &RetailerDealHandler{
		getOwnProfileUC: getOwnProfileUC,
		createDealUC:    createDealUC,
		updateDealUC:    updateDealUC,
		getDealUC:       getDealUC,
		listDealsUC:     listDealsUC,
		pauseDealUC:     pauseDealUC,
		activateDealUC:  activateDealUC,
		archiveDealUC:   archiveDealUC,
		restoreDealUC:   restoreDealUC,
		deleteDealUC:    deleteDealUC,
		replaceImagesUC: replaceImagesUC,
		importCSVUC:     importCSVUC,
		quotaStatusUC:   quotaStatusUC,
		listingCache:    listingCache,
		csvMaxRows:      csvMaxRows,
		logger:          logger.NewLogger(),
	}
}

type CreateDealRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" binding:"gte=0"`
	OriginalPrice *float64  `json:"original_price"`
	ExternalURL   string    `json:"external_url" binding:"required"`
	ExpiresAt     time.Time `json:"expires_at" binding:"required"`
	DealTypeID    *string   `json:"deal_type_id"`
	ImageURLs     []string  `json:"image_urls"`
}

type UpdateDealRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" binding:"gte=0"`
	OriginalPrice *float64  `json:"original_price"`
	ExternalURL   string    `json:"external_url" binding:"required"`
	ExpiresAt     time.Time `json:"expires_at" binding:"required"`
	DealTypeID    *string   `json:"deal_type_id"`
}

type RestoreDealRequest struct {
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

type ReplaceImagesRequest struct {
	ImageURLs []string `json:"image_urls"`
}

func (h *RetailerDealHandler) CreateDeal(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create deal", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := dealusecases.CreateDealCommand{
		RetailerProfileID: profile.ID(),
		DealTypeSID:       req.DealTypeID,
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		OriginalPrice:     req.OriginalPrice,
		ExternalURL:       req.ExternalURL,
		ExpiresAt:         req.ExpiresAt,
		ImageURLs:         req.ImageURLs,
	}

	d, err := h.createDealUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.CreatedResponse(c, dealdto.ToDealDTO(d, biztime.NowUTC()), "Deal created successfully")
}

func (h *RetailerDealHandler) UpdateDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update deal", "deal_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := dealusecases.UpdateDealCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
		DealTypeSID:       req.DealTypeID,
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		OriginalPrice:     req.OriginalPrice,
		ExternalURL:       req.ExternalURL,
		ExpiresAt:         req.ExpiresAt,
	}

	d, err := h.updateDealUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal updated successfully", dealdto.ToDealDTO(d, biztime.NowUTC()))
}

func (h *RetailerDealHandler) GetDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	d, err := h.getDealUC.Execute(c.Request.Context(), dealusecases.GetRetailerDealQuery{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dealdto.ToDealDTO(d, biztime.NowUTC()))
}

func (h *RetailerDealHandler) ListDeals(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)
	query := dealusecases.ListRetailerDealsQuery{
		RetailerProfileID: profile.ID(),
		Page:              pagination.Page,
		PageSize:          pagination.PageSize,
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	result, err := h.listDealsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := dealdto.ToDealDTOs(result.Deals, biztime.NowUTC())
	utils.OKResponse(c, utils.NewListResponse(items, result.Total, pagination.Page, pagination.PageSize))
}

func (h *RetailerDealHandler) PauseDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	d, err := h.pauseDealUC.Execute(c.Request.Context(), dealusecases.PauseDealCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal paused", dealdto.ToDealDTO(d, biztime.NowUTC()))
}

func (h *RetailerDealHandler) ActivateDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	d, err := h.activateDealUC.Execute(c.Request.Context(), dealusecases.ActivateDealCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal activated", dealdto.ToDealDTO(d, biztime.NowUTC()))
}

func (h *RetailerDealHandler) ArchiveDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	d, err := h.archiveDealUC.Execute(c.Request.Context(), dealusecases.ArchiveDealCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal archived", dealdto.ToDealDTO(d, biztime.NowUTC()))
}

func (h *RetailerDealHandler) RestoreDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	var req RestoreDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for restore deal", "deal_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	d, err := h.restoreDealUC.Execute(c.Request.Context(), dealusecases.RestoreDealCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
		NewExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal restored", dealdto.ToDealDTO(d, biztime.NowUTC()))
}

func (h *RetailerDealHandler) DeleteDeal(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	err := h.deleteDealUC.Execute(c.Request.Context(), dealusecases.DeleteDealCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal deleted successfully", nil)
}

func (h *RetailerDealHandler) ReplaceImages(c *gin.Context) {
	profile, sid, ok := h.ownProfileAndDealSID(c)
	if !ok {
		return
	}

	var req ReplaceImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for replace images", "deal_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	d, err := h.replaceImagesUC.Execute(c.Request.Context(), dealusecases.ReplaceImagesCommand{
		DealSID:           sid,
		RetailerProfileID: profile.ID(),
		ImageURLs:         req.ImageURLs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.SuccessResponse(c, http.StatusOK, "Deal images updated", dealdto.ToDealDTO(d, biztime.NowUTC()))
}

// ImportDealsCSV accepts a multipart upload under the "file" field. Rows are
// imported one by one; rejected rows come back in the response without
// aborting the rest of the file.
func (h *RetailerDealHandler) ImportDealsCSV(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "csv file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded csv", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importCSVUC.Execute(c.Request.Context(), dealusecases.ImportDealsCSVCommand{
		RetailerProfileID: profile.ID(),
		Reader:            file,
		MaxRows:           h.csvMaxRows,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.invalidateListings(c)
	utils.OKResponse(c, result)
}

type OwnProfileResponse struct {
	Profile *retailerdto.RetailerProfileDTO `json:"profile"`
	Quota   *dealusecases.QuotaStatus       `json:"quota"`
}

func (h *RetailerDealHandler) GetOwnProfile(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}

	quota, err := h.quotaStatusUC.Execute(c.Request.Context(), profile)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, OwnProfileResponse{
		Profile: retailerdto.ToRetailerProfileDTO(profile),
		Quota:   quota,
	})
}

// invalidateListings drops cached storefront pages after any change that can
// affect what the public listing shows. Best effort; a stale page expires
// with its TTL anyway.
func (h *RetailerDealHandler) invalidateListings(c *gin.Context) {
	if err := h.listingCache.InvalidateAll(c.Request.Context()); err != nil {
		h.logger.Warnw("failed to invalidate listing cache", "error", err)
	}
}

func (h *RetailerDealHandler) ownProfile(c *gin.Context) (*retailer.Profile, bool) {
	profile, err := h.getOwnProfileUC.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, false
	}
	return profile, true
}

func (h *RetailerDealHandler) ownProfileAndDealSID(c *gin.Context) (*retailer.Profile, string, bool) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return nil, "", false
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDeal, "deal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, "", false
	}
	return profile, sid, true
}
