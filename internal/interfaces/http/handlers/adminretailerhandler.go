package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"keydeals/internal/application/retailer/dto"
	"keydeals/internal/application/retailer/usecases"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/id"
	"keydeals/internal/shared/logger"
	"keydeals/internal/shared/utils"
)

// AdminRetailerHandler manages retailer profiles. Profiles are created by
// operators, not self-registered, so every route here sits behind the admin
// role.
type AdminRetailerHandler struct {
	createProfileUC *usecases.CreateProfileUseCase
	updateProfileUC *usecases.UpdateProfileUseCase
	getProfileUC    *usecases.GetProfileUseCase
	listProfilesUC  *usecases.ListProfilesUseCase
	deleteProfileUC *usecases.DeleteProfileUseCase
	assignOwnerUC   *usecases.AssignOwnerUseCase
	revokeOwnerUC   *usecases.RevokeOwnerUseCase
	logger          logger.Interface
}

func NewAdminRetailerHandler(
	createProfileUC *usecases.CreateProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	listProfilesUC *usecases.ListProfilesUseCase,
	deleteProfileUC *usecases.DeleteProfileUseCase,
	assignOwnerUC *usecases.AssignOwnerUseCase,
	revokeOwnerUC *usecases.RevokeOwnerUseCase,
) *AdminRetailerHandler {
	return &AdminRetailerHandler{
		createProfileUC: createProfileUC,
		updateProfileUC: updateProfileUC,
		getProfileUC:    getProfileUC,
		listProfilesUC:  listProfilesUC,
		deleteProfileUC: deleteProfileUC,
		assignOwnerUC:   assignOwnerUC,
		revokeOwnerUC:   revokeOwnerUC,
		logger:          logger.NewLogger(),
	}
}

type CreateProfileRequest struct {
	CompanyName      string `json:"company_name" binding:"required"`
	ContactEmail     string `json:"contact_email" binding:"required,email"`
	ContactPhone     string `json:"contact_phone"`
	LogoURL          string `json:"logo_url"`
	WebsiteURL       string `json:"website_url"`
	DailyDealLimit   int    `json:"daily_deal_limit" binding:"min=0"`
	HasCSVPermission bool   `json:"has_csv_permission"`
	IsAlwaysOnTop    bool   `json:"is_always_on_top"`
	OwnerUserID      *uint  `json:"owner_user_id"`
}

type UpdateProfileRequest struct {
	CompanyName      *string `json:"company_name"`
	ContactEmail     *string `json:"contact_email"`
	ContactPhone     *string `json:"contact_phone"`
	LogoURL          *string `json:"logo_url"`
	WebsiteURL       *string `json:"website_url"`
	DailyDealLimit   *int    `json:"daily_deal_limit"`
	HasCSVPermission *bool   `json:"has_csv_permission"`
	IsAlwaysOnTop    *bool   `json:"is_always_on_top"`
	IsActive         *bool   `json:"is_active"`
}

type AssignOwnerRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (h *AdminRetailerHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create retailer profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateProfileCommand{
		CompanyName:      req.CompanyName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		LogoURL:          req.LogoURL,
		WebsiteURL:       req.WebsiteURL,
		DailyDealLimit:   req.DailyDealLimit,
		HasCSVPermission: req.HasCSVPermission,
		IsAlwaysOnTop:    req.IsAlwaysOnTop,
		OwnerUserID:      req.OwnerUserID,
	}

	profile, err := h.createProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToRetailerProfileDTO(profile), "Retailer profile created successfully")
}

func (h *AdminRetailerHandler) UpdateProfile(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixRetailerProfile, "retailer profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update retailer profile", "profile_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateProfileCommand{
		ProfileSID:       sid,
		CompanyName:      req.CompanyName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		LogoURL:          req.LogoURL,
		WebsiteURL:       req.WebsiteURL,
		DailyDealLimit:   req.DailyDealLimit,
		HasCSVPermission: req.HasCSVPermission,
		IsAlwaysOnTop:    req.IsAlwaysOnTop,
		IsActive:         req.IsActive,
	}

	profile, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Retailer profile updated successfully", dto.ToRetailerProfileDTO(profile))
}

func (h *AdminRetailerHandler) GetProfile(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixRetailerProfile, "retailer profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{ProfileSID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToRetailerProfileDTO(profile))
}

func (h *AdminRetailerHandler) ListProfiles(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListProfilesQuery{
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("is_active must be true or false"))
			return
		}
		query.IsActive = &active
	}

	result, err := h.listProfilesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := dto.ToRetailerProfileDTOs(result.Profiles)
	utils.OKResponse(c, utils.NewListResponse(items, result.Total, pagination.Page, pagination.PageSize))
}

// DeleteProfile hard-deletes the profile and everything hanging off it: the
// retailer's deals, their images, and any user bookmarks pointing at them.
func (h *AdminRetailerHandler) DeleteProfile(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixRetailerProfile, "retailer profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProfileUC.Execute(c.Request.Context(), usecases.DeleteProfileCommand{ProfileSID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Retailer profile deleted successfully", nil)
}

func (h *AdminRetailerHandler) AssignOwner(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixRetailerProfile, "retailer profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign owner", "profile_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.assignOwnerUC.Execute(c.Request.Context(), usecases.AssignOwnerCommand{
		ProfileSID: sid,
		UserID:     req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Owner assigned", dto.ToRetailerProfileDTO(profile))
}

func (h *AdminRetailerHandler) RevokeOwner(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixRetailerProfile, "retailer profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.revokeOwnerUC.Execute(c.Request.Context(), usecases.RevokeOwnerCommand{ProfileSID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Owner revoked", dto.ToRetailerProfileDTO(profile))
}
