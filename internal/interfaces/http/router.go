package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dealusecases "keydeals/internal/application/deal/usecases"
	retailerusecases "keydeals/internal/application/retailer/usecases"
	savedusecases "keydeals/internal/application/saveddeal/usecases"
	"keydeals/internal/infrastructure/auth"
	"keydeals/internal/infrastructure/cache"
	"keydeals/internal/infrastructure/config"
	"keydeals/internal/infrastructure/repository"
	"keydeals/internal/interfaces/http/handlers"
	"keydeals/internal/interfaces/http/middleware"
	"keydeals/internal/shared/constants"
	"keydeals/internal/shared/logger"
	"keydeals/internal/shared/services/markdown"
)

// Router wires repositories, use cases, and handlers into the gin engine.
type Router struct {
	engine              *gin.Engine
	dealHandler         *handlers.DealHandler
	retailerDealHandler *handlers.RetailerDealHandler
	savedDealHandler    *handlers.SavedDealHandler
	adminRetailer       *handlers.AdminRetailerHandler
	dealTypeHandler     *handlers.DealTypeHandler
	authMiddleware      *middleware.AuthMiddleware
	allowedOrigins      []string
	log                 logger.Interface
}

func NewRouter(
	db *gorm.DB,
	cfg *config.Config,
	viewCounter cache.ViewCounter,
	listingCache cache.ListingCache,
	log logger.Interface,
) *Router {
	engine := gin.New()

	dealRepo := repository.NewDealRepository(db, log)
	dealTypeRepo := repository.NewDealTypeRepository(db, log)
	retailerRepo := repository.NewRetailerProfileRepository(db, log)
	savedRepo := repository.NewSavedDealRepository(db, log)

	markdownSvc := markdown.NewService()

	listPublicUC := dealusecases.NewListPublicDealsUseCase(dealRepo, dealTypeRepo, retailerRepo, log)
	getPublicUC := dealusecases.NewGetPublicDealUseCase(dealRepo, dealTypeRepo, retailerRepo, log)
	recordViewUC := dealusecases.NewRecordViewUseCase(dealRepo, viewCounter, log)
	listTypesUC := dealusecases.NewListDealTypesUseCase(dealTypeRepo, log)

	createDealUC := dealusecases.NewCreateDealUseCase(dealRepo, dealTypeRepo, retailerRepo, log)
	updateDealUC := dealusecases.NewUpdateDealUseCase(dealRepo, dealTypeRepo, log)
	getRetailerDealUC := dealusecases.NewGetRetailerDealUseCase(dealRepo, log)
	listRetailerDealsUC := dealusecases.NewListRetailerDealsUseCase(dealRepo, log)
	pauseDealUC := dealusecases.NewPauseDealUseCase(dealRepo, log)
	activateDealUC := dealusecases.NewActivateDealUseCase(dealRepo, log)
	archiveDealUC := dealusecases.NewArchiveDealUseCase(dealRepo, log)
	restoreDealUC := dealusecases.NewRestoreDealUseCase(dealRepo, log)
	deleteDealUC := dealusecases.NewDeleteDealUseCase(dealRepo, log)
	replaceImagesUC := dealusecases.NewReplaceImagesUseCase(dealRepo, log)
	importCSVUC := dealusecases.NewImportDealsCSVUseCase(createDealUC, retailerRepo, log)
	quotaStatusUC := dealusecases.NewGetQuotaStatusUseCase(dealRepo, log)

	createTypeUC := dealusecases.NewCreateDealTypeUseCase(dealTypeRepo, log)
	deleteTypeUC := dealusecases.NewDeleteDealTypeUseCase(dealTypeRepo, log)

	saveUC := savedusecases.NewSaveDealUseCase(savedRepo, dealRepo, log)
	unsaveUC := savedusecases.NewUnsaveDealUseCase(savedRepo, dealRepo, log)
	bulkUnsaveUC := savedusecases.NewBulkUnsaveUseCase(savedRepo, dealRepo, log)
	listSavedUC := savedusecases.NewListSavedDealsUseCase(savedRepo, dealRepo, retailerRepo, log)

	createProfileUC := retailerusecases.NewCreateProfileUseCase(retailerRepo, log)
	updateProfileUC := retailerusecases.NewUpdateProfileUseCase(retailerRepo, log)
	getProfileUC := retailerusecases.NewGetProfileUseCase(retailerRepo, log)
	getOwnProfileUC := retailerusecases.NewGetOwnProfileUseCase(retailerRepo, log)
	listProfilesUC := retailerusecases.NewListProfilesUseCase(retailerRepo, log)
	deleteProfileUC := retailerusecases.NewDeleteProfileUseCase(retailerRepo, log)
	assignOwnerUC := retailerusecases.NewAssignOwnerUseCase(retailerRepo, log)
	revokeOwnerUC := retailerusecases.NewRevokeOwnerUseCase(retailerRepo, log)

	dealHandler := handlers.NewDealHandler(listPublicUC, getPublicUC, recordViewUC, listTypesUC, markdownSvc, listingCache)
	retailerDealHandler := handlers.NewRetailerDealHandler(
		getOwnProfileUC,
		createDealUC,
		updateDealUC,
		getRetailerDealUC,
		listRetailerDealsUC,
		pauseDealUC,
		activateDealUC,
		archiveDealUC,
		restoreDealUC,
		deleteDealUC,
		replaceImagesUC,
		importCSVUC,
		quotaStatusUC,
		listingCache,
		cfg.Marketplace.CSVImportMaxRows,
	)
	savedDealHandler := handlers.NewSavedDealHandler(saveUC, unsaveUC, bulkUnsaveUC, listSavedUC)
	adminRetailer := handlers.NewAdminRetailerHandler(
		createProfileUC,
		updateProfileUC,
		getProfileUC,
		listProfilesUC,
		deleteProfileUC,
		assignOwnerUC,
		revokeOwnerUC,
	)
	dealTypeHandler := handlers.NewDealTypeHandler(createTypeUC, deleteTypeUC)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:              engine,
		dealHandler:         dealHandler,
		retailerDealHandler: retailerDealHandler,
		savedDealHandler:    savedDealHandler,
		adminRetailer:       adminRetailer,
		dealTypeHandler:     dealTypeHandler,
		authMiddleware:      authMiddleware,
		allowedOrigins:      cfg.Server.AllowedOrigins,
		log:                 log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	// Public storefront, no auth.
	deals := api.Group("/deals")
	{
		deals.GET("", r.dealHandler.ListDeals)
		deals.GET("/:id", r.dealHandler.GetDeal)
		deals.POST("/:id/view", r.dealHandler.RecordView)
	}
	api.GET("/deal-types", r.dealHandler.ListDealTypes)

	// Authenticated shoppers: bookmarks.
	saved := api.Group("/saved-deals")
	saved.Use(r.authMiddleware.RequireAuth())
	{
		saved.GET("", r.savedDealHandler.ListSavedDeals)
		saved.POST("/bulk-unsave", r.savedDealHandler.BulkUnsave)
	}
	authedDeals := api.Group("/deals")
	authedDeals.Use(r.authMiddleware.RequireAuth())
	{
		authedDeals.PUT("/:id/save", r.savedDealHandler.SaveDeal)
		authedDeals.DELETE("/:id/save", r.savedDealHandler.UnsaveDeal)
	}

	// Retailer dashboard. Ownership is enforced per request by resolving
	// the caller's profile, not by the role claim alone.
	retailerGroup := api.Group("/retailer")
	retailerGroup.Use(r.authMiddleware.RequireAuth())
	{
		retailerGroup.GET("/profile", r.retailerDealHandler.GetOwnProfile)

		retailerGroup.POST("/deals", r.retailerDealHandler.CreateDeal)
		retailerGroup.GET("/deals", r.retailerDealHandler.ListDeals)
		retailerGroup.GET("/deals/:id", r.retailerDealHandler.GetDeal)
		retailerGroup.PUT("/deals/:id", r.retailerDealHandler.UpdateDeal)
		retailerGroup.DELETE("/deals/:id", r.retailerDealHandler.DeleteDeal)

		retailerGroup.POST("/deals/:id/pause", r.retailerDealHandler.PauseDeal)
		retailerGroup.POST("/deals/:id/activate", r.retailerDealHandler.ActivateDeal)
		retailerGroup.POST("/deals/:id/archive", r.retailerDealHandler.ArchiveDeal)
		retailerGroup.POST("/deals/:id/restore", r.retailerDealHandler.RestoreDeal)
		retailerGroup.PUT("/deals/:id/images", r.retailerDealHandler.ReplaceImages)

		retailerGroup.POST("/deals/import", r.retailerDealHandler.ImportDealsCSV)
	}

	// Operator console.
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		admin.POST("/retailers", r.adminRetailer.CreateProfile)
		admin.GET("/retailers", r.adminRetailer.ListProfiles)
		admin.GET("/retailers/:id", r.adminRetailer.GetProfile)
		admin.PUT("/retailers/:id", r.adminRetailer.UpdateProfile)
		admin.DELETE("/retailers/:id", r.adminRetailer.DeleteProfile)
		admin.POST("/retailers/:id/owner", r.adminRetailer.AssignOwner)
		admin.DELETE("/retailers/:id/owner", r.adminRetailer.RevokeOwner)

		admin.POST("/deal-types", r.dealTypeHandler.CreateDealType)
		admin.DELETE("/deal-types/:id", r.dealTypeHandler.DeleteDealType)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
