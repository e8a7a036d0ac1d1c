package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modelmonitor/model-monitor/internal/audit"
	authpkg "github.com/modelmonitor/model-monitor/internal/auth"
	"github.com/modelmonitor/model-monitor/internal/config"
	"github.com/modelmonitor/model-monitor/internal/handlers"
	infraRepo "github.com/modelmonitor/model-monitor/internal/infra/repository"
	"github.com/modelmonitor/model-monitor/internal/middleware"
	"github.com/modelmonitor/model-monitor/internal/storage"
	ucBrand "github.com/modelmonitor/model-monitor/internal/usecase/brand"
	ucResponse "github.com/modelmonitor/model-monitor/internal/usecase/response"
	"github.com/modelmonitor/model-monitor/internal/ws"

	domainResponse "github.com/modelmonitor/model-monitor/internal/domain/response"
)

// Deps carries the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Denylist *authpkg.Denylist
	Uploader *storage.Uploader
	Hub      *ws.Hub
	Limiter  *middleware.IPRateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	brandRepo := infraRepo.NewBrandGormRepository(d.DB)
	responseRepo := infraRepo.NewResponseGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	generator := domainResponse.NewGenerator()

	// ======================================================
	// USE CASES
	// ======================================================
	listBrandsUC := ucBrand.NewListBrands(brandRepo)
	createBrandUC := ucBrand.NewCreateBrand(brandRepo, auditDispatcher)
	updateBrandUC := ucBrand.NewUpdateBrand(brandRepo, auditDispatcher)
	deleteBrandUC := ucBrand.NewDeleteBrand(brandRepo, auditDispatcher)
	setLogoUC := ucBrand.NewSetBrandLogo(brandRepo, d.Uploader, auditDispatcher)

	listResponsesUC := ucResponse.NewListForBrand(brandRepo, responseRepo)
	generateUC := ucResponse.NewGenerateResponse(brandRepo, responseRepo, generator, auditDispatcher)
	rateUC := ucResponse.NewRateResponse(responseRepo, auditDispatcher)
	statsUC := ucResponse.NewBrandStats(brandRepo, responseRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, d.Denylist)
	brandHandler := handlers.NewBrandHandler(
		listBrandsUC,
		createBrandUC,
		updateBrandUC,
		deleteBrandUC,
		setLogoUC,
		statsUC,
	)
	responseHandler := handlers.NewResponseHandler(
		listResponsesUC,
		generateUC,
		rateUC,
		d.Hub,
	)
	activityHandler := handlers.NewActivityHandler(auditLogger)
	wsHandler := handlers.NewWsHandler(d.Config, d.Denylist, d.Hub)
	appWebHandler := handlers.NewAppWebHandler()

	rateLimited := middleware.RateLimitMiddleware(d.Limiter)

	// ======================================================
	// WEB (HTML SHELL)
	// ======================================================
	webApp := r.Group("/web/app")
	{
		webApp.GET("/login", appWebHandler.Login)
		webApp.GET("/dashboard", appWebHandler.Dashboard)
		webApp.GET("/brands/:id", appWebHandler.BrandDetail)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", rateLimited, authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// WEBSOCKET (token in query)
		// ------------------------------
		api.GET("/ws", wsHandler.Serve)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config, d.Denylist))
		{
			secured.GET("/auth/verify", authHandler.Verify)

			secured.GET("/brands", brandHandler.List)
			secured.POST("/brands", brandHandler.Create)
			secured.PUT("/brands/:id", brandHandler.Update)
			secured.DELETE("/brands/:id", brandHandler.Delete)
			secured.POST("/brands/:id/logo", brandHandler.UploadLogo)
			secured.GET("/brands/:id/stats", brandHandler.Stats)

			secured.GET("/responses/brand/:brandId", responseHandler.ListForBrand)
			secured.POST("/responses/generate/:brandId", rateLimited, responseHandler.Generate)
			secured.POST("/responses/:responseId/rate", responseHandler.Rate)

			secured.GET("/me/activity", activityHandler.List)
		}
	}
}
