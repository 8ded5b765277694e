package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ffytmanager-droid/otp-bot/internal/handler/api"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/middleware"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	ginEngine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	orderHandler *api.OrderHandler,
	walletHandler *api.WalletHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(ginEngine, cfg)
	setupRoutes(ginEngine, authHandler, orderHandler, walletHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	orderHandler *api.OrderHandler,
	walletHandler *api.WalletHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/auth/login", authHandler.Login)
		apiGroup.POST("/users/register", walletHandler.Register)

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/users/me", Handler: walletHandler.Profile},
				{Method: http.MethodPut, Path: "/users/access", Handler: walletHandler.SetAccess},

				{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.Purchase},
				{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.History},
				{Method: http.MethodGet, Path: "/orders/active", Handler: orderHandler.Active},
				{Method: http.MethodPost, Path: "/orders/:id/check", Handler: orderHandler.Check},
				{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: orderHandler.Cancel},
				{Method: http.MethodPost, Path: "/orders/:id/new-number", Handler: orderHandler.NewNumber},

				{Method: http.MethodPost, Path: "/deposits", Handler: walletHandler.SubmitDeposit},
				{Method: http.MethodGet, Path: "/deposits", Handler: walletHandler.DepositHistory},
				{Method: http.MethodPost, Path: "/giftcodes/redeem", Handler: walletHandler.RedeemGiftCode},
				{Method: http.MethodPost, Path: "/transfers", Handler: walletHandler.Transfer},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/deposits", Handler: adminHandler.PendingDeposits},
				{Method: http.MethodPost, Path: "/deposits/:id/approve", Handler: adminHandler.ApproveDeposit},
				{Method: http.MethodPost, Path: "/deposits/:id/reject", Handler: adminHandler.RejectDeposit},
				{Method: http.MethodPost, Path: "/giftcodes", Handler: adminHandler.CreateGiftCode},
				{Method: http.MethodGet, Path: "/orders/active", Handler: adminHandler.ActiveOrders},
			})
		}
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
