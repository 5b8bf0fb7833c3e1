package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/api/handler"
	"github.com/dibuiltadi/dashboard-web/internal/api/middleware"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/core/service"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(gateway ports.Gateway, store ports.TokenStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Renderer = web.NewRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	authService := service.NewAuthService(gateway, log)
	accountService := service.NewAccountService(gateway, log)
	couponService := service.NewCouponService(gateway, log)
	orderService := service.NewOrderService(gateway, log)
	dashboardService := service.NewDashboardService(gateway, log)

	loginHandler := handler.NewLoginHandler(authService, store, log)
	accountHandler := handler.NewAccountHandler(accountService, log)
	couponHandler := handler.NewCouponHandler(couponService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)

	// --- Public routes ---
	e.GET("/", loginHandler.Page)
	e.POST("/login", loginHandler.Submit)
	e.POST("/logout", loginHandler.Logout)

	// Only the dashboard is guarded; the other pages resolve the session if
	// one exists and otherwise degrade the way their upstream calls do.
	e.GET("/dashboard", dashboardHandler.Page, middleware.RequireToken(store))

	pages := e.Group("", middleware.ResolveToken(store))
	pages.GET("/account", accountHandler.Page)
	pages.POST("/account/profile", accountHandler.UpdateProfile)
	pages.POST("/account/password", accountHandler.ChangePassword)
	pages.GET("/coupon", couponHandler.Page)
	pages.POST("/coupon", couponHandler.Create)
	pages.POST("/coupon/:code", couponHandler.Update)
	pages.GET("/coupon/export", couponHandler.Export)
	pages.GET("/order", orderHandler.Page)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
