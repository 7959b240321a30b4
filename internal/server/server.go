package server

import (
	"context"
	"net/http"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/handlers"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/middleware"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/repositories"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the HTTP layer is built from
type Dependencies struct {
	DB           *gorm.DB
	Analytics    services.DebtAnalyticsServiceInterface
	Tokens       services.TokenServiceInterface
	Accounts     repositories.AccountRepositoryInterface
	Transactions repositories.TransactionRepositoryInterface
	Generator    services.LedgerHistoryGeneratorInterface
	// Metrics serves /metrics; defaults to the global prometheus registry
	Metrics http.Handler
}

// New builds the echo instance with middleware and routes. ctx bounds the
// rate limiter's background cleanup.
func New(ctx context.Context, cfg *config.Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	metrics := deps.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	health := handlers.NewHealthCheckHandler(deps.DB)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics))

	limiter := middleware.NewRateLimiter(ctx, cfg.Security)
	api := e.Group("/api/v1", middleware.RequireAuth(deps.Tokens), limiter.Middleware())

	analyticsHandler := handlers.NewAnalyticsHandler(deps.Analytics)
	api.GET("/accounts/:accountId/summary", analyticsHandler.GetAccountSummary)
	api.GET("/dashboard/overview", analyticsHandler.GetDashboardOverview)
	api.GET("/progress", analyticsHandler.GetProgressSummary)

	if cfg.IsDevelopment() {
		dev := handlers.NewDevHandler(deps.Tokens, deps.Accounts, deps.Transactions, deps.Generator)
		e.POST("/api/v1/dev/token", dev.IssueToken)
		api.POST("/dev/accounts/:accountId/generate-test-data", dev.GenerateTestData)
	}

	return e
}
