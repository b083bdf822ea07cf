package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"parcelhub/internal/core/domain/services"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

const basePath = "/api/v1"

// Config holds the edge settings of the HTTP service.
type Config struct {
	JWTSecret []byte
	// RateLimit is the sustained number of requests per second allowed per client IP.
	RateLimit float64
	Contract  *openapi3.T
	Logger    *slog.Logger
}

// NewEcho builds the echo instance with middleware and every route of s.
func NewEcho(s *Server, cfg Config) (*echo.Echo, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.Contract == nil {
		return nil, fmt.Errorf("openapi contract is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	validateRequests, err := ValidateRequests(cfg.Contract)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)
	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	limiter := middleware.RateLimiterWithConfig(rateLimiterConfig(cfg.RateLimit))
	authenticate := Authenticate(cfg.JWTSecret)

	public := []echo.MiddlewareFunc{limiter, validateRequests}
	protected := func(op services.Operation) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{limiter, authenticate, requireOperation(s.policy, op), validateRequests}
	}

	g := e.Group(basePath + "/package")

	g.GET("/site-stats", s.GetSiteStats, public...)
	g.GET("/top-delivery-drivers", s.GetTopDrivers, public...)
	g.GET("/stats-data", s.GetDeliveryStats, protected(services.OpViewStatsSeries)...)
	g.GET("/deliveries", s.ListDriverDeliveries, protected(services.OpListDeliveries)...)
	g.GET("/filter", s.FilterParcelsByDate, protected(services.OpFilterParcels)...)
	g.GET("/ratings", s.ListDriverRatings, protected(services.OpListDriverRatings)...)
	g.POST("/ratings", s.SubmitRating, protected(services.OpSubmitRating)...)
	g.GET("/drivers", s.ListDeliveryDrivers, protected(services.OpListDrivers)...)
	g.POST("/initiate-payment", s.InitiatePayment, protected(services.OpInitiatePayment)...)
	g.POST("/payment/:packageId", s.ConfirmPayment, protected(services.OpConfirmPayment)...)
	g.GET("/mine/:customerId", s.ListCustomerParcels, protected(services.OpListOwnParcels)...)
	g.PATCH("/assign/:id", s.AssignDriver, protected(services.OpAssignDriver)...)
	g.DELETE("/cancel/:id", s.CancelParcel, protected(services.OpCancelParcel)...)

	g.GET("", s.ListParcels, protected(services.OpListAllParcels)...)
	g.POST("", s.CreateParcel, protected(services.OpCreateParcel)...)
	g.GET("/:id", s.GetParcel, protected(services.OpViewParcel)...)
	g.PUT("/:id", s.EditParcel, protected(services.OpEditParcel)...)
	g.PATCH("/:id/status", s.ChangeParcelStatus, protected(services.OpTransitionParcel)...)
	g.GET("/:id/history", s.GetParcelHistory, protected(services.OpViewParcel)...)

	return e, nil
}

func rateLimiterConfig(rps float64) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(rps), ExpiresIn: 3 * time.Minute},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden").WithInternal(err)
		},
		DenyHandler: func(_ echo.Context, _ string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests").WithInternal(err)
		},
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
