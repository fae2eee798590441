package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"kitesurf/docs"
	"kitesurf/internal/auth"
	"kitesurf/internal/config"
	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/handler"
	"kitesurf/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *zap.Logger,
	jwtService *auth.JWTService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	reservationHandler *handler.ReservationHandler,
	userHandler *handler.UserHandler,
	weatherHandler *handler.WeatherHandler,
	seedHandler *handler.SeedHandler,
) {
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	jwtConfig := echojwt.Config{
		SigningKey: jwtService.SigningKey(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return handler.HTTPError(apperrors.ErrSessionInvalid)
		},
	}
	session := sessionMiddleware(authService)

	// Public routes
	loginLimiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Auth.LoginRateLimit)),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, handler.AuthResponse{Message: "Te veel inlogpogingen, probeer het later opnieuw"})
		},
	})
	api.POST("/auth/login", authHandler.Login, loginLimiter)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/activate", authHandler.Activate)
	api.GET("/packages", catalogHandler.ListPackages)
	api.GET("/locations", catalogHandler.ListLocations)
	api.GET("/weather", weatherHandler.List)

	// Identity is optional here; a bad token is still rejected.
	optional := jwtConfig
	optional.Skipper = func(c echo.Context) bool {
		return c.Request().Header.Get(echo.HeaderAuthorization) == ""
	}
	api.GET("/auth/route", authHandler.Route, echojwt.WithConfig(optional), session)

	// Secured routes (require a live session)
	secured := api.Group("", echojwt.WithConfig(jwtConfig), session)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/users/me", userHandler.Me)
	secured.PUT("/users/me", userHandler.UpdateMe)
	secured.GET("/reservations", reservationHandler.List)
	secured.POST("/reservations", reservationHandler.Create)
	secured.GET("/reservations/:id", reservationHandler.Get)
	secured.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
	secured.POST("/catalog/seed", seedHandler.SeedCatalog)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the request validator used by all handlers.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
