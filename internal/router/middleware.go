package router

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"kitesurf/internal/auth"
	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/handler"
	"kitesurf/internal/service"
)

// sessionMiddleware turns a verified bearer token into the current user.
// The session must still be live and the user is re-read from the store,
// so blocking an account takes effect on the next request. Requests
// without a token (public routes) pass through untouched.
func sessionMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return handler.HTTPError(apperrors.ErrSessionInvalid)
			}

			user, err := authService.ValidateSession(c.Request().Context(), claims.SessionToken())
			if err != nil {
				return handler.HTTPError(err)
			}
			if user.ID != claims.UserID {
				return handler.HTTPError(apperrors.ErrSessionInvalid)
			}

			handler.SetCurrentUser(c, user)
			return next(c)
		}
	}
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	log := logger.Named("http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				log.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
